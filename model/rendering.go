package model

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "··"

	ansiReset = "\x1b[0m"

	macosClearCmd = "clear"
)

// Renderer draws a board; it only ever reads cell values
type Renderer interface {
	Display(b Board)
	Clear()
}

// TerminalRenderer paints owners as 24-bit ANSI colored blocks
type TerminalRenderer struct {
	Out    io.Writer
	colors map[Owner]string
}

// NewTerminalRenderer builds a renderer using the given player colors
func NewTerminalRenderer(out io.Writer, p1, p2 color.RGBA) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{
		Out: out,
		colors: map[Owner]string{
			Player1: ansiForeground(p1),
			Player2: ansiForeground(p2),
		},
	}
}

func ansiForeground(c color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Display renders the grid to the terminal, top row first
func (r *TerminalRenderer) Display(b Board) {
	var sb strings.Builder
	for y := range b.GetHeight() {
		for x := range b.GetWidth() {
			owner := b.Get(x, y)
			if !owner.Alive() {
				sb.WriteString(gridPosEmpty)
				continue
			}
			sb.WriteString(r.colors[owner])
			sb.WriteString(gridPosBlock)
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(r.Out, sb.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}

package model

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalRendererDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, color.RGBA{R: 1, G: 2, B: 3}, color.RGBA{R: 4, G: 5, B: 6})

	g := NewGrid(3, 2)
	g.Set(0, 0, Player1)
	g.Set(2, 1, Player2)
	r.Display(g)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "\x1b[38;2;1;2;3m"+gridPosBlock+ansiReset+gridPosEmpty+gridPosEmpty, lines[0])
	assert.Equal(t, gridPosEmpty+gridPosEmpty+"\x1b[38;2;4;5;6m"+gridPosBlock+ansiReset, lines[1])
}

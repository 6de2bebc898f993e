package match

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/pkg/errors"

	"github.com/mashazatsepina/GameOfLife/model"
	"github.com/mashazatsepina/GameOfLife/utils"
)

var ErrInvalidColor = errors.New("invalid hex color")

// Player is one seat of the two-element registry
type Player struct {
	Owner model.Owner
	Name  string
	Color color.RGBA
}

// Players is indexed by Owner.Index()
type Players [2]Player

var fallbackColors = [2]color.RGBA{
	{R: 0x40, G: 0x8c, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x66, B: 0x66, A: 0xff},
}

// NewPlayers builds the registry from configuration. Unparseable colors fall back to the defaults.
func NewPlayers(cfg []utils.PlayerConfig) Players {
	var ps Players
	for i, owner := range model.Players {
		ps[i] = Player{Owner: owner, Name: owner.String(), Color: fallbackColors[i]}
		if i >= len(cfg) {
			continue
		}
		if cfg[i].Name != "" {
			ps[i].Name = cfg[i].Name
		}
		if c, err := ParseHexColor(cfg[i].Color); err == nil {
			ps[i].Color = c
		}
	}
	return ps
}

// Get returns the seat for a player owner
func (p Players) Get(o model.Owner) (Player, bool) {
	i := o.Index()
	if i < 0 {
		return Player{}, false
	}
	return p[i], true
}

// Name returns the display name of a player, "draw" for Dead
func (p Players) Name(o model.Owner) string {
	if pl, ok := p.Get(o); ok {
		return pl.Name
	}
	return "draw"
}

// ParseHexColor parses "#rrggbb" or "rrggbb"
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return c, errors.Wrapf(ErrInvalidColor, "[ParseHexColor] got %q", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, errors.Wrapf(ErrInvalidColor, "[ParseHexColor] got %q: %v", s, err)
	}
	return c, nil
}

package platformer

import (
	"math"

	"github.com/avlasenko/gamekit/internal/config"
	"github.com/avlasenko/gamekit/internal/core"
)

// coin is a collectible with its taken flag.
type coin struct {
	x, y  int
	taken bool
}

// standRow returns the row a player stands on when on top of the platform.
func standRow(p config.PlatformSpec) float64 {
	return float64(p.Y - 1)
}

// overlapsPlatform reports whether the column x lies within the platform's
// horizontal span.
func overlapsPlatform(p config.PlatformSpec, x float64) bool {
	col := int(math.Round(x))
	return col >= p.X && col < p.X+p.W
}

// supported reports whether a player at (x, y) is standing on any platform.
func (g *Game) supported(x, y float64) bool {
	for _, p := range g.level.Platforms {
		if y == standRow(p) && overlapsPlatform(p, x) {
			return true
		}
	}
	return false
}

// renderLevel draws platforms and remaining coins.
func (g *Game) renderLevel(dst *core.Screen) {
	for _, p := range g.level.Platforms {
		dst.DrawHLine(p.X, p.Y, p.W, '█', core.ColorGreen)
	}
	for _, c := range g.coins {
		if !c.taken {
			dst.SetCell(c.x, c.y, '●', core.ColorBrightYellow)
		}
	}
}

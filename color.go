package progress

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor parses "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" or an SVG
// color name such as "red" or "lightgray".
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return gg.RGBA{}, fmt.Errorf("progress: empty color")
	}
	if s[0] == '#' {
		switch len(s) - 1 {
		case 3, 4, 6, 8:
		default:
			return gg.RGBA{}, fmt.Errorf("progress: malformed hex color %q", s)
		}
		for _, r := range s[1:] {
			if !isHexDigit(r) {
				return gg.RGBA{}, fmt.Errorf("progress: malformed hex color %q", s)
			}
		}
		return gg.Hex(s), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("progress: unknown color %q", s)
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

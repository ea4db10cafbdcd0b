package planar

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/geom2d/dbg"
)

// Debug trace of ContainsPoint: one line per edge, saying what the winding
// accumulator did with it. Vertices get stable readable names so that the
// same vertex is recognizable across edges.
//
// Colors: yellow for a boundary hit, green for an upward crossing (w++), red
// for a downward crossing (w--), gray-ish cyan for edges the ray ignores.
func (poly Polygon) dbgDumpContainment(p Vec2) string {
	n := len(poly)
	var lines []string
	for i, a := range poly {
		b := poly[(i+1)%n]
		edge := fmt.Sprintf("%s %s → %s %s", dbg.Name(a), a, dbg.Name(b), b)

		var verdict string
		switch {
		case Equal(p, a):
			verdict = aurora.Yellow("point is vertex " + dbg.Name(a)).String()
		case Eq(p.Y, a.Y) && Eq(p.Y, b.Y):
			verdict = aurora.Cyan("horizontal at ray level").String()
		case (a.Y < p.Y) != (b.Y < p.Y):
			orientation := CCW(a, b, p)
			switch {
			case orientation == 0:
				verdict = aurora.Yellow("point on edge").String()
			case (a.Y < p.Y) == (orientation == 1):
				if a.Y < p.Y {
					verdict = aurora.Green("crossing up").String()
				} else {
					verdict = aurora.Red("crossing down").String()
				}
			default:
				verdict = aurora.Cyan("straddles, wrong side").String()
			}
		default:
			verdict = aurora.Cyan("no straddle").String()
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", edge, verdict))
	}
	return fmt.Sprintf("ContainsPoint %s:\n%s", p, strings.Join(lines, "\n"))
}

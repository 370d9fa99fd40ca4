package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mocap-zone-configurator/internal/host"
	"mocap-zone-configurator/internal/mathutil"
	"mocap-zone-configurator/internal/store"
	"mocap-zone-configurator/internal/zone"
)

// Top-down plan of the floor. The device sits near the bottom edge looking
// up the screen (toward -Z); one row covers half a meter.
const (
	planCols = 37
	planRows = 15
	planMinX = -3.0
	planMaxX = 3.0
	planMinZ = -6.5
	planMaxZ = 0.5

	// Screen position of plan cell (0, 0): below the header line and
	// inside the box border.
	planOriginX = 1
	planOriginY = 2

	// Terminal cells are converted to pixels so the drag threshold keeps
	// its meaning: moving one cell is always a drag.
	cellPixelsX = 8
	cellPixelsY = 16
)

type cellKind int

const (
	cellGround cellKind = iota
	cellZoneFill
	cellZoneEdge
	cellDevice
	cellSubject
	cellAnnot
	cellAnnotFade
)

type planGrid struct {
	runes [planRows][planCols]rune
	kinds [planRows][planCols]cellKind
}

// cellCenter returns the floor position at the middle of a plan cell.
func cellCenter(col, row int) (x, z float64) {
	x = planMinX + (float64(col)+0.5)*(planMaxX-planMinX)/planCols
	z = planMinZ + (float64(row)+0.5)*(planMaxZ-planMinZ)/planRows
	return x, z
}

// cellOf returns the plan cell containing a floor position.
func cellOf(x, z float64) (col, row int) {
	col = int(math.Floor((x - planMinX) / (planMaxX - planMinX) * planCols))
	row = int(math.Floor((z - planMinZ) / (planMaxZ - planMinZ) * planRows))
	return col, row
}

func inPlan(col, row int) bool {
	return col >= 0 && col < planCols && row >= 0 && row < planRows
}

// insideZone reports whether a floor position lies on the zone.
func insideZone(s zone.Settings, x, z float64) bool {
	return math.Abs(x) <= s.Width/2 && math.Abs(z+s.Distance) <= s.Length/2
}

// screenToPlan maps a terminal cell to a plan cell.
func screenToPlan(x, y int) (col, row int, ok bool) {
	col, row = x-planOriginX, y-planOriginY
	return col, row, inPlan(col, row)
}

// hitZone reports whether a terminal cell lands on the zone floor.
func hitZone(s zone.Settings, x, y int) bool {
	col, row, ok := screenToPlan(x, y)
	if !ok {
		return false
	}
	cx, cz := cellCenter(col, row)
	return insideZone(s, cx, cz)
}

func buildPlan(f host.Frame) *planGrid {
	g := &planGrid{}
	s := f.Snapshot.Zone
	halfCellX := (planMaxX - planMinX) / planCols / 2
	halfCellZ := (planMaxZ - planMinZ) / planRows / 2

	for r := 0; r < planRows; r++ {
		for c := 0; c < planCols; c++ {
			x, z := cellCenter(c, r)
			g.runes[r][c], g.kinds[r][c] = '·', cellGround
			if !insideZone(s, x, z) {
				continue
			}
			edgeX := math.Abs(x)+halfCellX*2 > s.Width/2
			edgeZ := math.Abs(z+s.Distance)+halfCellZ*2 > s.Length/2
			switch {
			case edgeX && edgeZ:
				g.runes[r][c], g.kinds[r][c] = '+', cellZoneEdge
			case edgeX:
				g.runes[r][c], g.kinds[r][c] = '│', cellZoneEdge
			case edgeZ:
				g.runes[r][c], g.kinds[r][c] = '─', cellZoneEdge
			default:
				g.runes[r][c], g.kinds[r][c] = '░', cellZoneFill
			}
		}
	}

	g.put(mathutil.Vec3{0, 0, -s.Distance}, '@', cellSubject)
	for _, m := range f.Mounts {
		if !m.Visible {
			continue
		}
		mark := 'T'
		if m.Height == store.Ceiling {
			mark = 'C'
		}
		kind := cellDevice
		if m.Opacity < 0.5 {
			kind = cellAnnotFade
		}
		g.put(m.Position, mark, kind)
	}

	for _, a := range f.Annotations {
		if !a.Visible {
			continue
		}
		kind := cellAnnot
		if a.Opacity < 0.5 {
			kind = cellAnnotFade
		}
		g.text(a.Anchor, a.Label, kind)
	}
	return g
}

func (g *planGrid) put(p mathutil.Vec3, r rune, k cellKind) {
	c, row := cellOf(p[0], p[2])
	if inPlan(c, row) {
		g.runes[row][c], g.kinds[row][c] = r, k
	}
}

// text writes a label starting at the anchor cell, clipped to the plan.
func (g *planGrid) text(p mathutil.Vec3, s string, k cellKind) {
	c, row := cellOf(p[0], p[2])
	if row < 0 || row >= planRows {
		return
	}
	for _, r := range s {
		if c >= 0 && c < planCols {
			g.runes[row][c], g.kinds[row][c] = r, k
		}
		c++
	}
}

func (g *planGrid) render(st Styles) string {
	styles := map[cellKind]lipgloss.Style{
		cellGround:    st.Ground,
		cellZoneFill:  st.ZoneFill,
		cellZoneEdge:  st.ZoneEdge,
		cellDevice:    st.Device,
		cellSubject:   st.Subject,
		cellAnnot:     st.Annot,
		cellAnnotFade: st.AnnotFade,
	}
	var b strings.Builder
	for r := 0; r < planRows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for c := 1; c <= planCols; c++ {
			if c < planCols && g.kinds[r][c] == g.kinds[r][start] {
				continue
			}
			b.WriteString(styles[g.kinds[r][start]].Render(string(g.runes[r][start:c])))
			start = c
		}
	}
	return b.String()
}

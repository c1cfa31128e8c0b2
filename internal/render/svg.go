package render

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/MKhiriev/go-qr-studio/models"
)

// unitsPerModule is the internal viewBox resolution. Drawing in tenths of a
// module keeps rounded eye corners smooth with svgo's integer coordinates.
const unitsPerModule = 10

// quietZoneModules is the border width go-qrcode always includes in Bitmap.
const quietZoneModules = 4

// eyeModules is the edge length of a finder pattern.
const eyeModules = 7

// SVG implements [Renderer.SVG].
func (r *QRRenderer) SVG(value string, style models.QRStyle, size int) ([]byte, error) {
	q, err := r.newCode(value, style)
	if err != nil {
		return nil, err
	}

	grid := q.Bitmap()
	if !style.IncludeMargin {
		grid = trimQuietZone(grid, quietZoneModules)
	}

	n := len(grid)
	if n == 0 {
		return nil, fmt.Errorf("empty qr bitmap")
	}

	margin := 0
	if style.IncludeMargin {
		margin = quietZoneModules
	}
	eyes := eyeOrigins(n, margin)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(size, size, 0, 0, n*unitsPerModule, n*unitsPerModule)
	canvas.Rect(0, 0, n*unitsPerModule, n*unitsPerModule, "fill:"+style.BgColor)

	roundedEyes := style.EyeRadius > 0
	fill := "fill:" + style.FgColor

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !grid[y][x] {
				continue
			}
			if roundedEyes && insideEye(x, y, eyes) {
				continue
			}
			canvas.Rect(x*unitsPerModule, y*unitsPerModule, unitsPerModule, unitsPerModule, fill)
		}
	}

	if roundedEyes {
		for _, e := range eyes {
			drawEye(canvas, e[0], e[1], style)
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

// eyeOrigins returns the top-left module of each finder pattern given the
// grid edge length and the quiet zone width.
func eyeOrigins(n, margin int) [3][2]int {
	far := n - margin - eyeModules
	return [3][2]int{
		{margin, margin},
		{far, margin},
		{margin, far},
	}
}

func insideEye(x, y int, eyes [3][2]int) bool {
	for _, e := range eyes {
		if x >= e[0] && x < e[0]+eyeModules && y >= e[1] && y < e[1]+eyeModules {
			return true
		}
	}
	return false
}

// drawEye draws one finder pattern as three nested rounded rectangles:
// a dark 7x7 outer square, a light 5x5 ring, and a dark 3x3 centre.
// EyeRadius is a percentage of the half eye width; 100 gives a circle.
func drawEye(canvas *svg.SVG, ex, ey int, style models.QRStyle) {
	radius := style.EyeRadius
	if radius > 100 {
		radius = 100
	}

	outer := eyeModules * unitsPerModule
	rOuter := radius * (outer / 2) / 100
	rMiddle := rOuter * 5 / eyeModules
	rInner := rOuter * 3 / eyeModules

	x := ex * unitsPerModule
	y := ey * unitsPerModule

	canvas.Roundrect(x, y, outer, outer, rOuter, rOuter, "fill:"+style.FgColor)
	canvas.Roundrect(x+unitsPerModule, y+unitsPerModule,
		5*unitsPerModule, 5*unitsPerModule, rMiddle, rMiddle, "fill:"+style.BgColor)
	canvas.Roundrect(x+2*unitsPerModule, y+2*unitsPerModule,
		3*unitsPerModule, 3*unitsPerModule, rInner, rInner, "fill:"+style.FgColor)
}

func trimQuietZone(grid [][]bool, margin int) [][]bool {
	n := len(grid)
	if n <= 2*margin {
		return grid
	}

	trimmed := make([][]bool, 0, n-2*margin)
	for _, row := range grid[margin : n-margin] {
		trimmed = append(trimmed, row[margin:n-margin])
	}
	return trimmed
}

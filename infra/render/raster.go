package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/archit-tiwari-26/timetable3.0/core/grid"
)

const (
	cellPadX   = 8
	cellPadY   = 6
	lineHeight = 16
	borderPx   = 1
)

var (
	borderColor = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	textColor   = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

type rasterLayout struct {
	colWidths  []int // label column followed by the five day columns
	rowHeights []int // header row followed by one row per time range
	width      int
	height     int
}

// measure lays the grid out at its natural content size. Column widths come
// from the widest line each column has to hold, never from a viewport, so
// wide grids expand instead of clipping.
func measure(g *grid.Grid) rasterLayout {
	face := basicfont.Face7x13
	cols := len(grid.Days) + 1
	l := rasterLayout{
		colWidths:  make([]int, cols),
		rowHeights: make([]int, len(g.Times)+1),
	}

	l.colWidths[0] = textWidth(face, "Time")
	for i, day := range grid.Days {
		l.colWidths[i+1] = textWidth(face, day)
	}
	l.rowHeights[0] = lineHeight

	for row, tr := range g.Times {
		if w := textWidth(face, tr.String()); w > l.colWidths[0] {
			l.colWidths[0] = w
		}
		maxLines := 1
		for col, day := range grid.Days {
			lines := CellLines(g.Cell(day, tr))
			if len(lines) > maxLines {
				maxLines = len(lines)
			}
			for _, s := range lines {
				if w := textWidth(face, s); w > l.colWidths[col+1] {
					l.colWidths[col+1] = w
				}
			}
		}
		l.rowHeights[row+1] = maxLines * lineHeight
	}

	l.width = borderPx
	for i := range l.colWidths {
		l.colWidths[i] += 2 * cellPadX
		l.width += l.colWidths[i] + borderPx
	}
	l.height = borderPx
	for i := range l.rowHeights {
		l.rowHeights[i] += 2 * cellPadY
		l.height += l.rowHeights[i] + borderPx
	}
	return l
}

// Rasterize paints the grid onto an opaque white image at its natural
// content size, then scales by the given pixel-density factor. The export
// pipeline always passes 2.
func Rasterize(g *grid.Grid, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	l := measure(g)
	base := image.NewRGBA(image.Rect(0, 0, l.width, l.height))
	draw.Draw(base, base.Bounds(), image.White, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{Dst: base, Src: image.NewUniform(textColor), Face: face}

	// Grid lines.
	x := 0
	for i := 0; i <= len(l.colWidths); i++ {
		vline(base, x, l.height)
		if i < len(l.colWidths) {
			x += borderPx + l.colWidths[i]
		}
	}
	y := 0
	for i := 0; i <= len(l.rowHeights); i++ {
		hline(base, y, l.width)
		if i < len(l.rowHeights) {
			y += borderPx + l.rowHeights[i]
		}
	}

	// Header row.
	drawCell(drawer, l, 0, 0, []string{"Time"})
	for col, day := range grid.Days {
		drawCell(drawer, l, 0, col+1, []string{day})
	}

	// Body.
	for row, tr := range g.Times {
		drawCell(drawer, l, row+1, 0, []string{tr.String()})
		for col, day := range grid.Days {
			drawCell(drawer, l, row+1, col+1, CellLines(g.Cell(day, tr)))
		}
	}

	if scale == 1 {
		return base
	}
	scaled := image.NewRGBA(image.Rect(0, 0, l.width*scale, l.height*scale))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	return scaled
}

func drawCell(d *font.Drawer, l rasterLayout, row, col int, lines []string) {
	x := borderPx
	for i := 0; i < col; i++ {
		x += l.colWidths[i] + borderPx
	}
	y := borderPx
	for i := 0; i < row; i++ {
		y += l.rowHeights[i] + borderPx
	}
	for i, s := range lines {
		d.Dot = fixed.P(x+cellPadX, y+cellPadY+i*lineHeight+basicfont.Face7x13.Ascent)
		d.DrawString(s)
	}
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func vline(img *image.RGBA, x, height int) {
	for y := 0; y < height; y++ {
		img.Set(x, y, borderColor)
	}
}

func hline(img *image.RGBA, y, width int) {
	for x := 0; x < width; x++ {
		img.Set(x, y, borderColor)
	}
}

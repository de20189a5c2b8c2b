package types

// Point is a cell on the grid, in grid units.
type Point struct {
	X, Y int
}

// Add returns p moved by the delta d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width    int // columns
	Height   int // rows
	CellSize int // pixels per cell on the logical canvas
}

// NewGrid derives the grid from a logical canvas size in pixels.
func NewGrid(canvasWidth, canvasHeight, cellSize int) Grid {
	return Grid{
		Width:    canvasWidth / cellSize,
		Height:   canvasHeight / cellSize,
		CellSize: cellSize,
	}
}

// Contains reports whether p lies inside [0,Width)x[0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Interior returns every cell not on the one-cell border, column by column.
func (g Grid) Interior() []Point {
	if g.Width < 3 || g.Height < 3 {
		return nil
	}
	cells := make([]Point, 0, (g.Width-2)*(g.Height-2))
	for x := 1; x < g.Width-1; x++ {
		for y := 1; y < g.Height-1; y++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}

// ToPixel returns the top-left pixel of a cell on the logical canvas.
func (g Grid) ToPixel(p Point) (int, int) {
	return p.X * g.CellSize, p.Y * g.CellSize
}

// Center returns the pixel centre of a cell on the logical canvas.
func (g Grid) Center(p Point) (float64, float64) {
	half := float64(g.CellSize) / 2
	return float64(p.X*g.CellSize) + half, float64(p.Y*g.CellSize) + half
}

// FromPixel maps a logical canvas pixel back to its cell.
func (g Grid) FromPixel(x, y int) Point {
	return Point{X: floorDiv(x, g.CellSize), Y: floorDiv(y, g.CellSize)}
}

// PixelWidth and PixelHeight give the logical canvas size.
func (g Grid) PixelWidth() int  { return g.Width * g.CellSize }
func (g Grid) PixelHeight() int { return g.Height * g.CellSize }

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

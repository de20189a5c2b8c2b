package types

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Manhattan returns the taxicab distance between two cells. The board has
// walls, so unlike a torus there is no wrapping.
func Manhattan(p1, p2 Point) int {
	return Abs(p2.X-p1.X) + Abs(p2.Y-p1.Y)
}

// FitScale computes the uniform scale and letterbox offset that fit a fixed
// logical canvas into an available area while keeping its aspect ratio.
func FitScale(logicalW, logicalH, availW, availH int) (scale float64, offX, offY int) {
	if logicalW <= 0 || logicalH <= 0 || availW <= 0 || availH <= 0 {
		return 1, 0, 0
	}
	sx := float64(availW) / float64(logicalW)
	sy := float64(availH) / float64(logicalH)
	scale = min(sx, sy)
	offX = (availW - int(float64(logicalW)*scale)) / 2
	offY = (availH - int(float64(logicalH)*scale)) / 2
	return scale, offX, offY
}

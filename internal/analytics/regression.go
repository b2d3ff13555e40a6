package analytics

// Point is one regression sample.
type Point struct {
	X float64
	Y float64
}

// Fit computes the ordinary least squares line through points.
// With fewer than two points the slope is 0 and the intercept is the lone y (or 0).
// If every x is equal the slope is 0 and the intercept is the mean y.
func Fit(points []Point) (slope, intercept float64) {
	switch len(points) {
	case 0:
		return 0, 0
	case 1:
		return 0, points[0].Y
	}

	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

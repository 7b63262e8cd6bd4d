package transforms

// InCardioid reports whether (x, y) lies strictly inside the main cardioid.
func InCardioid(x, y float64) bool {
	y2 := y * y
	q := x*x - 0.5*x + 0.0625 + y2

	return q*(q+(x-0.25)) < 0.25*y2
}

// InPeriod2Bulb reports whether (x, y) lies strictly inside the disk of
// radius 1/4 centered on -1.
func InPeriod2Bulb(x, y float64) bool {
	return x*x+2*x+1+y*y < 0.0625
}

// Interior reports whether (x, y) is certainly in the Mandelbrot set without
// iterating. A false result says nothing.
func Interior(x, y float64) bool {
	return InCardioid(x, y) || InPeriod2Bulb(x, y)
}

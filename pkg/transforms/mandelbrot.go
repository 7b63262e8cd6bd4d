package transforms

// Next is one step of the quadratic map z → z² + c.
func Next(z, c complex128) complex128 {
	return z*z + c
}

// Escapes iterates from z = 0 and returns the number of completed updates
// when |z|² first exceeded 4, or maxIterations and false if it never did.
func Escapes(c complex128, maxIterations int) (int, bool) {
	z := complex(0, 0)

	for i := 0; ; i++ {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, true
		}
		if i >= maxIterations {
			return maxIterations, false
		}
		z = Next(z, c)
	}
}

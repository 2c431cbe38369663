package human

const (
	scaleBase   = 1000
	scaleDigits = 3
)

var scales = [...]string{"B", "K", "M", "G"}

// resolveScale divides n by scaleBase until the quotient fits the integer part
// of a scale, then folds the last remainder back in so the returned value
// carries three fractional digits for that scale.
func resolveScale(n int64) (int64, int) {
	var (
		rem   int64
		scale int
	)
	for {
		rem = n % scaleBase
		n /= scaleBase
		if n > 0 {
			scale++
		}
		if n <= scaleBase {
			break
		}
	}
	return n*scaleBase + rem, scale
}

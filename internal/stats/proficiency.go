package stats

import "math"

// NoData is the sentinel NormalizeProficiency returns when a measurement
// carries neither a percentage nor a clamp exception. Callers must exclude
// it from ranking comparisons.
const NoData = -1

// NormalizeProficiency maps a percentage-or-exception pair onto one ordered
// integer scale. The clamp exceptions pin just inside their bounds so that
// "under 10%" sorts below any reported 10 and "over 90%" above any 90.
func NormalizeProficiency(pct *float64, exception string) int {
	switch {
	case exception == ExceptionUnder10:
		return 9
	case exception == ExceptionOver90:
		return 91
	case pct != nil:
		return int(math.Round(*pct))
	default:
		return NoData
	}
}

// HasUsableProficiency reports whether a measurement contributes to ranking:
// a reported percentage or one of the two clamp codes.
func HasUsableProficiency(pct *float64, exception string) bool {
	return pct != nil || exception == ExceptionUnder10 || exception == ExceptionOver90
}

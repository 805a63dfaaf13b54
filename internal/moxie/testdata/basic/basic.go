package basic

func scale(x float64) float64 {
	return 2 * x
}

package destination

func fill(dst *int, n int) {
	*dst = n
}

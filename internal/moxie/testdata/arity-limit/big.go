package aritylimit

func big(
	p0 int,
	p1 int,
	p2 int,
	p3 int,
	p4 int,
	p5 int,
	p6 int,
	p7 int,
	p8 int,
	p9 int,
	p10 int,
	p11 int,
	p12 int,
	p13 int,
	p14 int,
	p15 int,
	p16 int,
	p17 int,
	p18 int,
	p19 int,
	p20 int,
	p21 int,
	p22 int,
	p23 int,
	p24 int,
	p25 int,
	p26 int,
	p27 int,
	p28 int,
	p29 int,
	p30 int,
	p31 int,
	p32 int,
) int {
	return p0
}

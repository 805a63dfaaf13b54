//go:build moxie

package aritylimit

import (
	"github.com/moxielabs/moxie"
)

func Big() {
	moxie.Mock(big,
		moxie.ReturnInt("int"),
		moxie.ParamInt("int", "p0"),
		moxie.ParamInt("int", "p1"),
		moxie.ParamInt("int", "p2"),
		moxie.ParamInt("int", "p3"),
		moxie.ParamInt("int", "p4"),
		moxie.ParamInt("int", "p5"),
		moxie.ParamInt("int", "p6"),
		moxie.ParamInt("int", "p7"),
		moxie.ParamInt("int", "p8"),
		moxie.ParamInt("int", "p9"),
		moxie.ParamInt("int", "p10"),
		moxie.ParamInt("int", "p11"),
		moxie.ParamInt("int", "p12"),
		moxie.ParamInt("int", "p13"),
		moxie.ParamInt("int", "p14"),
		moxie.ParamInt("int", "p15"),
		moxie.ParamInt("int", "p16"),
		moxie.ParamInt("int", "p17"),
		moxie.ParamInt("int", "p18"),
		moxie.ParamInt("int", "p19"),
		moxie.ParamInt("int", "p20"),
		moxie.ParamInt("int", "p21"),
		moxie.ParamInt("int", "p22"),
		moxie.ParamInt("int", "p23"),
		moxie.ParamInt("int", "p24"),
		moxie.ParamInt("int", "p25"),
		moxie.ParamInt("int", "p26"),
		moxie.ParamInt("int", "p27"),
		moxie.ParamInt("int", "p28"),
		moxie.ParamInt("int", "p29"),
		moxie.ParamInt("int", "p30"),
		moxie.ParamInt("int", "p31"),
		moxie.ParamInt("int", "p32"),
	)
}

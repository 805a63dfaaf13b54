//go:build moxie

package basic

import (
	"math"

	"github.com/moxielabs/moxie"
)

func Pow() {
	moxie.Mock(math.Pow,
		moxie.ReturnDouble("float64"),
		moxie.ParamDouble("float64", "x"),
		moxie.ParamDouble("float64", "y"),
	)
}

func Scale() {
	moxie.Mock(scale,
		moxie.ReturnDouble("float64"),
		moxie.ParamDouble("float64", "x"),
	)
}

//go:build moxie

package destination

import (
	"github.com/moxielabs/moxie"
)

func Fill() {
	moxie.SetDestination("fill_gen.go")
	moxie.Mock(fill,
		moxie.ReturnVoid(),
		moxie.ParamOutPtr("*int", "dst"),
		moxie.ParamInt("int", "n"),
	)
}

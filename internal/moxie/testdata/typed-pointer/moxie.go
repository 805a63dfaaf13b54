//go:build moxie

package typedptr

import (
	"github.com/moxielabs/moxie"
)

func FillBuffer() {
	moxie.Mock(fillBuffer,
		moxie.ReturnVoid(),
		moxie.ParamInTypedPtr("*bytes.Buffer", "buf"),
		moxie.ParamString("string", "s"),
	)
}

//go:build moxie

package invalidtarget

import (
	"github.com/moxielabs/moxie"
)

var answer = 42

func Answer() {
	moxie.Mock(answer, moxie.ReturnInt("int"))
}

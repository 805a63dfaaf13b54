package typedptr

import "bytes"

func fillBuffer(buf *bytes.Buffer, s string) {
	buf.WriteString(s)
}

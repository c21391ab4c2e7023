package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/subset/value"
)

func MustString(v value.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

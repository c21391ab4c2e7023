package eval

import (
	"strings"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("isna", func(params ...any) (any, error) {
			return params[0] == nil, nil
		},
			new(func(any) bool)),
		expr.Function("hasprefix", func(params ...any) (any, error) {
			s, _ := params[0].(string)
			p, _ := params[1].(string)
			return strings.HasPrefix(s, p), nil
		},
			new(func(any, string) bool)),
	}
}

package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Extract bool
	Load    bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Extract = boolEnv("SUBSET_DEBUG_EXTRACT")
	d.Load = boolEnv("SUBSET_DEBUG_LOAD")
	d.Eval = boolEnv("SUBSET_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Extract() bool {
	return d.Extract
}
func Load() bool {
	return d.Load
}
func Eval() bool {
	return d.Eval
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch args[i].(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(args[i], "   |", "  ")
			if err != nil {
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

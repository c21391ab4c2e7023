package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/subset/index"
	"github.com/signadot/subset/subset"
	"github.com/signadot/subset/value"
)

func cell(cfg *CellConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cell.Parse(cc, args)
	if err != nil {
		cfg.Cell.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: cell requires axis indices", cli.ErrUsage)
	}
	axes, err := index.ParseAxes(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	e, err := cfg.engine()
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args[1:], func(w io.Writer, v value.Value) error {
		a, ok := v.(*value.Array)
		if !ok {
			return fmt.Errorf("%w: cell needs an array, got %s", subset.ErrInvalidContainer, v.Type())
		}
		var res value.Value
		if cfg.Keep {
			res, err = e.ExtractArrayDrop(a, axes, false)
		} else {
			res, err = e.ExtractArray(a, axes)
		}
		if err != nil {
			return err
		}
		return cfg.output(w, res)
	})
}

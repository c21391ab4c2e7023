package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/subset/index"
	"github.com/signadot/subset/subset"
	"github.com/signadot/subset/value"
)

func complete(cfg *CompleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Complete.Parse(cc, args)
	if err != nil {
		cfg.Complete.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	e, err := cfg.engine()
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args, func(w io.Writer, v value.Value) error {
		if cfg.Cases {
			res, err := e.Complete(v)
			if err != nil {
				return err
			}
			return cfg.output(w, res)
		}
		m, err := subset.CompleteMask(v)
		if err != nil {
			return err
		}
		return cfg.output(w, value.Logicals(m...))
	})
}

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires a mask or predicate", cli.ErrUsage)
	}
	ix, err := index.ParseIndex(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	switch ix.(type) {
	case index.Mask, index.Where:
	default:
		return fmt.Errorf("%w: filter takes a mask or a ?predicate, got %s", cli.ErrUsage, ix)
	}
	e, err := cfg.engine()
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args[1:], func(w io.Writer, v value.Value) error {
		var res value.Value
		if t, ok := v.(*value.Table); ok {
			res, err = e.ExtractRows(t, ix)
		} else {
			res, err = e.Extract(v, ix)
		}
		if err != nil {
			return err
		}
		return cfg.output(w, res)
	})
}

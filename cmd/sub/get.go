package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/subset/index"
	"github.com/signadot/subset/subset"
	"github.com/signadot/subset/value"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires an index", cli.ErrUsage)
	}
	ix, err := index.ParseIndex(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	e, err := cfg.engine()
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args[1:], func(w io.Writer, v value.Value) error {
		res, err := e.Extract(v, ix)
		if err != nil {
			return err
		}
		return cfg.output(w, res)
	})
}

func one(cfg *OneConfig, cc *cli.Context, args []string) error {
	args, err := cfg.One.Parse(cc, args)
	if err != nil {
		cfg.One.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: one requires a key or path", cli.ErrUsage)
	}
	k, err := index.ParseIndex(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	e, err := cfg.engine()
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args[1:], func(w io.Writer, v value.Value) error {
		r, err := e.ExtractOne(v, k)
		if err != nil {
			return err
		}
		return cfg.result(w, r, cfg.Reason)
	})
}

// result prints r, the missing marker when r is missing.
func (cfg *MainConfig) result(w io.Writer, r subset.Result, reason bool) error {
	if r.Missing() && reason {
		theLog.Info("missing", "key", fmt.Sprint(r.Key()), "reason", r.Reason().String())
	}
	return cfg.output(w, r.OrNA())
}

func lit(cfg *LitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lit.Parse(cc, args)
	if err != nil {
		cfg.Lit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: lit requires a name", cli.ErrUsage)
	}
	name := args[0]
	if !index.IsIdent(name) {
		return fmt.Errorf("%w: %q is not a bareword name", cli.ErrUsage, name)
	}
	e, err := cfg.engine()
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args[1:], func(w io.Writer, v value.Value) error {
		r, err := e.ExtractByLiteral(v, name)
		if err != nil {
			return err
		}
		return cfg.result(w, r, cfg.Verbose)
	})
}

func many(cfg *ManyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Many.Parse(cc, args)
	if err != nil {
		cfg.Many.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: many requires an index", cli.ErrUsage)
	}
	ix, err := index.ParseIndex(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	e, err := cfg.engine()
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args[1:], func(w io.Writer, v value.Value) error {
		l, ok := v.(*value.List)
		if !ok {
			return fmt.Errorf("%w: many needs a list, got %s", subset.ErrInvalidContainer, v.Type())
		}
		res, err := e.ExtractMany(l, ix)
		if err != nil {
			return err
		}
		return cfg.output(w, res)
	})
}

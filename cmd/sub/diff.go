package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/subset/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	from, err := cfg.loadInput(cc, args[0])
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[0], err)
	}
	to, err := cfg.loadInput(cc, args[1])
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[1], err)
	}
	d, same := libdiff.Diff(from, to)
	if same {
		return nil
	}
	if _, err := cc.Out.Write([]byte(d)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

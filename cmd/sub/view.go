package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/subset/value"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args, func(w io.Writer, v value.Value) error {
		return cfg.output(w, v)
	})
}

package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Drop: true}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/txt/t, yaml/yml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sub").
		WithSynopsis("sub [opts] command [opts]").
		WithDescription("sub indexes and subsets sequences, arrays, lists and tables.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return subMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			OneCommand(cfg),
			LitCommand(cfg),
			ManyCommand(cfg),
			CellCommand(cfg),
			CompleteCommand(cfg),
			FilterCommand(cfg),
			DiffCommand(cfg),
			ViewCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <index> [files]").
		WithDescription("select elements, keeping the container kind").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func OneCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OneConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("one").
		WithAliases("o").
		WithOpts(opts...).
		WithSynopsis("one [-r] <key or path> [files]").
		WithDescription("extract a single element, descending along a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return one(cfg, cc, args)
		})
	cfg.One = cmd
	return cmd
}

func LitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LitConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Lit, "lit").
		WithAliases("l").
		WithSynopsis("lit <name> [files]").
		WithDescription("look up a bareword name in lists and tables").
		WithRun(func(cc *cli.Context, args []string) error {
			return lit(cfg, cc, args)
		})
}

func ManyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ManyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Many, "many").
		WithAliases("m").
		WithSynopsis("many <index> [files]").
		WithDescription("select list items, keeping their names").
		WithRun(func(cc *cli.Context, args []string) error {
			return many(cfg, cc, args)
		})
}

func CellCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CellConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("cell").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("cell [-k] <i;j;...> [files]").
		WithDescription("index arrays by axis; an empty axis selects all of it").
		WithRun(func(cc *cli.Context, args []string) error {
			return cell(cfg, cc, args)
		})
	cfg.Cell = cmd
	return cmd
}

func CompleteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompleteConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("complete").
		WithAliases("cc").
		WithOpts(opts...).
		WithSynopsis("complete [-c] [files]").
		WithDescription("print which positions hold no missing value").
		WithRun(func(cc *cli.Context, args []string) error {
			return complete(cfg, cc, args)
		})
	cfg.Complete = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter <mask or ?predicate> [files]").
		WithDescription("keep the elements, list items or table rows a mask selects").
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff two documents as values").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("print documents as values").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

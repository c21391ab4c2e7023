package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/subset/config"
	"github.com/signadot/subset/encode"
	"github.com/signadot/subset/format"
	"github.com/signadot/subset/load"
	"github.com/signadot/subset/subset"
	"github.com/signadot/subset/value"
)

type MainConfig struct {
	Exact   bool   `cli:"name=exact desc='names match exactly, no partial matching'"`
	Strict  bool   `cli:"name=strict desc='report missing lookups as errors'"`
	Lenient bool   `cli:"name=lenient desc='recycle masks of any length, with a warning'"`
	Drop    bool   `cli:"name=drop desc='drop extent 1 dimensions of array results'"`
	Config  string `cli:"name=config desc='engine config file'"`
	Patch   string `cli:"name=patch desc='json patch file applied to inputs'"`
	Verbose bool   `cli:"name=v desc='log lookup traces'"`
	Color   bool   `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// isSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) isSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

// engine builds the engine from the config file, if any, and then the
// command line flags given.
func (cfg *MainConfig) engine() (*subset.Engine, error) {
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	opts := []subset.Option{subset.WithLogger(theLog)}
	if cfg.Config != "" {
		c, err := config.Load(cfg.Config)
		if err != nil {
			return nil, err
		}
		opts = append(opts, c.Options()...)
	}
	if cfg.isSet("exact") {
		opts = append(opts, subset.ExactMatch(cfg.Exact))
	}
	if cfg.isSet("strict") {
		opts = append(opts, subset.Strict(cfg.Strict))
	}
	if cfg.isSet("lenient") {
		opts = append(opts, subset.LenientRecycle(cfg.Lenient))
	}
	if cfg.isSet("drop") {
		opts = append(opts, subset.Drop(cfg.Drop))
	}
	return subset.New(opts...), nil
}

func (cfg *MainConfig) loadOpts() ([]load.Option, error) {
	if cfg.Patch == "" {
		return nil, nil
	}
	d, err := os.ReadFile(cfg.Patch)
	if err != nil {
		return nil, fmt.Errorf("could not read patch: %w", err)
	}
	return []load.Option{load.WithPatch(d)}, nil
}

func (cfg *MainConfig) loadInput(cc *cli.Context, file string) (value.Value, error) {
	opts, err := cfg.loadOpts()
	if err != nil {
		return nil, err
	}
	if file == "-" {
		return load.Reader(cc.In, opts...)
	}
	return load.File(file, opts...)
}

// eachInput loads each file, stdin when there are none, and calls f on
// it. Outputs of successive inputs are separated by a document marker.
func (cfg *MainConfig) eachInput(cc *cli.Context, files []string, f func(w io.Writer, v value.Value) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		v, err := cfg.loadInput(cc, file)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := f(cc.Out, v); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmt format.Format
	switch {
	case cfg.Y:
		fmt = format.YAMLFormat
	case cfg.J:
		fmt = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
	}
	if fmt.IsData() {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.isSet("color") {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) output(w io.Writer, v value.Value) error {
	if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type OneConfig struct {
	*MainConfig
	Reason bool `cli:"name=r desc='log why a lookup is missing'"`
	One    *cli.Command
}

type LitConfig struct {
	*MainConfig
	Lit *cli.Command
}

type ManyConfig struct {
	*MainConfig
	Many *cli.Command
}

type CellConfig struct {
	*MainConfig
	Keep bool `cli:"name=k aliases=keep desc='keep all dimensions of the result'"`
	Cell *cli.Command
}

type CompleteConfig struct {
	*MainConfig
	Cases    bool `cli:"name=c desc='print the complete elements instead of the mask'"`
	Complete *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Filter *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

// Command windingctl generates winding circles into an output directory.
//
//	windingctl generate [flags]            generate one curve
//	windingctl watch -config file [flags]  regenerate whenever file changes
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"windingcircle/config"
	"windingcircle/controls"
	"windingcircle/curve"
	"windingcircle/export"
	"windingcircle/scene"
)

const usage = `usage: windingctl <generate|watch> [flags]

Run "windingctl <command> -h" for the flags of a command.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "generate":
		err = generate(args[1:], stderr)
	case "watch":
		err = watch(args[1:], stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stderr, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage), errors.Is(err, curve.ErrInvalidParameter):
		fmt.Fprintln(stderr, "windingctl:", err)
		return 2
	default:
		fmt.Fprintln(stderr, "windingctl:", err)
		return 1
	}
}

var errUsage = errors.New("usage")

type options struct {
	fs *flag.FlagSet

	configPath string
	out        string
	format     string
	logLevel   string

	file    config.File
	flagged config.File
}

func newOptions(name string, stderr io.Writer) *options {
	o := &options{fs: flag.NewFlagSet(name, flag.ContinueOnError), file: config.Default()}
	fs := o.fs
	fs.SetOutput(stderr)

	fs.StringVar(&o.configPath, "config", "", "TOML parameter file")
	fs.StringVar(&o.out, "out", ".", "output directory")
	fs.StringVar(&o.format, "format", "svg", "preview format: "+strings.Join(export.Formats(), ", "))
	fs.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")

	f := &o.file
	fs.StringVar(&f.Name, "name", f.Name, "object name")
	fs.StringVar(&f.Noise, "noise", f.Noise, "noise engine: "+strings.Join(curve.StreamNames(), ", "))
	fs.BoolVar(&f.DeletePrevious, "replace", f.DeletePrevious, "replace the previous object instead of adding another")
	fs.Float64Var(&f.Radius, "radius", f.Radius, "base radius")
	fs.IntVar(&f.Winding, "winding", f.Winding, "number of loops")
	fs.Float64Var(&f.Irregularity, "irregularity", f.Irregularity, "radial noise as a fraction of the radius, 0..1")
	fs.Float64Var(&f.VerticalIrregularity, "vertical", f.VerticalIrregularity, "vertical noise as a fraction of the radius, 0..1")
	fs.IntVar(&f.Points, "points", f.Points, "number of points before closing")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "random seed")
	fs.BoolVar(&f.FlattenEnds, "flatten-ends", f.FlattenEnds, "pin the end points to y = 0")
	return o
}

// parse reads flags; values from -config are overridden by flags set explicitly
func (o *options) parse(args []string) error {
	if err := o.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if o.fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, o.fs.Args())
	}
	if o.configPath == "" {
		return nil
	}

	o.flagged = o.file
	loaded, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.file = o.merge(loaded)
	return nil
}

// merge applies the explicitly set flags over a loaded parameter file
func (o *options) merge(f config.File) config.File {
	o.fs.Visit(func(fl *flag.Flag) {
		overlay(&f, o.flagged, fl.Name)
	})
	return f
}

func overlay(dst *config.File, src config.File, flagName string) {
	switch flagName {
	case "name":
		dst.Name = src.Name
	case "noise":
		dst.Noise = src.Noise
	case "replace":
		dst.DeletePrevious = src.DeletePrevious
	case "radius":
		dst.Radius = src.Radius
	case "winding":
		dst.Winding = src.Winding
	case "irregularity":
		dst.Irregularity = src.Irregularity
	case "vertical":
		dst.VerticalIrregularity = src.VerticalIrregularity
	case "points":
		dst.Points = src.Points
	case "seed":
		dst.Seed = src.Seed
	case "flatten-ends":
		dst.FlattenEnds = src.FlattenEnds
	}
}

func (o *options) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, fmt.Errorf("%w: -log-level: %v", errUsage, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// controls builds the controls with their store, configured from o.file
func (o *options) controls(log *slog.Logger) (*controls.Controls, error) {
	enc, err := export.ByName(o.format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	store, err := scene.OpenDir(o.out, enc)
	if err != nil {
		return nil, err
	}
	c := controls.New(store)
	c.Log = log
	if err := o.file.Configure(c); err != nil {
		return nil, err
	}
	return c, nil
}

func generate(args []string, stderr io.Writer) error {
	o := newOptions("generate", stderr)
	if err := o.parse(args); err != nil {
		return err
	}
	log, err := o.logger(stderr)
	if err != nil {
		return err
	}
	c, err := o.controls(log)
	if err != nil {
		return err
	}
	_, err = c.Create()
	return err
}

func watch(args []string, stderr io.Writer) error {
	o := newOptions("watch", stderr)
	if err := o.parse(args); err != nil {
		return err
	}
	if o.configPath == "" {
		return fmt.Errorf("%w: watch needs -config", errUsage)
	}
	log, err := o.logger(stderr)
	if err != nil {
		return err
	}
	c, err := o.controls(log)
	if err != nil {
		return err
	}
	c.LiveUpdate = true
	if _, err := c.Create(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("watching", "config", o.configPath, "out", o.out)
	return config.Watch(ctx, o.configPath, func(f config.File, err error) {
		if err != nil {
			log.Error("reload failed", "err", err)
			return
		}
		if err := o.merge(f).Configure(c); err != nil {
			log.Error("regenerate failed", "err", err)
		}
	})
}

package main

import (
	"fmt"
	"io"
	"os"

	"git.sr.ht/~spc/go-log"
	"github.com/urfave/cli/v2"

	"github.com/aesir-vanir/vidar/internal/conf"
	"github.com/aesir-vanir/vidar/internal/export"
	"github.com/aesir-vanir/vidar/internal/l10n"
)

const (
	cliConfig      = "config"
	cliKind        = "kind"
	cliApp         = "app"
	cliDir         = "dir"
	cliCommon      = "common"
	cliComments    = "comments"
	cliCommentChar = "comment-char"
	cliOS          = "os"
	cliLogLevel    = "log-level"
	cliFormat      = "format"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// newApp builds the command line application writing to stdout and stderr.
func newApp(stdout, stderr io.Writer) *cli.App {
	st := &state{}

	return &cli.App{
		Name:      "vidar",
		Usage:     l10n.T("load per-environment property files"),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:  cliConfig,
				Usage: l10n.T("read settings from `FILE`"),
			},
			&cli.StringFlag{
				Name:    cliKind,
				Aliases: []string{"k"},
				Usage:   l10n.T("environment `KIND` (common, dev, test, int, stage, prod)"),
			},
			&cli.StringFlag{
				Name:    cliApp,
				Aliases: []string{"a"},
				Usage:   l10n.T("application `NAME` under the user configuration directory"),
			},
			&cli.PathFlag{
				Name:    cliDir,
				Aliases: []string{"d"},
				Usage:   l10n.T("read property files from `DIR`"),
			},
			&cli.BoolFlag{
				Name:  cliCommon,
				Usage: l10n.T("load common.env before the kind file"),
			},
			&cli.BoolFlag{
				Name:  cliComments,
				Usage: l10n.T("skip comment lines"),
			},
			&cli.StringFlag{
				Name:  cliCommentChar,
				Usage: l10n.T("comment leader `CHAR`"),
			},
			&cli.BoolFlag{
				Name:  cliOS,
				Usage: l10n.T("seed properties from the process environment"),
			},
			&cli.StringFlag{
				Name:  cliLogLevel,
				Usage: l10n.T("log `LEVEL` (error, warn, info, debug, trace)"),
			},
		},
		Before: st.before,
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  l10n.T("print every loaded property"),
				Action: st.show,
			},
			{
				Name:      "get",
				Usage:     l10n.T("print the value of one property"),
				ArgsUsage: "KEY",
				Action:    st.get,
			},
			{
				Name:   "kinds",
				Usage:  l10n.T("list environment kinds and their files"),
				Action: kinds,
			},
			{
				Name:   "path",
				Usage:  l10n.T("print the property directory and the files that would be read"),
				Action: st.path,
			},
			{
				Name:   "check",
				Usage:  l10n.T("validate every property file in the directory"),
				Action: st.check,
			},
			{
				Name:  "export",
				Usage: l10n.T("render the loaded properties for other tools"),
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    cliFormat,
						Aliases: []string{"f"},
						Value:   string(export.Dotenv),
						Usage:   l10n.T("output `FORMAT` (dotenv, systemd, toml, json, shell)"),
					},
				},
				Action: st.export,
			},
		},
	}
}

// state carries the resolved settings from Before to the command actions.
type state struct {
	settings conf.Settings
}

func (st *state) before(c *cli.Context) error {
	log.SetFlags(0)

	settings, err := settingsSource(c).Read()
	if err != nil {
		return cli.Exit(l10n.T("cannot read settings: %v", err), 1)
	}
	if err := settings.Update(flagOverlay(c)); err != nil {
		return cli.Exit(l10n.T("invalid option: %v", err), 1)
	}

	log.SetLevel(settings.LogLevel)
	log.Debugf("settings: %+v", settings)

	st.settings = settings
	return nil
}

// settingsSource returns the explicit --config file, or the default
// location when it can be resolved.
func settingsSource(c *cli.Context) *conf.ConfigSource {
	if path := c.Path(cliConfig); path != "" {
		return &conf.ConfigSource{Path: path, DropInDir: path + ".d"}
	}

	source, err := conf.DefaultSource()
	if err != nil {
		log.Debugf("no default settings location: %v", err)
		return &conf.ConfigSource{}
	}
	return source
}

// flagOverlay returns the settings layer made of explicitly set flags.
func flagOverlay(c *cli.Context) conf.Overlay {
	var overlay conf.Overlay

	str := func(name string) *string {
		if !c.IsSet(name) {
			return nil
		}
		v := c.String(name)
		return &v
	}
	boolean := func(name string) *bool {
		if !c.IsSet(name) {
			return nil
		}
		v := c.Bool(name)
		return &v
	}

	overlay.Kind = str(cliKind)
	overlay.AppName = str(cliApp)
	overlay.Dir = str(cliDir)
	overlay.CommentChar = str(cliCommentChar)
	overlay.LogLevel = str(cliLogLevel)
	overlay.Common = boolean(cliCommon)
	overlay.Comments = boolean(cliComments)
	overlay.OS = boolean(cliOS)

	return overlay
}

func printf(c *cli.Context, format string, args ...any) {
	fmt.Fprintf(c.App.Writer, format, args...)
}

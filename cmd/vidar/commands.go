package main

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"git.sr.ht/~spc/go-log"
	"github.com/briandowns/spinner"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/aesir-vanir/vidar"
	"github.com/aesir-vanir/vidar/internal/export"
	"github.com/aesir-vanir/vidar/internal/l10n"
)

func (st *state) load() (*vidar.Environment, error) {
	cfg := st.settings.LoaderConfig()
	env, err := vidar.Load(cfg)
	if err != nil {
		return nil, cli.Exit(describe(err), 1)
	}
	log.Debugf("loaded %d properties for %v", env.Len(), env.Current())
	return env, nil
}

func (st *state) show(c *cli.Context) error {
	env, err := st.load()
	if err != nil {
		return err
	}
	for _, k := range env.Keys() {
		v, _ := env.Get(k)
		printf(c, "%s=%s\n", k, v)
	}
	return nil
}

func (st *state) get(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("get takes exactly one KEY"), 1)
	}
	key := c.Args().First()

	env, err := st.load()
	if err != nil {
		return err
	}
	v, ok := env.Get(key)
	if !ok {
		return cli.Exit(l10n.T("property %q not set", key), 1)
	}
	printf(c, "%s\n", v)
	return nil
}

func kinds(c *cli.Context) error {
	for _, k := range vidar.Kinds() {
		printf(c, "%-8s %s\n", k, k.FileName())
	}
	return nil
}

func (st *state) path(c *cli.Context) error {
	cfg := st.settings.LoaderConfig()
	base, err := cfg.Locator.Locate()
	if err != nil {
		return cli.Exit(describe(&vidar.ConfigPathError{Err: err}), 1)
	}

	printf(c, "%s\n", base)

	files := []vidar.Kind{cfg.Kind}
	if cfg.Common {
		files = []vidar.Kind{vidar.Common, cfg.Kind}
	}
	for _, k := range files {
		path := vidar.Path(base, k)
		status := l10n.T("present")
		if _, err := os.Stat(path); err != nil {
			status = l10n.T("missing")
		}
		printf(c, "  %s (%s)\n", path, status)
	}
	return nil
}

func (st *state) check(c *cli.Context) error {
	cfg := st.settings.LoaderConfig()
	base, err := cfg.Locator.Locate()
	if err != nil {
		return cli.Exit(describe(&vidar.ConfigPathError{Err: err}), 1)
	}

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(c.App.ErrWriter))
	s.Suffix = " " + l10n.T("checking property files in %s", base)
	if f, ok := c.App.ErrWriter.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.Start()
	}

	type result struct {
		kind  vidar.Kind
		props int
		err   error
	}
	var results []result
	for _, k := range vidar.Kinds() {
		props, err := vidar.ParseFile(vidar.Path(base, k), cfg.ParseOptions())
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		results = append(results, result{kind: k, props: len(props), err: err})
	}
	s.Stop()

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			printf(c, "%-10s %s\n", r.kind.FileName(), describe(r.err))
			continue
		}
		printf(c, "%-10s %s\n", r.kind.FileName(), l10n.TN("ok, %d property", "ok, %d properties", uint32(r.props), r.props))
	}

	if len(results) == 0 {
		return cli.Exit(l10n.T("no property files found in %s", base), 1)
	}
	if failed > 0 {
		return cli.Exit(l10n.TN("%d file is invalid", "%d files are invalid", uint32(failed), failed), 1)
	}
	return nil
}

func (st *state) export(c *cli.Context) error {
	format, err := export.ParseFormat(c.String(cliFormat))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	env, err := st.load()
	if err != nil {
		return err
	}
	if err := export.Write(c.App.Writer, format, env); err != nil {
		return cli.Exit(l10n.T("cannot export properties: %v", err), 1)
	}
	return nil
}

// describe turns a load error into a user-facing message.
func describe(err error) string {
	var (
		propErr *vidar.PropertyError
		ioErr   *vidar.IOError
	)
	switch {
	case errors.As(err, &propErr):
		if propErr.Path == "" {
			return l10n.T("line %d is not a key=value pair: %q", propErr.Line, propErr.Text)
		}
		return l10n.T("%s: line %d is not a key=value pair: %q", propErr.Path, propErr.Line, propErr.Text)
	case errors.As(err, &ioErr):
		if errors.Is(err, fs.ErrNotExist) {
			return l10n.T("%s: no such file", ioErr.Path)
		}
		return l10n.T("%s: cannot read file: %v", ioErr.Path, ioErr.Err)
	default:
		return err.Error()
	}
}

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"
)

func watchCmd(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	check := func() {
		prog, n, err := parseFile(c, cfg, path)
		switch {
		case err != nil:
			fmt.Fprintln(c.App.ErrWriter, err)
		case n > 0:
			fmt.Fprintln(c.App.ErrWriter, color.RedString("%s: %d diagnostic(s)", path, n))
		default:
			fmt.Fprintln(c.App.Writer, color.GreenString("%s: ok, %d declaration(s)", path, len(prog.Decls())))
		}
	}

	check()

	if err := watchFile(c.Context, path, check); err != nil {
		return cli.Exit(color.RedString("watching %s failed: %v", path, err), 1)
	}
	return nil
}

// watchFile calls changed whenever path is written or recreated, until ctx
// is done. The directory is watched rather than the file so that editors
// replacing the file are noticed.
func watchFile(ctx context.Context, path string, changed func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				changed()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

func cmdWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	jobs := jobsFlag(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := watchFile(ctx, fs.Arg(0), *jobs, os.Stdout); err != nil {
		log.Printf("watch: %v", err)
		return 1
	}
	return 0
}

// watchFile runs the batch once, then again every time path is written or
// recreated, until ctx is done. The parent directory is watched so editors
// that save through a rename are still seen.
func watchFile(ctx context.Context, path string, jobs int, w io.Writer) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	// rerun reports false once ctx is done.
	rerun := func() bool {
		fmt.Fprintf(w, "== %s\n", path)
		if _, err := runFile(ctx, abs, jobs, w); err != nil {
			if ctx.Err() != nil {
				return false
			}
			log.Printf("watch: %v", err)
		}
		return true
	}
	if !rerun() {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !rerun() {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}

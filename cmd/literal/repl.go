package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	goliteral "github.com/njchilds90/goliteral"
)

const (
	historyFile = ".literal_history"
	promptMain  = "literal> "
	banner      = "goliteral: type an expression, :eval <expr>, :tokens <expr>, :latex <expr> or :quit"
)

var replCommands = []string{":eval", ":tokens", ":latex", ":quit"}

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if line == ":quit" {
			return 0
		}
		out, err := replLine(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(green(out))
	}
}

// replLine runs one prompt line. Lines starting with ':' select a command;
// anything else is reduced.
func replLine(line string) (string, error) {
	if !strings.HasPrefix(line, ":") {
		return reduceLine(line)
	}
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	switch strings.ToLower(cmd) {
	case ":eval":
		return evalLine(rest)
	case ":tokens":
		return tokenizeLine(rest)
	case ":latex":
		return latexLine(rest)
	}
	if match := goliteral.ClosestMatch(cmd, replCommands); match != "" {
		return "", fmt.Errorf("unknown command %s, did you mean %s? Type :quit to exit", cmd, match)
	}
	return "", fmt.Errorf("unknown command %s. Type :quit to exit", cmd)
}

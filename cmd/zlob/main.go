// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

// Command zlob finds filesystem paths matching a glob pattern.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/woozymasta/zlob"
)

// exit codes follow the grep convention.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

type options struct {
	base       string
	brace      bool
	extglob    bool
	recursive  bool
	tilde      bool
	gitignore  bool
	mark       bool
	onlyDir    bool
	noSort     bool
	hidden     bool
	noCheck    bool
	abortOnErr bool
}

func main() {
	opts := &options{}

	root := &cobra.Command{
		Use:   "zlob PATTERN",
		Short: "Find filesystem paths matching a glob pattern",
		Long: `zlob finds filesystem paths matching a glob pattern.

Patterns support "*", "?" and "[...]" by default; "{a,b}" alternation,
"**" recursion, extended "?() *() +() @() !()" groups, "~" expansion and
.gitignore filtering are enabled with flags.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0])
		},
	}

	addFlags(root.Flags(), opts)

	if err := root.Execute(); err != nil {
		if errors.Is(err, errNoMatch) {
			os.Exit(exitNoMatch)
		}

		fmt.Fprintln(os.Stderr, "zlob:", err)
		os.Exit(exitError)
	}
}

// errNoMatch signals a clean "nothing matched" outcome to main.
var errNoMatch = errors.New("no matches")

func addFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.base, "base", "", "glob relative to this absolute directory")
	fs.BoolVar(&opts.brace, "brace", false, "enable {a,b} alternation")
	fs.BoolVar(&opts.extglob, "extglob", false, "enable ?() *() +() @() !() groups")
	fs.BoolVarP(&opts.recursive, "recursive", "r", false, "enable recursive ** matching")
	fs.BoolVar(&opts.tilde, "tilde", false, "expand ~ and ~user")
	fs.BoolVar(&opts.gitignore, "gitignore", false, "filter matches via .gitignore rules")
	fs.BoolVar(&opts.mark, "mark", false, "append / to directory matches")
	fs.BoolVar(&opts.onlyDir, "only-dir", false, "match directories only")
	fs.BoolVar(&opts.noSort, "no-sort", false, "skip sorting of matches")
	fs.BoolVar(&opts.hidden, "hidden", false, "let wildcards match hidden entries")
	fs.BoolVar(&opts.noCheck, "nocheck", false, "print the pattern itself when nothing matches")
	fs.BoolVar(&opts.abortOnErr, "err", false, "abort on unreadable directories")
}

func run(opts *options, pattern string) error {
	flags := buildFlags(opts)

	// Directories are detected through mark decoration and stripped again
	// when the user did not ask for it.
	stripMark := !opts.mark
	flags |= zlob.FlagMark

	var (
		res *zlob.Result
		err error
	)
	if opts.base != "" {
		res, err = zlob.GlobAt(opts.base, pattern, flags)
	} else {
		res, err = zlob.Glob(pattern, flags)
	}
	if err != nil {
		return err
	}

	if res.Len() == 0 {
		return errNoMatch
	}

	dir := color.New(color.FgBlue, color.Bold)
	for path := range res.All() {
		isDir := strings.HasSuffix(path, "/")
		if isDir && stripMark {
			path = strings.TrimSuffix(path, "/")
		}

		if isDir {
			dir.Println(path)
			continue
		}

		fmt.Println(path)
	}

	return nil
}

func buildFlags(opts *options) zlob.Flags {
	var flags zlob.Flags

	set := func(on bool, f zlob.Flags) {
		if on {
			flags |= f
		}
	}

	set(opts.brace, zlob.FlagBrace)
	set(opts.extglob, zlob.FlagExtglob)
	set(opts.recursive, zlob.FlagDoublestarRecursive)
	set(opts.tilde, zlob.FlagTilde|zlob.FlagTildeCheck)
	set(opts.gitignore, zlob.FlagGitignore)
	set(opts.onlyDir, zlob.FlagOnlyDir)
	set(opts.noSort, zlob.FlagNoSort)
	set(opts.hidden, zlob.FlagPeriod)
	set(opts.noCheck, zlob.FlagNoCheck)
	set(opts.abortOnErr, zlob.FlagErr)

	return flags
}

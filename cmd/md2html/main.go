package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verboseRequested(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	code := runMain(ctx, os.Args, env)
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch {
	case cmd == "convert":
	case looksLikeInput(cmd):
		rest = args[1:]
	case cmd == "version" || cmd == "--version":
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	case cmd == "help" || cmd == "-h" || cmd == "--help":
		return runHelp(rest, env)
	case cmd == "config":
		return report(runConfigCmd(rest, env), env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	flags, positional, err := parseConvertFlags(rest, env.Stderr)
	if err != nil {
		return report(err, env)
	}
	return report(runConvert(ctx, positional, flags, env), env)
}

// report prints err, if any, and maps it to an exit code. -h is not an
// error.
func report(err error, env *Environment) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintln(env.Stderr, err)
	return exitCodeFor(err)
}

// looksLikeInput reports whether a first argument names a markdown file or
// a directory, so "md2html doc.md" works without the convert command.
func looksLikeInput(arg string) bool {
	if fileutil.IsMarkdownFile(arg) {
		return true
	}
	info, err := os.Stat(arg)
	return err == nil && info.IsDir()
}

// verboseRequested scans raw arguments for -v, before flags are parsed.
func verboseRequested(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}

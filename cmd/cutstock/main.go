// cutstock — 1D cutting-stock optimizer.
//
// Build:
//
//	go build -o cutstock ./cmd/cutstock
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/piwi3910/cutstock/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	setupLogger()

	var err error
	switch os.Args[1] {
	case "optimize":
		err = runOptimize(os.Args[2:])
	case "compare":
		err = runCompare(os.Args[2:])
	case "profiles":
		err = runProfiles(os.Args[2:])
	case "templates":
		err = runTemplates(os.Args[2:])
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		slog.Error("command failed", "command", os.Args[1], "err", err)
		if errors.Is(err, model.ErrInputInvalid) || errors.Is(err, model.ErrUnknownAlgorithm) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func setupLogger() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `cutstock — 1D cutting-stock optimizer

Usage:
  cutstock optimize  -parts <file> -stocks <file> [-algorithm ffd|hybrid|smart_split|ortools_fast|ortools_optimal] [-kerf N] [-remnants] [-out <file>]
  cutstock compare   -parts <file> -stocks <file> [-kerf N]
  cutstock profiles  list|add-stock|add-kerf ...
  cutstock templates list|save|run ...

Run "cutstock <command> -h" for flags on a specific command.`)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return fs
}

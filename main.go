// Package main implements a ROM image splitter for programming EPROMs
// that are arranged in parallel and/or in banks
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/romjak/internal/cli"
	"github.com/retroenv/romjak/internal/config"
	"github.com/retroenv/romjak/internal/pipeline"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts.Quiet)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(opts.Quiet)

	if err := pipeline.New(logger).Execute(ctx, opts, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Splitting failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(quiet bool) {
	if quiet {
		return
	}
	fmt.Println("[ romjak - ROM image splitter ]")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/cloudcopper/dd"
	domainErrors "github.com/cloudcopper/dd/domain/errors"
	"github.com/cloudcopper/dd/infra"
	"github.com/cloudcopper/dd/infra/config"
	"github.com/cloudcopper/dd/lib"
	"github.com/spf13/afero"
)

const (
	retNoErrorCode      = 0
	retGenericErrorCode = 1
)

func main() {
	opts := dd.Options{
		// Env file name from env DD_ENV_FILE (none by default)
		EnvFile: lib.GetEnvDefault("DD_ENV_FILE", ""),
		Format:  config.FormatText,
		Timeout: infra.DefaultConnectTimeout,
		FS:      afero.NewOsFs(),
		Stdout:  os.Stdout,
		Lookup:  os.LookupEnv,
		Setenv:  os.Setenv,
	}
	verbose := false

	// Handle command line arguments
	flag.StringVar(&opts.EnvFile, "env-file", opts.EnvFile, "dotenv file loaded before resolving config (optional)")
	flag.StringVar(&opts.Format, "format", opts.Format, "output format: "+strings.Join(config.Formats, ", "))
	flag.StringVar(&opts.Output, "o", opts.Output, "output file name (default stdout)")
	flag.BoolVar(&opts.Ping, "ping", opts.Ping, "connect to database and ping it")
	flag.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "database ping timeout")
	flag.BoolVar(&verbose, "v", verbose, "verbose logging")
	flag.Parse()

	if !slices.Contains(config.Formats, opts.Format) {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", opts.Format)
		flag.Usage()
		os.Exit(domainErrors.RetBadCommandLineError)
	}
	if verbose {
		logLevel.Set(slog.LevelDebug)
	}

	//
	// Create logger
	//
	log := slog.Default()
	log.Debug("starting")

	err := dd.App(log, opts)

	code := retNoErrorCode
	if err != nil {
		code = retGenericErrorCode
		var i lib.ErrorCode
		if errors.As(err, &i) {
			code = i.Code()
		}
		log.Error("exit", slog.Int("code", code), slog.Any("err", err))
	} else {
		log.Debug("exit")
	}

	os.Exit(code)
}

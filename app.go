package dd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cloudcopper/dd/domain/errors"
	"github.com/cloudcopper/dd/infra"
	"github.com/cloudcopper/dd/infra/config"
	"github.com/cloudcopper/dd/lib"
	"github.com/cloudcopper/dd/ports"
	"github.com/spf13/afero"
)

// Options of single App run.
// The zero value renders config of empty environment as text to os.Stdout.
type Options struct {
	EnvFile string        // dotenv file loaded before resolution (optional)
	Format  string        // one of config.Formats
	Output  string        // output file name, Stdout if empty
	Ping    bool          // connect to database and ping it
	Timeout time.Duration // ping timeout

	FS     ports.FS
	Stdout io.Writer
	Lookup lib.LookupEnvFunc
	Setenv infra.SetEnvFunc
}

// App resolves database config once and hands it to consumers:
// the output writer and, optionally, the ping check.
// The returned error carries process return code.
func App(log ports.Logger, opts Options) error {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	// Load env file
	if opts.EnvFile != "" {
		if err := infra.LoadEnvFile(log, opts.FS, opts.EnvFile, opts.Lookup, opts.Setenv); err != nil {
			log.Error("unable to load env file", slog.Any("err", err), slog.String("fileName", opts.EnvFile))
			return lib.NewErrorCode(err, errors.RetLoadEnvFileError)
		}
	}

	// Resolve config
	cfg := config.LoadDBConfig(log, opts.Lookup)

	// Output effective config
	data, err := cfg.Render(opts.Format)
	if err != nil {
		log.Error("unable to render config", slog.Any("err", err), slog.String("format", opts.Format))
		return lib.NewErrorCode(err, errors.RetRenderConfigError)
	}
	if opts.Output != "" {
		err = infra.WriteFile(opts.FS, opts.Output, data)
	} else {
		_, err = opts.Stdout.Write(data)
	}
	if err != nil {
		log.Error("unable to write config", slog.Any("err", err), slog.String("output", opts.Output))
		return lib.NewErrorCode(err, errors.RetWriteConfigError)
	}

	if !opts.Ping {
		return nil
	}

	// Check database is reachable, the ping is the only database consumer
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = infra.DefaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_, closeDb, err := infra.NewMongoDatabase(ctx, log, cfg)
	if err != nil {
		log.Error("unable to connect database", slog.Any("err", err), slog.String("url", cfg.String()))
		return lib.NewErrorCode(err, errors.RetConnectDatabaseError)
	}
	closeDb()

	return nil
}

package infra

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/cloudcopper/dd/lib"
	"github.com/cloudcopper/dd/ports"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

const ErrNoSuchEnvFile = lib.Error("no such env file")

// SetEnvFunc has the signature of os.Setenv
type SetEnvFunc func(key, value string) error

// LoadEnvFile reads dotenv file name and sets variables which are not yet set.
// Already set variables (even empty) are left untouched,
// so real environment always wins over the file.
// The nil lookup means nothing is set, the nil setenv is os.Setenv.
func LoadEnvFile(log ports.Logger, fs ports.FS, name string, lookup lib.LookupEnvFunc, setenv SetEnvFunc) error {
	if lookup == nil {
		lookup = lib.MapEnv(nil)
	}
	if setenv == nil {
		setenv = os.Setenv
	}
	log = log.With(slog.String("entity", "EnvFile"), slog.String("fileName", name))
	if lib.NoSuchFile(fs, name) {
		return fmt.Errorf("%w: %v", ErrNoSuchEnvFile, name)
	}

	f, err := fs.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	env, err := godotenv.Parse(f)
	if err != nil {
		return fmt.Errorf("parse %v: %w", name, err)
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := env[k]
		if _, ok := lookup(k); ok {
			log.Debug("skip - already set", slog.String("key", k))
			continue
		}
		if err := setenv(k, v); err != nil {
			return err
		}
		if lib.IsKeyValueBlacklisted(k) {
			v = lib.Redacted
		} else {
			v = lib.RedactURI(v)
		}
		log.Debug("set", slog.String("key", k), slog.String("value", v))
	}

	return nil
}

// WriteFile writes data to file name, replacing existing one
func WriteFile(fs ports.FS, name string, data []byte) error {
	return afero.WriteFile(fs, name, data, 0o640)
}

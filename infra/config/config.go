package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/cloudcopper/dd/domain/errors"
	"github.com/cloudcopper/dd/lib"
	"github.com/cloudcopper/dd/ports"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	EnvMongoDBURI     = "MONGODB_URI"
	DefaultMongoDBURI = "mongodb://localhost:27017/dd_db"
	// DefaultDatabase is used when connection string has no database in path
	DefaultDatabase = "dd_db"
)

type Source string

const (
	SourceEnv     Source = "env"
	SourceDefault Source = "default"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatEnv  = "env"
)

var Formats = []string{FormatText, FormatYAML, FormatEnv}

type DBConfig struct {
	URL    string `validate:"required,mongouri"`
	Source Source
}

// ResolveMongoDBURI returns value of MONGODB_URI from lookup,
// or DefaultMongoDBURI if it is not set or empty.
// The value is returned as is, without any validation.
func ResolveMongoDBURI(lookup lib.LookupEnvFunc) string {
	return lib.GetEnvDefaultFunc(lookup, EnvMongoDBURI, DefaultMongoDBURI)
}

// LoadDBConfig resolves database config once at startup.
// The malformed url only produces warning, it is up to
// database client to fail on connect.
func LoadDBConfig(log ports.Logger, lookup lib.LookupEnvFunc) *DBConfig {
	cfg := &DBConfig{
		URL:    ResolveMongoDBURI(lookup),
		Source: SourceDefault,
	}
	if v, ok := lookupNonEmpty(lookup, EnvMongoDBURI); ok && v == cfg.URL {
		cfg.Source = SourceEnv
	}

	log = log.With(slog.String("source", string(cfg.Source)))
	if err := cfg.Check(lib.Validate); err != nil {
		log.Warn("suspicious database url", slog.String("url", cfg.String()), slog.Any("err", err))
	}
	log.Info("database config", slog.String("url", cfg.String()), slog.String("database", cfg.Database()))

	return cfg
}

func lookupNonEmpty(lookup lib.LookupEnvFunc, key string) (string, bool) {
	if lookup == nil {
		return "", false
	}
	v, ok := lookup(key)
	return v, ok && v != ""
}

// Check runs advisory validation of the config
func (c *DBConfig) Check(v *validator.Validate) error {
	return v.Struct(c)
}

// Database returns database name from url path or DefaultDatabase
func (c *DBConfig) Database() string {
	u, err := url.Parse(c.URL)
	if err != nil {
		return DefaultDatabase
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return DefaultDatabase
	}
	return name
}

// String returns url with password redacted
func (c *DBConfig) String() string {
	return lib.RedactURI(c.URL)
}

// Render returns effective config in given format.
// Unlike String the result contains url unredacted,
// as it is meant to be consumed by other programs.
func (c *DBConfig) Render(format string) ([]byte, error) {
	switch format {
	case FormatText, "":
		s := fmt.Sprintf("# source: %v\n%v=%v\n", c.Source, EnvMongoDBURI, c.URL)
		return []byte(s), nil
	case FormatYAML:
		return yaml.Marshal(struct {
			URL      string `yaml:"mongodb_uri"`
			Database string `yaml:"database"`
			Source   Source `yaml:"source"`
		}{c.URL, c.Database(), c.Source})
	case FormatEnv:
		s := fmt.Sprintf("export %v=%v\n", EnvMongoDBURI, quoteEnv(c.URL))
		return []byte(s), nil
	}

	return nil, fmt.Errorf("%w: %v", errors.ErrUnknownFormat, format)
}

// envEscaper escapes chars special inside double quotes,
// for both shell and dotenv parser
var envEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "`", "\\`")

// quoteEnv single quotes s, or double quotes it when s has single quote
func quoteEnv(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	return `"` + envEscaper.Replace(s) + `"`
}

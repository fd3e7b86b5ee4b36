package config

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/phrazzld/rfq-api/internal/redact"
)

// Settings holds the application configuration.
// It is immutable once constructed and safe to share between goroutines.
type Settings struct {
	databaseURL    string
	corsOriginsRaw string
	logLevel       string

	corsOrigins func() ([]string, error)
}

// FromValues builds Settings from an explicit name-to-value mapping instead
// of the process environment. Lookup is an exact match on variable names.
func FromValues(values map[string]string) (*Settings, error) {
	resolved, err := resolve(values)
	if err != nil {
		return nil, err
	}

	raw := resolved[EnvCORSOrigins]
	return &Settings{
		databaseURL:    resolved[EnvDatabaseURL],
		corsOriginsRaw: raw,
		logLevel:       resolved[EnvLogLevel],
		corsOrigins: sync.OnceValues(func() ([]string, error) {
			return parseOrigins(raw)
		}),
	}, nil
}

// DatabaseURL returns the database connection string exactly as supplied.
func (s *Settings) DatabaseURL() string {
	return s.databaseURL
}

// CORSOriginsRaw returns the unparsed BACKEND_CORS_ORIGINS text.
func (s *Settings) CORSOriginsRaw() string {
	return s.corsOriginsRaw
}

// CORSOrigins returns the allowed cross-origin sources in the order they
// appear in BACKEND_CORS_ORIGINS. The text is parsed on first use; a
// malformed value yields a *MalformedError on every call.
//
// The returned slice is a copy and may be modified by the caller.
func (s *Settings) CORSOrigins() ([]string, error) {
	origins, err := s.corsOrigins()
	if err != nil {
		return nil, err
	}
	return slices.Clone(origins), nil
}

// LogLevel returns the configured log level name.
func (s *Settings) LogLevel() string {
	return s.logLevel
}

// LogValue implements slog.LogValuer. Credentials in the database URL are
// masked.
func (s *Settings) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("database_url", redact.URL(s.databaseURL)),
		slog.String("log_level", s.logLevel),
	}
	if origins, err := s.CORSOrigins(); err != nil {
		attrs = append(attrs, slog.String("cors_origins_error", err.Error()))
	} else {
		attrs = append(attrs, slog.Any("cors_origins", origins))
	}
	return slog.GroupValue(attrs...)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// DefaultEnvFile is the environment file Load reads when none is given.
const DefaultEnvFile = ".env"

// Options controls where Load looks for values.
type Options struct {
	// EnvFile is a dotenv file whose values act as defaults for the live
	// environment. A file that does not exist is skipped. Empty disables it.
	EnvFile string
}

// DefaultOptions returns Options that read DefaultEnvFile from the working
// directory.
func DefaultOptions() Options {
	return Options{EnvFile: DefaultEnvFile}
}

// Load configuration from environment variables and optionally a dotenv file.
// Environment variables take precedence over values from the file; schema
// defaults apply only when neither source has a value.
// Returns populated Settings or an error describing every field that failed.
func Load(opts Options) (*Settings, error) {
	v := viper.New()

	for _, f := range schema {
		if err := v.BindEnv(viperKey(f.Name), f.Name); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", f.Name, err)
		}
	}

	if opts.EnvFile != "" {
		if err := readEnvFile(v, opts.EnvFile); err != nil {
			return nil, err
		}
	}

	values := make(map[string]string, len(schema))
	for _, f := range schema {
		values[f.Name] = v.GetString(viperKey(f.Name))
	}

	return FromValues(values)
}

func readEnvFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w %s: %v", ErrEnvFile, path, err)
	}
	return nil
}

// viperKey maps a variable name to viper's case-insensitive key space.
func viperKey(name string) string {
	return strings.ToLower(name)
}

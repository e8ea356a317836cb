package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] for the YAML config file
// written by the init command.
//
// The file is a flat mapping of flag names to values. Flag names with
// hyphens (e.g., "log-level") may use underscores in the config file
// (e.g., "log_level"); both spellings resolve. Command-line flags override
// config file values.
//
// Example config file:
//
//	log-level: debug
//	log-format: json
//	zone: "+02:00"
//
// A missing or unparseable file resolves no values rather than failing,
// so a broken config never locks the user out of the CLI.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return config{}, nil
	}

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return config{}, nil
	}

	cfg := make(config, len(values))
	for key, value := range values {
		cfg[key] = flagString(value)
	}

	return cfg, nil
}

// config implements [kong.Resolver] for flat YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	// Underscore spelling of a hyphenated flag name.
	underscore := strings.ReplaceAll(flag.Name, "-", "_")
	if value, ok := r[underscore]; ok {
		return value, nil
	}

	// Not found: let kong apply defaults.
	return nil, nil
}

// flagString converts scalar YAML values to the string form kong expects
// when mapping resolver output onto flags.
func flagString(value any) any {
	switch v := value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return value
	}
}

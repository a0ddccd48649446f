package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "~/.cjkdoc/config.yaml"

// loadYAMLConfig is a kong.ConfigurationLoader for flat YAML files. Keys
// are flag names with dashes written as underscores, e.g. keep_font.
func loadYAMLConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		v, ok := values[strings.ReplaceAll(flag.Name, "-", "_")]
		if !ok || v == nil {
			return nil, nil
		}
		switch v.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("config key %q must be a scalar", flag.Name)
		}
		return fmt.Sprint(v), nil
	}
	return f, nil
}

func defaultDBPath() string {
	if path := os.Getenv("CJKDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cjkdoc.db"
	}
	dir := filepath.Join(home, ".cjkdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "history.db")
}

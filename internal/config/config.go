// Package config loads the optional yrpconv configuration file.
//
// The file is YAML. After parsing it is checked against an embedded CUE
// schema so that bad values fail with a positioned message instead of
// surfacing later as odd CLI behavior. Command-line flags override file
// values; see cli.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "YRPCONV_CONFIG"

//go:embed schema.cue
var schemaCUE string

// Config holds the settings shared by all commands.
type Config struct {
	// Database is the SQLite history path. Empty disables history.
	Database string `yaml:"database" json:"database"`
	// OutputSuffix is appended to the input path when no output is given.
	OutputSuffix string `yaml:"output_suffix" json:"output_suffix"`
	// Format is "text" or "json".
	Format  string `yaml:"format" json:"format"`
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		OutputSuffix: ".yrpb",
		Format:       "text",
	}
}

// ValidationError reports a schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid config %s: %s", e.Path, e.Message)
	}
	return "invalid config: " + e.Message
}

// Load reads the YAML file at path over the defaults and validates the
// result. If path is empty, YRPCONV_CONFIG is used; if that is empty too the
// defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			ve.Path = path
		}
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against the embedded CUE schema.
func Validate(cfg Config) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	v := def.Unify(ctx.Encode(cfg))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// formatCUEError keeps the first CUE error, which carries the field path.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	return &ValidationError{Message: errs[0].Error()}
}

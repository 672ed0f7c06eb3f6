package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andyballingall/curvecheck/internal/fs"
)

// ConfigFile is the name of the configuration file looked for in the working directory.
const ConfigFile = "curvecheck.yml"

// EnvConfigPath names the environment variable that points at a configuration file.
const EnvConfigPath = "CURVECHECK_CONFIG"

const DefaultConfigContent = `# curvecheck configuration

# Reject keys that a document's schema does not declare. When false, unknown
# keys are ignored and only declared keys are checked.
strict: false

# How results are written: "text" or "json".
output: text

# Keep validating the remaining documents after the first failure.
continueOnError: false

# Number of documents validated in parallel. Defaults to the number of CPUs.
# workers: 4

# File extensions searched for when a directory is given.
extensions:
  - .json
  - .yaml
  - .yml
`

// OutputFormat selects how a validation report is written.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// OutputFormats lists the supported output formats.
var OutputFormats = []OutputFormat{OutputText, OutputJSON}

type Config struct {
	Strict          bool         `yaml:"strict"`
	Output          OutputFormat `yaml:"output"`
	ContinueOnError bool         `yaml:"continueOnError"`
	Workers         int          `yaml:"workers"`
	Extensions      []string     `yaml:"extensions"`

	// Path is the file the configuration was read from, or "" for the defaults.
	Path string `yaml:"-"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Output:     OutputText,
		Workers:    runtime.GOMAXPROCS(0),
		Extensions: append([]string(nil), fs.DefaultExtensions...),
	}
}

// Locate finds the configuration file to use. An explicit path wins, then the
// CURVECHECK_CONFIG environment variable, then curvecheck.yml in dir. It returns ""
// when none applies. A path that was asked for explicitly must exist.
func Locate(explicit string, env fs.EnvProvider, dir string) (string, error) {
	for _, p := range []string{explicit, env.Get(EnvConfigPath)} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			return "", &MissingConfigError{Path: p}
		}
		return p, nil
	}

	p := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}
	return "", nil
}

// Load reads and validates the configuration at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingConfigError{Path: path}
		}
		return nil, err
	}

	if err = Parse(data, cfg); err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}
	cfg.Path = path

	if vErr := cfg.Validate(); vErr != nil {
		return nil, vErr
	}
	return cfg, nil
}

// Parse decodes YAML data over cfg. Unknown properties are rejected so that a
// misspelt setting is not silently ignored.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the settings and normalises extensions to lower case.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return &InvalidOutputFormatError{Value: string(c.Output)}
	}

	if c.Workers < 1 {
		return &InvalidWorkersError{Value: c.Workers}
	}

	if len(c.Extensions) == 0 {
		return &MissingPropertyError{Property: "extensions"}
	}
	for i, ext := range c.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") || strings.ContainsAny(ext[1:], `./\`) {
			return &InvalidExtensionError{Value: ext}
		}
		c.Extensions[i] = strings.ToLower(ext)
	}
	return nil
}

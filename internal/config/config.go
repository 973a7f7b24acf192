// Package config holds the settings of a taxares run and loads them from an
// optional HCL file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// Environment variables that override values from a config file.
const (
	EnvWorkers   = "TAXARES_WORKERS"
	EnvCacheSize = "TAXARES_CACHE_SIZE"
	EnvLogLevel  = "TAXARES_LOG_LEVEL"
	EnvLogFormat = "TAXARES_LOG_FORMAT"
)

// Config is everything needed to score a main tree against its replicates and
// write the results. An empty output path disables that output.
type Config struct {
	MainTree      string `hcl:"main_tree,optional"`
	ReplicateDir  string `hcl:"replicate_dir,optional"`
	ReplicateExt  string `hcl:"replicate_ext,optional"`
	ReplicateFOFN string `hcl:"replicate_fofn,optional"`

	OutputNewick        string `hcl:"output_newick,optional"`
	ReplaceBranchLength bool   `hcl:"replace_branch_length,optional"`
	ReplaceLabel        bool   `hcl:"replace_label,optional"`
	OutputJSON          string `hcl:"output_json,optional"`
	OutputJSONPretty    string `hcl:"output_json_pretty,optional"`
	OutputASCII         string `hcl:"output_ascii,optional"`
	OutputMermaid       string `hcl:"output_mermaid,optional"`

	// Workers bounds the goroutines used for loading and scoring. Zero means
	// one per CPU.
	Workers   int    `hcl:"workers,optional"`
	CacheSize int    `hcl:"cache_size,optional"`
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		MainTree:         "data/mainTree/tree.nwk",
		ReplicateDir:     "data/jackknife/tree",
		ReplicateExt:     "nwk",
		OutputNewick:     "out.nwk",
		OutputJSON:       "out.json",
		OutputJSONPretty: "out_pretty.json",
		CacheSize:        4096,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// LoadFile decodes the HCL file at path over c. Attributes missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	if diags := gohcl.DecodeBody(file.Body, nil, c); diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return nil
}

// LoadEnv applies the TAXARES_* variables over c. Values come from the given
// dotenv files (".env" if none are named; missing files are ignored) and then
// from the process environment, which wins.
func (c *Config) LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	env := make(map[string]string)
	for _, file := range files {
		vals, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		for k, v := range vals {
			env[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := env[key]
		return v, ok
	}

	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", EnvWorkers, v, err)
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvCacheSize); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", EnvCacheSize, v, err)
		}
		c.CacheSize = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.MainTree == "":
		return errors.New("no main tree given")
	case c.ReplicateFOFN == "" && c.ReplicateDir == "":
		return errors.New("no replicate tree directory or file of file names given")
	case c.Workers < 0:
		return fmt.Errorf("invalid workers %d: must be 0 or more", c.Workers)
	case c.CacheSize < 0:
		return fmt.Errorf("invalid cache size %d: must be 0 or more", c.CacheSize)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("invalid log-format: must be 'text' or 'json'")
	}
	return nil
}

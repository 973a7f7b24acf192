package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/TuftsBCB/taxares/internal/config"
)

// ExitError is an error that carries the process exit code to use.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, v ...interface{}) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, v...)}
}

// Parse processes command-line arguments. It returns the configuration to
// run with, or true if the program should exit cleanly because only help or
// informational text was requested. Errors are *ExitError.
func Parse(args []string, out io.Writer) (*config.Config, bool, error) {
	fs := flag.NewFlagSet("taxares", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, usageText)
		fs.PrintDefaults()
	}

	flags := config.Default()
	var configFile string
	var cite, license, version bool

	stringFlag := func(p *string, usage string, names ...string) {
		for _, name := range names {
			fs.StringVar(p, name, *p, usage)
		}
	}
	boolFlag := func(p *bool, usage string, names ...string) {
		for _, name := range names {
			fs.BoolVar(p, name, *p, usage)
		}
	}
	intFlag := func(p *int, usage string, names ...string) {
		for _, name := range names {
			fs.IntVar(p, name, *p, usage)
		}
	}

	stringFlag(&flags.MainTree, "The main tree, built from all taxa, in Newick format.",
		"m", "main-tree")
	stringFlag(&flags.ReplicateDir, "Directory with one sub-directory per omitted taxon, "+
		"each holding tree-<N>.<ext> files.", "t", "jackknife-tree")
	stringFlag(&flags.ReplicateExt, "File extension of the jackknifed trees in the "+
		"directory layout.", "e", "tree-ext")
	stringFlag(&flags.ReplicateFOFN, "Tab-separated file of '<taxon>\\t<tree path>' lines. "+
		"Overrides the directory layout.", "f", "jackknife-tree-fofn")
	stringFlag(&flags.OutputNewick, "Output Newick tree. Empty to skip.", "n", "output-nwk")
	boolFlag(&flags.ReplaceBranchLength, "Replace branch lengths with the resiliency "+
		"score. Comments are omitted from the Newick output.", "b", "replace-branch-len")
	boolFlag(&flags.ReplaceLabel, "Replace internal node labels with the resiliency "+
		"score. Comments are omitted from the Newick output.", "s", "replace-label")
	stringFlag(&flags.OutputJSON, "Output JSON tree. Empty to skip.", "j", "output-json")
	stringFlag(&flags.OutputJSONPretty, "Output indented JSON tree. Empty to skip.",
		"p", "output-json-pretty")
	stringFlag(&flags.OutputASCII, "Output ASCII drawing of the tree. Empty to skip.",
		"ascii")
	stringFlag(&flags.OutputMermaid, "Output Mermaid diagram of the tree. Empty to skip.",
		"mermaid")
	intFlag(&flags.Workers, "Number of concurrent workers. 0 uses one per CPU.", "workers")
	intFlag(&flags.CacheSize, "Number of replicate clade indexes kept in memory.",
		"cache-size")
	stringFlag(&flags.LogLevel, "Logging level: 'debug', 'info', 'warn' or 'error'.",
		"log-level")
	stringFlag(&flags.LogFormat, "Log output format: 'text' or 'json'.", "log-format")
	fs.StringVar(&configFile, "config", "", "Optional HCL config file.")
	boolFlag(&cite, "Display the citation and exit.", "c", "cite")
	boolFlag(&license, "Display the license and exit.", "l", "license")
	boolFlag(&version, "Display the program version and exit.", "v", "version")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err)
	}
	if fs.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s",
			strings.Join(fs.Args(), " "))
	}

	if cite || license || version {
		if cite {
			fmt.Fprint(out, Citation+"\n")
		}
		if license {
			fmt.Fprint(out, License+"\n")
		}
		if version {
			fmt.Fprintf(out, "Version: %s\n\n", Version)
		}
		return nil, true, nil
	}

	cfg := config.Default()
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return nil, false, usageError("%s", err)
		}
	}
	if err := cfg.LoadEnv(); err != nil {
		return nil, false, usageError("%s", err)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	override(set, &cfg.MainTree, flags.MainTree, "m", "main-tree")
	override(set, &cfg.ReplicateDir, flags.ReplicateDir, "t", "jackknife-tree")
	override(set, &cfg.ReplicateExt, flags.ReplicateExt, "e", "tree-ext")
	override(set, &cfg.ReplicateFOFN, flags.ReplicateFOFN, "f", "jackknife-tree-fofn")
	override(set, &cfg.OutputNewick, flags.OutputNewick, "n", "output-nwk")
	override(set, &cfg.ReplaceBranchLength, flags.ReplaceBranchLength,
		"b", "replace-branch-len")
	override(set, &cfg.ReplaceLabel, flags.ReplaceLabel, "s", "replace-label")
	override(set, &cfg.OutputJSON, flags.OutputJSON, "j", "output-json")
	override(set, &cfg.OutputJSONPretty, flags.OutputJSONPretty, "p", "output-json-pretty")
	override(set, &cfg.OutputASCII, flags.OutputASCII, "ascii")
	override(set, &cfg.OutputMermaid, flags.OutputMermaid, "mermaid")
	override(set, &cfg.Workers, flags.Workers, "workers")
	override(set, &cfg.CacheSize, flags.CacheSize, "cache-size")
	override(set, &cfg.LogLevel, flags.LogLevel, "log-level")
	override(set, &cfg.LogFormat, flags.LogFormat, "log-format")

	cfg.ReplicateExt = strings.TrimPrefix(cfg.ReplicateExt, ".")
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return nil, false, usageError("%s", err)
	}
	return &cfg, false, nil
}

// override sets *dst to v if any of the named flags was given.
func override[T any](set map[string]bool, dst *T, v T, names ...string) {
	for _, name := range names {
		if set[name] {
			*dst = v
			return
		}
	}
}

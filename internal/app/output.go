package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/TuftsBCB/taxares/newick"
)

type outputs struct {
	newick, json, jsonPretty, ascii, mermaid string
}

// outputs prepares every configured output path.
func (a *App) outputs() (outputs, error) {
	outs := outputs{
		newick:     a.cfg.OutputNewick,
		json:       a.cfg.OutputJSON,
		jsonPretty: a.cfg.OutputJSONPretty,
		ascii:      a.cfg.OutputASCII,
		mermaid:    a.cfg.OutputMermaid,
	}
	for _, path := range []string{outs.newick, outs.json, outs.jsonPretty, outs.ascii, outs.mermaid} {
		if err := prepareOutput(path); err != nil {
			return outputs{}, err
		}
	}
	return outs, nil
}

// prepareOutput makes sure path can be written as a regular file, creating
// its parent directories. An empty path is skipped.
func prepareOutput(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.Mode().IsRegular() {
			return fmt.Errorf("Output file '%s' exists and is not a regular "+
				"file. It cannot be overwritten.", path)
		}
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("Output file '%s' cannot be created: %w", path, err)
	}
	return nil
}

// write produces the outputs. The Newick tree goes last since the replace
// options rewrite the tree.
func (a *App) write(t *newick.Tree, outs outputs) error {
	if outs.json != "" {
		data, err := t.JSON()
		if err != nil {
			return err
		}
		if err := a.writeFile(outs.json, data); err != nil {
			return err
		}
	}
	if outs.jsonPretty != "" {
		data, err := t.JSONIndent()
		if err != nil {
			return err
		}
		if err := a.writeFile(outs.jsonPretty, data); err != nil {
			return err
		}
	}
	if outs.ascii != "" {
		if err := a.writeFile(outs.ascii, []byte(t.ASCII())); err != nil {
			return err
		}
	}
	if outs.mermaid != "" {
		if err := a.writeFile(outs.mermaid, []byte(t.Mermaid(a.cfg.ReplaceLabel))); err != nil {
			return err
		}
	}
	if outs.newick != "" {
		var nwk string
		if a.cfg.ReplaceBranchLength || a.cfg.ReplaceLabel {
			if a.cfg.ReplaceBranchLength {
				t.ReplaceBranchLengths(newick.ResiliencyKey)
			}
			if a.cfg.ReplaceLabel {
				t.ReplaceInternalLabels(newick.ResiliencyKey)
			}
			nwk = t.Newick()
		} else {
			nwk = t.NewickWithMetadata()
		}
		if err := a.writeFile(outs.newick, []byte(nwk)); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	a.logger.Info("Wrote output.", "path", path, "bytes", len(data))
	return nil
}

// Package viz writes the framework's diagram renderings to disk so each
// tutorial ships with a picture of its graph, as the originals did.
package viz

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/smallnest/langgraphgo/graph"
)

// Save renders g as Mermaid (.mmd) and DOT (.dot) under dir using the given
// base name and returns the paths written.
func Save[S any](dir, name string, g *graph.StateGraph[S]) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create diagram dir: %w", err)
	}

	exporter := graph.NewExporter(g)
	files := map[string]string{
		name + ".mmd": exporter.DrawMermaid(),
		name + ".dot": exporter.DrawDOT(),
	}

	paths := make([]string, 0, len(files))
	for file, content := range files {
		path := filepath.Join(dir, file)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

package viz_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smallnest/langgraphgo/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jemygraw/langgraphgo-tutorials/viz"
)

type demoState struct {
	Done bool
}

func demoGraph() *graph.StateGraph[demoState] {
	g := graph.NewStateGraph[demoState]()
	g.AddNode("work", "do the work", func(ctx context.Context, s demoState) (demoState, error) {
		s.Done = true
		return s, nil
	})
	g.AddEdge("work", graph.END)
	g.SetEntryPoint("work")
	return g
}

func TestSaveWritesBothFormats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths, err := viz.Save(dir, "demo", demoGraph())
	require.NoError(t, err)
	require.Len(t, paths, 2)

	mermaid, err := os.ReadFile(filepath.Join(dir, "demo.mmd"))
	require.NoError(t, err)
	assert.Contains(t, string(mermaid), "flowchart TD")
	assert.Contains(t, string(mermaid), "work")

	dot, err := os.ReadFile(filepath.Join(dir, "demo.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(dot), "digraph G")
	assert.Contains(t, string(dot), "work")
}

func TestSaveCreatesTheDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "diagrams", "nested")
	_, err := viz.Save(dir, "demo", demoGraph())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "demo.mmd"))
	assert.NoError(t, err)
}

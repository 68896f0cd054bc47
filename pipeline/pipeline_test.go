package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jemygraw/langgraphgo-tutorials/pipeline"
)

func TestGraphInvoke(t *testing.T) {
	t.Parallel()

	app, err := pipeline.NewGraph().Compile()
	require.NoError(t, err)

	result, err := app.Invoke(context.Background(), pipeline.State{
		Name:   "Alice",
		Age:    31,
		Skills: []string{"Go", "SQL", "Docker"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"Hello Alice, you are 31 years old.\nYour skills include:\n\t- Go\n\t- SQL\n\t- Docker",
		result.Result)
}

func TestGraphInvokeWithoutSkills(t *testing.T) {
	t.Parallel()

	app, err := pipeline.NewGraph().Compile()
	require.NoError(t, err)

	result, err := app.Invoke(context.Background(), pipeline.State{Name: "Bob", Age: 7})
	require.NoError(t, err)

	assert.Equal(t, "Hello Bob, you are 7 years old.\nYou have no specified skills.", result.Result)
}

// Each stage only appends, so the order of the pipeline is visible in the
// intermediate results as well.
func TestStagesComposeInOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	state := pipeline.State{Name: "Cleo", Age: 44, Skills: []string{"Rust"}}

	state, err := pipeline.GreetName(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "Hello Cleo,", state.Result)

	state, err = pipeline.AppendAge(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "Hello Cleo, you are 44 years old.", state.Result)

	state, err = pipeline.AppendSkills(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "Hello Cleo, you are 44 years old.\nYour skills include:\n\t- Rust", state.Result)
}

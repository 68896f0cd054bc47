package mathops_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jemygraw/langgraphgo-tutorials/mathops"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state mathops.State
		want  string
	}{
		{
			name:  "add sums the values",
			state: mathops.State{Values: []int{1, 2, 3, 4}, Name: "Jack", Operation: "add"},
			want:  "Hello Jack, the sum is 10.",
		},
		{
			name:  "multiply takes the product",
			state: mathops.State{Values: []int{2, 3, 4}, Name: "Jill", Operation: "multiply"},
			want:  "Hello Jill, the product is 24.",
		},
		{
			name:  "operation label is case-insensitive",
			state: mathops.State{Values: []int{5, 5}, Name: "Kim", Operation: "Add"},
			want:  "Hello Kim, the sum is 10.",
		},
		{
			name:  "single value",
			state: mathops.State{Values: []int{7}, Name: "Lee", Operation: "multiply"},
			want:  "Hello Lee, the product is 7.",
		},
		{
			name:  "negative values",
			state: mathops.State{Values: []int{-2, 3}, Name: "Max", Operation: "add"},
			want:  "Hello Max, the sum is 1.",
		},
		{
			name:  "unknown operation names the supported ones",
			state: mathops.State{Values: []int{1, 2}, Name: "Ada", Operation: "divide"},
			want:  `Hello Ada, "divide" is not an operation I know. Use "add" or "multiply".`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state, err := mathops.Apply(context.Background(), tt.state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, state.Result)
		})
	}
}

func TestGraphInvoke(t *testing.T) {
	t.Parallel()

	app, err := mathops.NewGraph().Compile()
	require.NoError(t, err)

	result, err := app.Invoke(context.Background(), mathops.State{
		Values:    []int{10, 20, 30},
		Name:      "Sam",
		Operation: mathops.OpAdd,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello Sam, the sum is 60.", result.Result)
}

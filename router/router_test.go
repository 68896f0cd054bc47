package router_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jemygraw/langgraphgo-tutorials/router"
)

func TestGraphRoutesBothPhases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		op1, op2    string
		wantResult1 int
		wantResult2 int
	}{
		{"add then add", router.OpAdd, router.OpAdd, 5, 9},
		{"add then multiply", router.OpAdd, router.OpMultiply, 5, 20},
		{"multiply then add", router.OpMultiply, router.OpAdd, 6, 9},
		{"multiply then multiply", router.OpMultiply, router.OpMultiply, 6, 20},
		{"unknown label falls back to add", "subtract", router.OpMultiply, 5, 20},
		{"labels are case-insensitive", "Multiply", "ADD", 6, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, err := router.NewGraph().Compile()
			require.NoError(t, err)

			result, err := app.Invoke(context.Background(), router.State{
				Num1: 2, Num2: 3,
				Num3: 4, Num4: 5,
				Op1: tt.op1, Op2: tt.op2,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantResult1, result.Result1)
			assert.Equal(t, tt.wantResult2, result.Result2)
		})
	}
}

func TestPhaseSelectsThePair(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	state := router.State{Num1: 1, Num2: 2, Num3: 10, Num4: 20}

	state.Phase = router.PhaseFirst
	first, err := router.Add(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Result1)
	assert.Zero(t, first.Result2)

	state.Phase = router.PhaseSecond
	second, err := router.Multiply(ctx, state)
	require.NoError(t, err)
	assert.Zero(t, second.Result1)
	assert.Equal(t, 200, second.Result2)
}

// Package router implements the conditional tutorial: two routing points
// dispatch each pair of numbers to an add or a multiply node. The routing
// nodes only mark the phase; the conditional edges pick the operation node.
package router

import (
	"context"
	"strings"

	"github.com/smallnest/langgraphgo/graph"
)

// Node names in the graph.
const (
	NodeRouteFirst     = "route_first"
	NodeRouteSecond    = "route_second"
	NodeAddFirst       = "add_first"
	NodeMultiplyFirst  = "multiply_first"
	NodeAddSecond      = "add_second"
	NodeMultiplySecond = "multiply_second"
)

// Operations understood by the routing edges.
const (
	OpAdd      = "add"
	OpMultiply = "multiply"
)

// Phases of the two-step computation.
const (
	PhaseFirst  = "first"
	PhaseSecond = "second"
)

// State is the record threaded through the graph: two pairs of numbers,
// one operation label per pair, and one result per pair.
type State struct {
	Num1, Num2 int
	Num3, Num4 int
	Op1, Op2   string
	Phase      string
	Result1    int
	Result2    int
}

// Add computes the sum for the pair selected by the current phase.
func Add(ctx context.Context, state State) (State, error) {
	if state.Phase == PhaseSecond {
		state.Result2 = state.Num3 + state.Num4
	} else {
		state.Result1 = state.Num1 + state.Num2
	}
	return state, nil
}

// Multiply computes the product for the pair selected by the current phase.
func Multiply(ctx context.Context, state State) (State, error) {
	if state.Phase == PhaseSecond {
		state.Result2 = state.Num3 * state.Num4
	} else {
		state.Result1 = state.Num1 * state.Num2
	}
	return state, nil
}

// routeOp maps an operation label to the matching node name. Unknown labels
// fall back to the add node, as the tutorial did.
func routeOp(op, addNode, multiplyNode string) string {
	if strings.ToLower(op) == OpMultiply {
		return multiplyNode
	}
	return addNode
}

// NewGraph wires the two-phase conditional graph:
//
//	route_first -?-> {add_first | multiply_first} -> route_second
//	route_second -?-> {add_second | multiply_second} -> END
func NewGraph() *graph.StateGraph[State] {
	g := graph.NewStateGraph[State]()

	g.AddNode(NodeRouteFirst, "mark the first phase", func(ctx context.Context, state State) (State, error) {
		state.Phase = PhaseFirst
		return state, nil
	})
	g.AddNode(NodeRouteSecond, "mark the second phase", func(ctx context.Context, state State) (State, error) {
		state.Phase = PhaseSecond
		return state, nil
	})
	g.AddNode(NodeAddFirst, "add the first pair", Add)
	g.AddNode(NodeMultiplyFirst, "multiply the first pair", Multiply)
	g.AddNode(NodeAddSecond, "add the second pair", Add)
	g.AddNode(NodeMultiplySecond, "multiply the second pair", Multiply)

	g.SetEntryPoint(NodeRouteFirst)
	g.AddConditionalEdge(NodeRouteFirst, func(ctx context.Context, state State) string {
		return routeOp(state.Op1, NodeAddFirst, NodeMultiplyFirst)
	})
	g.AddEdge(NodeAddFirst, NodeRouteSecond)
	g.AddEdge(NodeMultiplyFirst, NodeRouteSecond)
	g.AddConditionalEdge(NodeRouteSecond, func(ctx context.Context, state State) string {
		return routeOp(state.Op2, NodeAddSecond, NodeMultiplySecond)
	})
	g.AddEdge(NodeAddSecond, graph.END)
	g.AddEdge(NodeMultiplySecond, graph.END)

	return g
}

// Package mathops implements the multiple-inputs tutorial: a single node
// folds a list of integers with the requested operation and writes a
// personalized result string.
package mathops

import (
	"context"
	"fmt"
	"strings"

	"github.com/smallnest/langgraphgo/graph"
)

// NodeOperation is the only processing node in the graph.
const NodeOperation = "operation"

// Operations understood by the node.
const (
	OpAdd      = "add"
	OpMultiply = "multiply"
)

// State is the record threaded through the graph.
type State struct {
	Values    []int
	Name      string
	Operation string
	Result    string
}

// Apply folds Values with the requested operation. Unknown operations
// produce a result string naming the supported ones rather than an error,
// matching the tutorial's conversational tone.
func Apply(ctx context.Context, state State) (State, error) {
	switch strings.ToLower(state.Operation) {
	case OpAdd:
		total := 0
		for _, v := range state.Values {
			total += v
		}
		state.Result = fmt.Sprintf("Hello %s, the sum is %d.", state.Name, total)
	case OpMultiply:
		product := 1
		for _, v := range state.Values {
			product *= v
		}
		state.Result = fmt.Sprintf("Hello %s, the product is %d.", state.Name, product)
	default:
		state.Result = fmt.Sprintf("Hello %s, %q is not an operation I know. Use %q or %q.",
			state.Name, state.Operation, OpAdd, OpMultiply)
	}
	return state, nil
}

// NewGraph wires the single-node graph: operation -> END.
func NewGraph() *graph.StateGraph[State] {
	g := graph.NewStateGraph[State]()
	g.AddNode(NodeOperation, "fold the values with the requested operation", Apply)
	g.AddEdge(NodeOperation, graph.END)
	g.SetEntryPoint(NodeOperation)
	return g
}

// Package greeting implements the single-input tutorial: one node rewrites
// the shared message into a greeting and the graph ends.
package greeting

import (
	"context"
	"fmt"

	"github.com/smallnest/langgraphgo/graph"
)

// NodeGreeter is the only processing node in the graph.
const NodeGreeter = "greeter"

// State is the record threaded through the graph. Message holds the user's
// name on the way in and the formatted greeting on the way out.
type State struct {
	Message string
}

// Greet formats the greeting for the name carried in the state.
func Greet(ctx context.Context, state State) (State, error) {
	state.Message = fmt.Sprintf("Hey %s! How can I help you?", state.Message)
	return state, nil
}

// NewGraph wires the single-node graph: greeter -> END.
func NewGraph() *graph.StateGraph[State] {
	g := graph.NewStateGraph[State]()
	g.AddNode(NodeGreeter, "format the greeting", Greet)
	g.AddEdge(NodeGreeter, graph.END)
	g.SetEntryPoint(NodeGreeter)
	return g
}

// Package pipeline implements the sequential tutorial: three nodes build up
// one result string, each consuming what the previous node produced.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/smallnest/langgraphgo/graph"
)

// Node names in execution order.
const (
	NodeName   = "name"
	NodeAge    = "age"
	NodeSkills = "skills"
)

// State is the record threaded through the pipeline.
type State struct {
	Name   string
	Age    int
	Skills []string
	Result string
}

// GreetName starts the result string with a greeting.
func GreetName(ctx context.Context, state State) (State, error) {
	state.Result = fmt.Sprintf("Hello %s,", state.Name)
	return state, nil
}

// AppendAge adds the age sentence to the result.
func AppendAge(ctx context.Context, state State) (State, error) {
	state.Result += fmt.Sprintf(" you are %d years old.", state.Age)
	return state, nil
}

// AppendSkills finishes the result with a bulleted skills list, or a note
// when no skills were given.
func AppendSkills(ctx context.Context, state State) (State, error) {
	if len(state.Skills) == 0 {
		state.Result += "\nYou have no specified skills."
		return state, nil
	}
	state.Result += "\nYour skills include:\n\t- " + strings.Join(state.Skills, "\n\t- ")
	return state, nil
}

// NewGraph wires the linear pipeline: name -> age -> skills -> END.
func NewGraph() *graph.StateGraph[State] {
	g := graph.NewStateGraph[State]()
	g.AddNode(NodeName, "greet the user by name", GreetName)
	g.AddNode(NodeAge, "append the age sentence", AppendAge)
	g.AddNode(NodeSkills, "append the skills list", AppendSkills)
	g.SetEntryPoint(NodeName)
	g.AddEdge(NodeName, NodeAge)
	g.AddEdge(NodeAge, NodeSkills)
	g.AddEdge(NodeSkills, graph.END)
	return g
}

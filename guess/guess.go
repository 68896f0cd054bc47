// Package guess implements the looping tutorial: a cyclic graph that plays
// a number guessing game against the player. The game keeps an inclusive
// interval [Low, High], guesses its midpoint, and narrows the interval from
// the player's feedback until the guess is confirmed, the attempt budget is
// spent, or the interval empties.
package guess

import (
	"context"
	"fmt"
	"strings"

	"github.com/smallnest/langgraphgo/graph"
)

// Node names in the game graph.
const (
	NodeSetup    = "setup"
	NodeGuess    = "guess"
	NodeFeedback = "feedback"
)

// Feedback is the three-way signal the player gives about a guess.
type Feedback string

const (
	// FeedbackNone means no verdict has been given yet.
	FeedbackNone Feedback = "none"
	// FeedbackCorrect confirms the guess.
	FeedbackCorrect Feedback = "correct"
	// FeedbackHigher means the target is higher than the guess.
	FeedbackHigher Feedback = "higher"
	// FeedbackLower means the target is lower than the guess.
	FeedbackLower Feedback = "lower"
)

// Default game parameters.
const (
	DefaultLow         = 1
	DefaultHigh        = 20
	DefaultMaxAttempts = 10
)

// State is the record threaded through the game loop.
type State struct {
	Low         int
	High        int
	Guess       int
	Guesses     []int
	Attempts    int
	MaxAttempts int
	Phase       Feedback
	GameOver    bool
}

// Won reports whether the state represents a confirmed guess.
func (s State) Won() bool { return s.Phase == FeedbackCorrect }

// Oracle answers one round of feedback for a guess.
type Oracle interface {
	Answer(guess, attempt, maxAttempts int) (Feedback, error)
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(guess, attempt, maxAttempts int) (Feedback, error)

// Answer calls f.
func (f OracleFunc) Answer(guess, attempt, maxAttempts int) (Feedback, error) {
	return f(guess, attempt, maxAttempts)
}

// TruthfulOracle answers according to a fixed target. Used by tests and by
// the self-play mode of the game program.
func TruthfulOracle(target int) Oracle {
	return OracleFunc(func(guess, _, _ int) (Feedback, error) {
		switch {
		case guess == target:
			return FeedbackCorrect, nil
		case guess < target:
			return FeedbackHigher, nil
		default:
			return FeedbackLower, nil
		}
	})
}

// Setup initializes the game record. Zero bounds and a zero attempt budget
// get the tutorial defaults; preset values are kept so callers can play a
// wider range. Inverted bounds are rejected.
func Setup(ctx context.Context, state State) (State, error) {
	if state.Low == 0 && state.High == 0 {
		state.Low, state.High = DefaultLow, DefaultHigh
	}
	if state.MaxAttempts == 0 {
		state.MaxAttempts = DefaultMaxAttempts
	}
	if state.Low > state.High {
		return state, fmt.Errorf("bounds inverted: [%d, %d]", state.Low, state.High)
	}

	state.Guess = 0
	state.Guesses = nil
	state.Attempts = 0
	state.Phase = FeedbackNone
	state.GameOver = false
	return state, nil
}

// Next applies the pending feedback to the bounds and computes the next
// midpoint guess. ok is false when the interval is exhausted.
func Next(state State) (next State, ok bool) {
	switch state.Phase {
	case FeedbackHigher:
		if state.Guess+1 > state.Low {
			state.Low = state.Guess + 1
		}
	case FeedbackLower:
		if state.Guess-1 < state.High {
			state.High = state.Guess - 1
		}
	}
	if state.Low > state.High {
		return state, false
	}
	state.Guess = (state.Low + state.High) / 2
	return state, true
}

// MakeGuess is the guess node: narrow the interval, pick the midpoint,
// record it, and flag the game over when the interval or the attempt budget
// is exhausted.
func MakeGuess(ctx context.Context, state State) (State, error) {
	next, ok := Next(state)
	if !ok {
		next.GameOver = true
		return next, nil
	}
	state = next
	state.Attempts++
	state.Guesses = append(state.Guesses, state.Guess)
	if state.Attempts >= state.MaxAttempts {
		state.GameOver = true
	}
	return state, nil
}

// AskFeedback builds the feedback node around the given oracle. The node
// skips asking once the interval is exhausted, since there is no fresh
// guess to judge.
func AskFeedback(oracle Oracle) func(context.Context, State) (State, error) {
	return func(ctx context.Context, state State) (State, error) {
		if state.Low > state.High {
			return state, nil
		}
		phase, err := oracle.Answer(state.Guess, state.Attempts, state.MaxAttempts)
		if err != nil {
			return state, err
		}
		state.Phase = phase
		return state, nil
	}
}

// ShouldContinue decides whether the loop goes another round. The game ends
// on a confirmed guess, a spent attempt budget, or an empty interval.
func ShouldContinue(state State) bool {
	if state.Phase == FeedbackCorrect {
		return false
	}
	if state.GameOver {
		return false
	}
	if state.Attempts >= state.MaxAttempts {
		return false
	}
	if state.Low > state.High {
		return false
	}
	return true
}

// ParseFeedback maps a console answer onto the feedback signal. "h" means
// the guess was too high, so the target is lower; "l" means the opposite.
func ParseFeedback(answer string) (Feedback, bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "c", "correct":
		return FeedbackCorrect, true
	case "h", "high", "higher":
		return FeedbackLower, true
	case "l", "low", "lower":
		return FeedbackHigher, true
	}
	return FeedbackNone, false
}

// NewGraph wires the cyclic game graph:
//
//	setup -> guess -> feedback -?-> {guess | END}
func NewGraph(oracle Oracle) *graph.StateGraph[State] {
	g := graph.NewStateGraph[State]()
	g.AddNode(NodeSetup, "initialize the game bounds", Setup)
	g.AddNode(NodeGuess, "narrow the interval and guess the midpoint", MakeGuess)
	g.AddNode(NodeFeedback, "collect the player's verdict", AskFeedback(oracle))
	g.SetEntryPoint(NodeSetup)
	g.AddEdge(NodeSetup, NodeGuess)
	g.AddEdge(NodeGuess, NodeFeedback)
	g.AddConditionalEdge(NodeFeedback, func(ctx context.Context, state State) string {
		if ShouldContinue(state) {
			return NodeGuess
		}
		return graph.END
	})
	return g
}

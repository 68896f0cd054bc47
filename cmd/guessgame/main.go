// Command guessgame runs the looping tutorial: the graph guesses the
// player's secret number by binary search, asking for feedback after every
// guess until it is confirmed or the attempt budget runs out.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jemygraw/langgraphgo-tutorials/console"
	"github.com/jemygraw/langgraphgo-tutorials/guess"
	"github.com/jemygraw/langgraphgo-tutorials/runlog"
	"github.com/jemygraw/langgraphgo-tutorials/ui"
	"github.com/jemygraw/langgraphgo-tutorials/viz"
)

func main() {
	logger := runlog.New("guessgame")
	prompter := console.NewPrompter(os.Stdin, os.Stdout)

	fmt.Println(ui.Banner("Number Guessing Game"))
	fmt.Printf("Think of a number between %d and %d.\n", guess.DefaultLow, guess.DefaultHigh)
	fmt.Printf("I will try to find it in at most %d guesses.\n", guess.DefaultMaxAttempts)
	fmt.Println(ui.Note("Answer each guess with (c)orrect, too (h)igh, or too (l)ow."))

	oracle := guess.OracleFunc(func(g, attempt, maxAttempts int) (guess.Feedback, error) {
		fmt.Printf("\nMy guess is: %d (attempt %d of %d)\n", g, attempt, maxAttempts)
		for {
			answer, err := prompter.String("Is my guess (c)orrect, too (h)igh, or too (l)ow? [c/h/l]: ", "")
			if err != nil {
				return guess.FeedbackNone, err
			}
			if fb, ok := guess.ParseFeedback(answer); ok {
				logger.Debugf("feedback for %d: %s", g, fb)
				return fb, nil
			}
			fmt.Println(ui.Error("Please answer c, h, or l."))
		}
	})

	g := guess.NewGraph(oracle)
	app, err := g.Compile()
	if err != nil {
		logger.Fatalf("compile graph: %v", err)
	}

	if paths, err := viz.Save(".", "guessgame_graph", g); err != nil {
		logger.Warnf("diagram export failed: %v", err)
	} else {
		logger.Infof("graph diagrams written: %v", paths)
	}

	if _, err := prompter.String("\nPress Enter when you have your number...", ""); err != nil {
		logger.Fatalf("input closed before the game started: %v", err)
	}

	logger.Infof("starting game over [%d, %d] with %d attempts",
		guess.DefaultLow, guess.DefaultHigh, guess.DefaultMaxAttempts)
	result, err := app.Invoke(context.Background(), guess.State{})
	if err != nil {
		logger.Fatalf("game loop failed: %v", err)
	}

	guesses := strings.Trim(strings.Join(strings.Fields(fmt.Sprint(result.Guesses)), ", "), "[]")
	if result.Won() {
		fmt.Println(ui.Result(fmt.Sprintf("Found it! Your number is %d.\nIt took me %d of %d attempts.\nGuesses: %s",
			result.Guess, result.Attempts, result.MaxAttempts, guesses)))
		logger.Infof("won in %d attempts, guesses: %v", result.Attempts, result.Guesses)
	} else {
		fmt.Println(ui.Result(fmt.Sprintf("I could not find your number in %d attempts.\nMy last guess was %d.\nGuesses: %s\nFinal range: [%d, %d]",
			result.Attempts, result.Guess, guesses, result.Low, result.High)))
		logger.Infof("lost after %d attempts, final range [%d, %d]", result.Attempts, result.Low, result.High)
	}
}

// Command router runs the conditional tutorial: two pairs of numbers are
// each routed to an add or a multiply node based on the chosen operations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jemygraw/langgraphgo-tutorials/console"
	"github.com/jemygraw/langgraphgo-tutorials/router"
	"github.com/jemygraw/langgraphgo-tutorials/runlog"
	"github.com/jemygraw/langgraphgo-tutorials/ui"
	"github.com/jemygraw/langgraphgo-tutorials/viz"
)

func main() {
	logger := runlog.New("router")
	fmt.Println(ui.Banner("Conditional Router Graph"))

	g := router.NewGraph()
	app, err := g.Compile()
	if err != nil {
		logger.Fatalf("compile graph: %v", err)
	}

	if paths, err := viz.Save(".", "router_graph", g); err != nil {
		logger.Warnf("diagram export failed: %v", err)
	} else {
		logger.Infof("graph diagrams written: %v", paths)
	}

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	opLabel := fmt.Sprintf("(%s/%s)", router.OpAdd, router.OpMultiply)

	state := router.State{}
	if state.Num1, err = prompter.Int("Enter the first number: "); err != nil {
		logger.Fatalf("reading number: %v", err)
	}
	if state.Num2, err = prompter.Int("Enter the second number: "); err != nil {
		logger.Fatalf("reading number: %v", err)
	}
	if state.Op1, err = prompter.Choice("Operation for the first pair "+opLabel+": ",
		router.OpAdd, router.OpMultiply); err != nil {
		logger.Fatalf("reading operation: %v", err)
	}
	if state.Num3, err = prompter.Int("Enter the third number: "); err != nil {
		logger.Fatalf("reading number: %v", err)
	}
	if state.Num4, err = prompter.Int("Enter the fourth number: "); err != nil {
		logger.Fatalf("reading number: %v", err)
	}
	if state.Op2, err = prompter.Choice("Operation for the second pair "+opLabel+": ",
		router.OpAdd, router.OpMultiply); err != nil {
		logger.Fatalf("reading operation: %v", err)
	}

	logger.Infof("routing first pair through %s, second pair through %s", state.Op1, state.Op2)
	result, err := app.Invoke(context.Background(), state)
	if err != nil {
		logger.Fatalf("graph execution failed: %v", err)
	}

	summary := fmt.Sprintf("First pair (%d %s %d): %d\nSecond pair (%d %s %d): %d",
		result.Num1, result.Op1, result.Num2, result.Result1,
		result.Num3, result.Op2, result.Num4, result.Result2)
	fmt.Println(ui.Result(summary))
	logger.Infof("router graph completed")
}

// Command mathops runs the multiple-inputs tutorial: fold a list of
// integers with add or multiply and report the result.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jemygraw/langgraphgo-tutorials/console"
	"github.com/jemygraw/langgraphgo-tutorials/mathops"
	"github.com/jemygraw/langgraphgo-tutorials/runlog"
	"github.com/jemygraw/langgraphgo-tutorials/ui"
	"github.com/jemygraw/langgraphgo-tutorials/viz"
)

func main() {
	logger := runlog.New("mathops")
	fmt.Println(ui.Banner("List Arithmetic Graph"))

	g := mathops.NewGraph()
	app, err := g.Compile()
	if err != nil {
		logger.Fatalf("compile graph: %v", err)
	}

	if paths, err := viz.Save(".", "mathops_graph", g); err != nil {
		logger.Warnf("diagram export failed: %v", err)
	} else {
		logger.Infof("graph diagrams written: %v", paths)
	}

	prompter := console.NewPrompter(os.Stdin, os.Stdout)

	values, err := prompter.Ints("Enter a list of integers (comma-separated): ")
	if err != nil {
		logger.Fatalf("reading values: %v", err)
	}
	name, err := prompter.String("Enter your name: ", "Guest")
	if err != nil {
		logger.Fatalf("reading name: %v", err)
	}
	operation, err := prompter.Choice(
		fmt.Sprintf("Enter an operation (%s/%s): ", mathops.OpAdd, mathops.OpMultiply),
		mathops.OpAdd, mathops.OpMultiply,
	)
	if err != nil {
		logger.Fatalf("reading operation: %v", err)
	}

	logger.Infof("running %s over %v for %q", operation, values, name)
	result, err := app.Invoke(context.Background(), mathops.State{
		Values:    values,
		Name:      name,
		Operation: operation,
	})
	if err != nil {
		logger.Fatalf("graph execution failed: %v", err)
	}

	fmt.Println(ui.Result(result.Result))
	logger.Infof("mathops graph completed")
}

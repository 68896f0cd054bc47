// Command greeting runs the single-input greeting tutorial: one node turns
// a name into a greeting.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jemygraw/langgraphgo-tutorials/console"
	"github.com/jemygraw/langgraphgo-tutorials/greeting"
	"github.com/jemygraw/langgraphgo-tutorials/runlog"
	"github.com/jemygraw/langgraphgo-tutorials/ui"
	"github.com/jemygraw/langgraphgo-tutorials/viz"
)

func main() {
	logger := runlog.New("greeting")
	fmt.Println(ui.Banner("Greeting Graph"))

	g := greeting.NewGraph()
	app, err := g.Compile()
	if err != nil {
		logger.Fatalf("compile graph: %v", err)
	}

	if paths, err := viz.Save(".", "greeting_graph", g); err != nil {
		logger.Warnf("diagram export failed: %v", err)
	} else {
		logger.Infof("graph diagrams written: %v", paths)
	}

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	name, err := prompter.String("Enter your name: ", "Guest")
	if err != nil {
		logger.Warnf("input closed, greeting %s", name)
	}

	logger.Infof("running greeting graph for %q", name)
	result, err := app.Invoke(context.Background(), greeting.State{Message: name})
	if err != nil {
		logger.Fatalf("graph execution failed: %v", err)
	}

	fmt.Println(ui.Result(result.Message))
	logger.Infof("greeting graph completed")
}

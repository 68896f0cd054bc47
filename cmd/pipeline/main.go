// Command pipeline runs the sequential tutorial: three nodes build up a
// profile summary from name, age, and skills.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jemygraw/langgraphgo-tutorials/console"
	"github.com/jemygraw/langgraphgo-tutorials/pipeline"
	"github.com/jemygraw/langgraphgo-tutorials/runlog"
	"github.com/jemygraw/langgraphgo-tutorials/ui"
	"github.com/jemygraw/langgraphgo-tutorials/viz"
)

func main() {
	logger := runlog.New("pipeline")
	fmt.Println(ui.Banner("Sequential Pipeline Graph"))

	g := pipeline.NewGraph()
	app, err := g.Compile()
	if err != nil {
		logger.Fatalf("compile graph: %v", err)
	}

	if paths, err := viz.Save(".", "pipeline_graph", g); err != nil {
		logger.Warnf("diagram export failed: %v", err)
	} else {
		logger.Infof("graph diagrams written: %v", paths)
	}

	prompter := console.NewPrompter(os.Stdin, os.Stdout)

	name, err := prompter.String("Enter your name: ", "Guest")
	if err != nil {
		logger.Fatalf("reading name: %v", err)
	}
	age, err := prompter.IntInRange("Enter your age: ", 0, 150)
	if err != nil {
		logger.Fatalf("reading age: %v", err)
	}
	skills, err := prompter.Strings("Enter your skills (comma-separated, empty for none): ")
	if err != nil {
		logger.Fatalf("reading skills: %v", err)
	}

	logger.Infof("running pipeline for %q, age %d, %d skills", name, age, len(skills))
	result, err := app.Invoke(context.Background(), pipeline.State{
		Name:   name,
		Age:    age,
		Skills: skills,
	})
	if err != nil {
		logger.Fatalf("graph execution failed: %v", err)
	}

	fmt.Println(ui.Result(result.Result))
	logger.Infof("pipeline graph completed")
}

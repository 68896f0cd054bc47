// Package runlog configures the golog logger shared by the tutorial
// programs. Every program logs to stdout and to a <name>.log file in the
// working directory, mirroring the two-handler setup the tutorials started
// with. The prefix carries the program name and a short run id so
// interleaved runs can be told apart in the file.
package runlog

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/kataras/golog"
)

// New returns the logger for the named program. The log file is best
// effort: when it cannot be opened the logger keeps writing to stdout and
// reports the problem once.
func New(name string) *golog.Logger {
	logger := golog.New()
	logger.SetTimeFormat("2006-01-02 15:04:05")

	runID := uuid.NewString()[:8]
	logger.SetPrefix(fmt.Sprintf("[%s %s] ", name, runID))

	file, err := os.OpenFile(name+".log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.SetOutput(os.Stdout)
		logger.Warnf("log file unavailable, console only: %v", err)
		return logger
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, file))
	return logger
}

package runlog_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jemygraw/langgraphgo-tutorials/runlog"
)

func TestNewCreatesLogFile(t *testing.T) {
	t.Chdir(t.TempDir())

	logger := runlog.New("demo")
	require.NotNil(t, logger)
	logger.Infof("hello from the test")

	_, err := os.Stat("demo.log")
	assert.NoError(t, err)
}

func TestNewSurvivesUnwritableFile(t *testing.T) {
	dir := t.TempDir()
	// Occupy the log path with a directory so the file cannot be opened.
	require.NoError(t, os.Mkdir(dir+"/demo.log", 0o755))
	t.Chdir(dir)

	logger := runlog.New("demo")
	require.NotNil(t, logger)
	logger.Infof("still logging to the console")
}

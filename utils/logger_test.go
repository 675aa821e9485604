package utils

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetOutput_RoutesLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(os.Stdout, os.Stderr) })

	LogInfo("info %d", 1)
	LogWarn("warn %s", "x")
	LogError("error")

	assert.Contains(t, out.String(), "INFO: ")
	assert.Contains(t, out.String(), "info 1")
	assert.Contains(t, out.String(), "WARN: ")
	assert.Contains(t, out.String(), "warn x")
	assert.NotContains(t, out.String(), "ERROR: ")
	assert.Contains(t, errOut.String(), "ERROR: error")
}

func TestTrackTime(t *testing.T) {
	var out bytes.Buffer
	SetOutput(&out, &out)
	t.Cleanup(func() { SetOutput(os.Stdout, os.Stderr) })

	TrackTime(time.Now(), "チケット生成")

	assert.Contains(t, out.String(), "チケット生成 完了時間: ")
}

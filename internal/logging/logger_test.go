package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, GetLevel(" warning "))
	assert.Equal(t, logrus.InfoLevel, GetLevel("nonsense"))
	assert.Equal(t, logrus.InfoLevel, GetLevel(""))
}

func TestSetup_WritesToFile(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	name := filepath.Join(t.TempDir(), "fitcore")
	Setup(LoggerSetupParams{LogFileName: name, LogLevel: "info", LogFormatJSON: true})
	logrus.Info("snapshot stored")

	b, err := os.ReadFile(name + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"snapshot stored"`)
}

func TestRotatingFile_Defaults(t *testing.T) {
	f := rotatingFile(LoggerSetupParams{LogFileName: "fitcore"})
	assert.Equal(t, "fitcore.log", f.Filename)
	assert.Equal(t, defaultMaxSizeMB, f.MaxSize)
	assert.Equal(t, defaultMaxBackups, f.MaxBackups)

	f = rotatingFile(LoggerSetupParams{LogFileName: "app.log", MaxSizeMB: 5, MaxBackups: 2})
	assert.Equal(t, "app.log", f.Filename)
	assert.Equal(t, 5, f.MaxSize)
	assert.Equal(t, 2, f.MaxBackups)
}

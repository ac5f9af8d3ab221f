//go:build !windows

package main

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaemonFilePaths(t *testing.T) {
	tmpDir := setTempConfigPath(t)

	assert.Equal(t, filepath.Join(tmpDir, "frotz-relay.pid"), pidFilePath())
	assert.Equal(t, filepath.Join(tmpDir, "frotz-relay.log"), logFilePath())
}

func TestPIDFileLifecycle(t *testing.T) {
	setTempConfigPath(t)

	_, err := readPIDFile()
	require.Error(t, err, "no PID file yet")

	pid := os.Getpid()
	require.NoError(t, writePIDFile(pid))

	data, err := os.ReadFile(pidFilePath())
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(pid), string(data))

	got, err := readPIDFile()
	require.NoError(t, err)
	assert.Equal(t, pid, got)

	require.NoError(t, writePIDFile(200))
	got, err = readPIDFile()
	require.NoError(t, err)
	assert.Equal(t, 200, got, "second write overwrites")

	removePIDFile()
	assert.NoFileExists(t, pidFilePath())
	assert.NotPanics(t, removePIDFile, "removing twice is harmless")
}

func TestReadPIDFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"words", "not-a-number"},
		{"empty", ""},
		{"float", "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTempConfigPath(t)
			require.NoError(t, os.WriteFile(pidFilePath(), []byte(tt.content), 0600))

			_, err := readPIDFile()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid PID in file")
		})
	}
}

func TestReadPIDFileTrimsWhitespace(t *testing.T) {
	setTempConfigPath(t)
	require.NoError(t, os.WriteFile(pidFilePath(), []byte("4242\n"), 0600))

	got, err := readPIDFile()
	require.NoError(t, err)
	assert.Equal(t, 4242, got)
}

func TestIsProcessAlive(t *testing.T) {
	assert.True(t, isProcessAlive(os.Getpid()))
	// max int32 is never a live PID on the platforms we run on
	assert.False(t, isProcessAlive(2147483647))
}

func TestDaemonStatusRemovesStalePID(t *testing.T) {
	setTempConfigPath(t)
	require.NoError(t, writePIDFile(2147483647))

	require.NoError(t, daemonStatus())
	assert.NoFileExists(t, pidFilePath())
}

func TestDaemonStopWithoutDaemon(t *testing.T) {
	setTempConfigPath(t)
	assert.NoError(t, daemonStop())

	require.NoError(t, writePIDFile(2147483647))
	require.NoError(t, daemonStop())
	assert.NoFileExists(t, pidFilePath())
}

func TestDaemonCleanupHookRemovesPIDFile(t *testing.T) {
	setTempConfigPath(t)
	require.NoError(t, writePIDFile(99999))

	daemonCleanupHook = removePIDFile
	t.Cleanup(func() { daemonCleanupHook = nil })

	daemonCleanupHook()
	assert.NoFileExists(t, pidFilePath())
}

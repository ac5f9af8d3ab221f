//go:build windows

package main

import (
	"errors"
	"os"
	"path/filepath"
)

const daemonChildFlag = "--daemon-child"

var errDaemonUnsupported = errors.New("daemon mode is not supported on Windows; run frotz-relay as a service instead")

func pidFilePath() string {
	return filepath.Join(getConfigDir(), "frotz-relay.pid")
}

func logFilePath() string {
	return filepath.Join(getConfigDir(), "frotz-relay.log")
}

func removePIDFile() {
	os.Remove(pidFilePath())
}

func daemonize(args []string) error { return errDaemonUnsupported }

func daemonStop() error { return errDaemonUnsupported }

func daemonStatus() error { return errDaemonUnsupported }

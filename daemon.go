//go:build !windows

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// daemonChildFlag marks the detached child so it logs to the log file and
// owns the PID file.
const daemonChildFlag = "--daemon-child"

func pidFilePath() string {
	return filepath.Join(getConfigDir(), "frotz-relay.pid")
}

func logFilePath() string {
	return filepath.Join(getConfigDir(), "frotz-relay.log")
}

func writePIDFile(pid int) error {
	return os.WriteFile(pidFilePath(), []byte(strconv.Itoa(pid)), 0644)
}

func readPIDFile() (int, error) {
	data, err := os.ReadFile(pidFilePath())
	if err != nil {
		return 0, fmt.Errorf("read PID file: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %w", err)
	}
	return pid, nil
}

// removePIDFile is best-effort.
func removePIDFile() {
	os.Remove(pidFilePath())
}

// isProcessAlive sends signal 0 to test for the process.
func isProcessAlive(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}

// daemonize re-executes the binary detached from the terminal, running the
// mode named by args (Telegram when empty), with output in the log file.
func daemonize(args []string) error {
	if pid, err := readPIDFile(); err == nil {
		if isProcessAlive(pid) {
			return fmt.Errorf("daemon is already running (PID %d); use stop first", pid)
		}
		removePIDFile()
	}

	// First-time setup needs an interactive terminal
	if _, err := os.Stat(getConfigPath()); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("no configuration at %s; run setup interactively first", getConfigPath())
	}

	logPath := logFilePath()
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	cmd := exec.Command(os.Args[0], append(args, daemonChildFlag)...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start daemon: %w", err)
	}
	if err := writePIDFile(cmd.Process.Pid); err != nil {
		logger.Warn("failed to write PID file", "err", err)
	}

	fmt.Printf("Daemon started (PID %d).\n", cmd.Process.Pid)
	fmt.Printf("Log file: %s\n", logPath)
	fmt.Printf("PID file: %s\n", pidFilePath())
	return nil
}

// daemonStop sends SIGTERM, then SIGKILL if the daemon is still up after
// five seconds.
func daemonStop() error {
	pid, err := readPIDFile()
	if err != nil {
		fmt.Println("No daemon is running.")
		return nil
	}
	if !isProcessAlive(pid) {
		fmt.Printf("Daemon (PID %d) is not running. Removing stale PID file.\n", pid)
		removePIDFile()
		return nil
	}

	fmt.Printf("Stopping daemon (PID %d)...\n", pid)
	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		return fmt.Errorf("send SIGTERM: %w", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if !isProcessAlive(pid) {
			fmt.Println("Daemon stopped.")
			removePIDFile()
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}

	fmt.Println("Daemon did not stop gracefully. Sending SIGKILL...")
	syscall.Kill(pid, syscall.SIGKILL)
	time.Sleep(500 * time.Millisecond)
	removePIDFile()
	if isProcessAlive(pid) {
		return fmt.Errorf("failed to kill daemon (PID %d)", pid)
	}
	fmt.Println("Daemon killed.")
	return nil
}

func daemonStatus() error {
	pid, err := readPIDFile()
	if err != nil {
		fmt.Println("Status: not running")
		return nil
	}
	if !isProcessAlive(pid) {
		fmt.Printf("Status: not running (stale PID %d)\n", pid)
		removePIDFile()
		return nil
	}
	fmt.Printf("Status: running (PID %d)\n", pid)
	fmt.Printf("Log file: %s\n", logFilePath())
	return nil
}

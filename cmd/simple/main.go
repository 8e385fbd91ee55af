// FILE: cmd/simple/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mgor/locust"
)

func main() {
	loglevel := flag.String("loglevel", "info", "minimum log level (debug, info, warning, error, critical)")
	logfile := flag.String("logfile", "", "optional log file path (replaces console output)")
	flag.Parse()

	if err := locust.SetupLogging(*loglevel, *logfile, 0); err != nil {
		fmt.Fprintf(os.Stderr, "setup failed: %v\n", err)
		os.Exit(1)
	}

	locust.Debug("starting up (pid %d)", os.Getpid())
	locust.Info("spawning %d users at %.1f users/s", 100, 10.0)
	locust.Warning("target responded slowly: %v", 1500*time.Millisecond)

	stats := locust.Named(locust.StatsLoggerName)
	stats.Info("%-20s %10s %10s", "Name", "reqs", "fails")
	stats.Info("%-20s %10d %10d", "GET /", 1042, 3)

	// Monitor a background task; a crash is logged and flips the
	// process-wide fault flag
	handler := locust.NewFaultHandler(locust.Named("locust.runner"))
	locust.Go("user_spawner", handler, func() error {
		return fmt.Errorf("connection refused")
	})

	time.Sleep(100 * time.Millisecond)

	fmt.Println("--- recent log lines ---")
	for _, line := range locust.GetLogs() {
		fmt.Println(line)
	}

	if err := locust.ShutdownLogging(time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
	}

	if locust.UncaughtFault() {
		os.Exit(2)
	}
}

// FILE: cmd/stress/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mgor/locust"
)

const (
	numWorkers   = 100
	logsPerBurst = 500
)

func main() {
	configFile := flag.String("config", "", "optional TOML config file")
	flag.Parse()

	cfg := locust.DefaultConfig()
	if *configFile != "" {
		loaded, err := locust.NewConfigFromFile(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		// Small queue and a file sink to make drops visible
		cfg.QueueSize = 256
		cfg.File = "./stress.log"
		cfg.InternalErrorsToStderr = true
	}

	pipeline, err := locust.NewPipeline(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pipeline: %v\n", err)
		os.Exit(1)
	}
	pipeline.Start()

	logger := pipeline.Root()
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < logsPerBurst; i++ {
				logger.Info("worker %d burst message %d", worker, i)
			}
		}(w)
	}
	wg.Wait()

	// Let the dispatcher catch up, then emit once more so any open
	// drop episode gets its summary
	time.Sleep(500 * time.Millisecond)
	logger.Info("flood complete after %v", time.Since(start))

	if err := pipeline.Shutdown(5 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
	}

	lines := pipeline.GetLogs()
	fmt.Printf("submitted %d records, ring buffer retained %d lines\n",
		numWorkers*logsPerBurst+1, len(lines))
	tail := lines
	if len(tail) > 5 {
		tail = tail[len(tail)-5:]
	}
	for _, line := range tail {
		fmt.Println(line)
	}
}

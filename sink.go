// FILE: sink.go
package locust

import (
	"io"
	"os"
)

// Sink is a synchronous consumer of one formatted log line. Sinks may
// be slow or may fail; the dispatcher isolates each delivery so that
// neither stalls producers nor stops delivery to the remaining sinks.
//
// Emit is only ever called from the dispatcher goroutine.
type Sink interface {
	Name() string
	Emit(line string) error
}

// syncer is implemented by sinks with buffered backing storage.
type syncer interface {
	Sync() error
}

// route binds a sink to its formatter and delivery constraints. A
// record reaches the sink when its level passes the floor and its
// logger name passes the only/except filters.
type route struct {
	sink      Sink
	formatter *Formatter
	floor     int64  // minimum level, 0 = no floor
	only      string // deliver only this logger's records, "" = all
	except    string // never deliver this logger's records, "" = none
}

// accepts reports whether the route should receive the record.
func (rt *route) accepts(rec Record) bool {
	if rec.Level < rt.floor {
		return false
	}
	if rt.only != "" && rec.Name != rt.only {
		return false
	}
	if rt.except != "" && rec.Name == rt.except {
		return false
	}
	return true
}

// writerSink writes lines to an io.Writer (stdout or stderr).
type writerSink struct {
	name string
	w    io.Writer
}

func newConsoleSink(name string, target string) *writerSink {
	w := io.Writer(os.Stderr)
	if target == "stdout" {
		w = os.Stdout
	}
	return &writerSink{name: name, w: w}
}

func (s *writerSink) Name() string { return s.name }

func (s *writerSink) Emit(line string) error {
	_, err := io.WriteString(s.w, line+"\n")
	return err
}

// fileSink appends lines to a single log file. Rotation is out of
// scope; the file lives for the pipeline lifetime.
type fileSink struct {
	f *os.File
}

func newFileSink(path string) (*fileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmtErrorf("failed to open log file '%s': %w", path, err)
	}
	return &fileSink{f: f}, nil
}

func (s *fileSink) Name() string { return "file" }

func (s *fileSink) Emit(line string) error {
	_, err := s.f.WriteString(line + "\n")
	return err
}

func (s *fileSink) Sync() error { return s.f.Sync() }

func (s *fileSink) Close() error { return s.f.Close() }

// ringSink appends lines to the in-memory ring buffer read by GetLogs.
type ringSink struct {
	ring *RingBuffer
}

func (s *ringSink) Name() string { return "log_reader" }

func (s *ringSink) Emit(line string) error {
	s.ring.Append(line)
	return nil
}

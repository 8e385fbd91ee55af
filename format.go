// FILE: format.go
package locust

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Template selects one of the two fixed line layouts.
type Template int

const (
	// TemplateDefault renders "[<timestamp>] <host>/<LEVEL>/<name>: <message>"
	TemplateDefault Template = iota
	// TemplatePlain renders the message only
	TemplatePlain
)

// hostname is the machine name truncated at the first dot, resolved
// once per process.
var hostname = shortHostname()

func shortHostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	if i := strings.IndexByte(h, '.'); i >= 0 {
		h = h[:i]
	}
	return h
}

// Formatter converts a Record into a single line according to a fixed
// template. Formatters are immutable after construction and safe for
// concurrent use.
type Formatter struct {
	template        Template
	timestampFormat string
}

// NewFormatter creates a formatter for the given template.
func NewFormatter(template Template, timestampFormat string) *Formatter {
	if timestampFormat == "" {
		timestampFormat = defaultConfig.TimestampFormat
	}
	return &Formatter{
		template:        template,
		timestampFormat: timestampFormat,
	}
}

// Format renders the record. Positional arguments are interpolated
// into the message here, at delivery time, not on the producer's hot
// path. Captured fault context, if any, is appended on its own lines.
func (f *Formatter) Format(rec Record) string {
	msg := rec.Message
	if len(rec.Args) > 0 {
		msg = fmt.Sprintf(rec.Message, rec.Args...)
	}

	var b strings.Builder
	if f.template == TemplatePlain {
		b.WriteString(msg)
	} else {
		b.WriteByte('[')
		b.WriteString(rec.TimeStamp.Format(f.timestampFormat))
		b.WriteString("] ")
		b.WriteString(hostname)
		b.WriteByte('/')
		b.WriteString(levelToString(rec.Level))
		b.WriteByte('/')
		b.WriteString(rec.Name)
		b.WriteString(": ")
		b.WriteString(msg)
	}

	if rec.Fault != nil {
		b.WriteByte('\n')
		b.WriteString(rec.Fault.Detail())
	}
	return b.String()
}

// compactDumper renders arbitrary values for log output without
// pointer addresses or capacity noise.
var compactDumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// renderValue converts an arbitrary value (typically a recovered panic
// payload) to a log-friendly string.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return val
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, time.Time:
		return fmt.Sprintf("%v", val)
	default:
		// Structs, maps, slices and pointers go through spew for a
		// deterministic, bounded-depth dump.
		var b bytes.Buffer
		compactDumper.Fdump(&b, val)
		return string(bytes.TrimSpace(b.Bytes()))
	}
}

package pipe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/bft-labs/logshim/pkg/log"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Pipe dispatches records read from a stream to a Logger.
type Pipe struct {
	logger log.Logger
	diag   zerolog.Logger
	tag    atomic.Value // string
}

// New creates a Pipe writing to logger. diag receives reports about
// malformed input.
func New(logger log.Logger, defaultTag string, diag zerolog.Logger) *Pipe {
	if logger == nil {
		logger = log.Default()
	}
	p := &Pipe{logger: logger, diag: diag}
	p.tag.Store(defaultTag)
	return p
}

// Tag returns the current default tag.
func (p *Pipe) Tag() string {
	return p.tag.Load().(string)
}

// SetTag replaces the default tag. Safe to call while Run is active.
func (p *Pipe) SetTag(tag string) {
	p.tag.Store(tag)
}

// Dispatch logs rec, substituting the default tag for "-".
func (p *Pipe) Dispatch(rec Record) int {
	tag := rec.Tag
	if tag == DefaultTagMarker {
		tag = p.Tag()
	}
	return log.Log(p.logger, rec.Level, tag, rec.Message)
}

// Run reads r line by line until EOF or ctx is done and returns the number
// of records dispatched. Malformed lines are reported to the diagnostics
// logger and skipped.
func (p *Pipe) Run(ctx context.Context, r io.Reader) (int, error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 64*1024), maxLineBytes)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	n := 0
	lineNo := 0
	for {
		select {
		case <-ctx.Done():
			return n, ctx.Err()

		case line, ok := <-lines:
			if !ok {
				var err error
				select {
				case err = <-scanErr:
				default:
				}
				if err != nil {
					return n, fmt.Errorf("read input: %w", err)
				}
				return n, nil
			}
			lineNo++

			rec, err := ParseRecord(line)
			if err != nil {
				if errors.Is(err, ErrMalformedRecord) && isBlank(line) {
					continue
				}
				p.diag.Warn().Err(err).Int("line", lineNo).Msg("skipping record")
				continue
			}
			p.Dispatch(rec)
			n++
		}
	}
}

func isBlank(s string) bool {
	for _, c := range s {
		if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}
	return true
}

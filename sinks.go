package nanolog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Sink delivers one finished line to a destination. Each line arrives as a
// single Write call; implementations must not retain the slice.
type Sink interface {
	Write(line []byte) error
}

// WriterSink forwards lines to an io.Writer.
type WriterSink struct {
	out io.Writer
}

func NewWriterSink(out io.Writer) *WriterSink {
	return &WriterSink{out: out}
}

func (s *WriterSink) Write(line []byte) error {
	_, err := s.out.Write(line)
	return err
}

// terminalSink writes to the package stdout writer, resolved at write time
// so tests can swap it.
type terminalSink struct{}

func (terminalSink) Write(line []byte) error {
	_, err := stdout.Write(line)
	return err
}

// FileSink appends lines to dir/name.ext. The file is opened and closed on
// every write; no handle is held between lines, so the file stays movable
// and shareable with other processes.
type FileSink struct {
	dir  string
	name string
	ext  string
}

func NewFileSink(dir, name, ext string) *FileSink {
	return &FileSink{dir: dir, name: name, ext: ext}
}

// Path returns the target file path.
func (s *FileSink) Path() string {
	return filepath.Join(s.dir, s.name+"."+s.ext)
}

// Write creates the directory if missing, then appends the line. A failed
// directory creation is reported to the diagnostic writer and the open is
// still attempted; a failed open drops the line and returns the error.
func (s *FileSink) Write(line []byte) error {
	if _, err := os.Stat(s.dir); err != nil {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			fmt.Fprintf(diag, "nanolog: cannot create log directory %s: %v\n", s.dir, err)
		}
	}

	f, err := os.OpenFile(s.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(line)
	return err
}

// MemorySink retains the most recent lines in a fixed-size ring. Useful
// where no terminal or filesystem is available, and for tests.
type MemorySink struct {
	mu   sync.Mutex
	buf  []string
	next int
	size int
}

func NewMemorySink(capacity int) *MemorySink {
	if capacity <= 0 {
		capacity = 1
	}
	return &MemorySink{buf: make([]string, capacity)}
}

func (s *MemorySink) Write(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf[s.next] = string(line)
	s.next = (s.next + 1) % len(s.buf)
	if s.size < len(s.buf) {
		s.size++
	}
	return nil
}

// Lines returns a snapshot of the retained lines, oldest first.
func (s *MemorySink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, s.size)
	if s.size < len(s.buf) {
		return append(out, s.buf[:s.size]...)
	}
	out = append(out, s.buf[s.next:]...)
	return append(out, s.buf[:s.next]...)
}

// Len returns the number of retained lines.
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Reset discards all retained lines.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.buf {
		s.buf[i] = ""
	}
	s.next, s.size = 0, 0
}

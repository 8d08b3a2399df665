package nanolog

import (
	"bytes"
	"strconv"
	"sync"

	"github.com/max-chem-eng/nanolog/models"
)

var lineBufferPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

// renderLine composes the output line for a record:
//
//	color? [seq] L : [tag] [timestamp]? body reset? \n
//
// With withBanner the new-execution banner is prepended, so banner and
// first record reach the sink as a single write. The returned slice is
// owned by the caller.
func renderLine(cfg Config, r *models.Record, withBanner bool) []byte {
	buf := lineBufferPool.Get().(*bytes.Buffer)
	buf.Reset()

	if withBanner {
		buf.WriteString(NewExecutionBanner)
	}
	if cfg.UseColor {
		buf.WriteString(r.Level.Color())
	}
	buf.WriteByte('[')
	buf.WriteString(strconv.FormatUint(r.Seq, 10))
	buf.WriteString("] ")
	buf.WriteString(r.Level.Char())
	buf.WriteString(" : [")
	buf.WriteString(r.Tag)
	buf.WriteString("] ")
	if cfg.EnableTimestamp {
		buf.WriteByte('[')
		buf.WriteString(r.Timestamp.Format(TimeFormat))
		buf.WriteString("] ")
	}
	buf.WriteString(r.Body)
	if cfg.UseColor {
		buf.WriteString(models.ColorReset)
	}
	buf.WriteByte('\n')

	line := make([]byte, buf.Len())
	copy(line, buf.Bytes())
	lineBufferPool.Put(buf)
	return line
}

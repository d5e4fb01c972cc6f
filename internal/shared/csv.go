package shared

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

// CSVStreamer writes CSV exports incrementally with periodic flushes so
// large listings never buffer fully in memory. Comment lines carry export
// metadata above the header row.
type CSVStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	flushEvery   int
	pendingLines int
}

// NewCSVStreamer wraps w for streaming CSV output. Excel expects CRLF.
func NewCSVStreamer(w io.Writer) *CSVStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &CSVStreamer{buf: buf, csv: writer, flushEvery: csvFlushEvery}
}

// WriteComment emits a raw metadata line above the CSV body.
func (s *CSVStreamer) WriteComment(line string) error {
	if s == nil || s.buf == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if !strings.HasSuffix(line, "\r\n") {
		line = strings.TrimSuffix(line, "\n")
		line += "\r\n"
	}
	_, err := s.buf.WriteString(line)
	return err
}

// WriteRow emits one record, flushing every flushEvery rows.
func (s *CSVStreamer) WriteRow(row []string) error {
	if s == nil || s.csv == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.flushEvery > 0 && s.pendingLines >= s.flushEvery {
		return s.Flush()
	}
	return nil
}

// Flush drains both the CSV writer and the underlying buffer.
func (s *CSVStreamer) Flush() error {
	if s == nil || s.csv == nil || s.buf == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	s.pendingLines = 0
	return nil
}

// Close flushes any pending output.
func (s *CSVStreamer) Close() error {
	return s.Flush()
}

// FormatDecimal renders a monetary value for CSV cells.
func FormatDecimal(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

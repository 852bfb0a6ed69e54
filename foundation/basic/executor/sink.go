// File: sink.go
// Title: Program Output Sinks
// Description: Destinations for PRINT output.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial sinks

package executor

import (
	"io"
	"sync"
)

// Sink receives program output one line at a time, without the newline
type Sink interface {
	PrintLine(text string) error
}

type writerSink struct {
	w io.Writer
}

// WriterSink writes each line followed by a newline to w
func WriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) PrintLine(text string) error {
	_, err := io.WriteString(s.w, text+"\n")
	return err
}

// Recorder collects printed lines in memory
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// PrintLine implements Sink
func (r *Recorder) PrintLine(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, text)
	return nil
}

// Lines returns a copy of the recorded lines
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// Last returns the most recent line and whether there was one
func (r *Recorder) Last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.lines) == 0 {
		return "", false
	}
	return r.lines[len(r.lines)-1], true
}

// Reset discards the recorded lines
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

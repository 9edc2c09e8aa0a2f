package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/pkg/errors"
)

// Submitter receives a completed row once the player confirms it
type Submitter interface {
	Submit(ctx context.Context, word string) error
}

// TranscriptSubmitter appends each submitted word as one line
type TranscriptSubmitter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTranscriptSubmitter(w io.Writer) *TranscriptSubmitter {
	return &TranscriptSubmitter{w: w}
}

func (s *TranscriptSubmitter) Submit(ctx context.Context, word string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.w, word); err != nil {
		return errors.Wrapf(err, "write transcript for %q", word)
	}
	return nil
}

// LogSubmitter only logs submissions
type LogSubmitter struct{}

func (LogSubmitter) Submit(_ context.Context, word string) error {
	log.Printf("submitted %s", word)
	return nil
}

// Package game hosts the guess row in a tcell screen.
//
// The host owns the row state and the board. Each key event is translated,
// reduced with row.Apply, echoed on screen, and on OK handed to the
// Submitter before the row is cleared for the next line.
package game

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/wordrow/board"
	"github.com/lixenwraith/wordrow/input"
	"github.com/lixenwraith/wordrow/row"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	errorBlinkMs  = 300
	eventBuffer   = 100
)

// Config wires the collaborators around the row
type Config struct {
	Lines     int
	Submitter Submitter
	Feedback  Feedback
}

// Game is a single session: one board, one editable row
type Game struct {
	screen        tcell.Screen
	width, height int

	state row.State
	board *board.Board

	submitter Submitter
	feedback  Feedback

	// Absorbed key flash on the cursor cell
	cursorError     bool
	cursorErrorTime time.Time

	err error
}

// New creates a game on an already initialized screen
func New(screen tcell.Screen, cfg Config) (*Game, error) {
	b, err := board.New(cfg.Lines)
	if err != nil {
		return nil, err
	}

	g := &Game{
		screen:    screen,
		board:     b,
		submitter: cfg.Submitter,
		feedback:  cfg.Feedback,
	}
	if g.submitter == nil {
		g.submitter = LogSubmitter{}
	}
	if g.feedback == nil {
		g.feedback = silent{}
	}

	g.width, g.height = screen.Size()
	return g, nil
}

// State returns the row as currently edited
func (g *Game) State() row.State {
	return g.state
}

// Board returns the session board
func (g *Game) Board() *board.Board {
	return g.board
}

// HandleEvent processes one terminal event
// Returns false when the session should end
func (g *Game) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	res := input.Process(ev)
	switch res.Action {
	case input.ActionQuit:
		return false
	case input.ActionResize:
		g.handleResize()
		return true
	case input.ActionKey:
		return g.handleKey(ctx, res.Event)
	}
	return true
}

func (g *Game) handleKey(ctx context.Context, kev row.KeyEvent) bool {
	before := g.state
	sig, after := row.Apply(kev, before)
	outcome := row.Classify(before, after, sig)
	g.state = after

	g.feedback.PlayOutcome(outcome)
	if outcome == row.OutcomeIgnored {
		g.cursorError = true
		g.cursorErrorTime = time.Now()
	} else {
		g.cursorError = false
	}

	if sig != row.OK {
		return true
	}
	return g.submit(ctx)
}

func (g *Game) submit(ctx context.Context) bool {
	if err := g.board.Submit(g.state); err != nil {
		g.err = err
		return false
	}
	word := g.state.Word()
	log.Printf("line %d/%d submitted: %s", g.board.Current(), g.board.Lines(), word)

	if err := g.submitter.Submit(ctx, word); err != nil {
		g.err = errors.Wrap(err, "submit")
		return false
	}

	g.state = row.State{}
	if g.board.Full() {
		log.Printf("board full after %d lines", g.board.Lines())
		return false
	}
	return true
}

func (g *Game) handleResize() {
	g.screen.Sync()
	g.width, g.height = g.screen.Size()
}

// Run pumps screen events until quit, a full board, an error or ctx end
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	g.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return g.err
			}
			if !g.HandleEvent(ctx, ev) {
				g.draw()
				return g.err
			}

		case <-ticker.C:
			g.draw()
		}
	}
}

// Package session layers timed play on top of one generated layout: a
// countdown driven by explicit ticks, pause/resume, the player's letter
// entries, and scoring. A session belongs to exactly one layout instance
// and is never reused across puzzles.
package session

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/palabrota/crucigrama/gen"
	"github.com/palabrota/crucigrama/tier"
)

type State int

const (
	Running State = iota
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	}
	return "unknown"
}

var (
	ErrFinished     = errors.New("session already finished")
	ErrCellNotInUse = errors.New("cell is not part of the puzzle")
	ErrBadLetter    = errors.New("letter must be A-Z")
)

// Session tracks one play-through. The "time reached zero" and "all
// cells correct" events each fire at most once per session, no matter how
// many ticks or entries arrive afterwards.
type Session struct {
	mu        sync.Mutex
	params    tier.Params
	solution  map[gen.Cell]byte
	entered   map[gen.Cell]byte
	remaining int
	state     State
	score     int
	solved    bool
	onTimeUp  func()
	onSolved  func()
}

type Option func(*Session)

// OnTimeUp registers a callback for the countdown reaching zero.
func OnTimeUp(fn func()) Option {
	return func(s *Session) { s.onTimeUp = fn }
}

// OnSolved registers a callback for the puzzle being fully correct.
func OnSolved(fn func()) Option {
	return func(s *Session) { s.onSolved = fn }
}

func New(layout *gen.Layout, t tier.Tier, opts ...Option) *Session {
	s := &Session{
		params:    t.Params(),
		solution:  layout.Letters(),
		entered:   make(map[gen.Cell]byte),
		remaining: t.Params().TimeLimitSeconds,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tick advances the countdown by one second. Paused and finished
// sessions ignore ticks.
func (s *Session) Tick() {
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return
	}
	var fire func()
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		log.Debug().Msg("session time expired")
		fire = s.finish(false)
	}
	s.mu.Unlock()
	if fire != nil {
		fire()
	}
}

func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Running {
		s.state = Paused
	}
}

func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Paused {
		s.state = Running
	}
}

// SetCell records the player's letter for a cell. Lowercase input is
// accepted and uppercased. Entering the last missing correct letter
// completes the puzzle, awards the tier's points and fires the solved
// event.
func (s *Session) SetCell(row, col int, letter byte) error {
	s.mu.Lock()
	fire, err := s.setCell(row, col, letter)
	s.mu.Unlock()
	if fire != nil {
		fire()
	}
	return err
}

func (s *Session) setCell(row, col int, letter byte) (func(), error) {
	if s.state == Finished {
		return nil, ErrFinished
	}
	cell := gen.Cell{Row: row, Col: col}
	if _, ok := s.solution[cell]; !ok {
		return nil, ErrCellNotInUse
	}
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return nil, ErrBadLetter
	}
	s.entered[cell] = letter
	if s.allCorrect() {
		s.score += s.params.Points
		s.solved = true
		log.Debug().Int("score", s.score).Msg("puzzle solved")
		return s.finish(true), nil
	}
	return nil, nil
}

// ClearCell removes the player's letter from a cell.
func (s *Session) ClearCell(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Finished {
		return ErrFinished
	}
	cell := gen.Cell{Row: row, Col: col}
	if _, ok := s.solution[cell]; !ok {
		return ErrCellNotInUse
	}
	delete(s.entered, cell)
	return nil
}

// Letter returns the player's letter at a cell, if any.
func (s *Session) Letter(row, col int) (byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	letter, ok := s.entered[gen.Cell{Row: row, Col: col}]
	return letter, ok
}

// CorrectCells counts entered letters that match the solution.
func (s *Session) CorrectCells() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.correctCells()
}

func (s *Session) TotalCells() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.solution)
}

func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Solved reports whether the session ended with the puzzle complete, as
// opposed to the clock running out.
func (s *Session) Solved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solved
}

func (s *Session) correctCells() int {
	n := 0
	for cell, want := range s.solution {
		if s.entered[cell] == want {
			n++
		}
	}
	return n
}

func (s *Session) allCorrect() bool {
	return s.correctCells() == len(s.solution)
}

// finish transitions to Finished and hands the event callback back to
// the caller, which fires it after releasing the mutex so callbacks may
// call any Session method. The state guard in every caller keeps the
// events edge-triggered.
func (s *Session) finish(solved bool) func() {
	s.state = Finished
	if solved {
		return s.onSolved
	}
	return s.onTimeUp
}

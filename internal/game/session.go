package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/deck"
	"github.com/arcanaland/highlow/internal/round"
)

// RoundLimit is the number of counted rounds in a game.
const RoundLimit = 5

var (
	// ErrNotPlaying is returned for a command that needs a game in progress.
	ErrNotPlaying = errors.New("no game in progress")
	// ErrGameInProgress is returned by Start while a game is being played.
	ErrGameInProgress = errors.New("game in progress")
)

// Phase is the lifecycle state of a Session.
type Phase int

const (
	Idle Phase = iota
	Playing
	Ended
	Quit
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	case Quit:
		return "quit"
	}
	return "idle"
}

// Verdict is the final comparison of scores when a game ends.
type Verdict int

const (
	NoVerdict Verdict = iota
	PlayerWins
	DealerWins
	Tie
)

func (v Verdict) String() string {
	switch v {
	case PlayerWins:
		return "player"
	case DealerWins:
		return "dealer"
	case Tie:
		return "tie"
	}
	return "none"
}

// Status classifies the result of a guess.
type Status string

const (
	StatusNoCards  Status = "no-cards"
	StatusDraw     Status = "draw"
	StatusResolved Status = "resolved"
)

// Result is what a guess hands back to the presentation layer.
type Result struct {
	Status Status
	Round  *round.Record
	// RoundNumber labels the round in the history: the number of the
	// round being replayed for a draw, the completed count otherwise.
	RoundNumber int
	GameEnded   bool
	Verdict     Verdict
}

// Snapshot is a read-only copy of session state.
type Snapshot struct {
	ID              string
	Phase           Phase
	Current         card.ID
	PlayerScore     int
	DealerScore     int
	RoundsCompleted int
	Remaining       int
	History         []round.Record
	Verdict         Verdict
}

// Option configures a Session.
type Option func(*Session)

// WithDeckFactory sets how a fresh deck is built on Start.
func WithDeckFactory(f func() *deck.Deck) Option {
	return func(s *Session) {
		s.newDeck = f
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// Session runs one player's games. It is not safe for concurrent use;
// callers serialize commands.
type Session struct {
	newDeck func() *deck.Deck
	log     *zap.SugaredLogger

	id              string
	deck            *deck.Deck
	current         card.ID
	roundsCompleted int
	playerScore     int
	dealerScore     int
	history         []round.Record
	phase           Phase
	verdict         Verdict
}

// New returns an idle session.
func New(opts ...Option) *Session {
	s := &Session{
		newDeck: deck.New,
		log:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start deals a fresh deck and reveals the first card. A finished or quit
// game is discarded; a game still being played must be quit first.
func (s *Session) Start() (Snapshot, error) {
	if s.phase == Playing {
		return s.Snapshot(), fmt.Errorf("start: %w", ErrGameInProgress)
	}

	s.id = uuid.NewString()
	s.deck = s.newDeck()
	s.roundsCompleted = 0
	s.playerScore = 0
	s.dealerScore = 0
	s.history = nil
	s.verdict = NoVerdict

	first, err := s.deck.Draw()
	if err != nil {
		// A freshly built deck always holds cards; a stacked empty deck
		// leaves the session idle.
		s.log.Errorw("cannot reveal first card", "session", s.id, "error", err)
		s.phase = Idle
		s.current = 0
		return s.Snapshot(), fmt.Errorf("start: %w", err)
	}
	s.current = first
	s.phase = Playing

	s.log.Debugw("game started", "session", s.id, "card", first.String(), "remaining", s.deck.Len())
	return s.Snapshot(), nil
}

// Guess draws the next card and settles the player's call against the
// current card.
//
// An empty deck yields StatusNoCards and leaves the session untouched.
// A draw is recorded but not counted, and the drawn card becomes current.
// A counted round updates the scores; the fifth one ends the game.
func (s *Session) Guess(g round.Guess) (Result, error) {
	if s.phase != Playing {
		return Result{}, fmt.Errorf("guess: %w", ErrNotPlaying)
	}
	if g != round.Higher && g != round.Lower {
		return Result{}, fmt.Errorf("guess: invalid guess %d", g)
	}

	next, err := s.deck.Draw()
	if errors.Is(err, deck.ErrEmptyDeck) {
		s.log.Debugw("deck exhausted", "session", s.id)
		return Result{Status: StatusNoCards}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("guess: %w", err)
	}

	rec := round.Resolve(s.current, next, g)
	s.history = append(s.history, rec)
	s.current = next

	if !rec.Counted() {
		s.log.Debugw("round drawn", "session", s.id, "base", rec.Base.String(), "new", rec.New.String())
		return Result{
			Status:      StatusDraw,
			Round:       &rec,
			RoundNumber: s.roundsCompleted + 1,
		}, nil
	}

	if rec.Winner == round.Player {
		s.playerScore++
	} else {
		s.dealerScore++
	}
	s.roundsCompleted++

	s.log.Debugw("round resolved",
		"session", s.id,
		"round", s.roundsCompleted,
		"guess", g.String(),
		"outcome", rec.Outcome.String(),
		"player", s.playerScore,
		"dealer", s.dealerScore,
	)

	res := Result{
		Status:      StatusResolved,
		Round:       &rec,
		RoundNumber: s.roundsCompleted,
	}
	if s.roundsCompleted >= RoundLimit {
		s.end()
		res.GameEnded = true
		res.Verdict = s.verdict
	}
	return res, nil
}

func (s *Session) end() {
	switch {
	case s.playerScore > s.dealerScore:
		s.verdict = PlayerWins
	case s.dealerScore > s.playerScore:
		s.verdict = DealerWins
	default:
		s.verdict = Tie
	}
	s.phase = Ended
	s.log.Debugw("game ended", "session", s.id, "verdict", s.verdict.String())
}

// Quit abandons the game in progress. No verdict is computed; scores and
// history stay readable until the next Start.
func (s *Session) Quit() error {
	if s.phase != Playing {
		return fmt.Errorf("quit: %w", ErrNotPlaying)
	}
	s.phase = Quit
	s.log.Debugw("game quit", "session", s.id, "rounds", s.roundsCompleted)
	return nil
}

// ID returns the identifier of the current game, empty before Start.
func (s *Session) ID() string { return s.id }

func (s *Session) Phase() Phase { return s.phase }

// Current returns the face-up card, 0 before Start.
func (s *Session) Current() card.ID { return s.current }

func (s *Session) PlayerScore() int { return s.playerScore }

func (s *Session) DealerScore() int { return s.dealerScore }

func (s *Session) RoundsCompleted() int { return s.roundsCompleted }

func (s *Session) Verdict() Verdict { return s.verdict }

// Remaining returns the number of undrawn cards.
func (s *Session) Remaining() int {
	if s.deck == nil {
		return 0
	}
	return s.deck.Len()
}

// History returns a copy of the round records in play order.
func (s *Session) History() []round.Record {
	out := make([]round.Record, len(s.history))
	copy(out, s.history)
	return out
}

// Snapshot copies the full session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:              s.id,
		Phase:           s.phase,
		Current:         s.current,
		PlayerScore:     s.playerScore,
		DealerScore:     s.dealerScore,
		RoundsCompleted: s.roundsCompleted,
		Remaining:       s.Remaining(),
		History:         s.History(),
		Verdict:         s.verdict,
	}
}

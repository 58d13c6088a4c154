package round

import (
	"fmt"
	"strings"

	"github.com/arcanaland/highlow/internal/card"
)

// Guess is the player's call on the next card.
type Guess int

const (
	Higher Guess = iota + 1
	Lower
)

func (g Guess) String() string {
	switch g {
	case Higher:
		return "higher"
	case Lower:
		return "lower"
	}
	return "unknown"
}

// ParseGuess accepts "higher", "h", "lower" or "l" in any case.
func ParseGuess(s string) (Guess, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "higher", "h", "hi", "high":
		return Higher, nil
	case "lower", "l", "lo", "low":
		return Lower, nil
	}
	return 0, fmt.Errorf("invalid guess %q: expected higher or lower", s)
}

// Outcome is the result of a round from the player's side.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	}
	return "draw"
}

// Side names who took a round.
type Side int

const (
	None Side = iota
	Player
	Dealer
)

func (s Side) String() string {
	switch s {
	case Player:
		return "player"
	case Dealer:
		return "dealer"
	}
	return "none"
}

// Record is one resolved comparison. Records are values and are never
// modified after Resolve returns them.
type Record struct {
	Base    card.ID
	New     card.ID
	Guess   Guess
	Outcome Outcome
	Winner  Side
}

// Counted reports whether the round counts toward the score.
func (r Record) Counted() bool {
	return r.Outcome != Draw
}

// Compare ranks next against base. It returns +1 when next is higher,
// -1 when it is lower and 0 on a draw.
//
// Cards of equal value and equal color draw, e.g. 7 of Clubs against
// 7 of Spades. Equal value with different colors goes to the black card.
func Compare(base, next card.ID) int {
	b := card.Describe(base)
	n := card.Describe(next)

	if b.Value != n.Value {
		if n.Value > b.Value {
			return 1
		}
		return -1
	}

	if b.Color == n.Color {
		return 0
	}
	if n.Color == card.Black {
		return 1
	}
	return -1
}

// Resolve settles a guess of next against base.
func Resolve(base, next card.ID, guess Guess) Record {
	rec := Record{Base: base, New: next, Guess: guess}

	comp := Compare(base, next)
	if comp == 0 {
		rec.Outcome = Draw
		rec.Winner = None
		return rec
	}

	if (guess == Higher && comp == 1) || (guess == Lower && comp == -1) {
		rec.Outcome = Win
		rec.Winner = Player
	} else {
		rec.Outcome = Loss
		rec.Winner = Dealer
	}
	return rec
}

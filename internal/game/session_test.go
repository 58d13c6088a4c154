package game

import (
	"errors"
	"testing"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/deck"
	"github.com/arcanaland/highlow/internal/round"
)

// stacked returns a deck factory dealing codes in the given order: the
// first code is the opening card.
func stacked(t *testing.T, codes ...string) Option {
	t.Helper()
	ids := make([]card.ID, len(codes))
	for i, c := range codes {
		id, err := card.Parse(c)
		if err != nil {
			t.Fatalf("card.Parse(%q): %v", c, err)
		}
		ids[len(codes)-1-i] = id
	}
	return WithDeckFactory(func() *deck.Deck {
		return deck.FromIDs(ids...)
	})
}

func mustStart(t *testing.T, s *Session) Snapshot {
	t.Helper()
	snap, err := s.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return snap
}

func mustGuess(t *testing.T, s *Session, g round.Guess) Result {
	t.Helper()
	res, err := s.Guess(g)
	if err != nil {
		t.Fatalf("Guess(%v): %v", g, err)
	}
	return res
}

func TestStart(t *testing.T) {
	s := New()
	if s.Phase() != Idle {
		t.Fatalf("new session phase = %v, want idle", s.Phase())
	}

	snap := mustStart(t, s)
	if snap.Phase != Playing {
		t.Errorf("phase after Start = %v, want playing", snap.Phase)
	}
	if !snap.Current.Valid() {
		t.Errorf("current card %d is not valid", snap.Current)
	}
	if snap.Remaining != card.DeckSize-1 {
		t.Errorf("remaining = %d, want %d", snap.Remaining, card.DeckSize-1)
	}
	if snap.ID == "" {
		t.Error("session id not set")
	}
	if snap.PlayerScore != 0 || snap.DealerScore != 0 || snap.RoundsCompleted != 0 || len(snap.History) != 0 {
		t.Errorf("state not reset: %+v", snap)
	}
}

func TestGuessHigherWins(t *testing.T) {
	s := New(stacked(t, "5C", "9D"))
	mustStart(t, s)

	res := mustGuess(t, s, round.Higher)
	if res.Status != StatusResolved {
		t.Fatalf("status = %v, want resolved", res.Status)
	}
	if res.Round.Outcome != round.Win || res.Round.Winner != round.Player {
		t.Errorf("round = %+v, want player win", res.Round)
	}
	if s.RoundsCompleted() != 1 || s.PlayerScore() != 1 || s.DealerScore() != 0 {
		t.Errorf("rounds=%d player=%d dealer=%d", s.RoundsCompleted(), s.PlayerScore(), s.DealerScore())
	}
	if s.Current() != res.Round.New {
		t.Errorf("current = %d, want drawn card %d", s.Current(), res.Round.New)
	}
	if res.RoundNumber != 1 || res.GameEnded {
		t.Errorf("result = %+v", res)
	}
}

func TestGuessLowerWins(t *testing.T) {
	s := New(stacked(t, "9C", "5H"))
	mustStart(t, s)

	res := mustGuess(t, s, round.Lower)
	if res.Round.Outcome != round.Win {
		t.Errorf("outcome = %v, want win", res.Round.Outcome)
	}
	if s.RoundsCompleted() != 1 || s.PlayerScore() != 1 {
		t.Errorf("rounds=%d player=%d", s.RoundsCompleted(), s.PlayerScore())
	}
}

func TestDrawIsNotCounted(t *testing.T) {
	s := New(stacked(t, "2C", "7C", "7S", "9C"))
	mustStart(t, s)

	mustGuess(t, s, round.Higher)

	res := mustGuess(t, s, round.Lower)
	if res.Status != StatusDraw {
		t.Fatalf("status = %v, want draw", res.Status)
	}
	if res.Round.Winner != round.None || res.Round.Outcome != round.Draw {
		t.Errorf("draw record = %+v", res.Round)
	}
	if res.RoundNumber != 2 {
		t.Errorf("draw labelled round %d, want 2", res.RoundNumber)
	}
	if s.RoundsCompleted() != 1 || s.PlayerScore() != 1 || s.DealerScore() != 0 {
		t.Errorf("draw changed score: rounds=%d player=%d dealer=%d", s.RoundsCompleted(), s.PlayerScore(), s.DealerScore())
	}
	if want, _ := card.Parse("7S"); s.Current() != want {
		t.Errorf("current = %s, want 7 of Spades", s.Current())
	}

	mustGuess(t, s, round.Higher)
	if s.RoundsCompleted() != 2 {
		t.Errorf("rounds = %d, want 2", s.RoundsCompleted())
	}

	hist := s.History()
	if len(hist) != 3 {
		t.Fatalf("history has %d records, want 3", len(hist))
	}
	if hist[1].Outcome != round.Draw {
		t.Errorf("history[1] = %v, want draw", hist[1].Outcome)
	}
}

func TestGameEndsAfterFiveCountedRounds(t *testing.T) {
	ladder := []string{"2C", "3C", "4C", "5C", "6C", "7C"}
	H, L := round.Higher, round.Lower

	tests := []struct {
		name    string
		guesses []round.Guess
		player  int
		dealer  int
		verdict Verdict
	}{
		{"5-0", []round.Guess{H, H, H, H, H}, 5, 0, PlayerWins},
		{"4-1", []round.Guess{H, H, H, H, L}, 4, 1, PlayerWins},
		{"3-2", []round.Guess{H, L, H, L, H}, 3, 2, PlayerWins},
		{"2-3", []round.Guess{L, H, L, H, L}, 2, 3, DealerWins},
		{"0-5", []round.Guess{L, L, L, L, L}, 0, 5, DealerWins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(stacked(t, ladder...))
			mustStart(t, s)

			var res Result
			for i, g := range tt.guesses {
				res = mustGuess(t, s, g)
				if i < len(tt.guesses)-1 && (res.GameEnded || s.Phase() != Playing) {
					t.Fatalf("game ended early after round %d", i+1)
				}
			}

			if !res.GameEnded || s.Phase() != Ended {
				t.Fatalf("game not ended: result=%+v phase=%v", res, s.Phase())
			}
			if s.PlayerScore() != tt.player || s.DealerScore() != tt.dealer {
				t.Errorf("score %d-%d, want %d-%d", s.PlayerScore(), s.DealerScore(), tt.player, tt.dealer)
			}
			if res.Verdict != tt.verdict || s.Verdict() != tt.verdict {
				t.Errorf("verdict = %v/%v, want %v", res.Verdict, s.Verdict(), tt.verdict)
			}
			if s.RoundsCompleted() != RoundLimit {
				t.Errorf("rounds = %d, want %d", s.RoundsCompleted(), RoundLimit)
			}

			if _, err := s.Guess(H); !errors.Is(err, ErrNotPlaying) {
				t.Errorf("guess after end: err = %v, want ErrNotPlaying", err)
			}
		})
	}
}

func TestNoCardsLeavesStateUnchanged(t *testing.T) {
	s := New(stacked(t, "5C", "9D"))
	mustStart(t, s)
	mustGuess(t, s, round.Higher)

	before := s.Snapshot()
	res := mustGuess(t, s, round.Higher)
	if res.Status != StatusNoCards || res.Round != nil {
		t.Fatalf("result = %+v, want no-cards", res)
	}

	after := s.Snapshot()
	if after.Phase != Playing || after.Current != before.Current ||
		after.RoundsCompleted != before.RoundsCompleted || len(after.History) != len(before.History) {
		t.Errorf("state changed: before=%+v after=%+v", before, after)
	}
}

func TestGuessOutsidePlaying(t *testing.T) {
	s := New()
	if _, err := s.Guess(round.Higher); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("guess while idle: err = %v, want ErrNotPlaying", err)
	}
	if s.Phase() != Idle || len(s.History()) != 0 {
		t.Error("rejected guess mutated state")
	}
}

func TestGuessRejectsUnknownDirection(t *testing.T) {
	s := New(stacked(t, "5C", "9D"))
	mustStart(t, s)
	if _, err := s.Guess(round.Guess(0)); err == nil {
		t.Fatal("expected error")
	}
	if s.Remaining() != 1 {
		t.Error("rejected guess drew a card")
	}
}

func TestQuit(t *testing.T) {
	s := New(stacked(t, "5C", "9D", "2H"))
	mustStart(t, s)
	mustGuess(t, s, round.Higher)
	mustGuess(t, s, round.Higher)

	if err := s.Quit(); err != nil {
		t.Fatalf("Quit: %v", err)
	}
	if s.Phase() != Quit {
		t.Errorf("phase = %v, want quit", s.Phase())
	}
	if s.Verdict() != NoVerdict {
		t.Errorf("quit computed verdict %v", s.Verdict())
	}
	if s.PlayerScore() != 1 || s.DealerScore() != 1 || len(s.History()) != 2 {
		t.Errorf("quit altered state: player=%d dealer=%d history=%d", s.PlayerScore(), s.DealerScore(), len(s.History()))
	}

	if _, err := s.Guess(round.Higher); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("guess after quit: err = %v", err)
	}
	if err := s.Quit(); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("second quit: err = %v", err)
	}
}

func TestQuitWhileIdle(t *testing.T) {
	if err := New().Quit(); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("err = %v, want ErrNotPlaying", err)
	}
}

func TestRestartDiscardsState(t *testing.T) {
	s := New()
	first := mustStart(t, s)
	if _, err := s.Guess(round.Higher); err != nil {
		t.Fatal(err)
	}
	if err := s.Quit(); err != nil {
		t.Fatal(err)
	}

	second := mustStart(t, s)
	if second.ID == first.ID {
		t.Error("restart reused session id")
	}
	if second.Phase != Playing || second.RoundsCompleted != 0 || len(second.History) != 0 ||
		second.PlayerScore != 0 || second.DealerScore != 0 || second.Verdict != NoVerdict {
		t.Errorf("restart kept state: %+v", second)
	}
}

func TestHistoryIsCopy(t *testing.T) {
	s := New(stacked(t, "5C", "9D"))
	mustStart(t, s)
	mustGuess(t, s, round.Higher)

	h := s.History()
	h[0].Outcome = round.Loss
	if s.History()[0].Outcome != round.Win {
		t.Error("History exposes internal slice")
	}
}

func TestStartWithEmptyDeckStaysIdle(t *testing.T) {
	s := New(WithDeckFactory(func() *deck.Deck { return deck.FromIDs() }))
	snap, err := s.Start()
	if !errors.Is(err, deck.ErrEmptyDeck) {
		t.Errorf("err = %v, want ErrEmptyDeck", err)
	}
	if snap.Phase != Idle {
		t.Errorf("phase = %v, want idle", snap.Phase)
	}
}

func TestStartWhilePlayingIsRejected(t *testing.T) {
	s := New(stacked(t, "5C", "9D", "2H"))
	mustStart(t, s)
	mustGuess(t, s, round.Higher)
	before := s.Snapshot()

	snap, err := s.Start()
	if !errors.Is(err, ErrGameInProgress) {
		t.Fatalf("err = %v, want ErrGameInProgress", err)
	}
	after := s.Snapshot()
	if snap.ID != before.ID || after.ID != before.ID {
		t.Errorf("session id changed: %q -> %q", before.ID, after.ID)
	}
	if after.Phase != Playing || after.PlayerScore != 1 || after.DealerScore != 0 ||
		after.RoundsCompleted != 1 || len(after.History) != 1 ||
		after.Current != before.Current || after.Remaining != before.Remaining {
		t.Errorf("rejected Start changed state: before %+v, after %+v", before, after)
	}
}

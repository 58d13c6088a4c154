package render

import (
	"slices"
	"strings"
	"testing"

	"github.com/arcanaland/highlow/internal/game"
	"github.com/arcanaland/highlow/internal/round"
)

func init() {
	SetColor(false)
}

func TestCardName(t *testing.T) {
	if got := CardName(38); got != "Queen of Hearts (Q♥)" {
		t.Errorf("CardName(38) = %q", got)
	}
	if got := CardName(1); got != "Ace of Clubs (A♣)" {
		t.Errorf("CardName(1) = %q", got)
	}
}

func TestOutcome(t *testing.T) {
	win := round.Record{Outcome: round.Win, Winner: round.Player}
	loss := round.Record{Outcome: round.Loss, Winner: round.Dealer}
	draw := round.Record{}

	tests := []struct {
		res  game.Result
		want string
	}{
		{game.Result{Status: game.StatusNoCards}, MsgNoCards},
		{game.Result{Status: game.StatusDraw, Round: &draw}, MsgDraw},
		{game.Result{Status: game.StatusResolved, Round: &win}, MsgCorrect},
		{game.Result{Status: game.StatusResolved, Round: &loss}, MsgWrong},
	}
	for _, tt := range tests {
		if got := Outcome(tt.res); got != tt.want {
			t.Errorf("Outcome(%v) = %q, want %q", tt.res.Status, got, tt.want)
		}
	}
}

func TestVerdict(t *testing.T) {
	tests := map[game.Verdict]string{
		game.PlayerWins: MsgPlayerWins,
		game.DealerWins: MsgDealerWins,
		game.Tie:        MsgTie,
		game.NoVerdict:  "",
	}
	for v, want := range tests {
		if got := Verdict(v); got != want {
			t.Errorf("Verdict(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestHistoryLine(t *testing.T) {
	rec := round.Record{Base: 5, New: 22, Guess: round.Higher, Outcome: round.Win, Winner: round.Player}
	want := "Round 2: 5♣ ----------> Higher 9♦  Player wins"
	if got := HistoryLine(rec, 2); got != want {
		t.Errorf("HistoryLine() = %q, want %q", got, want)
	}

	draw := round.Record{Base: 7, New: 46, Guess: round.Lower}
	if got := HistoryLine(draw, 3); !strings.HasSuffix(got, "(Draw - round not counted)") {
		t.Errorf("draw line = %q", got)
	}
}

func TestRoundLabels(t *testing.T) {
	recs := []round.Record{
		{Outcome: round.Win, Winner: round.Player},
		{Outcome: round.Draw},
		{Outcome: round.Draw},
		{Outcome: round.Loss, Winner: round.Dealer},
		{Outcome: round.Win, Winner: round.Player},
	}
	if got, want := RoundLabels(recs), []int{1, 2, 2, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("RoundLabels() = %v, want %v", got, want)
	}
}

func TestHistoryTable(t *testing.T) {
	out, err := History(nil)
	if err != nil || !strings.Contains(out, "No rounds") {
		t.Errorf("empty history = %q, %v", out, err)
	}

	recs := []round.Record{
		{Base: 5, New: 22, Guess: round.Higher, Outcome: round.Win, Winner: round.Player},
		{Base: 22, New: 2, Guess: round.Higher, Outcome: round.Loss, Winner: round.Dealer},
	}
	out, err = History(recs)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	for _, want := range []string{"Round", "5♣", "9♦", "2♣", "Player wins", "Dealer wins"} {
		if !strings.Contains(out, want) {
			t.Errorf("history table missing %q:\n%s", want, out)
		}
	}
}

func TestScoreboard(t *testing.T) {
	out := Scoreboard(game.Snapshot{PlayerScore: 3, DealerScore: 1, RoundsCompleted: 4, Remaining: 40})
	for _, want := range []string{"Score", "Player: 3", "Dealer: 1", "4/5", "40"} {
		if !strings.Contains(out, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, out)
		}
	}
}

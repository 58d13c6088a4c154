// Package render turns game state and round results into terminal text.
// It holds no game logic; everything it prints comes from the values the
// game package returns.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/game"
	"github.com/arcanaland/highlow/internal/round"
)

const (
	MsgCorrect    = "You guessed correctly!"
	MsgWrong      = "Sorry, wrong guess."
	MsgDraw       = "It was a draw (same rank and colour). This round will not be counted."
	MsgNoCards    = "No more cards in deck!"
	MsgQuit       = "You quit the game."
	MsgPlayerWins = "Game Over. You win!"
	MsgDealerWins = "Game Over. Dealer wins!"
	MsgTie        = "Game Over. It's a tie!"
)

// SetColor turns colored output on or off for both color libraries.
func SetColor(enabled bool) {
	color.NoColor = !enabled
	if enabled {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
}

var (
	redCard   = color.New(color.FgRed, color.Bold).SprintFunc()
	blackCard = color.New(color.FgHiWhite, color.Bold).SprintFunc()
	good      = color.New(color.FgGreen).SprintFunc()
	bad       = color.New(color.FgRed).SprintFunc()
	muted     = color.New(color.FgHiBlack).SprintFunc()
	label     = color.New(color.FgCyan).SprintFunc()
)

// CardName returns e.g. "Queen of Hearts (Q♥)", colored by suit color.
func CardName(id card.ID) string {
	info := card.Describe(id)
	text := fmt.Sprintf("%s (%s)", info.Name, info.Short())
	if info.Color == card.Red {
		return redCard(text)
	}
	return blackCard(text)
}

// Short returns the compact card form, colored by suit color.
func Short(id card.ID) string {
	info := card.Describe(id)
	if info.Color == card.Red {
		return redCard(info.Short())
	}
	return blackCard(info.Short())
}

// Outcome returns the message shown after a guess.
func Outcome(res game.Result) string {
	switch res.Status {
	case game.StatusNoCards:
		return bad(MsgNoCards)
	case game.StatusDraw:
		return muted(MsgDraw)
	}
	if res.Round != nil && res.Round.Winner == round.Player {
		return good(MsgCorrect)
	}
	return bad(MsgWrong)
}

// Verdict returns the end-of-game message.
func Verdict(v game.Verdict) string {
	switch v {
	case game.PlayerWins:
		return good(MsgPlayerWins)
	case game.DealerWins:
		return bad(MsgDealerWins)
	case game.Tie:
		return MsgTie
	}
	return ""
}

// Quit returns the acknowledgement shown when a game is abandoned.
func Quit() string {
	return muted(MsgQuit)
}

// HistoryLine renders one round the way the history list shows it, e.g.
// "Round 2: 5♣ ----------> Higher 9♦  Player wins".
func HistoryLine(rec round.Record, n int) string {
	guess := rec.Guess.String()
	if guess != "" {
		guess = strings.ToUpper(guess[:1]) + guess[1:]
	}

	line := fmt.Sprintf("%s %s ----------> %s %s  ",
		label("Round "+strconv.Itoa(n)+":"), Short(rec.Base), guess, Short(rec.New))

	return line + outcomeText(rec)
}

func outcomeText(rec round.Record) string {
	switch rec.Winner {
	case round.Player:
		return good("Player wins")
	case round.Dealer:
		return bad("Dealer wins")
	}
	return muted("(Draw - round not counted)")
}

// RoundLabels numbers records as the history shows them: a counted round
// gets its completed count, a draw the number of the round it replays.
func RoundLabels(recs []round.Record) []int {
	labels := make([]int, len(recs))
	counted := 0
	for i, rec := range recs {
		if rec.Counted() {
			counted++
			labels[i] = counted
		} else {
			labels[i] = counted + 1
		}
	}
	return labels
}

// History renders the round records as a table.
func History(recs []round.Record) (string, error) {
	if len(recs) == 0 {
		return muted("No rounds played yet."), nil
	}

	data := pterm.TableData{{"Round", "Card", "Guess", "Next", "Result"}}
	for i, n := range RoundLabels(recs) {
		rec := recs[i]
		data = append(data, []string{
			strconv.Itoa(n),
			Short(rec.Base),
			rec.Guess.String(),
			Short(rec.New),
			outcomeText(rec),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

// Scoreboard renders the score box.
func Scoreboard(snap game.Snapshot) string {
	body := fmt.Sprintf("%s %d\n%s %d\n%s %d/%d\n%s %d",
		label("Player:"), snap.PlayerScore,
		label("Dealer:"), snap.DealerScore,
		label("Round: "), snap.RoundsCompleted, game.RoundLimit,
		label("Deck:  "), snap.Remaining,
	)
	return pterm.DefaultBox.
		WithTitle("Score").
		WithTitleTopLeft().
		WithHorizontalPadding(2).
		Sprint(body)
}

// CardBack is shown in place of a face when no game is on the table.
func CardBack() string {
	rows := []string{
		"+---------+",
		"|/\\/\\/\\/\\/|",
		"|\\/\\/\\/\\/\\|",
		"|/\\/\\/\\/\\/|",
		"|\\/\\/\\/\\/\\|",
		"|/\\/\\/\\/\\/|",
		"+---------+",
	}
	return strings.Join(rows, "\n")
}

package card

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies a playing card in a standard 52-card deck (1..52).
//
// Cards are numbered by suit, thirteen per suit, in the order Clubs,
// Diamonds, Hearts, Spades. Within a suit the order is Ace, 2..10, Jack,
// Queen, King. The image set uses the same numbering (1.png..52.png).
type ID int

const (
	MinID     ID = 1
	MaxID     ID = 52
	DeckSize     = int(MaxID)
	suitSize     = 13
	highAce      = 14
	lowAce       = 1
)

type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
	return suitNames[s]
}

// Symbol returns the unicode pip for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}

// Color returns the color of the suit: Clubs and Spades are black,
// Diamonds and Hearts are red.
func (s Suit) Color() Color {
	if s == Clubs || s == Spades {
		return Black
	}
	return Red
}

// Rank is the face of a card, Ace=1 through King=13.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = []string{"", "Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King"}

func (r Rank) String() string {
	if r < Ace || r > King {
		return "Rank(" + strconv.Itoa(int(r)) + ")"
	}
	return rankNames[r]
}

// Code returns the one or two character rank code used in short names.
func (r Rank) Code() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return r.String()
}

type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Info holds the attributes derived from a card ID.
type Info struct {
	ID    ID
	Suit  Suit
	Rank  Rank
	Color Color
	Value int    // comparison value, 1..14
	Name  string // e.g. "Queen of Hearts"
	Image string // image file name within a card image set
}

// Short returns the compact form of the card, e.g. "Q♥".
func (i Info) Short() string {
	return i.Rank.Code() + i.Suit.Symbol()
}

// InvalidCardIDError reports a card identifier outside 1..52.
type InvalidCardIDError struct {
	Input string
}

func (e *InvalidCardIDError) Error() string {
	return fmt.Sprintf("invalid card id %q: must be 1..%d or a code like QH", e.Input, MaxID)
}

// Valid reports whether id is within 1..52.
func (id ID) Valid() bool {
	return id >= MinID && id <= MaxID
}

func (id ID) String() string {
	if !id.Valid() {
		return "ID(" + strconv.Itoa(int(id)) + ")"
	}
	return Describe(id).Name
}

// Describe returns the suit, rank, color and value of a card.
// It panics with *InvalidCardIDError if id is not in 1..52; the deck only
// ever hands out valid ids, so reaching the panic is a bug in the caller.
func Describe(id ID) Info {
	if !id.Valid() {
		panic(&InvalidCardIDError{Input: strconv.Itoa(int(id))})
	}

	index := int(id) - 1
	suit := Suit(index / suitSize)
	rank := Rank(index%suitSize + 1)
	color := suit.Color()

	// A black ace is high, a red ace is low.
	value := int(rank)
	if rank == Ace {
		value = lowAce
		if color == Black {
			value = highAce
		}
	}

	return Info{
		ID:    id,
		Suit:  suit,
		Rank:  rank,
		Color: color,
		Value: value,
		Name:  rank.String() + " of " + suit.String(),
		Image: ImageName(id),
	}
}

// FromParts returns the ID of the card with the given suit and rank.
func FromParts(s Suit, r Rank) (ID, error) {
	if s < Clubs || s > Spades || r < Ace || r > King {
		return 0, &InvalidCardIDError{Input: r.String() + " of " + s.String()}
	}
	return ID(int(s)*suitSize + int(r)), nil
}

// ImageName returns the image file name for a card, e.g. "37.png".
func ImageName(id ID) string {
	return strconv.Itoa(int(id)) + ".png"
}

// Parse reads a card from user input. It accepts the numeric id ("37") or
// a rank code followed by a suit letter ("QH", "10s", "ac").
func Parse(s string) (ID, error) {
	in := strings.TrimSpace(s)
	if n, err := strconv.Atoi(in); err == nil {
		id := ID(n)
		if !id.Valid() {
			return 0, &InvalidCardIDError{Input: s}
		}
		return id, nil
	}

	code := strings.ToUpper(in)
	if len(code) < 2 {
		return 0, &InvalidCardIDError{Input: s}
	}

	var suit Suit
	switch code[len(code)-1] {
	case 'C':
		suit = Clubs
	case 'D':
		suit = Diamonds
	case 'H':
		suit = Hearts
	case 'S':
		suit = Spades
	default:
		return 0, &InvalidCardIDError{Input: s}
	}

	var rank Rank
	switch rc := code[:len(code)-1]; rc {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		n, err := strconv.Atoi(rc)
		if err != nil || n < 2 || n > 10 {
			return 0, &InvalidCardIDError{Input: s}
		}
		rank = Rank(n)
	}

	id, err := FromParts(suit, rank)
	if err != nil {
		return 0, &InvalidCardIDError{Input: s}
	}
	return id, nil
}

// All returns the 52 ids in canonical order.
func All() []ID {
	ids := make([]ID, 0, DeckSize)
	for id := MinID; id <= MaxID; id++ {
		ids = append(ids, id)
	}
	return ids
}

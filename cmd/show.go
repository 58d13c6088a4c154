package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/highlow/internal/art"
	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/config"
	"github.com/arcanaland/highlow/internal/imageset"
	"github.com/arcanaland/highlow/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <card>",
	Short: "Display a card and how it ranks",
	Long: `Show displays a card's suit, rank, colour and comparison value.
Cards are given by number (1-52) or by code, e.g. QH, 10s, ac.

With --art the card face is drawn as ANSI art from an image set in your
library (XDG_DATA_HOME/highlow/cards) or a path given with --set.

Examples:
  highlow show 38
  highlow show QH
  highlow show --art --set ./my-cards AS`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		useArt := cfg.Art
		if cmd.Flags().Changed("art") {
			useArt, _ = cmd.Flags().GetBool("art")
		}

		var ansiArt, altText, setName string
		if useArt {
			setFlag, _ := cmd.Flags().GetString("set")
			setPath, err := config.GetImageSetPath(cfg, setFlag)
			if err != nil {
				return err
			}

			s, err := imageset.LoadSet(setPath)
			if err != nil {
				return fmt.Errorf("error loading image set: %v", err)
			}

			converter := art.NewConverter(config.GetCacheDir(), cfg.ArtWidth)
			ansiArt, err = converter.Render(s.ImagePath(id))
			if err != nil {
				return fmt.Errorf("error loading card art: %v", err)
			}
			altText = s.AltText(id)
			setName = s.Name
		}

		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80
		}

		displayCard(cmd.OutOrStdout(), card.Describe(id), ansiArt, altText, setName, width)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("art", false, "Draw the card as ANSI art from an image set")
	showCmd.Flags().StringP("set", "s", "", "Image set from your library or a path (default from config)")
}

// displayCard prints the card info, with the ANSI art on the left when
// there is any.
func displayCard(w io.Writer, info card.Info, ansiArt, altText, setName string, width int) {
	infoLines := []string{
		colorize.CyanString("Card:  ") + render.CardName(info.ID),
		colorize.CyanString("ID:    ") + colorize.HiWhiteString("%d", int(info.ID)),
		colorize.CyanString("Suit:  ") + colorize.HiWhiteString("%s %s", info.Suit, info.Suit.Symbol()),
		colorize.CyanString("Rank:  ") + colorize.HiWhiteString("%s", info.Rank),
		colorize.CyanString("Color: ") + colorize.HiWhiteString("%s", info.Color),
		colorize.CyanString("Value: ") + colorize.HiWhiteString("%d", info.Value),
		colorize.CyanString("Image: ") + colorize.HiWhiteString("%s", info.Image),
	}
	if setName != "" {
		infoLines = append(infoLines, colorize.CyanString("Set:   ")+colorize.HiWhiteString("%s", setName))
	}

	var ansiLines []string
	maxAnsiWidth := 0
	if ansiArt != "" {
		ansiLines = strings.Split(strings.TrimSuffix(ansiArt, "\n"), "\n")
		for _, line := range ansiLines {
			if vw := art.VisibleWidth(line); vw > maxAnsiWidth {
				maxAnsiWidth = vw
			}
		}
	}

	spacing := 4
	infoStartCol := 0
	if maxAnsiWidth > 0 {
		infoStartCol = maxAnsiWidth + spacing
	}

	// Leave a small margin, but always at least 20 columns for text
	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	if altText != "" && altText != info.Name {
		infoLines = append(infoLines, "", colorize.CyanString("Description:"))
		infoLines = append(infoLines, wrapText(altText, infoWidth)...)
	}

	fmt.Fprintln(w)

	maxLines := max(len(ansiLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(w, "  ")
		if i < len(ansiLines) {
			fmt.Fprint(w, ansiLines[i])
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-art.VisibleWidth(ansiLines[i])))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/highlow/internal/config"
	"github.com/arcanaland/highlow/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card image set directory",
	Long: `Validate checks that an image set has a set.toml, a decodable image for
each of the 52 cards (1.png through 52.png) and a card back.
Without a path the default set from your config is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var setPath string
		if len(args) == 1 {
			setPath = args[0]
			if _, err := os.Stat(setPath); os.IsNotExist(err) {
				return fmt.Errorf("image set directory not found: %s", setPath)
			}
		} else {
			p, err := config.GetImageSetPath(cfg, "")
			if err != nil {
				return err
			}
			setPath = p
		}

		v := validator.NewValidator(setPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Image set '%s' is valid.\n", setPath)
		} else {
			fmt.Fprintf(out, "❌ Image set '%s' has %d validation errors:\n", setPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

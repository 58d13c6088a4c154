package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/highlow/internal/config"
	"github.com/arcanaland/highlow/internal/imageset"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage card image sets in your library",
	Long: `Commands for managing the card image sets used to draw cards as terminal art.
An image set is a directory holding set.toml, 1.png through 52.png and a card back.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List image sets in your library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if _, err := os.Stat(cfg.ImageLibrary); os.IsNotExist(err) {
			fmt.Fprintf(out, "Image library at %s does not exist.\n", cfg.ImageLibrary)
			fmt.Fprintln(out, "Run 'highlow deck init' to create it.")
			return nil
		}

		libraryPath, err := filepath.EvalSymlinks(cfg.ImageLibrary)
		if err != nil {
			return fmt.Errorf("error resolving symbolic link: %v", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading image library: %v", err)
		}

		found := 0
		for _, entry := range entries {
			entryPath := filepath.Join(libraryPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil || !fileInfo.IsDir() {
				continue
			}

			s, err := imageset.LoadSet(entryPath)
			if err != nil {
				// Not an image set, skip
				continue
			}
			found++

			if entry.Name() == cfg.DefaultSet {
				fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", entry.Name(), s.Name)
			} else {
				fmt.Fprintf(out, "  %s (%s)\n", entry.Name(), s.Name)
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No image sets found in your library.")
			fmt.Fprintln(out, "You can add sets by copying them to:", libraryPath)
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [set_name]",
	Short: "Set the default image set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		setPath, err := config.GetImageSetPath(cfg, name)
		if err != nil {
			return err
		}

		// Make sure it is a loadable set
		if _, err := imageset.LoadSet(setPath); err != nil {
			return fmt.Errorf("not a valid image set - %v", err)
		}

		if err := config.SetDefaultSet(name); err != nil {
			return fmt.Errorf("error setting default image set: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default image set: %s\n", name)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the image library",
	Long: `Init creates the image library and an empty default set with its set.toml.
Copy 1.png through 52.png and back.png into the set directory, then run
'highlow validate' on it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if err := os.MkdirAll(cfg.ImageLibrary, 0755); err != nil {
			return fmt.Errorf("error creating image library: %v", err)
		}
		fmt.Fprintln(out, "Image library initialized at:", cfg.ImageLibrary)

		setDir := filepath.Join(cfg.ImageLibrary, cfg.DefaultSet)
		manifest := filepath.Join(setDir, imageset.ManifestFile)
		if _, err := os.Stat(manifest); os.IsNotExist(err) {
			m := imageset.Manifest{
				Set: imageset.SetSection{
					ID:            cfg.DefaultSet,
					Name:          cfg.DefaultSet,
					Version:       "1.0",
					SchemaVersion: "1.0",
				},
				CardBack: &imageset.CardBackSection{Image: imageset.DefaultBack, AltText: "Card Back"},
			}
			if err := imageset.WriteManifest(setDir, m); err != nil {
				return err
			}
			fmt.Fprintln(out, "Created image set at:", setDir)
		}

		fmt.Fprintln(out, "Config file:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
}

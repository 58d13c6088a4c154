package imageset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/highlow/internal/card"
)

// ManifestFile is the metadata file every image set carries.
const ManifestFile = "set.toml"

// DefaultBack is the card back image used when the manifest names none.
const DefaultBack = "back.png"

// Set is a directory of card faces named 1.png..52.png plus a card back.
type Set struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	Path        string

	Back        string // card back file, relative to Path
	BackAltText string

	config *Manifest
}

// LoadSet loads an image set from a directory
func LoadSet(setPath string) (*Set, error) {
	manifestPath := filepath.Join(setPath, ManifestFile)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s not found in %s", ManifestFile, setPath)
	}

	var config Manifest
	if _, err := toml.DecodeFile(manifestPath, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", ManifestFile, err)
	}

	s := &Set{
		ID:          config.Set.ID,
		Name:        config.Set.Name,
		Version:     config.Set.Version,
		Author:      config.Set.Author,
		Description: config.Set.Description,
		Path:        setPath,
		Back:        DefaultBack,
		BackAltText: "Card Back",
		config:      &config,
	}

	if config.CardBack != nil {
		if config.CardBack.Image != "" {
			s.Back = config.CardBack.Image
		}
		if config.CardBack.AltText != "" {
			s.BackAltText = config.CardBack.AltText
		}
	}

	if s.Name == "" {
		s.Name = filepath.Base(setPath)
	}

	return s, nil
}

// ImagePath returns the face image for a card.
func (s *Set) ImagePath(id card.ID) string {
	return filepath.Join(s.Path, card.ImageName(id))
}

// BackPath returns the card back image.
func (s *Set) BackPath() string {
	return filepath.Join(s.Path, s.Back)
}

// AltText returns the descriptive text for a card face, falling back to
// the card name.
func (s *Set) AltText(id card.ID) string {
	if s.config != nil {
		if alt, ok := s.config.AltText[fmt.Sprint(int(id))]; ok && alt != "" {
			return alt
		}
	}
	return card.Describe(id).Name
}

// WriteManifest writes a manifest for a new set into dir.
func WriteManifest(dir string, m Manifest) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating image set directory: %v", err)
	}

	file, err := os.Create(filepath.Join(dir, ManifestFile))
	if err != nil {
		return fmt.Errorf("error creating %s: %v", ManifestFile, err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(m); err != nil {
		return fmt.Errorf("error encoding %s: %v", ManifestFile, err)
	}
	return nil
}

// Manifest is the decoded set.toml.
type Manifest struct {
	Set      SetSection        `toml:"set"`
	CardBack *CardBackSection  `toml:"card_back,omitempty"`
	AltText  map[string]string `toml:"alt_text,omitempty"`
}

type SetSection struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	Version       string `toml:"version"`
	SchemaVersion string `toml:"schema_version"`
	Author        string `toml:"author,omitempty"`
	License       string `toml:"license,omitempty"`
	Description   string `toml:"description,omitempty"`
}

type CardBackSection struct {
	Image   string `toml:"image"`
	AltText string `toml:"alt_text,omitempty"`
}

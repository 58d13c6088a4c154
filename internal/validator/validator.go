package validator

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/imageset"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	SetPath string
	Results ValidationResults

	backImage string
}

func NewValidator(setPath string) *Validator {
	return &Validator{
		SetPath: setPath,
		Results: ValidationResults{},
	}
}

// Validate checks the manifest, every card face and the card back.
// A missing or unparsable manifest is returned as an error; everything
// else is collected in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateManifest(); err != nil {
		return v.Results, err
	}

	v.validateFaces()
	v.validateCardBack()
	v.validateExtraFiles()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...interface{}) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateManifest() error {
	manifestPath := filepath.Join(v.SetPath, imageset.ManifestFile)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return fmt.Errorf("%s not found in %s", imageset.ManifestFile, v.SetPath)
	}

	var m imageset.Manifest
	if _, err := toml.DecodeFile(manifestPath, &m); err != nil {
		return fmt.Errorf("error parsing %s: %v", imageset.ManifestFile, err)
	}

	if m.Set.ID == "" {
		v.errorf("set.id is required in %s", imageset.ManifestFile)
	}
	if m.Set.Name == "" {
		v.warnf("set.name is empty; the directory name will be shown instead")
	}
	if m.Set.Version == "" {
		v.errorf("set.version is required in %s", imageset.ManifestFile)
	}
	if m.Set.SchemaVersion == "" {
		v.errorf("set.schema_version is required in %s", imageset.ManifestFile)
	} else if m.Set.SchemaVersion != "1.0" {
		v.errorf("unsupported schema_version: %s (supported: 1.0)", m.Set.SchemaVersion)
	}

	v.backImage = imageset.DefaultBack
	if m.CardBack != nil && m.CardBack.Image != "" {
		v.backImage = m.CardBack.Image
	}

	for key := range m.AltText {
		id, err := card.Parse(key)
		if err != nil || fmt.Sprint(int(id)) != key {
			v.warnf("alt_text key %q is not a card id (1..%d)", key, card.MaxID)
		}
	}

	return nil
}

// validateFaces checks that all 52 faces exist, decode and share one size.
func (v *Validator) validateFaces() {
	var first image.Config
	var firstName string

	for _, id := range card.All() {
		name := card.ImageName(id)
		cfg, err := decodeConfig(filepath.Join(v.SetPath, name))
		if os.IsNotExist(err) {
			v.errorf("missing card image: %s (%s)", name, id)
			continue
		}
		if err != nil {
			v.errorf("card image %s cannot be decoded: %v", name, err)
			continue
		}

		if firstName == "" {
			first, firstName = cfg, name
			continue
		}
		if cfg.Width != first.Width || cfg.Height != first.Height {
			v.warnf("%s is %dx%d, %s is %dx%d", name, cfg.Width, cfg.Height, firstName, first.Width, first.Height)
		}
	}

	if firstName != "" && first.Width > first.Height {
		v.warnf("card images are landscape (%dx%d); faces are expected to be portrait", first.Width, first.Height)
	}
}

func (v *Validator) validateCardBack() {
	_, err := decodeConfig(filepath.Join(v.SetPath, v.backImage))
	if os.IsNotExist(err) {
		v.errorf("card back image not found: %s", v.backImage)
		return
	}
	if err != nil {
		v.errorf("card back image %s cannot be decoded: %v", v.backImage, err)
	}
}

// validateExtraFiles warns about files the game will never read.
func (v *Validator) validateExtraFiles() {
	known := map[string]bool{imageset.ManifestFile: true, v.backImage: true}
	for _, id := range card.All() {
		known[card.ImageName(id)] = true
	}

	entries, err := os.ReadDir(v.SetPath)
	if err != nil {
		v.errorf("cannot read image set directory: %v", err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || known[entry.Name()] || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		v.warnf("unexpected file: %s", entry.Name())
	}
}

func decodeConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	return cfg, err
}

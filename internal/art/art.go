package art

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Converter turns card images into ANSI half-block art and keeps the
// results in a cache directory keyed by source path, size and mtime.
type Converter struct {
	CacheDir string
	Width    int // output width in terminal columns
}

func NewConverter(cacheDir string, width int) *Converter {
	return &Converter{CacheDir: cacheDir, Width: width}
}

// Render returns ANSI art for the image at imagePath, generating and
// caching it on first use.
func (c *Converter) Render(imagePath string) (string, error) {
	info, err := os.Stat(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %v", err)
	}

	if err := os.MkdirAll(c.CacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %v", err)
	}

	key := fmt.Sprintf("%s|%d|%d", imagePath, c.Width, info.ModTime().UnixNano())
	cachePath := filepath.Join(c.CacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))

	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	ansiArt, err := c.generate(imagePath)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(cachePath, []byte(ansiArt), 0644); err != nil {
		return "", fmt.Errorf("failed to write ANSI art to file: %v", err)
	}

	return ansiArt, nil
}

func (c *Converter) generate(imagePath string) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	return FromImage(img, c.Width), nil
}

// FromImage converts img to ANSI art width columns wide. Each character
// is an upper half block: its foreground is the top pixel pair and its
// background the bottom pair, so pixels come out roughly square.
func FromImage(img image.Image, width int) string {
	bounds := img.Bounds()
	height := rowsFor(bounds.Dx(), bounds.Dy(), width)

	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			c1, _ := colorful.MakeColor(colorAt(resized, x, y))
			c2, _ := colorful.MakeColor(colorAt(resized, x+1, y))
			c3, _ := colorful.MakeColor(colorAt(resized, x, y+1))
			c4, _ := colorful.MakeColor(colorAt(resized, x+1, y+1))

			fg := averageColor(c1, c2)
			bg := averageColor(c3, c4)

			buffer.WriteString(halfBlock(fg, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// rowsFor returns how many text rows keep the image aspect ratio at
// the given column count. A row shows two pixel rows.
func rowsFor(imgW, imgH, width int) int {
	if imgW <= 0 || imgH <= 0 {
		return 1
	}
	rows := (width*imgH + imgW) / (2 * imgW)
	if rows < 1 {
		rows = 1
	}
	return rows
}

func colorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func halfBlock(fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m", r1, g1, b1, r2, g2, b2)
}

// VisibleWidth returns the printed width of s, ignoring ANSI escapes.
func VisibleWidth(s string) int {
	return len([]rune(Strip(s)))
}

// Strip removes ANSI escape sequences from s.
func Strip(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

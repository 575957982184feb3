// Package asset loads the image files the frontends draw with
package asset

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/snake/constants"
)

// Sprites holds the decoded ball and segment images
type Sprites struct {
	Ball    image.Image
	Segment image.Image

	// Placeholder flags report which images fell back to a solid fill
	BallPlaceholder    bool
	SegmentPlaceholder bool
}

// LoadSprites decodes ball.png and snake.png from dir.
// A missing or unreadable file is replaced by a solid cell-sized placeholder;
// every failure is logged and returned, none of them is fatal
func LoadSprites(dir string) (*Sprites, []error) {
	var errs []error
	s := &Sprites{}

	img, err := loadPNG(filepath.Join(dir, constants.BallImageFile))
	if err != nil {
		log.Printf("asset: %v, using placeholder", err)
		errs = append(errs, err)
		img = Placeholder(constants.CellSize, constants.ColorBallFill)
		s.BallPlaceholder = true
	}
	s.Ball = img

	img, err = loadPNG(filepath.Join(dir, constants.SegmentImageFile))
	if err != nil {
		log.Printf("asset: %v, using placeholder", err)
		errs = append(errs, err)
		img = Placeholder(constants.CellSize, constants.ColorSegmentFill)
		s.SegmentPlaceholder = true
	}
	s.Segment = img

	return s, errs
}

// Placeholder returns a size x size image filled with c
func Placeholder(size int, c color.Color) image.Image {
	if size <= 0 {
		size = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

package fonts

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces used by the HUD. Load must run before any draw.
var (
	Regular font.Face
	Small   font.Face
	Title   font.Face
)

// Load parses the bundled Go font and builds the HUD faces.
func Load() error {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	Regular = truetype.NewFace(tt, &truetype.Options{Size: 14})
	Small = truetype.NewFace(tt, &truetype.Options{Size: 10})
	Title = truetype.NewFace(tt, &truetype.Options{Size: 22})
	return nil
}

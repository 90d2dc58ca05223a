// pkg/render/font.go
package render

import (
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFace builds a Go Regular face of the given size. If parsing fails the
// fixed 7x13 bitmap face is returned instead.
func LoadFace(size float64) font.Face {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("Failed to parse embedded font, using basic face: %v", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("Failed to build font face, using basic face: %v", err)
		return basicfont.Face7x13
	}
	return face
}

// pkg/render/tile_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/psiegel-series/zombiebunker/internal/board"
	"github.com/psiegel-series/zombiebunker/internal/defs"
	"github.com/psiegel-series/zombiebunker/pkg/gridmap"
)

// TileOverlay marks cells the player should notice.
type TileOverlay struct {
	Selected *board.Cell
	Hint     []board.Cell
}

// TileRenderer draws the tile grid. The empty slots are pre-rendered once.
type TileRenderer struct {
	layout    gridmap.Layout
	palette   Palette
	fontFace  font.Face
	fillImg   *ebiten.Image
	fillVs    []ebiten.Vertex
	fillIs    []uint16
	slotImage *ebiten.Image
}

func NewTileRenderer(layout gridmap.Layout, palette Palette, face font.Face, screenWidth, screenHeight int) *TileRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &TileRenderer{
		layout:    layout,
		palette:   palette,
		fontFace:  face,
		fillImg:   fillImg,
		fillVs:    make([]ebiten.Vertex, 0, 32),
		fillIs:    make([]uint16, 0, 48),
		slotImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.renderSlots()
	return r
}

func (r *TileRenderer) renderSlots() {
	r.slotImage.Clear()
	for row := 0; row < r.layout.Rows; row++ {
		for col := 0; col < r.layout.Cols; col++ {
			x, y := r.layout.CellToPixel(row, col)
			size := float32(r.layout.CellSize)
			vector.DrawFilledRect(r.slotImage, float32(x), float32(y), size, size, DarkenColor(r.palette.GridAreaColor), false)
			vector.StrokeRect(r.slotImage, float32(x), float32(y), size, size, r.palette.StrokeWidth, r.palette.CellStrokeColor, true)
		}
	}
}

// Draw renders every tile of b over the pre-rendered slots.
func (r *TileRenderer) Draw(screen *ebiten.Image, b *board.Board, overlay TileOverlay) {
	screen.DrawImage(r.slotImage, nil)

	for row := 0; row < r.layout.Rows; row++ {
		for col := 0; col < r.layout.Cols; col++ {
			if kind := b.Get(row, col); kind != defs.TileEmpty {
				r.drawTile(screen, row, col, kind)
			}
		}
	}

	for _, c := range overlay.Hint {
		r.outline(screen, c, WithAlpha(r.palette.HighlightColor, 120), 2)
	}
	if overlay.Selected != nil {
		r.outline(screen, *overlay.Selected, r.palette.HighlightColor, 3)
	}
}

func (r *TileRenderer) drawTile(screen *ebiten.Image, row, col int, kind defs.TileKind) {
	x, y := r.layout.CellToPixel(row, col)
	inset := float32(3)
	size := float32(r.layout.CellSize) - 2*inset
	fill := kind.Color()

	switch {
	case kind.IsWildcard():
		cx, cy := r.layout.CellCenter(row, col)
		r.drawStar(screen, float32(cx), float32(cy), size/2, fill)
	case kind.IsPowered():
		vector.DrawFilledRect(screen, float32(x)+inset, float32(y)+inset, size, size, fill, false)
		vector.StrokeRect(screen, float32(x)+inset, float32(y)+inset, size, size, 3, LightenColor(fill), true)
	default:
		vector.DrawFilledRect(screen, float32(x)+inset, float32(y)+inset, size, size, DarkenColor(fill), false)
		vector.StrokeRect(screen, float32(x)+inset, float32(y)+inset, size, size, 1, fill, true)
	}

	label := kind.Label()
	bounds := text.BoundString(r.fontFace, label)
	cx, cy := r.layout.CellCenter(row, col)
	textColor := r.palette.TextLightColor
	if kind.IsWildcard() || kind.IsPowered() {
		textColor = TextColorOn(fill, r.palette)
	}
	text.Draw(screen, label, r.fontFace, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, textColor)
}

// drawStar fills a five-pointed star with a vector path.
func (r *TileRenderer) drawStar(screen *ebiten.Image, cx, cy, radius float32, clr color.RGBA) {
	path := vector.Path{}
	for i := 0; i < 10; i++ {
		rad := radius
		if i%2 == 1 {
			rad = radius * 0.45
		}
		angle := -math.Pi/2 + math.Pi/5*float64(i)
		px := cx + rad*float32(math.Cos(angle))
		py := cy + rad*float32(math.Sin(angle))
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(clr.R) / 255
		r.fillVs[i].ColorG = float32(clr.G) / 255
		r.fillVs[i].ColorB = float32(clr.B) / 255
		r.fillVs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *TileRenderer) outline(screen *ebiten.Image, c board.Cell, clr color.RGBA, width float32) {
	x, y := r.layout.CellToPixel(c.Row, c.Col)
	size := float32(r.layout.CellSize)
	vector.StrokeRect(screen, float32(x)-1, float32(y)-1, size+2, size+2, width, clr, true)
}

// DrawShiftPreview tints the row or column being dragged.
func (r *TileRenderer) DrawShiftPreview(screen *ebiten.Image, row bool, index int) {
	w, h := r.layout.Size()
	tint := WithAlpha(r.palette.HighlightColor, 40)
	if row {
		x, y := r.layout.CellToPixel(index, 0)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(r.layout.CellSize), tint, false)
		return
	}
	x, y := r.layout.CellToPixel(0, index)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.layout.CellSize), float32(h), tint, false)
}

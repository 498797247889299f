package tui

import (
	"hash/fnv"
	"math"
	"sort"

	"github.com/vovakirdan/void-sectors/internal/assets"
	"github.com/vovakirdan/void-sectors/internal/core"
)

// modelZ places meshes between the background and the sprites.
const modelZ = 50

// camera field of view for DrawModel projection.
const fov = math.Pi / 2

// SpriteSource resolves handles to their terminal representation.
type SpriteSource interface {
	Texture(h core.TextureHandle) (assets.Sprite, bool)
	Mesh(h core.MeshHandle) (assets.Mesh, bool)
}

type drawCall struct {
	z      int
	sprite assets.Sprite

	// Cell-space box, or an ellipse when disc is set.
	x0, y0, x1, y1 float64
	disc           bool
}

type textCall struct {
	x, y float64
	text string
}

// Surface is a core.Surface that rasterizes world-space draw calls into a
// character screen. World sprites map the playfield onto the whole screen
// with y flipped; text keeps screen orientation.
type Surface struct {
	sheet      SpriteSource
	worldW     float64
	worldH     float64
	modelScale float64

	cols, rows int
	calls      []drawCall
	texts      []textCall
}

// NewSurface creates a surface for a worldW x worldH playfield. Meshes are
// scaled by modelScale before projection.
func NewSurface(sheet SpriteSource, worldW, worldH, modelScale float64) *Surface {
	return &Surface{
		sheet:      sheet,
		worldW:     worldW,
		worldH:     worldH,
		modelScale: modelScale,
	}
}

// Begin starts a frame for a cols x rows screen.
func (s *Surface) Begin(cols, rows int) {
	s.cols, s.rows = cols, rows
	s.calls = s.calls[:0]
	s.texts = s.texts[:0]
}

func (s *Surface) cellW() float64 { return s.worldW / float64(core.Max(s.cols, 1)) }
func (s *Surface) cellH() float64 { return s.worldH / float64(core.Max(s.rows, 1)) }

// DrawSprite queues a textured box. Rotation is ignored; glyphs have no
// orientation.
func (s *Surface) DrawSprite(tex core.TextureHandle, x, y, w, h float64, z int, _ float64) {
	sprite, ok := s.sheet.Texture(tex)
	if !ok {
		return
	}
	cw, ch := s.cellW(), s.cellH()
	s.calls = append(s.calls, drawCall{
		z:      z,
		sprite: sprite,
		x0:     (x - w/2) / cw,
		x1:     (x + w/2) / cw,
		y0:     (s.worldH - (y + h/2)) / ch,
		y1:     (s.worldH - (y - h/2)) / ch,
	})
}

// DrawModel projects a mesh through a camera at the origin looking down +z.
// Meshes behind the camera are skipped.
func (s *Surface) DrawModel(mesh core.MeshHandle, tex core.TextureHandle, pos core.Vec3, _ float64) {
	m, ok := s.sheet.Mesh(mesh)
	if !ok || pos.Z <= 0 {
		return
	}
	sprite, ok := s.sheet.Texture(tex)
	if !ok {
		return
	}

	aspect := s.worldW / s.worldH
	focal := 1 / math.Tan(fov/2)
	ndcX := pos.X * focal / (pos.Z * aspect)
	ndcY := pos.Y * focal / pos.Z
	cx := s.worldW / 2 * (1 + ndcX)
	cy := s.worldH / 2 * (1 + ndcY)
	r := m.Radius * s.modelScale * focal / pos.Z * s.worldH / 2

	cw, ch := s.cellW(), s.cellH()
	s.calls = append(s.calls, drawCall{
		z:      modelZ,
		sprite: sprite,
		x0:     (cx - r) / cw,
		x1:     (cx + r) / cw,
		y0:     (s.worldH - (cy + r)) / ch,
		y1:     (s.worldH - (cy - r)) / ch,
		disc:   m.Shape == assets.ShapeDisc,
	})
}

// DrawText queues overlay text at screen pixel (x, y).
func (s *Surface) DrawText(x, y float64, text string) {
	s.texts = append(s.texts, textCall{x: x, y: y, text: text})
}

// TextWidth returns the rendered width of text in screen pixels.
func (s *Surface) TextWidth(text string) float64 {
	return float64(len([]rune(text))) * s.cellW()
}

// ToWorld converts a terminal cell to screen pixels at the cell center.
func (s *Surface) ToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.cellW(), (float64(row) + 0.5) * s.cellH()
}

// Flush paints the queued frame into screen. Higher z is painted first.
func (s *Surface) Flush(screen *core.Screen) {
	screen.Clear()

	sort.SliceStable(s.calls, func(i, j int) bool {
		return s.calls[i].z > s.calls[j].z
	})
	for _, c := range s.calls {
		s.paint(screen, c)
	}

	cw, ch := s.cellW(), s.cellH()
	for _, t := range s.texts {
		screen.DrawText(int(math.Round(t.x/cw)), int(t.y/ch), t.text, core.ColorBrightWhite)
	}
}

func (s *Surface) paint(screen *core.Screen, c drawCall) {
	x0, x1 := int(math.Floor(c.x0)), int(math.Ceil(c.x1))
	y0, y1 := int(math.Floor(c.y0)), int(math.Ceil(c.y1))
	// Anything visible covers at least one cell.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	x0, x1 = core.Max(x0, 0), core.Min(x1, screen.Width())
	y0, y1 = core.Max(y0, 0), core.Min(y1, screen.Height())

	sp := c.sprite
	seed := pathSeed(sp.Path)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if c.disc && !insideEllipse(c, x, y) {
				continue
			}
			switch sp.Pattern {
			case assets.PatternStars:
				if !lit(seed, x, y, sp.Density) {
					continue
				}
			case assets.PatternFrame:
				if x != x0 && x != x1-1 && y != y0 && y != y1-1 {
					continue
				}
			}
			screen.SetColored(x, y, sp.Glyph, sp.Color)
		}
	}
}

func insideEllipse(c drawCall, x, y int) bool {
	rx := (c.x1 - c.x0) / 2
	ry := (c.y1 - c.y0) / 2
	if rx <= 0 || ry <= 0 {
		return true
	}
	dx := (float64(x) + 0.5 - (c.x0 + rx)) / rx
	dy := (float64(y) + 0.5 - (c.y0 + ry)) / ry
	return dx*dx+dy*dy <= 1
}

func pathSeed(path string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(path)) //nolint:errcheck // hash writes never fail
	return h.Sum32()
}

// lit decides whether a starfield cell shows a star. The result depends only
// on the texture and the cell, so the field does not flicker between frames.
func lit(seed uint32, x, y int, density float64) bool {
	v := seed ^ uint32(x)*0x9E3779B1 ^ uint32(y)*0x85EBCA77
	v ^= v >> 15
	v *= 0x2C1B3C6D
	v ^= v >> 12
	return float64(v%1000)/1000 < density
}

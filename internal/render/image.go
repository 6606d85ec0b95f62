package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ImageCanvas is a Canvas backed by an in-memory RGBA image.
type ImageCanvas struct {
	img *image.RGBA
}

// NewImageCanvas creates a transparent w x h canvas.
func NewImageCanvas(w, h int) *ImageCanvas {
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the canvas size in pixels.
func (c *ImageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear resets every pixel to transparent.
func (c *ImageCanvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// FillRect blends a filled rectangle over the canvas.
func (c *ImageCanvas) FillRect(x, y, w, h float64, col color.Color) {
	r := pixelRect(x, y, w, h)
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// StrokeRect draws a one pixel outline along the inside of the rectangle.
func (c *ImageCanvas) StrokeRect(x, y, w, h float64, col color.Color) {
	r := pixelRect(x, y, w, h)
	if r.Empty() {
		return
	}
	src := image.NewUniform(col)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(c.img, e, src, image.Point{}, draw.Over)
	}
}

// FillCircle fills every pixel whose center lies within r of (cx, cy).
func (c *ImageCanvas) FillCircle(cx, cy, r float64, col color.Color) {
	src := image.NewUniform(col)
	minX, maxX := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	minY, maxY := int(math.Floor(cy-r)), int(math.Ceil(cy+r))
	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			dx, dy := float64(px)+0.5-cx, float64(py)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				draw.Draw(c.img, image.Rect(px, py, px+1, py+1), src, image.Point{}, draw.Over)
			}
		}
	}
}

// FillText draws text centered on (cx, cy) using the bitmap faces.
func (c *ImageCanvas) FillText(text string, cx, cy float64, size TextSize, col color.Color) {
	face := imageFace(size)
	m := face.Metrics()
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	width := d.MeasureString(text).Ceil()
	baseline := int(cy) + (m.Ascent.Ceil()-m.Descent.Ceil())/2
	d.Dot = fixed.P(int(cx)-width/2, baseline)
	d.DrawString(text)
}

// Image returns the underlying image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// At returns the pixel at (x, y).
func (c *ImageCanvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// EncodePNG writes the canvas as PNG.
func (c *ImageCanvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// WritePNG renders v at cellSize pixels per cell and writes it to w as PNG.
func WritePNG(w io.Writer, v snake.View, cellSize int) error {
	side := v.Grid.Size * cellSize
	cv := NewImageCanvas(side, side)
	DrawCanvas(cv, v, cellSize)
	return cv.EncodePNG(w)
}

func imageFace(size TextSize) font.Face {
	if size == TextLarge {
		return inconsolata.Bold8x16
	}
	return basicfont.Face7x13
}

func pixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Round(x)),
		int(math.Round(y)),
		int(math.Round(x+w)),
		int(math.Round(y+h)),
	)
}

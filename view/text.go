package view

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/geom"
)

// TextWriter renders a single line of text with freetype.
type TextWriter struct {
	ctx    *freetype.Context
	tt     *truetype.Font
	bounds fixed.Rectangle26_6
}

func NewTextWriter() *TextWriter {
	t := &TextWriter{ctx: freetype.NewContext()}
	t.SetColor(color.White)
	return t
}

func (t *TextWriter) SetColor(c color.Color) { t.ctx.SetSrc(image.NewUniform(c)) }

// SetFont uses Go Regular when tt is nil.
func (t *TextWriter) SetFont(tt *truetype.Font) error {
	if tt == nil {
		var err error
		if tt, err = freetype.ParseFont(goregular.TTF); err != nil {
			return err
		}
	}

	t.tt = tt
	t.ctx.SetFont(tt)
	t.SetFontSize(12, 72)
	return nil
}

func (t *TextWriter) SetFontSize(size float64, dpi float64) {
	t.ctx.SetFontSize(size)
	t.ctx.SetDPI(dpi)
	t.bounds = t.tt.Bounds(fixed.Int26_6(0.5 + (size * dpi * 64 / 72)))
}

// Write draws text at pt and returns the bottom right corner. A nil img
// only measures.
func (t *TextWriter) Write(img draw.Image, text string, pt image.Point) (image.Point, error) {
	t.ctx.SetDst(img)
	var b image.Rectangle
	if img != nil {
		b = img.Bounds()
	}

	t.ctx.SetClip(b)
	f := fixed.P(pt.X, pt.Y)
	min := -t.bounds.Max.Y
	max := -t.bounds.Min.Y - 63

	f.Y -= min
	p, err := t.ctx.DrawString(text, f)
	return image.Pt(int(p.X)>>6, int(p.Y+max-min)>>6), err
}

// GlText caches the rendered text in a gl image until it changes.
type GlText struct {
	imgs   *glutil.Images
	frame  *glutil.Image
	writer *TextWriter
	text   string
	size   float64
	dpi    float64
	dirty  bool
}

func NewGlText(imgs *glutil.Images) *GlText {
	return &GlText{imgs: imgs, writer: NewTextWriter()}
}

func (g *GlText) SetFont(tt *truetype.Font) error {
	g.dirty = true
	return g.writer.SetFont(tt)
}

func (g *GlText) SetFontSize(pt float64, dpi float64) {
	if pt == g.size && dpi == g.dpi {
		return
	}
	g.size, g.dpi = pt, dpi
	g.dirty = true
	g.writer.SetFontSize(pt, dpi)
}

func (g *GlText) Write(text string) {
	if g.text == text {
		return
	}
	g.dirty = true
	g.text = text
}

func (g *GlText) Release() {
	g.text = ""
	if g.frame != nil {
		g.frame.Release()
		g.frame = nil
	}
}

// Draw centers the text on center, given in pixels.
func (g *GlText) Draw(sz size.Event, center image.Point) error {
	if g.text == "" {
		return nil
	}

	if g.dirty {
		if g.frame != nil {
			g.frame.Release()
			g.frame = nil
		}
		zp := image.Point{}
		p, err := g.writer.Write(nil, g.text, zp)
		if err != nil {
			return err
		}
		if p.X <= 0 || p.Y <= 0 {
			return nil
		}

		g.frame = g.imgs.NewImage(p.X, p.Y)
		if _, err = g.writer.Write(g.frame.RGBA, g.text, zp); err != nil {
			g.frame.Release()
			g.frame = nil
			return err
		}
		g.frame.Upload()
		g.dirty = false
	}

	if g.frame == nil {
		return nil
	}

	b := g.frame.RGBA.Bounds()
	pppt := float64(sz.PixelsPerPt)
	w, h := float64(b.Dx())/pppt, float64(b.Dy())/pppt
	x, y := float64(center.X)/pppt-w/2, float64(center.Y)/pppt-h/2
	x1, y1 := geom.Pt(x), geom.Pt(y)
	x2, y2 := geom.Pt(x+w), geom.Pt(y+h)
	g.frame.Draw(
		sz,
		geom.Point{X: x1, Y: y1},
		geom.Point{X: x2, Y: y1},
		geom.Point{X: x1, Y: y2},
		b,
	)

	return nil
}

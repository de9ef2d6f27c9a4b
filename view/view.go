package view

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/frizinak/inbetween-go-swipe/mobile"
	"github.com/frizinak/inbetween-go-swipe/swipe"
	"go.uber.org/zap"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"
)

// SurfaceID is the id of the full screen surface the view attaches to.
const SurfaceID = "view"

const flash = time.Millisecond * 400

// View paints the most recently recognised swipe.
type View struct {
	l       *zap.Logger
	screen  *mobile.Screen
	tracker *swipe.Tracker

	images *glutil.Images
	text   *GlText

	sem   sync.Mutex
	last  swipe.Swipe
	when  time.Time
	count int
}

func New(l *zap.Logger, conf swipe.Config, fingers int, suppressDefault bool) (*View, error) {
	if l == nil {
		l = zap.NewNop()
	}
	v := &View{l: l, screen: mobile.NewScreen()}
	v.screen.Add(SurfaceID, image.Rectangle{})
	v.tracker = swipe.New(l, v.screen, conf)

	_, err := v.tracker.Attach(SurfaceID, fingers, swipe.DetailedHandler(v.swiped), suppressDefault)
	return v, err
}

func (v *View) Tracker() *swipe.Tracker { return v.tracker }

func (v *View) swiped(s swipe.Swipe) {
	v.sem.Lock()
	v.last = s
	v.when = time.Now()
	v.count++
	v.sem.Unlock()
	v.l.Info(
		"swipe",
		zap.String("direction", string(s.Direction)),
		zap.String("direction8", string(s.Direction8)),
		zap.Int("angle", s.Angle),
		zap.Int("length", s.Length),
		zap.Int("fingers", s.Fingers),
	)
}

func (v *View) status() (string, bool) {
	v.sem.Lock()
	defer v.sem.Unlock()
	if v.count == 0 {
		return "swipe anywhere", false
	}

	d := string(v.last.Direction)
	if v.last.Direction8 != "" {
		d = string(v.last.Direction8)
	}
	return fmt.Sprintf(
		"#%d %s  %d°  %dpx  x%d",
		v.count,
		d,
		v.last.Angle,
		v.last.Length,
		v.last.Fingers,
	), time.Since(v.when) < flash
}

func (v *View) initStage(glctx gl.Context) error {
	v.images = glutil.NewImages(glctx)
	v.text = NewGlText(v.images)
	return v.text.SetFont(nil)
}

func (v *View) destroyStage(glctx gl.Context) {
	v.text.Release()
	v.images.Release()
}

func (v *View) paint(glctx gl.Context, sz size.Event) {
	str, recent := v.status()
	var r, g, b float32 = 0.2, 0.2, 0.2
	if recent {
		g = 0.6
	}

	glctx.ClearColor(r, g, b, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)

	v.text.SetFontSize(24, 72*float64(sz.PixelsPerPt))
	v.text.Write(str)
	if err := v.text.Draw(sz, image.Pt(sz.WidthPx/2, sz.HeightPx/2)); err != nil {
		v.l.Error("draw", zap.Error(err))
	}
}

type filter func(interface{}) interface{}
type window interface {
	Send(event interface{})
	Publish()
	RequiresViewportUpdate() bool
}

func (v *View) loop(w window, events <-chan interface{}, f filter) {
	var glctx gl.Context
	var sz size.Event
	vpUpdate := w.RequiresViewportUpdate()
	for e := range events {
		switch e := f(e).(type) {
		case lifecycle.Event:
			switch e.Crosses(lifecycle.StageVisible) {
			case lifecycle.CrossOn:
				glctx, _ = e.DrawContext.(gl.Context)
				if err := v.initStage(glctx); err != nil {
					v.l.Error("init", zap.Error(err))
				}
				w.Send(paint.Event{})
			case lifecycle.CrossOff:
				v.destroyStage(glctx)
				glctx = nil
			}
		case touch.Event:
			v.screen.Touch(e)
		case size.Event:
			sz = e
			if vpUpdate && glctx != nil {
				glctx.Viewport(0, 0, sz.WidthPx, sz.HeightPx)
			}
		case paint.Event:
			if glctx == nil || e.External {
				continue
			}
			v.paint(glctx, sz)
			w.Publish()
			w.Send(paint.Event{})
		}
	}
}

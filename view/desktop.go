//go:build !mobile
// +build !mobile

package view

import (
	"go.uber.org/zap"
	"golang.org/x/exp/shiny/driver/gldriver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"
)

type desktopWindow struct {
	screen.Window
}

func (d *desktopWindow) Publish()                     { d.Window.Publish() }
func (d *desktopWindow) RequiresViewportUpdate() bool { return true }

func (v *View) Start() {
	gldriver.Main(func(s screen.Screen) {
		w, err := s.NewWindow(&screen.NewWindowOptions{Title: "swipe"})
		if err != nil {
			v.l.Fatal("window", zap.Error(err))
		}
		defer w.Release()

		events := make(chan interface{})
		go func() {
			for {
				e := w.NextEvent()
				events <- e
				if c, ok := e.(lifecycle.Event); ok && c.To == lifecycle.StageDead {
					close(events)
					break
				}
			}
		}()

		v.loop(&desktopWindow{Window: w}, events, convert)
	})
}

// convert turns left button drags into a single touch sequence.
func convert(e interface{}) interface{} {
	switch e := e.(type) {
	case mouse.Event:
		if e.Button != mouse.ButtonLeft && e.Direction != mouse.DirNone {
			return nil
		}

		te := touch.Event{
			X: e.X,
			Y: e.Y,
		}
		switch e.Direction {
		case mouse.DirNone:
			te.Type = touch.TypeMove
		case mouse.DirPress:
			te.Type = touch.TypeBegin
		case mouse.DirRelease:
			te.Type = touch.TypeEnd
		default:
			return nil
		}

		return te
	}
	return e
}

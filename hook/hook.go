// Package hook turns global desktop mouse drags into one finger swipe
// events using gohook.
package hook

import (
	"context"
	"sync"

	"github.com/frizinak/inbetween-go-swipe/swipe"
	gohook "github.com/robotn/gohook"
	"go.uber.org/zap"
)

// ID is the target id a Source registers under in Host.
const ID = "desktop"

type Source struct {
	l *zap.Logger

	sem       sync.Mutex
	listeners map[int]swipe.Listener
	next      int
	down      bool
}

func New(l *zap.Logger) *Source {
	if l == nil {
		l = zap.NewNop()
	}
	return &Source{l: l, listeners: make(map[int]swipe.Listener)}
}

// Host exposes the source as the only target of a swipe.Host.
func (s *Source) Host() swipe.Host { return swipe.Targets{ID: s} }

func (s *Source) Subscribe(l swipe.Listener) func() {
	s.sem.Lock()
	id := s.next
	s.next++
	s.listeners[id] = l
	s.sem.Unlock()

	return func() {
		s.sem.Lock()
		delete(s.listeners, id)
		s.sem.Unlock()
	}
}

type phase int

const (
	phaseNone phase = iota
	phaseStart
	phaseMove
	phaseEnd
)

func left(e gohook.Event) bool {
	return e.Button == gohook.MouseMap["left"]
}

// translate maps a gohook event onto a touch phase. gohook names the
// pressed event MouseHold and the released one MouseDown.
func (s *Source) translate(e gohook.Event) phase {
	switch e.Kind {
	case gohook.MouseHold:
		if !left(e) {
			return phaseNone
		}
		s.down = true
		return phaseStart
	case gohook.MouseDrag:
		if !s.down {
			return phaseNone
		}
		return phaseMove
	case gohook.MouseDown:
		if !left(e) || !s.down {
			return phaseNone
		}
		s.down = false
		return phaseEnd
	}
	return phaseNone
}

// Event feeds a single gohook event through the source.
func (s *Source) Event(e gohook.Event) {
	s.sem.Lock()
	p := s.translate(e)
	listeners := make([]swipe.Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.sem.Unlock()

	if p == phaseNone {
		return
	}

	ev := &swipe.Event{Origin: e}
	if p != phaseEnd {
		ev.Touches = []swipe.Point{{X: float64(e.X), Y: float64(e.Y)}}
	}

	for _, l := range listeners {
		switch p {
		case phaseStart:
			l.TouchStart(ev)
		case phaseMove:
			l.TouchMove(ev)
		case phaseEnd:
			l.TouchEnd(ev)
		}
	}
}

// Run starts the global hook and blocks until ctx is done.
func (s *Source) Run(ctx context.Context) error {
	events := gohook.Start()
	defer gohook.End()
	s.l.Info("hook started")

	for {
		select {
		case <-ctx.Done():
			s.l.Info("hook stopped")
			return ctx.Err()
		case e, ok := <-events:
			if !ok {
				return nil
			}
			s.Event(e)
		}
	}
}

package mobile

import (
	"image"
	"sync"

	"github.com/frizinak/inbetween-go-swipe/swipe"
	"golang.org/x/mobile/event/touch"
)

// Screen routes x/mobile touch events to the surface a touch sequence
// began in. It implements swipe.Host.
type Screen struct {
	sem      sync.Mutex
	surfaces []*Surface
	owners   map[touch.Sequence]*Surface
}

func NewScreen() *Screen {
	return &Screen{owners: make(map[touch.Sequence]*Surface)}
}

// Add registers a surface, replacing any surface with the same id. An empty
// bounds rectangle covers the whole screen. Surfaces added later sit on top.
func (s *Screen) Add(id string, bounds image.Rectangle) *Surface {
	sf := &Surface{id: id, bounds: bounds, listeners: make(map[int]swipe.Listener)}
	s.sem.Lock()
	s.remove(id)
	s.surfaces = append(s.surfaces, sf)
	s.sem.Unlock()
	return sf
}

func (s *Screen) Remove(id string) {
	s.sem.Lock()
	s.remove(id)
	s.sem.Unlock()
}

func (s *Screen) remove(id string) {
	for i, sf := range s.surfaces {
		if sf.id != id {
			continue
		}
		s.surfaces = append(s.surfaces[:i], s.surfaces[i+1:]...)
		for seq, owner := range s.owners {
			if owner == sf {
				delete(s.owners, seq)
			}
		}
		return
	}
}

func (s *Screen) Surface(id string) *Surface {
	s.sem.Lock()
	defer s.sem.Unlock()
	for _, sf := range s.surfaces {
		if sf.id == id {
			return sf
		}
	}
	return nil
}

func (s *Screen) Lookup(id string) (swipe.Target, bool) {
	sf := s.Surface(id)
	return sf, sf != nil
}

// Touch dispatches e and reports whether a listener asked for the event's
// default handling to be skipped.
func (s *Screen) Touch(e touch.Event) bool {
	s.sem.Lock()
	var sf *Surface
	switch e.Type {
	case touch.TypeBegin:
		for i := len(s.surfaces) - 1; i >= 0; i-- {
			if s.surfaces[i].Contains(e) {
				sf = s.surfaces[i]
				break
			}
		}
		if sf != nil {
			s.owners[e.Sequence] = sf
		}
	case touch.TypeEnd:
		sf = s.owners[e.Sequence]
		delete(s.owners, e.Sequence)
	default:
		sf = s.owners[e.Sequence]
	}
	s.sem.Unlock()

	if sf == nil {
		return false
	}
	return sf.Touch(e)
}

// Surface is a swipe.Target fed by x/mobile touch events. It keeps the
// touches that are currently down in the order they began, every event
// carries all of them with the earliest first.
type Surface struct {
	id string

	sem       sync.Mutex
	bounds    image.Rectangle
	active    []touch.Event
	listeners map[int]swipe.Listener
	next      int
}

func (s *Surface) ID() string { return s.id }

func (s *Surface) Bounds() image.Rectangle {
	s.sem.Lock()
	defer s.sem.Unlock()
	return s.bounds
}

func (s *Surface) SetBounds(r image.Rectangle) {
	s.sem.Lock()
	s.bounds = r
	s.sem.Unlock()
}

func (s *Surface) Contains(e touch.Event) bool {
	return contains(s.Bounds(), e)
}

func (s *Surface) Subscribe(l swipe.Listener) func() {
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

func (s *Surface) Touch(e touch.Event) bool {
	s.sem.Lock()
	ix := -1
	for i := range s.active {
		if s.active[i].Sequence == e.Sequence {
			ix = i
			break
		}
	}

	switch e.Type {
	case touch.TypeBegin:
		if ix != -1 {
			s.active[ix] = e
			break
		}
		s.active = append(s.active, e)
	case touch.TypeMove:
		if ix == -1 {
			s.sem.Unlock()
			return false
		}
		s.active[ix] = e
	case touch.TypeEnd:
		if ix != -1 {
			s.active = append(s.active[:ix], s.active[ix+1:]...)
		}
	}

	pts := make([]swipe.Point, len(s.active))
	for i := range s.active {
		pts[i] = TouchPoint(s.active[i])
	}
	listeners := make([]swipe.Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.sem.Unlock()

	var prevented bool
	ev := &swipe.Event{
		Touches:        pts,
		Origin:         s,
		PreventDefault: func() { prevented = true },
	}

	for _, l := range listeners {
		switch e.Type {
		case touch.TypeBegin:
			l.TouchStart(ev)
		case touch.TypeMove:
			l.TouchMove(ev)
		case touch.TypeEnd:
			l.TouchEnd(ev)
		}
	}

	return prevented
}

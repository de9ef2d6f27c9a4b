package swipe

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrConfiguration = errors.New("invalid swipe configuration")

type ConfigurationError struct {
	ID     string
	Reason string
}

func (c *ConfigurationError) Error() string {
	if c.ID == "" {
		return fmt.Sprintf("swipe: %s", c.Reason)
	}
	return fmt.Sprintf("swipe: %q: %s", c.ID, c.Reason)
}

func (c *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// Event is a single touchstart, touchmove or touchend notification.
type Event struct {
	// Touches lists the points currently on the surface, earliest first.
	Touches []Point
	// Origin is whatever the host considers the source of the event.
	Origin interface{}
	// PreventDefault asks the host to skip its native handling, may be nil.
	PreventDefault func()
}

func (e *Event) preventDefault() {
	if e != nil && e.PreventDefault != nil {
		e.PreventDefault()
	}
}

func (e *Event) touches() []Point {
	if e == nil {
		return nil
	}
	return e.Touches
}

type Listener interface {
	TouchStart(e *Event)
	TouchMove(e *Event)
	TouchEnd(e *Event)
}

// Target delivers touch events to its subscribers until the returned
// function is called.
type Target interface {
	Subscribe(l Listener) (unsubscribe func())
}

type Host interface {
	Lookup(id string) (Target, bool)
}

// Targets is a Host backed by a map.
type Targets map[string]Target

func (t Targets) Lookup(id string) (Target, bool) {
	target, ok := t[id]
	return target, ok && target != nil
}

// Swipe is the payload of a recognised gesture.
type Swipe struct {
	Target string
	Angle  int
	Length int

	// Direction is the cardinal label under SchemeCardinal and the 4-way
	// compass label under SchemeCompass.
	Direction Direction
	// Direction8 is only set under SchemeCompass.
	Direction8 Direction

	Fingers int
	Origin  interface{}
}

func (s Swipe) String() string {
	d := string(s.Direction)
	if s.Direction8 != "" {
		d += "/" + string(s.Direction8)
	}
	return fmt.Sprintf("%s: %s %d° %dpx %d finger(s)", s.Target, d, s.Angle, s.Length, s.Fingers)
}

type Handler interface {
	HandleSwipe(s Swipe)
}

// DetailedHandler receives the full payload.
type DetailedHandler func(s Swipe)

func (d DetailedHandler) HandleSwipe(s Swipe) { d(s) }

// SimpleHandler only receives the direction and the finger count.
type SimpleHandler func(target string, d Direction, fingers int)

func (h SimpleHandler) HandleSwipe(s Swipe) { h(s.Target, s.Direction, s.Fingers) }

func validHandler(h Handler) bool {
	switch h := h.(type) {
	case nil:
		return false
	case DetailedHandler:
		return h != nil
	case SimpleHandler:
		return h != nil
	}

	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Interface, reflect.Slice:
		return !v.IsNil()
	}
	return true
}

package swipe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeTarget struct {
	listeners map[int]Listener
	next      int
}

func newFakeTarget() *fakeTarget { return &fakeTarget{listeners: make(map[int]Listener)} }

func (f *fakeTarget) Subscribe(l Listener) func() {
	id := f.next
	f.next++
	f.listeners[id] = l
	return func() { delete(f.listeners, id) }
}

func (f *fakeTarget) start(pts ...Point) { f.each(func(l Listener) { l.TouchStart(&Event{Touches: pts}) }) }
func (f *fakeTarget) move(pts ...Point)  { f.each(func(l Listener) { l.TouchMove(&Event{Touches: pts}) }) }
func (f *fakeTarget) end(pts ...Point)   { f.each(func(l Listener) { l.TouchEnd(&Event{Touches: pts, Origin: f}) }) }

func (f *fakeTarget) each(fn func(Listener)) {
	for _, l := range f.listeners {
		fn(l)
	}
}

type ptrHandler struct {
	n int
}

func (p *ptrHandler) HandleSwipe(Swipe) { p.n++ }

type recorder struct {
	swipes []Swipe
}

func (r *recorder) handler() DetailedHandler {
	return func(s Swipe) { r.swipes = append(r.swipes, s) }
}

func setup(t *testing.T, scheme Scheme) (*Tracker, *fakeTarget) {
	target := newFakeTarget()
	tr := New(zaptest.NewLogger(t), Targets{"box": target}, Config{Scheme: scheme})
	return tr, target
}

func TestAttachConfigurationErrors(t *testing.T) {
	t.Parallel()
	tr, _ := setup(t, SchemeCardinal)
	rec := &recorder{}

	_, err := tr.Attach("missing", 1, rec.handler(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "missing", cerr.ID)

	_, err = tr.Attach("box", 1, nil, false)
	assert.True(t, errors.Is(err, ErrConfiguration))

	var nilFunc DetailedHandler
	_, err = tr.Attach("box", 1, nilFunc, false)
	assert.True(t, errors.Is(err, ErrConfiguration))

	var nilPtr *ptrHandler
	_, err = tr.Attach("box", 1, nilPtr, false)
	assert.True(t, errors.Is(err, ErrConfiguration))

	_, err = tr.Attach("box", 1, &ptrHandler{}, false)
	assert.NoError(t, err)

	_, err = tr.Attach("box", -1, rec.handler(), false)
	assert.True(t, errors.Is(err, ErrConfiguration))

	_, err = tr.Attach("box", 1, rec.handler(), false, MinimumDistance(0))
	assert.True(t, errors.Is(err, ErrConfiguration))

	none := New(nil, nil, Config{})
	_, err = none.Attach("box", 1, rec.handler(), false)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestSwipeCompass(t *testing.T) {
	t.Parallel()
	tr, target := setup(t, SchemeCompass)
	rec := &recorder{}
	_, err := tr.Attach("box", 1, rec.handler(), false)
	require.NoError(t, err)

	target.start(Point{200, 100})
	target.move(Point{150, 100})
	target.move(Point{100, 100})
	target.end()

	require.Len(t, rec.swipes, 1)
	s := rec.swipes[0]
	assert.Equal(t, "box", s.Target)
	assert.Equal(t, 0, s.Angle)
	assert.Equal(t, 100, s.Length)
	assert.Equal(t, West, s.Direction)
	assert.Equal(t, West, s.Direction8)
	assert.Equal(t, 1, s.Fingers)
	assert.Equal(t, target, s.Origin)
}

func TestSwipeCardinalRightward(t *testing.T) {
	t.Parallel()
	tr, target := setup(t, SchemeCardinal)
	rec := &recorder{}
	_, err := tr.Attach("box", 1, rec.handler(), false, MinimumDistance(72))
	require.NoError(t, err)

	target.start(Point{100, 100})
	target.move(Point{200, 100})
	target.end()

	require.Len(t, rec.swipes, 1)
	assert.Equal(t, 180, rec.swipes[0].Angle)
	assert.Equal(t, Right, rec.swipes[0].Direction)
	assert.Equal(t, Direction(""), rec.swipes[0].Direction8)
}

func TestShortSwipeIgnored(t *testing.T) {
	t.Parallel()
	tr, target := setup(t, SchemeCardinal)
	rec := &recorder{}
	_, err := tr.Attach("box", 1, rec.handler(), false)
	require.NoError(t, err)

	target.start(Point{100, 100})
	target.move(Point{110, 105})
	target.end()
	assert.Empty(t, rec.swipes)

	target.start(Point{100, 100})
	target.move(Point{100, 100})
	target.end()
	assert.Empty(t, rec.swipes)
}

func TestNoMoveNoSwipe(t *testing.T) {
	t.Parallel()
	tr, target := setup(t, SchemeCardinal)
	rec := &recorder{}
	_, err := tr.Attach("box", AnyFingers, rec.handler(), false)
	require.NoError(t, err)

	target.start(Point{100, 100})
	target.end()
	assert.Empty(t, rec.swipes)
}

func TestDoubleEnd(t *testing.T) {
	t.Parallel()
	tr, target := setup(t, SchemeCardinal)
	rec := &recorder{}
	_, err := tr.Attach("box", 1, rec.handler(), false)
	require.NoError(t, err)

	target.start(Point{300, 300})
	target.move(Point{300, 100})
	target.end()
	target.end()

	require.Len(t, rec.swipes, 1)
	assert.Equal(t, 270, rec.swipes[0].Angle)
	assert.Equal(t, Down, rec.swipes[0].Direction)
}

func TestFingerFilterAtStart(t *testing.T) {
	t.Parallel()
	tr, target := setup(t, SchemeCardinal)
	rec := &recorder{}
	_, err := tr.Attach("box", 2, rec.handler(), false)
	require.NoError(t, err)

	target.start(Point{100, 100})
	target.move(Point{300, 100}, Point{320, 120})
	target.end(Point{300, 100}, Point{320, 120})
	assert.Empty(t, rec.swipes)

	target.start(Point{100, 100}, Point{120, 120})
	target.move(Point{300, 100}, Point{320, 120})
	target.end()
	require.Len(t, rec.swipes, 1)
	assert.Equal(t, 2, rec.swipes[0].Fingers)
}

func TestAnyFingers(t *testing.T) {
	t.Parallel()
	tr, target := setup(t, SchemeCompass)
	var got []int
	_, err := tr.Attach("box", AnyFingers, SimpleHandler(func(id string, d Direction, fingers int) {
		assert.Equal(t, "box", id)
		assert.Equal(t, South, d)
		got = append(got, fingers)
	}), false)
	require.NoError(t, err)

	for n := 1; n <= 3; n++ {
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Point{float64(10 * (i + 1)), 10}
		}
		target.start(pts...)
		pts[0] = Point{10, 200}
		target.move(pts...)
		target.end()
	}

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestEmptyStartIgnored(t *testing.T) {
	t.Parallel()
	tr, target := setup(t, SchemeCardinal)
	rec := &recorder{}
	_, err := tr.Attach("box", AnyFingers, rec.handler(), false)
	require.NoError(t, err)

	target.start()
	target.move(Point{300, 300})
	target.end()
	assert.Empty(t, rec.swipes)
}

func TestSuppressDefault(t *testing.T) {
	t.Parallel()
	tr, _ := setup(t, SchemeCardinal)
	rec := &recorder{}
	_, err := tr.Attach("box", 1, rec.handler(), true)
	require.NoError(t, err)

	var prevented int
	ev := func(pts ...Point) *Event {
		return &Event{Touches: pts, PreventDefault: func() { prevented++ }}
	}
	tr.TouchStart("box", ev(Point{1, 1}))
	tr.TouchMove("box", ev(Point{200, 1}))
	tr.TouchEnd("box", ev())
	assert.Equal(t, 3, prevented)
	assert.Len(t, rec.swipes, 1)

	tr.TouchStart("box", &Event{Touches: []Point{{1, 1}}})
	tr.TouchEnd("box", nil)
	assert.Equal(t, 3, prevented)
}

func TestDefaultNotSuppressed(t *testing.T) {
	t.Parallel()
	tr, _ := setup(t, SchemeCardinal)
	rec := &recorder{}
	_, err := tr.Attach("box", 1, rec.handler(), false)
	require.NoError(t, err)

	var prevented int
	ev := func(pts ...Point) *Event {
		return &Event{Touches: pts, PreventDefault: func() { prevented++ }}
	}
	tr.TouchStart("box", ev(Point{1, 1}))
	tr.TouchMove("box", ev(Point{200, 1}))
	tr.TouchEnd("box", ev())
	tr.TouchStart("box", ev(Point{1, 1}, Point{2, 2}))
	tr.TouchMove("box", ev(Point{2, 2}))
	tr.TouchEnd("box", ev())

	assert.Zero(t, prevented)
	assert.Len(t, rec.swipes, 1)
}

func TestReattachResets(t *testing.T) {
	t.Parallel()
	tr, target := setup(t, SchemeCardinal)
	first, second := &recorder{}, &recorder{}
	a, err := tr.Attach("box", 1, first.handler(), false)
	require.NoError(t, err)

	target.start(Point{100, 100})
	target.move(Point{300, 100})

	_, err = tr.Attach("box", 1, second.handler(), false)
	require.NoError(t, err)
	assert.Len(t, target.listeners, 1)

	target.end()
	assert.Empty(t, first.swipes)
	assert.Empty(t, second.swipes)

	a.Detach()
	assert.Len(t, target.listeners, 1)

	target.start(Point{100, 100})
	target.move(Point{300, 100})
	target.end()
	assert.Empty(t, first.swipes)
	assert.Len(t, second.swipes, 1)
}

func TestDetach(t *testing.T) {
	t.Parallel()
	tr, target := setup(t, SchemeCardinal)
	rec := &recorder{}
	a, err := tr.Attach("box", 1, rec.handler(), false)
	require.NoError(t, err)
	assert.Equal(t, "box", a.ID)

	tr.Detach("box")
	assert.Empty(t, target.listeners)

	tr.TouchStart("box", &Event{Touches: []Point{{100, 100}}})
	tr.TouchMove("box", &Event{Touches: []Point{{300, 100}}})
	tr.TouchEnd("box", &Event{})
	assert.Empty(t, rec.swipes)

	a.Detach()
	tr.Detach("box")
}

func TestDetachFromHandler(t *testing.T) {
	t.Parallel()
	tr, target := setup(t, SchemeCardinal)
	var n int
	_, err := tr.Attach("box", 1, DetailedHandler(func(s Swipe) {
		n++
		tr.Detach(s.Target)
	}), false)
	require.NoError(t, err)

	tr.TouchStart("box", &Event{Touches: []Point{{100, 100}}})
	tr.TouchMove("box", &Event{Touches: []Point{{300, 100}}})
	tr.TouchEnd("box", &Event{})
	assert.Equal(t, 1, n)
	assert.Empty(t, target.listeners)
}

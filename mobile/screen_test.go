package mobile

import (
	"image"
	"testing"

	"github.com/frizinak/inbetween-go-swipe/swipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/mobile/event/touch"
)

func ev(t touch.Type, seq touch.Sequence, x, y float32) touch.Event {
	return touch.Event{X: x, Y: y, Sequence: seq, Type: t}
}

type events struct {
	starts, moves, ends [][]swipe.Point
}

func (e *events) TouchStart(ev *swipe.Event) { e.starts = append(e.starts, ev.Touches) }
func (e *events) TouchMove(ev *swipe.Event)  { e.moves = append(e.moves, ev.Touches) }
func (e *events) TouchEnd(ev *swipe.Event)   { e.ends = append(e.ends, ev.Touches) }

func TestSurfaceTouchList(t *testing.T) {
	t.Parallel()
	s := NewScreen()
	sf := s.Add("full", image.Rectangle{})
	rec := &events{}
	unsub := sf.Subscribe(rec)

	s.Touch(ev(touch.TypeBegin, 0, 10, 10))
	s.Touch(ev(touch.TypeBegin, 1, 50, 50))
	s.Touch(ev(touch.TypeMove, 1, 60, 60))
	s.Touch(ev(touch.TypeEnd, 0, 10, 10))
	s.Touch(ev(touch.TypeEnd, 1, 60, 60))

	require.Len(t, rec.starts, 2)
	assert.Equal(t, []swipe.Point{{X: 10, Y: 10}}, rec.starts[0])
	assert.Equal(t, []swipe.Point{{X: 10, Y: 10}, {X: 50, Y: 50}}, rec.starts[1])
	require.Len(t, rec.moves, 1)
	assert.Equal(t, []swipe.Point{{X: 10, Y: 10}, {X: 60, Y: 60}}, rec.moves[0])
	require.Len(t, rec.ends, 2)
	assert.Equal(t, []swipe.Point{{X: 60, Y: 60}}, rec.ends[0])
	assert.Empty(t, rec.ends[1])

	unsub()
	s.Touch(ev(touch.TypeBegin, 0, 10, 10))
	assert.Len(t, rec.starts, 2)
}

func TestScreenRouting(t *testing.T) {
	t.Parallel()
	s := NewScreen()
	left := s.Add("left", image.Rect(0, 0, 100, 100))
	right := s.Add("right", image.Rect(100, 0, 200, 100))
	l, r := &events{}, &events{}
	left.Subscribe(l)
	right.Subscribe(r)

	s.Touch(ev(touch.TypeBegin, 0, 50, 50))
	s.Touch(ev(touch.TypeMove, 0, 150, 50))
	s.Touch(ev(touch.TypeEnd, 0, 150, 50))

	assert.Len(t, l.starts, 1)
	assert.Len(t, l.moves, 1)
	assert.Len(t, l.ends, 1)
	assert.Empty(t, r.starts)
	assert.Empty(t, r.moves)

	s.Touch(ev(touch.TypeBegin, 3, 500, 500))
	s.Touch(ev(touch.TypeMove, 3, 50, 50))
	assert.Len(t, l.starts, 1)
	assert.Len(t, l.moves, 1)

	_, ok := s.Lookup("right")
	assert.True(t, ok)
	s.Remove("right")
	_, ok = s.Lookup("right")
	assert.False(t, ok)
}

func TestScreenSwipe(t *testing.T) {
	t.Parallel()
	s := NewScreen()
	s.Add("pad", image.Rect(0, 0, 400, 400))
	tr := swipe.New(zaptest.NewLogger(t), s, swipe.Config{Scheme: swipe.SchemeCompass})

	var got []swipe.Swipe
	_, err := tr.Attach("pad", 2, swipe.DetailedHandler(func(sw swipe.Swipe) {
		got = append(got, sw)
	}), true)
	require.NoError(t, err)

	assert.False(t, s.Touch(ev(touch.TypeMove, 7, 200, 300)))
	assert.True(t, s.Touch(ev(touch.TypeBegin, 0, 200, 300)))
	assert.True(t, s.Touch(ev(touch.TypeBegin, 1, 220, 300)))
	assert.True(t, s.Touch(ev(touch.TypeMove, 0, 200, 100)))
	assert.True(t, s.Touch(ev(touch.TypeMove, 1, 220, 100)))
	s.Touch(ev(touch.TypeEnd, 0, 200, 100))
	s.Touch(ev(touch.TypeEnd, 1, 220, 100))

	require.Len(t, got, 1)
	assert.Equal(t, swipe.North, got[0].Direction)
	assert.Equal(t, swipe.North, got[0].Direction8)
	assert.Equal(t, 270, got[0].Angle)
	assert.Equal(t, 200, got[0].Length)
	assert.Equal(t, 2, got[0].Fingers)
	assert.Equal(t, s.Surface("pad"), got[0].Origin)
}

package swipe

import (
	"sync"

	"go.uber.org/zap"
)

const (
	DefaultMinimumDistance = 72

	// AnyFingers disables the finger count filter.
	AnyFingers = 0
)

type Config struct {
	Scheme          Scheme
	MinimumDistance int
}

type record struct {
	id      string
	handler Handler

	start   Point
	current Point
	fingers int

	required    int
	minDistance int
	suppress    bool

	unsubscribe func()
}

func (r *record) track() bool {
	return r.required == AnyFingers || r.fingers == r.required
}

func (r *record) reset() {
	r.start = Point{}
	r.current = Point{}
	r.fingers = 0
}

type Tracker struct {
	l    *zap.Logger
	host Host
	conf Config

	sem     sync.Mutex
	records map[string]*record
}

func New(l *zap.Logger, host Host, conf Config) *Tracker {
	if l == nil {
		l = zap.NewNop()
	}
	if conf.MinimumDistance <= 0 {
		conf.MinimumDistance = DefaultMinimumDistance
	}

	return &Tracker{
		l:       l,
		host:    host,
		conf:    conf,
		records: make(map[string]*record),
	}
}

// Config returns the tracker config with defaults applied.
func (t *Tracker) Config() Config { return t.conf }

type AttachOption func(*record)

// MinimumDistance overrides the tracker's default swipe threshold.
func MinimumDistance(n int) AttachOption {
	return func(r *record) { r.minDistance = n }
}

// Attachment is returned by Attach and detaches the target it was created for.
type Attachment struct {
	t  *Tracker
	r  *record
	ID string
}

// Detach is a noop when the target was re-attached since.
func (a *Attachment) Detach() {
	a.t.sem.Lock()
	if a.t.records[a.ID] != a.r {
		a.t.sem.Unlock()
		return
	}
	delete(a.t.records, a.ID)
	a.t.sem.Unlock()
	a.r.unsubscribe()
}

// Attach starts tracking swipes on the target with the given id.
// Re-attaching an id replaces the previous attachment and its state.
func (t *Tracker) Attach(
	id string,
	fingers int,
	handler Handler,
	suppressDefault bool,
	opts ...AttachOption,
) (*Attachment, error) {
	var target Target
	var ok bool
	if t.host != nil {
		target, ok = t.host.Lookup(id)
	}
	if !ok {
		return nil, &ConfigurationError{ID: id, Reason: "target could not be found"}
	}
	if !validHandler(handler) {
		return nil, &ConfigurationError{ID: id, Reason: "handler must be a function"}
	}
	if fingers < 0 {
		return nil, &ConfigurationError{ID: id, Reason: "finger count can not be negative"}
	}

	r := &record{
		id:          id,
		handler:     handler,
		required:    fingers,
		minDistance: t.conf.MinimumDistance,
		suppress:    suppressDefault,
	}
	for _, o := range opts {
		o(r)
	}
	if r.minDistance <= 0 {
		return nil, &ConfigurationError{ID: id, Reason: "minimum distance must be positive"}
	}

	r.unsubscribe = target.Subscribe(&listener{t: t, r: r})

	t.sem.Lock()
	old := t.records[id]
	t.records[id] = r
	t.sem.Unlock()
	if old != nil {
		old.unsubscribe()
	}

	t.l.Debug(
		"attached",
		zap.String("target", id),
		zap.Int("fingers", fingers),
		zap.Int("minDistance", r.minDistance),
		zap.Stringer("scheme", t.conf.Scheme),
	)

	return &Attachment{t: t, r: r, ID: id}, nil
}

func (t *Tracker) Detach(id string) {
	t.sem.Lock()
	r, ok := t.records[id]
	delete(t.records, id)
	t.sem.Unlock()
	if ok {
		r.unsubscribe()
		t.l.Debug("detached", zap.String("target", id))
	}
}

func (t *Tracker) TouchStart(id string, e *Event) { t.touchStart(t.lookup(id), e) }
func (t *Tracker) TouchMove(id string, e *Event)  { t.touchMove(t.lookup(id), e) }
func (t *Tracker) TouchEnd(id string, e *Event)   { t.touchEnd(t.lookup(id), e) }

func (t *Tracker) lookup(id string) *record {
	t.sem.Lock()
	r := t.records[id]
	t.sem.Unlock()
	if r == nil {
		t.l.Debug("event for unattached target", zap.String("target", id))
	}
	return r
}

// attached reports whether r is still the live record for its id. Listeners
// of a replaced attachment may still be called by hosts that dispatch from a
// snapshot.
func (t *Tracker) attached(r *record) bool {
	if r == nil {
		return false
	}
	t.sem.Lock()
	defer t.sem.Unlock()
	return t.records[r.id] == r
}

func (t *Tracker) abandon(r *record, stage string) {
	t.l.Debug(
		"swipe abandoned",
		zap.String("target", r.id),
		zap.String("stage", stage),
		zap.Int("fingers", r.fingers),
		zap.Int("required", r.required),
	)
	r.reset()
}

func (t *Tracker) touchStart(r *record, e *Event) {
	if !t.attached(r) {
		return
	}
	if r.suppress {
		e.preventDefault()
	}

	t.sem.Lock()
	pts := e.touches()
	r.fingers = len(pts)
	if !r.track() || r.fingers == 0 {
		t.abandon(r, "start")
		t.sem.Unlock()
		return
	}
	r.start = pts[0]
	t.sem.Unlock()
}

func (t *Tracker) touchMove(r *record, e *Event) {
	if !t.attached(r) {
		return
	}
	if r.suppress {
		e.preventDefault()
	}

	t.sem.Lock()
	defer t.sem.Unlock()
	if !r.track() {
		t.abandon(r, "move")
		return
	}
	if pts := e.touches(); len(pts) > 0 {
		r.current = pts[0]
	}
}

func (t *Tracker) touchEnd(r *record, e *Event) {
	if !t.attached(r) {
		return
	}
	if r.suppress {
		e.preventDefault()
	}

	t.sem.Lock()
	s, ok := t.classify(r)
	r.reset()
	t.sem.Unlock()

	if !ok {
		return
	}
	if e != nil {
		s.Origin = e.Origin
	}

	t.l.Debug(
		"swipe",
		zap.String("target", s.Target),
		zap.String("direction", string(s.Direction)),
		zap.Int("angle", s.Angle),
		zap.Int("length", s.Length),
		zap.Int("fingers", s.Fingers),
	)
	r.handler.HandleSwipe(s)
}

func (t *Tracker) classify(r *record) (Swipe, bool) {
	if !r.track() || r.current.IsZero() {
		return Swipe{}, false
	}

	length := Length(r.start, r.current)
	if length < r.minDistance {
		return Swipe{}, false
	}

	angle := Angle(r.start, r.current)
	primary, secondary := Classify(t.conf.Scheme, angle)
	if r.fingers <= 0 {
		return Swipe{}, false
	}

	return Swipe{
		Target:     r.id,
		Angle:      angle,
		Length:     length,
		Direction:  primary,
		Direction8: secondary,
		Fingers:    r.fingers,
	}, true
}

type listener struct {
	t *Tracker
	r *record
}

func (l *listener) TouchStart(e *Event) { l.t.touchStart(l.r, e) }
func (l *listener) TouchMove(e *Event)  { l.t.touchMove(l.r, e) }
func (l *listener) TouchEnd(e *Event)   { l.t.touchEnd(l.r, e) }

package inquiry

import (
	"errors"
	"sync"
)

// ErrInFlight is returned when a form instance already has a submission running.
var ErrInFlight = errors.New("inquiry: submission already in progress")

// State is the lifecycle of a single form instance.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Form guards one form instance: idle -> submitting -> succeeded | failed. A finished
// form may start another submission.
type Form struct {
	mu      sync.Mutex
	state   State
	lastErr error
}

// Begin moves the form to submitting, or returns ErrInFlight.
func (f *Form) Begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return ErrInFlight
	}
	f.state = StateSubmitting
	f.lastErr = nil
	return nil
}

// Finish resolves the running submission with err and returns the resulting state.
func (f *Form) Finish(err error) State {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateFailed
		f.lastErr = err
	} else {
		f.state = StateSucceeded
	}
	return f.state
}

// State returns the current state and the error of the last failed submission.
func (f *Form) State() (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.lastErr
}

// Tracker keeps one Form per visitor session and form kind.
type Tracker struct {
	mu    sync.Mutex
	forms map[string]*Form
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{forms: map[string]*Form{}}
}

func trackerKey(session string, kind Kind) string { return session + "|" + string(kind) }

// Begin starts a submission for session and kind. It returns ErrInFlight while another
// submission from the same session and form is running.
func (t *Tracker) Begin(session string, kind Kind) (*Form, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := trackerKey(session, kind)
	f, ok := t.forms[key]
	if !ok {
		f = &Form{}
		t.forms[key] = f
	}
	if err := f.Begin(); err != nil {
		return nil, err
	}
	return f, nil
}

// Finish resolves a submission started by Begin and stops tracking its form.
func (t *Tracker) Finish(session string, kind Kind, f *Form, err error) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := f.Finish(err)
	key := trackerKey(session, kind)
	if t.forms[key] == f {
		delete(t.forms, key)
	}
	return st
}

// Len returns how many forms are tracked.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.forms)
}

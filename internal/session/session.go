// Package session holds the field values a picker currently displays and
// serves them over HTTP.
package session

import (
	"errors"
	"fmt"
	"sync"

	"colorsync/internal/picker"
	"colorsync/internal/ui"
)

// Session owns the displayed picker state. Edits are applied one at a time;
// concurrent callers are serialized.
type Session struct {
	mu    sync.Mutex
	state picker.State
	last  picker.Update
}

// New returns a session showing black in every group.
func New() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset reseeds every field from black.
func (s *Session) Reset() picker.Update {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := picker.Initial()
	s.state, s.last = u.State, u
	recordPreview(u)
	return u
}

// State returns the current field values.
func (s *Session) State() picker.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Last returns the most recent successful update.
func (s *Session) Last() picker.Update {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Apply runs the synchronization policy for e against the current state.
// A rejected edit leaves the state unchanged.
func (s *Session) Apply(e picker.Edit) (picker.Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := picker.Apply(s.state, e)
	if err != nil {
		reason := "unknown_group"
		if errors.Is(err, picker.ErrInvalidHex) {
			reason = "invalid_hex"
		}
		MetricEditsRejected.WithLabelValues(u.Source.String(), reason).Inc()
		ui.LogStatus("debug", fmt.Sprintf("edit %s rejected: %v", u.Source, err))
		return u, err
	}

	s.state, s.last = u.State, u
	MetricEditsTotal.WithLabelValues(u.Source.String()).Inc()
	if u.Adjusted > 0 {
		MetricFieldsAdjusted.WithLabelValues(u.Source.String()).Add(float64(u.Adjusted))
	}
	recordPreview(u)
	ui.LogStatus("debug", fmt.Sprintf("edit %s -> %s (%s)", u.Source, u.State.Hex, u.Preview().CSS()))
	return u, nil
}

// Edit resolves a group identifier and raw fields and applies them.
func (s *Session) Edit(group string, fields map[string]string) (picker.Update, error) {
	e, err := picker.ParseEdit(group, fields)
	if err != nil {
		MetricEditsRejected.WithLabelValues("none", "unknown_group").Inc()
		return picker.Update{Source: picker.GroupNone, State: s.State()}, err
	}
	return s.Apply(e)
}

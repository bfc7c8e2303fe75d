package validate

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// matchState is the two-state edge detector behind notification. It is
// deliberately an enum rather than a bare bool: transitions are the
// unit of behavior here, not the current value.
type matchState int

const (
	stateInvalid matchState = iota
	stateValid
)

// Input is a text field validated against a regular expression. The
// pattern must match the entire text, not merely a substring. An Input
// without a pattern is always valid and never notifies.
type Input struct {
	key   string
	re    *regexp.Regexp // nil when no pattern configured
	state matchState
	text  string

	style       Style
	borderColor lipgloss.Color

	listeners []ChangeListener
}

// NewInput builds an Input identified by key. An empty pattern means
// the field has no validator. A malformed pattern is a configuration
// error and fails construction; there is no fallback pattern.
func NewInput(key, pattern string, style Style) (*Input, error) {
	in := &Input{
		key:         key,
		style:       style,
		borderColor: style.BorderColor,
	}
	if pattern != "" {
		re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
		if err != nil {
			return nil, fmt.Errorf("field %q: compile pattern %q: %w", key, pattern, err)
		}
		in.re = re
	}
	return in, nil
}

// Key returns the field identifier given at construction.
func (in *Input) Key() string { return in.key }

// Text returns the most recent text passed to SetText.
func (in *Input) Text() string { return in.text }

// IsValid reports whether the current text satisfies the validator.
// Inputs without a pattern are always valid.
func (in *Input) IsValid() bool {
	return in.re == nil || in.state == stateValid
}

// HasPattern reports whether a validator pattern is configured.
func (in *Input) HasPattern() bool { return in.re != nil }

// Style returns the construction-time border configuration.
func (in *Input) Style() Style { return in.style }

// BorderColor returns the color the host should paint the border with
// right now. It starts as the base border color and is repainted with
// the valid/invalid color on each transition. Meaningful only when the
// style has a border.
func (in *Input) BorderColor() lipgloss.Color { return in.borderColor }

// SetBorderColor overrides the current border color. The next render
// pass picks it up; a later transition repaints over it.
func (in *Input) SetBorderColor(c lipgloss.Color) { in.borderColor = c }

// AddChangeListener appends l to the notification list. Duplicates are
// allowed and each registration fires. A newly added listener sees only
// future transitions, never a synthetic catch-up call. Nil is a no-op.
func (in *Input) AddChangeListener(l ChangeListener) {
	if l == nil {
		return
	}
	in.listeners = append(in.listeners, l)
}

// RemoveChangeListener removes the first registration equal to l and
// reports whether one was removed. Listeners are compared by interface
// equality, so adapter types must be registered by pointer.
func (in *Input) RemoveChangeListener(l ChangeListener) bool {
	if l == nil {
		return false
	}
	for i, cur := range in.listeners {
		if cur == l {
			in.listeners = append(in.listeners[:i], in.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// SetText records the new text and runs edge detection. Only a change
// of match state notifies: repeated valid text after the first valid
// text is silent, as is repeated invalid text after the first invalid
// character. Without a pattern nothing ever fires.
func (in *Input) SetText(t string) {
	in.text = t
	if in.re == nil {
		return
	}
	matches := in.re.MatchString(t)
	switch {
	case matches && in.state == stateInvalid:
		in.state = stateValid
		in.repaint(in.style.ValidColor)
		in.notifyValid()
	case !matches && in.state == stateValid:
		in.state = stateInvalid
		in.repaint(in.style.InvalidColor)
		in.notifyInvalid()
	}
}

func (in *Input) repaint(c lipgloss.Color) {
	if !in.style.HasBorder {
		return
	}
	in.borderColor = c
}

// notify over a snapshot so a callback removing a listener does not
// skip its neighbor during this fan-out. Removal still takes effect for
// every later transition.
func (in *Input) notifyValid() {
	for _, l := range append([]ChangeListener(nil), in.listeners...) {
		l.BecameValid(in)
	}
}

func (in *Input) notifyInvalid() {
	for _, l := range append([]ChangeListener(nil), in.listeners...) {
		l.BecameInvalid(in)
	}
}

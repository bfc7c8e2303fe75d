package validate

// ChangeListener receives valid/invalid transitions from an Input.
// Callbacks run synchronously on the caller's goroutine, in listener
// insertion order. A callback that mutates the same Input's text
// re-enters notification; that is a documented hazard, not supported.
type ChangeListener interface {
	BecameValid(in *Input)
	BecameInvalid(in *Input)
}

// ListenerFuncs adapts a pair of callbacks to ChangeListener. Use it by
// pointer so the same value can later be passed to RemoveChangeListener.
// Either callback may be nil.
type ListenerFuncs struct {
	OnValid   func(in *Input)
	OnInvalid func(in *Input)
}

func (l *ListenerFuncs) BecameValid(in *Input) {
	if l.OnValid != nil {
		l.OnValid(in)
	}
}

func (l *ListenerFuncs) BecameInvalid(in *Input) {
	if l.OnInvalid != nil {
		l.OnInvalid(in)
	}
}

// GroupListener receives aggregate transitions from a Group.
type GroupListener interface {
	// AllBecameValid fires when every input in the group is valid. It
	// fires once per all-valid episode: not again until some input went
	// invalid in between.
	AllBecameValid(inputs []*Input)
	// AnyBecameInvalid fires on every child invalid transition.
	AnyBecameInvalid(in *Input)
}

// GroupListenerFuncs adapts a pair of callbacks to GroupListener.
type GroupListenerFuncs struct {
	OnAllValid   func(inputs []*Input)
	OnAnyInvalid func(in *Input)
}

func (l *GroupListenerFuncs) AllBecameValid(inputs []*Input) {
	if l.OnAllValid != nil {
		l.OnAllValid(inputs)
	}
}

func (l *GroupListenerFuncs) AnyBecameInvalid(in *Input) {
	if l.OnAnyInvalid != nil {
		l.OnAnyInvalid(in)
	}
}

package validate

// Group aggregates the validity of several Inputs. It registers itself
// as a ChangeListener on every attached input and fires a single
// optional GroupListener: AllBecameValid once per all-valid episode,
// AnyBecameInvalid on every child invalid transition.
type Group struct {
	inputs   []*Input
	listener GroupListener
	allValid bool // edge tracker for AllBecameValid
}

func NewGroup() *Group { return &Group{} }

// Attach adds inputs to the group and subscribes to their transitions.
// Inputs without a pattern are always valid and never block the
// aggregate.
func (g *Group) Attach(inputs ...*Input) {
	for _, in := range inputs {
		if in == nil {
			continue
		}
		g.inputs = append(g.inputs, in)
		in.AddChangeListener(g)
	}
	// A newly attached invalid input ends the current all-valid episode.
	if g.allValid && !g.aggregate() {
		g.allValid = false
	}
}

// SetGroupListener sets the single group listener. Passing nil clears it.
func (g *Group) SetGroupListener(l GroupListener) { g.listener = l }

// Inputs returns the attached inputs in attach order.
func (g *Group) Inputs() []*Input { return g.inputs }

// AllValid reports whether every attached input is currently valid.
func (g *Group) AllValid() bool { return g.aggregate() }

func (g *Group) aggregate() bool {
	for _, in := range g.inputs {
		if !in.IsValid() {
			return false
		}
	}
	return true
}

// BecameValid implements ChangeListener. It recomputes the aggregate by
// scanning every child; when the aggregate rises it fires
// AllBecameValid exactly once until a child goes invalid again.
func (g *Group) BecameValid(*Input) {
	if g.allValid {
		return
	}
	if !g.aggregate() {
		return
	}
	g.allValid = true
	if g.listener != nil {
		g.listener.AllBecameValid(g.inputs)
	}
}

// BecameInvalid implements ChangeListener. Every child invalid
// transition propagates; the group does not debounce these.
func (g *Group) BecameInvalid(in *Input) {
	g.allValid = false
	if g.listener != nil {
		g.listener.AnyBecameInvalid(in)
	}
}

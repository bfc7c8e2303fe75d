package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/validform/internal/config"
	"github.com/jask/validform/internal/database/repository"
	"github.com/jask/validform/internal/validate"
)

// Form is the interactive form: one text input per configured field,
// each backed by a validate.Input whose border color tracks validity.
type Form struct {
	ctx   context.Context
	title string
	repo  *repository.SubmissionRepo // nil disables persistence

	labels []string
	inputs []textinput.Model
	fields []*validate.Input
	group  *validate.Group

	focus     int
	width     int
	status    string
	statusErr bool
	saved     int
	quitting  bool
}

type savedMsg struct {
	sub   repository.Submission
	total int
}

type errMsg struct{ error }

// NewForm builds the form from configuration. Malformed patterns and
// unknown presets fail here, before the program starts.
func NewForm(ctx context.Context, cfg config.Config, repo *repository.SubmissionRepo) (*Form, error) {
	f := &Form{ctx: ctx, title: cfg.UI.Title, repo: repo}
	style := cfg.Border.Style()

	for i, spec := range cfg.Fields {
		pattern, err := spec.ResolvePattern()
		if err != nil {
			return nil, err
		}
		field, err := validate.NewInput(spec.Key, pattern, style)
		if err != nil {
			return nil, err
		}

		inp := textinput.New()
		inp.Placeholder = spec.Placeholder
		inp.Prompt = ""
		if i == 0 {
			inp.Focus()
		}

		label := spec.Label
		if label == "" {
			label = spec.Key
		}
		f.labels = append(f.labels, label)
		f.inputs = append(f.inputs, inp)
		f.fields = append(f.fields, field)

		// Per-field transition feedback. Added before the group attaches
		// itself so the group's aggregate message wins on the same edge.
		field.AddChangeListener(&validate.ListenerFuncs{
			OnValid: func(in *validate.Input) {
				f.setStatus(in.Key()+" ok", false)
			},
			OnInvalid: func(in *validate.Input) {
				f.setStatus(in.Key()+" is invalid", true)
			},
		})
	}

	f.group = validate.NewGroup()
	f.group.Attach(f.fields...)
	f.group.SetGroupListener(&validate.GroupListenerFuncs{
		OnAllValid: func([]*validate.Input) {
			f.setStatus("all fields valid, press enter to submit", false)
		},
		OnAnyInvalid: func(in *validate.Input) {
			f.setStatus(in.Key()+" is invalid", true)
		},
	})
	return f, nil
}

func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = m.Width
		return f, nil

	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+c", "esc":
			f.quitting = true
			return f, tea.Quit
		case "tab", "shift+tab":
			dir := 1
			if m.String() == "shift+tab" {
				dir = -1
			}
			if len(f.inputs) > 0 {
				f.inputs[f.focus].Blur()
				f.focus = (f.focus + dir + len(f.inputs)) % len(f.inputs)
				f.inputs[f.focus].Focus()
			}
			return f, nil
		case "enter":
			return f.submit()
		}
		return f, f.updateFocused(msg)

	case savedMsg:
		f.saved = m.total
		f.clear()
		f.setStatus(fmt.Sprintf("saved submission %s (%d total)", shortID(m.sub.ID), m.total), false)
		return f, nil

	case errMsg:
		f.setStatus("error: "+m.Error(), true)
		return f, nil
	}
	return f, f.updateFocused(msg)
}

// updateFocused forwards the message to the focused text input and
// pushes any text change through the validator.
func (f *Form) updateFocused(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	before := f.inputs[f.focus].Value()
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if after := f.inputs[f.focus].Value(); after != before {
		f.fields[f.focus].SetText(after)
	}
	return cmd
}

func (f *Form) submit() (tea.Model, tea.Cmd) {
	if !f.group.AllValid() {
		f.setStatus("fix invalid fields first", true)
		return f, nil
	}
	if f.repo == nil {
		f.setStatus("submission storage not configured", true)
		return f, nil
	}
	values := make([]repository.FieldValue, 0, len(f.fields))
	for i, in := range f.fields {
		values = append(values, repository.FieldValue{Key: in.Key(), Value: f.inputs[i].Value()})
	}
	return f, func() tea.Msg {
		sub, err := f.repo.Save(f.ctx, values)
		if err != nil {
			return errMsg{err}
		}
		total, err := f.repo.Count(f.ctx)
		if err != nil {
			return errMsg{err}
		}
		return savedMsg{sub: sub, total: total}
	}
}

// clear resets every input for the next submission. Clearing text
// drives falling edges on fields that were valid, which is the same
// debounced notification path as typing.
func (f *Form) clear() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.fields[i].SetText("")
		f.inputs[i].Blur()
	}
	if len(f.inputs) > 0 {
		f.focus = 0
		f.inputs[0].Focus()
	}
}

func (f *Form) setStatus(msg string, isErr bool) {
	f.status = msg
	f.statusErr = isErr
}

func (f *Form) validCount() int {
	n := 0
	for _, in := range f.fields {
		if in.IsValid() {
			n++
		}
	}
	return n
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

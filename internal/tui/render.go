package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/validform/internal/validate"
)

const defaultBoxWidth = 44

func (f *Form) View() string {
	if f.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")

	for i := range f.inputs {
		label := "  " + f.labels[i]
		style := labelStyle
		if i == f.focus {
			label = "● " + f.labels[i]
			style = labelFocusedStyle
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
		b.WriteString(fieldBox(f.inputs[i].View(), f.fields[i], f.boxWidth()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d valid", f.validCount(), len(f.fields))))
	if f.status != "" {
		b.WriteString("  ")
		if f.statusErr {
			b.WriteString(statusErrStyle.Render(f.status))
		} else {
			b.WriteString(statusStyle.Render(f.status))
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next field  enter: submit  esc: quit"))
	return b.String()
}

func (f *Form) boxWidth() int {
	if f.width > 4 && f.width < defaultBoxWidth+4 {
		return f.width - 4
	}
	return defaultBoxWidth
}

// fieldBox draws the input inside its border: rounded corners when the
// style asks for a corner radius, square otherwise, painted with the
// field's current border color. Without a border the content passes
// through untouched.
func fieldBox(content string, in *validate.Input, width int) string {
	st := in.Style()
	if !st.HasBorder {
		return content
	}
	border := lipgloss.NormalBorder()
	if st.CornerRadius > 0 {
		border = lipgloss.RoundedBorder()
	}
	hpad := int(st.BorderWidth) / 2
	if hpad < 0 {
		hpad = 0
	}
	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(in.BorderColor()).
		Padding(0, hpad)
	if width > 0 {
		box = box.Width(width)
	}
	return box.Render(content)
}

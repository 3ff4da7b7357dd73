package form

import (
	"fmt"
	"strings"

	"github.com/sqlping/sqlping/internal/dsn"
	"github.com/sqlping/sqlping/internal/styles"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("sqlping — database connectivity test"))
	b.WriteString("\n\n")

	b.WriteString(m.renderSelector(fieldVendor, "Vendor", m.vendor()))
	b.WriteString(m.renderInput(fieldServer, "Server"))
	b.WriteString(m.renderInput(fieldPort, "Port"))
	b.WriteString(m.renderInput(fieldDatabase, "Database"))
	b.WriteString(m.renderInput(fieldUser, "Username"))
	b.WriteString(m.renderInput(fieldPassword, "Password"))
	b.WriteString(m.renderCheckbox(fieldPersist, "Persist security info", m.persist))
	b.WriteString(m.renderCheckbox(fieldIntegrated, "Integrated security", m.integrated))
	b.WriteString(m.renderSelector(fieldKind, "Command kind", m.kind.String()))
	b.WriteString(m.renderInput(fieldCommand, "Command"))

	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(styles.Error.Render(m.status))
		} else {
			b.WriteString(styles.Success.Render(m.status))
		}
		b.WriteString("\n")
	}
	if m.result != "" {
		b.WriteString("\n")
		b.WriteString(m.result)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Faint.Render(
		"ctrl+t test connection • ctrl+r run command • ctrl+y copy status • tab/↑↓ move • ←/→ cycle • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderInput(field int, label string) string {
	idx := inputFields[field]

	if !m.fieldEnabled(field) {
		return fmt.Sprintf("  %s %s\n",
			m.renderLabel(field, label),
			styles.FieldDisabled.Render("(integrated security)"))
	}
	return fmt.Sprintf("  %s %s\n", m.renderLabel(field, label), m.inputs[idx].View())
}

func (m Model) renderCheckbox(field int, label string, checked bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	if m.focus == field {
		box = styles.FieldFocused.Render(box)
	}
	return fmt.Sprintf("  %s %s\n", m.renderLabel(field, label), box)
}

func (m Model) renderSelector(field int, label, value string) string {
	sel := fmt.Sprintf("◂ %s ▸", value)
	if m.focus == field {
		sel = styles.FieldFocused.Render(sel)
	}
	out := fmt.Sprintf("  %s %s", m.renderLabel(field, label), sel)
	if field == fieldVendor {
		out += styles.Faint.Render(fmt.Sprintf("  (%s)", strings.Join(dsn.Vendors(), "/")))
	}
	return out + "\n"
}

func (m Model) renderLabel(field int, label string) string {
	padded := fmt.Sprintf("%-22s", label+":")
	if m.focus == field {
		return styles.FieldFocused.Render(padded)
	}
	return styles.FieldLabel.Render(padded)
}

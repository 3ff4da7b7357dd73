package form

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sqlping/sqlping/internal/connector"
	"github.com/sqlping/sqlping/internal/dsn"
	"github.com/sqlping/sqlping/internal/resultset"
)

const statusConnected = "Connection successful!"

// resultMsg carries the outcome of one connector action back to the model.
type resultMsg struct {
	status string
	isErr  bool
	result string
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case resultMsg:
		m.busy = false
		m.status = msg.status
		m.statusErr = msg.isErr
		m.result = msg.result
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down":
		m.moveFocus(1)
		return m, m.syncFocus()

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, m.syncFocus()

	case "left", "right":
		dir := 1
		if msg.String() == "left" {
			dir = -1
		}
		switch m.focus {
		case fieldVendor:
			m.cycleVendor(dir)
			return m, nil
		case fieldKind:
			m.cycleKind(dir)
			return m, nil
		case fieldPersist:
			m.persist = !m.persist
			return m, nil
		case fieldIntegrated:
			m.setIntegrated(!m.integrated)
			return m, m.syncFocus()
		}
		return m.updateFocusedInput(msg)

	case " ":
		switch m.focus {
		case fieldPersist:
			m.persist = !m.persist
			return m, nil
		case fieldIntegrated:
			m.setIntegrated(!m.integrated)
			return m, m.syncFocus()
		}
		return m.updateFocusedInput(msg)

	case "enter":
		if m.focus == fieldCommand {
			return m.startCommand()
		}
		m.moveFocus(1)
		return m, m.syncFocus()

	case "ctrl+t":
		return m.startConnect()

	case "ctrl+r":
		return m.startCommand()

	case "ctrl+y":
		text := m.status
		if m.result != "" {
			text += "\n" + m.result
		}
		clipboard.WriteAll(text)
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	idx, ok := inputFields[m.focus]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(dir int) {
	for {
		m.focus = (m.focus + dir + fieldCount) % fieldCount
		if m.fieldEnabled(m.focus) {
			return
		}
	}
}

// syncFocus focuses the textinput under the cursor and blurs the rest.
func (m *Model) syncFocus() tea.Cmd {
	var cmd tea.Cmd
	for field, idx := range inputFields {
		if field == m.focus {
			cmd = m.inputs[idx].Focus()
			continue
		}
		m.inputs[idx].Blur()
	}
	return cmd
}

func (m *Model) cycleVendor(dir int) {
	n := len(dsn.Vendors())
	m.vendorIdx = (m.vendorIdx + dir + n) % n
}

func (m *Model) cycleKind(dir int) {
	kinds := []Kind{KindAuto, KindExec, KindQuery}
	m.kind = kinds[(int(m.kind)+dir+len(kinds))%len(kinds)]
}

func (m Model) startConnect() (tea.Model, tea.Cmd) {
	m.busy = true
	m.status = "Connecting..."
	m.statusErr = false
	m.result = ""
	p := m.params()
	return m, func() tea.Msg {
		return m.performConnect(p)
	}
}

func (m Model) startCommand() (tea.Model, tea.Cmd) {
	command := strings.TrimSpace(m.inputValue(fieldCommand))
	if command == "" {
		m.status = "enter a SQL command first"
		m.statusErr = true
		return m, nil
	}
	m.busy = true
	m.status = "Executing..."
	m.statusErr = false
	m.result = ""
	p := m.params()
	kind := m.kind
	return m, func() tea.Msg {
		return m.performCommand(p, kind, command)
	}
}

// performConnect runs exactly one CanConnect cycle against a fresh
// connector.
func (m Model) performConnect(p dsn.Params) resultMsg {
	c, err := m.newConnector("form", p)
	if err != nil {
		return resultMsg{status: err.Error(), isErr: true}
	}

	ctx, cancel := context.WithTimeout(context.Background(), paramTimeout(p))
	defer cancel()

	if c.CanConnect(ctx) {
		return resultMsg{status: statusConnected}
	}
	return resultMsg{status: joinRecords(c.Errors()), isErr: true}
}

// performCommand runs exactly one execute or query cycle. KindAuto executes
// first and falls back to a row-returning query when nothing was affected.
func (m Model) performCommand(p dsn.Params, kind Kind, command string) resultMsg {
	c, err := m.newConnector("form", p)
	if err != nil {
		return resultMsg{status: err.Error(), isErr: true}
	}

	ctx, cancel := context.WithTimeout(context.Background(), paramTimeout(p))
	defer cancel()

	switch kind {
	case KindExec:
		return m.runExec(ctx, c, command)
	case KindQuery:
		return m.runQuery(ctx, c, command)
	default:
		affected, err := c.ExecuteNonQuery(ctx, command)
		if err != nil {
			return resultMsg{status: joinRecords(c.Errors()), isErr: true}
		}
		if affected > 0 {
			return resultMsg{status: fmt.Sprintf("%d row(s) affected", affected)}
		}
		return m.runQuery(ctx, c, command)
	}
}

func (m Model) runExec(ctx context.Context, c connector.Connector, command string) resultMsg {
	affected, err := c.ExecuteNonQuery(ctx, command)
	if err != nil {
		return resultMsg{status: joinRecords(c.Errors()), isErr: true}
	}
	return resultMsg{status: fmt.Sprintf("%d row(s) affected", affected)}
}

func (m Model) runQuery(ctx context.Context, c connector.Connector, command string) resultMsg {
	if m.rowLimit > 0 {
		command = c.ApplyRowLimit(command, m.rowLimit)
	}

	start := time.Now()
	tables, err := c.QueryDataSet(ctx, command)
	if err != nil {
		return resultMsg{status: joinRecords(c.Errors()), isErr: true}
	}

	total := 0
	for _, t := range tables {
		total += t.RowCount()
	}
	return resultMsg{
		status: fmt.Sprintf("%d table(s) returned, %d row(s)", len(tables), total),
		result: resultset.RenderSets(tables, time.Since(start)),
	}
}

// joinRecords concatenates diagnostic records into the status line, one
// "<message> <routine>" per line.
func joinRecords(records []connector.Record) string {
	if len(records) == 0 {
		return "operation failed"
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

func paramTimeout(p dsn.Params) time.Duration {
	t := p.Timeout
	if t <= 0 {
		t = dsn.DefaultTimeout
	}
	return time.Duration(t) * time.Second
}

// Package form implements the interactive connectivity-test form: vendor
// selector, connection fields, an integrated-security toggle, a command
// field, and a status line reporting the outcome of each action.
package form

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sqlping/sqlping/internal/connector"
	"github.com/sqlping/sqlping/internal/dsn"
)

// Kind states explicitly how the command field should be executed instead of
// inferring it from the affected-row count.
type Kind int

const (
	// KindAuto executes the command; on zero rows affected it re-runs the
	// text as a row-returning query.
	KindAuto Kind = iota
	KindExec
	KindQuery
)

func (k Kind) String() string {
	switch k {
	case KindExec:
		return "execute"
	case KindQuery:
		return "query"
	default:
		return "auto"
	}
}

// Field order on the form.
const (
	fieldVendor = iota
	fieldServer
	fieldPort
	fieldDatabase
	fieldUser
	fieldPassword
	fieldPersist
	fieldIntegrated
	fieldKind
	fieldCommand
	fieldCount
)

// inputFields maps form fields to their textinput index, -1 for non-text
// controls.
var inputFields = map[int]int{
	fieldServer:   0,
	fieldPort:     1,
	fieldDatabase: 2,
	fieldUser:     3,
	fieldPassword: 4,
	fieldCommand:  5,
}

type Model struct {
	inputs     []textinput.Model
	vendorIdx  int
	persist    bool
	integrated bool
	kind       Kind
	focus      int
	rowLimit   int

	status    string
	statusErr bool
	result    string
	busy      bool
	quitting  bool

	// newConnector builds a fresh connector per action; swapped in tests.
	newConnector func(name string, p dsn.Params) (connector.Connector, error)
}

// New builds the form model, optionally pre-filled from a saved profile.
// rowLimit caps row-returning commands; 0 disables the cap.
func New(initial dsn.Params, rowLimit int) Model {
	mk := func(placeholder string, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 256
		ti.Width = width
		return ti
	}

	inputs := []textinput.Model{
		mk("host or host\\instance", 40),
		mk("port (optional)", 10),
		mk("database name", 30),
		mk("username", 30),
		mk("password", 30),
		mk("SQL command", 60),
	}
	inputs[inputFields[fieldPassword]].EchoMode = textinput.EchoPassword
	inputs[inputFields[fieldPassword]].EchoCharacter = '•'

	m := Model{
		inputs:       inputs,
		focus:        fieldVendor,
		rowLimit:     rowLimit,
		newConnector: connector.FromParams,
	}

	if initial.Vendor != "" {
		for i, v := range dsn.Vendors() {
			if v == dsn.Normalize(initial.Vendor) {
				m.vendorIdx = i
			}
		}
	}
	m.setInput(fieldServer, initial.Host)
	if initial.Port > 0 {
		m.setInput(fieldPort, strconv.Itoa(initial.Port))
	}
	m.setInput(fieldDatabase, initial.Database)
	m.setInput(fieldUser, initial.User)
	m.setInput(fieldPassword, initial.Password)
	m.persist = initial.Persist
	if initial.Integrated {
		m.setIntegrated(true)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) setInput(field int, value string) {
	if idx, ok := inputFields[field]; ok {
		m.inputs[idx].SetValue(value)
	}
}

func (m Model) inputValue(field int) string {
	if idx, ok := inputFields[field]; ok {
		return m.inputs[idx].Value()
	}
	return ""
}

// setIntegrated applies the checkbox side effect: enabling clears and
// disables the username and password fields, disabling re-enables them.
func (m *Model) setIntegrated(on bool) {
	m.integrated = on
	if on {
		m.setInput(fieldUser, "")
		m.setInput(fieldPassword, "")
		if m.focus == fieldUser || m.focus == fieldPassword {
			m.focus = fieldIntegrated
		}
	}
}

// fieldEnabled reports whether a field can take focus.
func (m Model) fieldEnabled(field int) bool {
	if m.integrated && (field == fieldUser || field == fieldPassword) {
		return false
	}
	return true
}

func (m Model) vendor() string {
	return dsn.Vendors()[m.vendorIdx]
}

// params assembles connection parameters from the current field values. A
// fresh Params is built on every action and discarded afterwards.
func (m Model) params() dsn.Params {
	port, _ := strconv.Atoi(m.inputValue(fieldPort))
	return dsn.Params{
		Vendor:     m.vendor(),
		Host:       m.inputValue(fieldServer),
		Port:       port,
		Database:   m.inputValue(fieldDatabase),
		User:       m.inputValue(fieldUser),
		Password:   m.inputValue(fieldPassword),
		Persist:    m.persist,
		Integrated: m.integrated,
	}
}

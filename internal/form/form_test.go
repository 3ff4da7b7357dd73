package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sqlping/sqlping/internal/connector"
	"github.com/sqlping/sqlping/internal/dsn"
	"github.com/sqlping/sqlping/internal/resultset"
)

// stubConnector scripts connector outcomes so form behavior can be tested
// without a driver.
type stubConnector struct {
	canConnect  bool
	affected    int64
	execErr     error
	tables      []*resultset.Table
	queryErr    error
	records     []connector.Record
	lastCommand string
}

func (s *stubConnector) CanConnect(ctx context.Context) bool { return s.canConnect }

func (s *stubConnector) ExecuteNonQuery(ctx context.Context, command string) (int64, error) {
	return s.affected, s.execErr
}

func (s *stubConnector) ExecuteScalar(ctx context.Context, command string) (any, error) {
	return nil, nil
}

func (s *stubConnector) QueryTable(ctx context.Context, command string) (*resultset.Table, error) {
	if len(s.tables) == 0 {
		return &resultset.Table{}, s.queryErr
	}
	return s.tables[0], s.queryErr
}

func (s *stubConnector) QueryDataSet(ctx context.Context, command string) ([]*resultset.Table, error) {
	s.lastCommand = command
	return s.tables, s.queryErr
}

func (s *stubConnector) ApplyRowLimit(command string, limit int) string {
	return fmt.Sprintf("%s\nLIMIT %d", command, limit)
}

func (s *stubConnector) AddParameter(p connector.Param)  {}
func (s *stubConnector) Parameters() []connector.Param   { return nil }
func (s *stubConnector) Clear()                          {}
func (s *stubConnector) ClearErrors()                    { s.records = nil }
func (s *stubConnector) Errors() []connector.Record      { return s.records }
func (s *stubConnector) GetName() string                 { return "stub" }
func (s *stubConnector) GetVendor() string               { return "stub" }
func (s *stubConnector) GetDSN() string                  { return "" }

func newTestModel(stub *stubConnector) Model {
	m := New(dsn.Params{}, 0)
	return withStub(m, stub)
}

func withStub(m Model, stub *stubConnector) Model {
	m.newConnector = func(name string, p dsn.Params) (connector.Connector, error) {
		return stub, nil
	}
	return m
}

func TestIntegratedToggleClearsAndDisablesCredentials(t *testing.T) {
	m := New(dsn.Params{}, 0)
	m.setInput(fieldUser, "sa")
	m.setInput(fieldPassword, "secret")

	m.setIntegrated(true)

	if m.inputValue(fieldUser) != "" || m.inputValue(fieldPassword) != "" {
		t.Error("enabling integrated security should clear username and password")
	}
	if m.fieldEnabled(fieldUser) || m.fieldEnabled(fieldPassword) {
		t.Error("credential fields should be disabled while integrated security is on")
	}

	m.setIntegrated(false)

	if !m.fieldEnabled(fieldUser) || !m.fieldEnabled(fieldPassword) {
		t.Error("disabling integrated security should re-enable credential fields")
	}
}

func TestIntegratedToggleMovesFocusOffDisabledField(t *testing.T) {
	m := New(dsn.Params{}, 0)
	m.focus = fieldPassword

	m.setIntegrated(true)

	if m.focus == fieldUser || m.focus == fieldPassword {
		t.Errorf("focus stayed on a disabled field: %d", m.focus)
	}
}

func TestSpaceTogglesIntegratedCheckbox(t *testing.T) {
	m := New(dsn.Params{}, 0)
	m.focus = fieldIntegrated

	updated, _ := m.handleKeyPress(tea.KeyMsg{Type: tea.KeySpace})
	got := updated.(Model)

	if !got.integrated {
		t.Error("space on the checkbox should enable integrated security")
	}
}

func TestMoveFocusSkipsDisabledFields(t *testing.T) {
	m := New(dsn.Params{}, 0)
	m.setIntegrated(true)
	m.focus = fieldDatabase

	m.moveFocus(1)
	if m.focus != fieldPersist {
		t.Errorf("focus = %d, want fieldPersist (credentials skipped)", m.focus)
	}
}

func TestPerformConnectSuccess(t *testing.T) {
	m := newTestModel(&stubConnector{canConnect: true})

	msg := m.performConnect(dsn.Params{Vendor: "sqlserver"})

	if msg.status != "Connection successful!" {
		t.Errorf("status = %q, want exact success text", msg.status)
	}
	if msg.isErr {
		t.Error("success should not be marked as error")
	}
}

func TestPerformConnectFailure(t *testing.T) {
	stub := &stubConnector{
		canConnect: false,
		records: []connector.Record{
			{Source: "sqlserver", Message: "no such host", Routine: "CanConnect"},
		},
	}
	m := newTestModel(stub)

	msg := m.performConnect(dsn.Params{Vendor: "sqlserver"})

	if !msg.isErr {
		t.Error("failure should be marked as error")
	}
	if msg.status != "no such host CanConnect" {
		t.Errorf("status = %q, want message plus routine name", msg.status)
	}
}

func TestPerformCommandExec(t *testing.T) {
	m := newTestModel(&stubConnector{affected: 3})

	msg := m.performCommand(dsn.Params{}, KindExec, "UPDATE t SET x = 1")

	if msg.status != "3 row(s) affected" {
		t.Errorf("status = %q", msg.status)
	}
}

func TestPerformCommandExecFailure(t *testing.T) {
	stub := &stubConnector{
		execErr: errors.New("boom"),
		records: []connector.Record{
			{Source: "oracle", Message: "ORA-00942: table or view does not exist", Routine: "ExecuteNonQuery"},
		},
	}
	m := newTestModel(stub)

	msg := m.performCommand(dsn.Params{}, KindExec, "UPDATE ghost SET x = 1")

	if !msg.isErr {
		t.Error("exec failure should be marked as error")
	}
	if !strings.Contains(msg.status, "ORA-00942") || !strings.HasSuffix(msg.status, "ExecuteNonQuery") {
		t.Errorf("status = %q", msg.status)
	}
}

func TestPerformCommandAutoFallsBackToQuery(t *testing.T) {
	stub := &stubConnector{
		affected: 0,
		tables: []*resultset.Table{
			{Columns: []string{"id"}, Rows: [][]any{{int64(1)}, {int64(2)}}},
		},
	}
	m := newTestModel(stub)

	msg := m.performCommand(dsn.Params{}, KindAuto, "SELECT id FROM users")

	if msg.status != "1 table(s) returned, 2 row(s)" {
		t.Errorf("status = %q, want query fallback summary", msg.status)
	}
	if msg.result == "" {
		t.Error("fallback query should render a result table")
	}
}

func TestRunQueryAppliesRowLimit(t *testing.T) {
	stub := &stubConnector{
		tables: []*resultset.Table{
			{Columns: []string{"id"}, Rows: [][]any{{int64(1)}}},
		},
	}
	m := withStub(New(dsn.Params{}, 25), stub)

	msg := m.performCommand(dsn.Params{}, KindQuery, "SELECT id FROM users")

	if msg.isErr {
		t.Fatalf("unexpected error status %q", msg.status)
	}
	if !strings.HasSuffix(stub.lastCommand, "LIMIT 25") {
		t.Errorf("command sent = %q, want the row limit appended", stub.lastCommand)
	}
}

func TestRunQueryWithoutRowLimitLeavesCommand(t *testing.T) {
	stub := &stubConnector{
		tables: []*resultset.Table{
			{Columns: []string{"id"}, Rows: [][]any{{int64(1)}}},
		},
	}
	m := withStub(New(dsn.Params{}, 0), stub)

	m.performCommand(dsn.Params{}, KindQuery, "SELECT id FROM users")

	if stub.lastCommand != "SELECT id FROM users" {
		t.Errorf("command sent = %q, want it unchanged when no limit is set", stub.lastCommand)
	}
}

func TestPerformCommandAutoKeepsAffectedCount(t *testing.T) {
	m := newTestModel(&stubConnector{affected: 5})

	msg := m.performCommand(dsn.Params{}, KindAuto, "DELETE FROM t")

	if msg.status != "5 row(s) affected" {
		t.Errorf("status = %q, want affected count without fallback", msg.status)
	}
}

func TestStartCommandRequiresText(t *testing.T) {
	m := New(dsn.Params{}, 0)

	updated, cmd := m.startCommand()
	got := updated.(Model)

	if cmd != nil {
		t.Error("empty command should not start an action")
	}
	if !got.statusErr {
		t.Error("empty command should surface as an error status")
	}
}

func TestParamsAssembly(t *testing.T) {
	m := New(dsn.Params{}, 0)
	m.vendorIdx = 0 // sqlserver
	m.setInput(fieldServer, "db1")
	m.setInput(fieldPort, "1433")
	m.setInput(fieldDatabase, "master")
	m.setInput(fieldUser, "sa")
	m.setInput(fieldPassword, "pw")
	m.persist = true

	p := m.params()

	want := dsn.Params{
		Vendor: "sqlserver", Host: "db1", Port: 1433, Database: "master",
		User: "sa", Password: "pw", Persist: true,
	}
	if p != want {
		t.Errorf("params() = %+v, want %+v", p, want)
	}
}

func TestCycleVendorWraps(t *testing.T) {
	m := New(dsn.Params{}, 0)
	n := len(dsn.Vendors())

	m.cycleVendor(-1)
	if m.vendorIdx != n-1 {
		t.Errorf("vendorIdx = %d, want wrap to %d", m.vendorIdx, n-1)
	}
	m.cycleVendor(1)
	if m.vendorIdx != 0 {
		t.Errorf("vendorIdx = %d, want wrap to 0", m.vendorIdx)
	}
}

func TestNewPrefillsFromProfile(t *testing.T) {
	m := New(dsn.Params{
		Vendor: "oracle", Host: "dbhost", Port: 1521, Database: "ORCL",
		User: "scott", Integrated: false,
	}, 0)

	if m.vendor() != "oracle" {
		t.Errorf("vendor = %q, want oracle", m.vendor())
	}
	if m.inputValue(fieldServer) != "dbhost" || m.inputValue(fieldPort) != "1521" {
		t.Error("host and port should be prefilled")
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sqlping/sqlping/internal/config"
	"github.com/sqlping/sqlping/internal/dsn"
	"github.com/sqlping/sqlping/internal/styles"
)

type App struct {
	config *config.Config
}

func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
	}
}

func (a *App) Run() {
	if len(os.Args) < 2 {
		a.handleForm()
		return
	}

	command := os.Args[1]
	switch command {
	case "form":
		a.handleForm()
	case "check", "ping":
		a.handleCheck()
	case "exec":
		a.handleExec()
	case "scalar":
		a.handleScalar()
	case "query":
		a.handleQuery()
	case "init", "add":
		a.handleInit()
	case "switch", "use":
		a.handleSwitch()
	case "list":
		a.handleList()
	case "remove", "delete":
		a.handleRemove()
	case "status":
		a.handleStatus()
	case "edit":
		a.handleEdit()
	case "help":
		a.handleHelp()
	default:
		printError("Unknown command: %s", command)
	}
}

func printError(format string, args ...any) {
	fmt.Println(styles.Error.Render(fmt.Sprintf(format, args...)))
	os.Exit(1)
}

// multiFlag collects repeated -param flags.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// paramFlags registers the connection fields on a flag set and returns the
// Params visible after parsing.
func paramFlags(fs *flag.FlagSet) *dsn.Params {
	p := &dsn.Params{}
	fs.StringVar(&p.Vendor, "vendor", "", "database vendor (sqlserver, oracle, postgres, mysql, sqlite)")
	fs.StringVar(&p.Host, "host", "", "server host or host\\instance")
	fs.IntVar(&p.Port, "port", 0, "server port")
	fs.StringVar(&p.Database, "db", "", "database (catalog) name")
	fs.StringVar(&p.User, "user", "", "username")
	fs.StringVar(&p.Password, "password", "", "password")
	fs.BoolVar(&p.Integrated, "integrated", false, "use integrated (OS) authentication")
	fs.BoolVar(&p.Persist, "persist", false, "keep the password readable in saved profiles and output")
	fs.IntVar(&p.Timeout, "timeout", dsn.DefaultTimeout, "connection timeout in seconds")
	return p
}

// resolveParams picks connection parameters for a command: a profile name
// argument, explicit flags, or the current profile when nothing is given.
func (a *App) resolveParams(args []string) (dsn.Params, error) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		profile, ok := a.config.Profiles[args[0]]
		if !ok {
			return dsn.Params{}, fmt.Errorf("profile %q does not exist", args[0])
		}
		return profile.Params, nil
	}

	if len(args) > 0 {
		fs := flag.NewFlagSet("connection", flag.ExitOnError)
		p := paramFlags(fs)
		if err := fs.Parse(args); err != nil {
			return dsn.Params{}, err
		}
		return *p, nil
	}

	profile, err := a.config.Current()
	if err != nil {
		return dsn.Params{}, err
	}
	return profile.Params, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sqlping/sqlping/internal/connector"
	"github.com/sqlping/sqlping/internal/params"
	"github.com/sqlping/sqlping/internal/styles"
)

// commandConnector parses the trailing -param/-profile flags shared by exec,
// scalar and query, and builds a connector bound to the resolved profile.
func (a *App) commandConnector(name string, args []string) (connector.Connector, context.Context, context.CancelFunc, string) {
	if len(args) < 1 {
		printError("Usage: sqlping %s <sql> [-profile <name>] [-param name=value]...", name)
	}
	command := args[0]

	fs := flag.NewFlagSet(name, flag.ExitOnError)
	profileName := fs.String("profile", "", "profile to run against (defaults to the current one)")
	var pairs multiFlag
	fs.Var(&pairs, "param", "bind a command parameter as name=value (repeatable)")
	if err := fs.Parse(args[1:]); err != nil {
		printError("%v", err)
	}

	profileArgs := []string{}
	if *profileName != "" {
		profileArgs = append(profileArgs, *profileName)
	}
	p, err := a.resolveParams(profileArgs)
	if err != nil {
		printError("%v", err)
	}

	conn, err := connector.FromParams(name, p)
	if err != nil {
		printError("Could not create connector for %s: %v", p.Vendor, err)
	}

	bound, err := params.ParseAll(pairs)
	if err != nil {
		printError("%v", err)
	}
	for _, b := range bound {
		conn.AddParameter(b)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeoutOf(p))
	return conn, ctx, cancel, command
}

func (a *App) handleExec() {
	conn, ctx, cancel, command := a.commandConnector("exec", os.Args[2:])
	defer cancel()

	affected, err := conn.ExecuteNonQuery(ctx, command)
	if err != nil {
		reportRecords(conn)
	}
	fmt.Println(styles.Success.Render(fmt.Sprintf("%d row(s) affected", affected)))
}

func (a *App) handleScalar() {
	conn, ctx, cancel, command := a.commandConnector("scalar", os.Args[2:])
	defer cancel()

	value, err := conn.ExecuteScalar(ctx, command)
	if err != nil {
		reportRecords(conn)
	}
	if value == nil {
		fmt.Println(styles.Faint.Render("NULL"))
		return
	}
	fmt.Println(value)
}

// reportRecords prints every diagnostic record and exits non-zero.
func reportRecords(conn connector.Connector) {
	for _, rec := range conn.Errors() {
		fmt.Println(styles.Error.Render(rec.String()))
	}
	os.Exit(1)
}

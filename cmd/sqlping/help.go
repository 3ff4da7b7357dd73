package main

import (
	"fmt"

	"github.com/sqlping/sqlping/internal/connector"
	"github.com/sqlping/sqlping/internal/dsn"
	"github.com/sqlping/sqlping/internal/styles"
)

func (a *App) handleHelp() {
	section := func(s string) { fmt.Println("\n" + styles.Title.Render(s)) }
	cmd := func(usage, desc string) {
		fmt.Printf("  %-52s %s\n", usage, styles.Faint.Render(desc))
	}

	fmt.Println(styles.Title.Render("sqlping — test database connectivity from the terminal"))

	section("Interactive")
	cmd("sqlping [form [profile]]", "open the connectivity-test form")

	section("One-shot")
	cmd("sqlping check [profile | flags]", "open, ping and close a connection")
	cmd("sqlping exec <sql> [-profile p] [-param n=v]...", "run a statement, print rows affected")
	cmd("sqlping scalar <sql> [-profile p] [-param n=v]...", "run a query, print the first value")
	cmd("sqlping query <sql> [-profile p] [-param n=v]...", "run a query, print every result set")

	section("Profiles")
	cmd("sqlping init <name> -vendor v -host h -db d [flags]", "verify and save a profile")
	cmd("sqlping switch <profile>", "change the active profile")
	cmd("sqlping list", "list saved profiles")
	cmd("sqlping remove <profile>", "delete a profile")
	cmd("sqlping status", "show the active profile and reachability")
	cmd("sqlping edit", "open the config file in $EDITOR")

	section("Connection flags")
	fmt.Println(styles.Faint.Render("  -vendor -host -port -db -user -password -integrated -persist -timeout"))

	section("Parameter placeholders")
	for _, v := range dsn.Vendors() {
		fmt.Printf("  %-12s %s\n", v,
			styles.Faint.Render(fmt.Sprintf("%s, %s, ...", connector.Placeholder(v, 1), connector.Placeholder(v, 2))))
	}
	fmt.Println()
}

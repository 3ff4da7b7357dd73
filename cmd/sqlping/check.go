package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sqlping/sqlping/internal/connector"
	"github.com/sqlping/sqlping/internal/dsn"
	"github.com/sqlping/sqlping/internal/spinner"
	"github.com/sqlping/sqlping/internal/styles"
)

func (a *App) handleCheck() {
	p, err := a.resolveParams(os.Args[2:])
	if err != nil {
		printError("%v", err)
	}

	conn, err := connector.FromParams("check", p)
	if err != nil {
		printError("Could not create connector for %s: %v", p.Vendor, err)
	}

	done := make(chan struct{})
	go spinner.CircleWait(done)

	ctx, cancel := context.WithTimeout(context.Background(), timeoutOf(p))
	ok := conn.CanConnect(ctx)
	cancel()

	close(done)
	fmt.Print("\r\033[2K")

	if ok {
		fmt.Println(styles.Success.Render("Connection successful!"))
		return
	}
	for _, rec := range conn.Errors() {
		fmt.Println(styles.Error.Render(rec.String()))
	}
	os.Exit(1)
}

func timeoutOf(p dsn.Params) time.Duration {
	t := p.Timeout
	if t <= 0 {
		t = dsn.DefaultTimeout
	}
	return time.Duration(t) * time.Second
}

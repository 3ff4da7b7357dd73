package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sqlping/sqlping/internal/resultset"
	"github.com/sqlping/sqlping/internal/spinner"
	"github.com/sqlping/sqlping/internal/styles"
)

func (a *App) handleQuery() {
	conn, ctx, cancel, command := a.commandConnector("query", os.Args[2:])
	defer cancel()

	if a.config.DefaultRowLimit > 0 {
		command = conn.ApplyRowLimit(command, a.config.DefaultRowLimit)
	}

	start := time.Now()
	done := make(chan struct{})
	go spinner.Wait(done)

	tables, err := conn.QueryDataSet(ctx, command)
	done <- struct{}{}
	elapsed := time.Since(start)

	if err != nil {
		reportRecords(conn)
	}

	total := 0
	for _, t := range tables {
		total += t.RowCount()
	}
	fmt.Println(resultset.RenderSets(tables, elapsed))
	fmt.Println(styles.Success.Render(fmt.Sprintf("%d table(s) returned, %d row(s)", len(tables), total)))
}

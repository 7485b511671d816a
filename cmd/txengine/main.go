package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/txledger/txengine/account"
	"github.com/txledger/txengine/common/interrupt"
	"github.com/txledger/txengine/engine"
	"github.com/txledger/txengine/history"
	"github.com/txledger/txengine/ingest"
	"github.com/txledger/txengine/report"
)

// Run with `go run ./cmd/txengine transactions.csv`

func main() {
	app := &cli.App{
		Name:      "txengine",
		HelpName:  "txengine",
		Usage:     "replays a transaction record stream into a final account snapshot",
		ArgsUsage: "<input.csv>",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: txengine <input.csv>", 1)
	}
	path := c.Args().Get(0)

	f, err := os.Open(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("opening %s: %v", path, err), 1)
	}
	defer f.Close()

	ctx := interrupt.CancelOnInterrupt(context.Background())

	accounts := account.NewStore()
	hist := history.NewStore()
	eng := engine.New(accounts, hist)

	rows := make(chan engine.Row, ingest.QueueSize)
	readErrCh := make(chan error, 1)
	go func() { readErrCh <- ingest.Read(f, rows) }()

loop:
	for {
		select {
		case row, ok := <-rows:
			if !ok {
				break loop
			}
			_ = eng.Process(row)
		case <-ctx.Done():
			// Discard the rest of the stream so the reader can run to
			// EOF and exit instead of blocking forever on a send
			// nobody receives.
			go func() {
				for range rows {
				}
			}()
			break loop
		}
	}

	if err := <-readErrCh; err != nil {
		return cli.Exit(fmt.Sprintf("reading %s: %v", path, err), 1)
	}

	return report.Write(os.Stdout, accounts)
}

// Package ingest reads the external transaction record stream and turns it
// into engine.Row values delivered over a bounded channel, so the engine's
// single-writer loop never blocks on file I/O.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/txledger/txengine/account"
	"github.com/txledger/txengine/amount"
	"github.com/txledger/txengine/engine"
	"github.com/txledger/txengine/history"
)

// QueueSize bounds the reader-to-engine handoff channel.
const QueueSize = 4096

// Read parses src as a CSV stream of type,client,tx,amount rows and sends
// the resulting engine.Row values to out, closing out once src is
// exhausted. Malformed rows, and every other error the CSV reader reports
// before EOF, are logged and skipped; Read returns nil.
//
// The header row, if present, is detected by its non-numeric client field
// and discarded.
func Read(src io.Reader, out chan<- engine.Row) error {
	defer close(out)

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	first := true
	for {
		fields, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			log.Printf("ingest: malformed record, skipping: %v", err)
			continue
		}
		if first {
			first = false
			if looksLikeHeader(fields) {
				continue
			}
		}
		row, err := decodeRow(fields)
		if err != nil {
			log.Printf("ingest: skipping record %v: %v", fields, err)
			continue
		}
		out <- row
	}
}

func looksLikeHeader(fields []string) bool {
	if len(fields) < 3 {
		return false
	}
	_, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 16)
	return err != nil
}

func decodeRow(fields []string) (engine.Row, error) {
	if len(fields) < 3 {
		return engine.Row{}, fmt.Errorf("ingest: expected at least 3 fields, got %d", len(fields))
	}
	kind := strings.TrimSpace(fields[0])

	client, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 16)
	if err != nil {
		return engine.Row{}, fmt.Errorf("ingest: invalid client id %q: %w", fields[1], err)
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return engine.Row{}, fmt.Errorf("ingest: invalid transaction id %q: %w", fields[2], err)
	}

	row := engine.Row{
		Kind:   kind,
		Client: account.ClientID(client),
		TX:     history.TransactionID(tx),
	}

	if len(fields) > 3 && strings.TrimSpace(fields[3]) != "" {
		a, err := amount.Parse(fields[3])
		if err != nil {
			return engine.Row{}, fmt.Errorf("ingest: invalid amount %q: %w", fields[3], err)
		}
		row.Amount = &a
	}
	return row, nil
}

// Package report writes the final account snapshot as CSV.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/txledger/txengine/account"
)

var header = []string{"client", "available", "held", "total", "locked"}

// Write emits one CSV row per account in s, in the ascending ClientID order
// s.Each iterates, preceded by a header row.
func Write(w io.Writer, s *account.Store) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return err
	}

	var writeErr error
	s.Each(func(e account.Entry) {
		if writeErr != nil {
			return
		}
		writeErr = cw.Write([]string{
			strconv.FormatUint(uint64(e.Client), 10),
			e.Available.String(),
			e.Held.String(),
			e.Total.String(),
			strconv.FormatBool(e.Locked),
		})
	})
	if writeErr != nil {
		return writeErr
	}
	cw.Flush()
	return cw.Error()
}

// Package export renders record listings as CSV text.
package export

import (
	"bytes"
	"encoding/csv"

	"github.com/pkg/errors"
)

// CSV writes header and rows with RFC 4180 quoting: fields containing a
// comma, quote or newline are quoted and inner quotes are doubled.
func CSV(header []string, rows [][]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return "", errors.Wrap(err, "failed to write csv header")
	}

	if err := w.WriteAll(rows); err != nil {
		return "", errors.Wrap(err, "failed to write csv rows")
	}

	return buf.String(), nil
}

package ingest

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// statementLineRe matches one "date  description  amount" statement line.
// Amounts may use Norwegian formatting (space or dot thousands separator,
// comma decimals) or plain decimals; a trailing CR marks a credit.
var statementLineRe = regexp.MustCompile(
	`^(\d{1,2}[./-]\d{1,2}[./-]\d{2,4}|\d{4}-\d{2}-\d{2})\s+(.+?)\s+` +
		`(-?\d{1,3}(?:[ .]\d{3})*,\d{2}|-?\d+(?:[.,]\d{2})?)\s*(CR)?$`,
)

// decodePDF extracts text from a PDF statement and rebuilds it as a
// synthetic single-amount table so it flows through the same column
// resolution and normalization as delimited files. Lines without CR are
// debits and get a negative sign.
func decodePDF(data []byte) (*Table, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &Error{Code: ErrUndecodableContent, Message: "could not open PDF", Cause: err}
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return nil, &Error{Code: ErrUndecodableContent, Message: "could not extract PDF text", Cause: err}
	}
	text, err := io.ReadAll(textReader)
	if err != nil {
		return nil, &Error{Code: ErrUndecodableContent, Message: "could not read PDF text", Cause: err}
	}

	table := &Table{Columns: []string{"dato", "forklaring", "beløp"}}
	for _, line := range strings.Split(string(text), "\n") {
		m := statementLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		date, description, amount, credit := m[1], strings.TrimSpace(m[2]), m[3], m[4]
		if credit == "" && !strings.HasPrefix(amount, "-") {
			amount = "-" + amount
		}
		if credit != "" {
			amount = strings.TrimPrefix(amount, "-")
		}
		table.Rows = append(table.Rows, []string{date, description, amount})
	}

	if len(table.Rows) == 0 {
		return nil, newError(ErrUndecodableContent, "no transaction lines found in PDF text")
	}
	return table, nil
}

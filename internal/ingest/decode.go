package ingest

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// Table is a decoded tabular file: the normalized (lower-cased, trimmed)
// header plus all data rows as strings. Column order is preserved from the
// source; the resolver depends on it.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Cell returns the value at the given column index, or "" when the row is
// ragged and the index is out of range.
func (t *Table) Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func normalizeHeader(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return out
}

// DecodeFile sniffs the format from the filename extension and decodes the
// raw bytes into a Table. Supported: .xlsx (spreadsheet), .txt/.csv
// (delimited text, ';' then ','), .pdf (statement text extraction).
func DecodeFile(filename string, data []byte) (*Table, error) {
	if len(data) == 0 {
		return nil, newError(ErrEmptyInput, "uploaded file is empty")
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return decodeXLSX(data)
	case ".txt", ".csv":
		return decodeDelimited(data)
	case ".pdf":
		return decodePDF(data)
	default:
		return nil, newError(ErrUnsupportedFormat, "unsupported file type: %s", filepath.Ext(filename))
	}
}

func decodeXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Code: ErrUndecodableContent, Message: "could not open spreadsheet", Cause: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, newError(ErrUndecodableContent, "spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &Error{Code: ErrUndecodableContent, Message: "could not read sheet rows", Cause: err}
	}
	if len(rows) == 0 {
		return nil, newError(ErrUndecodableContent, "spreadsheet is empty")
	}

	return &Table{Columns: normalizeHeader(rows[0]), Rows: rows[1:]}, nil
}

// decodeDelimited attempts ';' then ',' as the separator. Legacy Norwegian
// bank exports are often ISO-8859-1, so invalid UTF-8 input is re-decoded
// through Latin-1 first.
func decodeDelimited(data []byte) (*Table, error) {
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, &Error{Code: ErrUndecodableContent, Message: "could not decode text content", Cause: err}
		}
		data = decoded
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM

	var lastErr error
	for _, sep := range []rune{';', ','} {
		table, err := parseCSV(data, sep)
		if err != nil {
			lastErr = err
			continue
		}
		// A single-column header means we picked the wrong separator.
		if len(table.Columns) >= 2 {
			return table, nil
		}
	}
	return nil, &Error{Code: ErrUndecodableContent, Message: "could not parse delimited content", Cause: lastErr}
}

func parseCSV(data []byte, sep rune) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}

	return &Table{Columns: normalizeHeader(header), Rows: rows}, nil
}

// Package trumf is the HTTP client for the Trumf loyalty-program API.
// Authentication is pass-through: the caller's bearer token is forwarded
// unchanged, and no token handling happens here.
package trumf

import "encoding/json"

// Transaction is one entry of the member's transaction history.
type Transaction struct {
	BatchID               string  `json:"batchId"`
	ButikkID              string  `json:"butikkId"`
	Belop                 float64 `json:"belop"`
	TransaksjonsTidspunkt string  `json:"transaksjonsTidspunkt"`
}

// LineItem is one purchased product on a digital receipt.
type LineItem struct {
	ProduktBeskrivelse string  `json:"produktBeskrivelse"`
	Belop              float64 `json:"belop"`
	Antall             float64 `json:"antall"`
}

// Receipt is the raw digital receipt payload.
type Receipt struct {
	ButikkID              string     `json:"butikkId"`
	Belop                 float64    `json:"belop"`
	TransaksjonsTidspunkt string     `json:"transaksjonsTidspunkt"`
	Varelinjer            []LineItem `json:"varelinjer"`
}

// ProcessedItem is the simplified item shape handed to callers.
type ProcessedItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// ReceiptDetail combines the raw receipt with the processed item list.
type ReceiptDetail struct {
	ReceiptData    json.RawMessage `json:"receipt_data"`
	ProcessedItems []ProcessedItem `json:"processed_items"`
	Store          string          `json:"store"`
	Date           string          `json:"date"`
	Total          float64         `json:"total"`
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pengeflyt/backend/internal/analytics"
	"github.com/pengeflyt/backend/internal/category"
	"github.com/pengeflyt/backend/internal/ingest"
	"github.com/pengeflyt/backend/internal/model"
	"github.com/pengeflyt/backend/internal/trumf"
)

// maxUploadBytes bounds statement uploads; the whole file is read into
// memory before parsing.
const maxUploadBytes = 20 << 20

// TrumfAPI is the slice of the Trumf client the handlers need.
type TrumfAPI interface {
	GetTransactions(ctx context.Context, limit int) ([]trumf.Transaction, error)
	GetReceipt(ctx context.Context, batchID string) (*trumf.ReceiptDetail, error)
}

// Handler carries the shared read-only dependencies of all endpoints.
// Each request runs its own pipeline; no accumulator state is shared.
type Handler struct {
	taxonomy *category.Taxonomy
	log      zerolog.Logger

	// newTrumfClient builds a client per request token. Overridden in tests.
	newTrumfClient func(token string) TrumfAPI
}

// NewHandler creates the API handler set.
func NewHandler(taxonomy *category.Taxonomy, log zerolog.Logger) *Handler {
	return &Handler{
		taxonomy: taxonomy,
		log:      log,
		newTrumfClient: func(token string) TrumfAPI {
			return trumf.NewClient(token)
		},
	}
}

// uploadResponse is the ingest entry point's success shape. Warning is set
// when the file parsed but yielded zero valid rows.
type uploadResponse struct {
	Transactions []model.Transaction `json:"transactions"`
	Stats        *model.Stats        `json:"stats"`
	Warning      string              `json:"warning,omitempty"`
}

// Upload handles POST /api/upload: multipart statement file in, normalized
// transactions plus fold statistics out.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "could not read file upload")
		return
	}

	transactions, err := ingest.ProcessFile(header.Filename, data, h.taxonomy, h.log)
	if err != nil {
		var ingErr *ingest.Error
		if errors.As(err, &ingErr) {
			h.log.Warn().Str("filename", header.Filename).Str("code", string(ingErr.Code)).Msg("upload rejected")
			WriteError(w, http.StatusBadRequest, ingErr.Message)
			return
		}
		h.log.Error().Err(err).Str("filename", header.Filename).Msg("upload failed")
		WriteError(w, http.StatusInternalServerError, "failed to process file")
		return
	}

	resp := uploadResponse{
		Transactions: transactions,
		Stats:        analytics.CalculateBasicStats(transactions),
	}
	if len(transactions) == 0 {
		resp.Transactions = []model.Transaction{}
		resp.Warning = "file parsed but contained no valid transactions"
	}
	WriteJSON(w, http.StatusOK, resp)
}

// Analyze handles POST /api/analyze: a previously ingested transaction
// list in, the comprehensive report out. Accepts either a bare JSON array
// or an object with a "transactions" field.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	transactions, err := decodeTransactions(body)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body: expected a transaction list")
		return
	}

	report, err := analytics.BuildReport(transactions)
	if err != nil {
		if errors.Is(err, analytics.ErrEmptyInput) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("report generation failed")
		WriteError(w, http.StatusInternalServerError, "failed to generate report")
		return
	}
	WriteJSON(w, http.StatusOK, report)
}

func decodeTransactions(body []byte) ([]model.Transaction, error) {
	var wrapped struct {
		Transactions []model.Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Transactions != nil {
		return wrapped.Transactions, nil
	}
	var bare []model.Transaction
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, err
	}
	return bare, nil
}

// Categories handles GET /api/categories. The default response is the
// hierarchical taxonomy; ?mode=flat returns the legacy single-tier table.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("mode") == "flat" {
		WriteJSON(w, http.StatusOK, map[string]any{"categories": category.FlatTable()})
		return
	}
	WriteJSON(w, http.StatusOK, h.taxonomy)
}

// bearerToken extracts the bearer token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

// TrumfTransactions handles GET /api/trumf/transactions.
func (h *Handler) TrumfTransactions(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Missing or invalid authorization header. Must be 'Bearer <token>'")
		return
	}

	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	transactions, err := h.newTrumfClient(token).GetTransactions(r.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("trumf transaction fetch failed")
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"transactions": transactions})
}

// TrumfReceipt handles GET /api/trumf/receipts/{batchID}.
func (h *Handler) TrumfReceipt(w http.ResponseWriter, r *http.Request, batchID string) {
	token, ok := bearerToken(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Missing or invalid authorization header. Must be 'Bearer <token>'")
		return
	}

	receipt, err := h.newTrumfClient(token).GetReceipt(r.Context(), batchID)
	if err != nil {
		h.log.Error().Err(err).Str("batch_id", batchID).Msg("trumf receipt fetch failed")
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"receipt": receipt})
}

// ReceiptSummary handles POST /api/trumf/receipts/summary: already-fetched
// receipt details in, an investment-style aggregation out.
func (h *Handler) ReceiptSummary(w http.ResponseWriter, r *http.Request) {
	var receipts []trumf.ReceiptDetail
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUploadBytes)).Decode(&receipts); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body: expected a receipt list")
		return
	}
	WriteJSON(w, http.StatusOK, analytics.SummarizeReceipts(receipts))
}

// Routes builds the full route table.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/upload", methodOnly(http.MethodPost, h.Upload))
	mux.HandleFunc("/api/analyze", methodOnly(http.MethodPost, h.Analyze))
	mux.HandleFunc("/api/report", methodOnly(http.MethodPost, h.Analyze))
	mux.HandleFunc("/api/categories", methodOnly(http.MethodGet, h.Categories))
	mux.HandleFunc("/api/trumf/transactions", methodOnly(http.MethodGet, h.TrumfTransactions))
	mux.HandleFunc("/api/trumf/receipts/summary", methodOnly(http.MethodPost, h.ReceiptSummary))

	mux.HandleFunc("/api/trumf/receipts/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		batchID := strings.TrimPrefix(r.URL.Path, "/api/trumf/receipts/")
		if batchID == "" || strings.Contains(batchID, "/") {
			WriteError(w, http.StatusBadRequest, "batch ID is required")
			return
		}
		h.TrumfReceipt(w, r, batchID)
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	return mux
}

func methodOnly(method string, fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		fn(w, r)
	}
}

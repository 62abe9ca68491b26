package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmafra/gestor/internal/cashflow"
	"github.com/dmafra/gestor/internal/importer"
)

type Handler struct {
	importSvc *importer.Service
	txSvc     *cashflow.Service
}

func NewHandler(importSvc *importer.Service, txSvc *cashflow.Service) *Handler {
	return &Handler{importSvc: importSvc, txSvc: txSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type transactionResponse struct {
	ID          int             `json:"id"`
	Type        cashflow.Type   `json:"type"`
	Description string          `json:"description"`
	Amount      int64           `json:"amount"`
	Date        string          `json:"date"`
	Status      cashflow.Status `json:"status"`
}

type importSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	txs := h.txSvc.CreateBatch(params)

	resp := importSuccessResponse{Imported: len(txs)}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, transactionResponse{
			ID:          tx.ID,
			Type:        tx.Type,
			Description: tx.Description,
			Amount:      tx.Amount,
			Date:        tx.Date,
			Status:      tx.Status,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

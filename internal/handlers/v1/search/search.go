package search

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-inspector/internal/handlers/v1/auth"
	"github.com/carson-networks/finance-inspector/internal/logging"
)

type SearchTransactionsBody struct {
	SearchTerm string `json:"searchTerm" example:"coffee" doc:"Matched case-insensitively against merchant name and category"`
	Limit      int    `json:"limit,omitempty" default:"10" doc:"Maximum results; values below 1 use 10"`
}

type SearchTransactionsInput struct {
	Body SearchTransactionsBody
}

type SearchResultsBody struct {
	Report string `json:"report" doc:"Rendered search results"`
}

type SearchTransactionsOutput struct {
	Body SearchResultsBody
}

// transactionSearcher is the interface for searching transactions.
type transactionSearcher interface {
	SearchTransactions(ctx context.Context, term string, limit int) string
}

// Handler handles POST /v1/transaction/search.
type Handler struct {
	SpendingService transactionSearcher
}

func NewHandler(svc transactionSearcher) *Handler {
	return &Handler{SpendingService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/search",
		Summary:     "Search transactions",
		Description: "Searches the full transaction history by merchant name or category.",
		Tags:        []string{"Reports"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *SearchTransactionsInput) (*SearchTransactionsOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("limit", input.Body.Limit)
		defer logData.AddTiming("searchTransactionsMs")()
	}

	report := h.SpendingService.SearchTransactions(ctx, input.Body.SearchTerm, input.Body.Limit)
	return &SearchTransactionsOutput{Body: SearchResultsBody{Report: report}}, nil
}

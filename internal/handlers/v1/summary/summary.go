package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-inspector/internal/handlers/v1/auth"
	"github.com/carson-networks/finance-inspector/internal/logging"
)

// GetSpendingSummaryBody is the request body for a spending summary.
type GetSpendingSummaryBody struct {
	TimeRange string `json:"timeRange" example:"last_week" doc:"today, yesterday, last_week or last_month; anything else covers the last 90 days"`
	Category  string `json:"category,omitempty" example:"food" doc:"Only count categories containing this text, case-insensitive"`
}

type GetSpendingSummaryInput struct {
	Body GetSpendingSummaryBody
}

// SpendingSummaryBody carries a rendered text report. Failures are reported in the text.
type SpendingSummaryBody struct {
	Report string `json:"report" doc:"Rendered report text"`
}

type GetSpendingSummaryOutput struct {
	Body SpendingSummaryBody
}

// spendingSummarizer is the interface for building spending summaries.
type spendingSummarizer interface {
	GetSpendingSummary(ctx context.Context, timeRange, category string) string
}

// Handler handles POST /v1/summary.
type Handler struct {
	SpendingService spendingSummarizer
}

func NewHandler(svc spendingSummarizer) *Handler {
	return &Handler{SpendingService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-spending-summary",
		Method:      http.MethodPost,
		Path:        "/v1/summary",
		Summary:     "Get spending summary",
		Description: "Totals spending for a time range, grouped by category in first-seen order.",
		Tags:        []string{"Reports"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *GetSpendingSummaryInput) (*GetSpendingSummaryOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("timeRange", input.Body.TimeRange)
		defer logData.AddTiming("getSpendingSummaryMs")()
	}

	report := h.SpendingService.GetSpendingSummary(ctx, input.Body.TimeRange, input.Body.Category)
	return &GetSpendingSummaryOutput{Body: SpendingSummaryBody{Report: report}}, nil
}

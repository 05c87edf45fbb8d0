package balance

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-inspector/internal/handlers/v1/auth"
	"github.com/carson-networks/finance-inspector/internal/logging"
)

type AccountBalanceBody struct {
	Report string `json:"report" doc:"Rendered account balances"`
}

type GetAccountBalanceOutput struct {
	Body AccountBalanceBody
}

type balanceReporter interface {
	GetAccountBalance(ctx context.Context) string
}

// Handler handles GET /v1/account/balance.
type Handler struct {
	SpendingService balanceReporter
}

func NewHandler(svc balanceReporter) *Handler {
	return &Handler{SpendingService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account-balance",
		Method:      http.MethodGet,
		Path:        "/v1/account/balance",
		Summary:     "Get account balances",
		Tags:        []string{"Reports"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*GetAccountBalanceOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		defer logData.AddTiming("getAccountBalanceMs")()
	}

	return &GetAccountBalanceOutput{Body: AccountBalanceBody{Report: h.SpendingService.GetAccountBalance(ctx)}}, nil
}

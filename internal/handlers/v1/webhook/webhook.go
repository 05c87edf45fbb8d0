package webhook

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-inspector/internal/logging"
	"github.com/carson-networks/finance-inspector/internal/service"
)

const unableToProcess = "Unable to process hosted link"

// HostedLinkInput takes the body undecoded so a payload of any shape gets a
// JSON answer instead of a validation error.
type HostedLinkInput struct {
	RawBody []byte
}

// HostedLinkOutput is either {"received_token": <token|null>} or {"error": "..."}.
type HostedLinkOutput struct {
	Body map[string]any
}

type hostedLinkWebhookHandler interface {
	HandleHostedLinkWebhook(ctx context.Context, payload []byte) service.WebhookResult
}

// Handler handles POST /hosted-link-destination.
type Handler struct {
	LinkService hostedLinkWebhookHandler
}

func NewHandler(svc hostedLinkWebhookHandler) *Handler {
	return &Handler{LinkService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "hosted-link-destination",
		Method:      http.MethodPost,
		Path:        "/hosted-link-destination",
		Summary:     "Hosted link webhook",
		Description: "Receives hosted link session events and stores the access token of a successful session.",
		Tags:        []string{"Link"},
		RequestBody: &huma.RequestBody{Required: false},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *HostedLinkInput) (*HostedLinkOutput, error) {
	result := h.LinkService.HandleHostedLinkWebhook(ctx, input.RawBody)

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("processed", result.Processed)
	}

	if !result.Processed {
		return &HostedLinkOutput{Body: map[string]any{"error": unableToProcess}}, nil
	}

	var token any
	if result.ReceivedToken != nil {
		token = *result.ReceivedToken
	}
	return &HostedLinkOutput{Body: map[string]any{"received_token": token}}, nil
}

package link

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-inspector/internal/handlers/v1/auth"
)

type HostedLinkBody struct {
	HostedLink string `json:"hostedLink" doc:"Hosted link URL, or an error line when creation failed"`
}

type CreateHostedLinkOutput struct {
	Body HostedLinkBody
}

type hostedLinkCreator interface {
	CreateHostedLink(ctx context.Context) string
}

// Handler handles POST /v1/link/hosted.
type Handler struct {
	LinkService hostedLinkCreator
}

func NewHandler(svc hostedLinkCreator) *Handler {
	return &Handler{LinkService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-hosted-link",
		Method:      http.MethodPost,
		Path:        "/v1/link/hosted",
		Summary:     "Create hosted link",
		Description: "Starts a hosted link session for connecting a bank account.",
		Tags:        []string{"Link"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*CreateHostedLinkOutput, error) {
	return &CreateHostedLinkOutput{Body: HostedLinkBody{HostedLink: h.LinkService.CreateHostedLink(ctx)}}, nil
}

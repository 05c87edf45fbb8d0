package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type StatusBody struct {
	Status string `json:"status" example:"ok" doc:"Always ok while the server is up"`
}

type StatusOutput struct {
	Body StatusBody
}

// Handler serves GET / and GET /status.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Server status",
		Tags:        []string{"Status"},
	}, h.handle)

	huma.Register(api, huma.Operation{
		OperationID: "get-status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Server status",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *struct{}) (*StatusOutput, error) {
	return &StatusOutput{Body: StatusBody{Status: "ok"}}, nil
}

package actions

import (
	"context"
)

// TokenWriter is the write side of the access token store.
type TokenWriter interface {
	Set(ctx context.Context, token string) error
}

type IAction interface {
	Perform(ctx context.Context, writer TokenWriter) error
}

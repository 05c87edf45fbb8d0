package sqlconfig

import "context"

const accessTokensTable = "access_tokens"

// ITokenTable defines the storage operations for the provider access token.
// Get returns an empty string when no token has been stored yet.
type ITokenTable interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Close() error
}

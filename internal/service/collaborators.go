package service

import (
	"context"

	"github.com/carson-networks/finance-inspector/internal/analytics"
	"github.com/carson-networks/finance-inspector/internal/operator/actions"
)

// TransactionSource returns a full snapshot of the transactions visible to accessToken.
// An invalid or expired token fails with an apperr.KindAuth error.
type TransactionSource interface {
	FetchTransactions(ctx context.Context, accessToken string) ([]analytics.Transaction, error)
}

// BalanceSource returns the accounts and balances visible to accessToken.
type BalanceSource interface {
	FetchAccounts(ctx context.Context, accessToken string) ([]analytics.Account, error)
}

type TokenExchanger = actions.PublicTokenExchanger

// LinkCreator creates a provider-hosted link session and returns its URL.
type LinkCreator interface {
	CreateHostedLink(ctx context.Context) (string, error)
}

// AccessTokenStore is the read side of the persisted credential. Writes go
// through a CredentialWriter so they are applied one at a time.
type AccessTokenStore interface {
	Get(ctx context.Context) (string, error)
}

type CredentialWriter interface {
	Process(ctx context.Context, action actions.IAction) error
}

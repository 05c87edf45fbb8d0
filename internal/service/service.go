package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-inspector/internal/analytics"
)

// Service holds all entry-point services.
type Service struct {
	Spending *SpendingService
	Link     *LinkService
}

// Dependencies are the collaborators the services are built from.
type Dependencies struct {
	Transactions TransactionSource
	Balances     BalanceSource
	Exchanger    TokenExchanger
	Links        LinkCreator
	Tokens       AccessTokenStore
	Credentials  CredentialWriter

	Resolver        *analytics.Resolver
	UpstreamTimeout time.Duration
	Logger          *logrus.Logger
}

// NewService creates a new Service from deps.
func NewService(deps Dependencies) *Service {
	return &Service{
		Spending: NewSpendingService(deps),
		Link:     NewLinkService(deps),
	}
}

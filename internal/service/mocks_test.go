package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-inspector/internal/analytics"
	"github.com/carson-networks/finance-inspector/internal/logging"
	"github.com/carson-networks/finance-inspector/internal/operator/actions"
)

var fixedNow = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

type mockTransactionSource struct {
	mock.Mock
}

func (m *mockTransactionSource) FetchTransactions(ctx context.Context, accessToken string) ([]analytics.Transaction, error) {
	args := m.Called(ctx, accessToken)
	txs, _ := args.Get(0).([]analytics.Transaction)
	return txs, args.Error(1)
}

type mockBalanceSource struct {
	mock.Mock
}

func (m *mockBalanceSource) FetchAccounts(ctx context.Context, accessToken string) ([]analytics.Account, error) {
	args := m.Called(ctx, accessToken)
	accounts, _ := args.Get(0).([]analytics.Account)
	return accounts, args.Error(1)
}

type mockTokenStore struct {
	mock.Mock
}

func (m *mockTokenStore) Get(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type mockExchanger struct {
	mock.Mock
}

func (m *mockExchanger) ExchangePublicToken(ctx context.Context, publicToken string) (string, error) {
	args := m.Called(ctx, publicToken)
	return args.String(0), args.Error(1)
}

type mockLinkCreator struct {
	mock.Mock
}

func (m *mockLinkCreator) CreateHostedLink(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// inlineCredentials applies actions synchronously against an in-memory token.
type inlineCredentials struct {
	token string
}

func (c *inlineCredentials) Set(_ context.Context, token string) error {
	c.token = token
	return nil
}

func (c *inlineCredentials) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, c)
}

func testLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.SetupLoggingTo(&buf, "debug"), &buf
}

func newTestSpendingService(t *testing.T) (*SpendingService, *mockTransactionSource, *mockBalanceSource, *mockTokenStore) {
	t.Helper()
	source := &mockTransactionSource{}
	balances := &mockBalanceSource{}
	tokens := &mockTokenStore{}
	logger, _ := testLogger()

	svc := NewSpendingService(Dependencies{
		Transactions:    source,
		Balances:        balances,
		Tokens:          tokens,
		Resolver:        analytics.NewResolver(func() time.Time { return fixedNow }),
		UpstreamTimeout: time.Second,
		Logger:          logger,
	})

	t.Cleanup(func() {
		source.AssertExpectations(t)
		balances.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})
	return svc, source, balances, tokens
}

func txn(amount string, daysAgo int, merchant, category string) analytics.Transaction {
	t := analytics.Transaction{
		Amount:         omit.From(decimal.RequireFromString(amount)),
		AuthorizedDate: omit.From(fixedNow.AddDate(0, 0, -daysAgo)),
	}
	if merchant != "" {
		t.MerchantName = omit.From(merchant)
	}
	if category != "" {
		t.Category = omit.From(category)
	}
	return t
}

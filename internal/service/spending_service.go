package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-inspector/internal/analytics"
	"github.com/carson-networks/finance-inspector/internal/apperr"
	"github.com/carson-networks/finance-inspector/internal/logging"
)

const reconnectHint = "the bank connection is missing or has expired. Create a new hosted link to reconnect"

// SpendingService answers the report entry points. Each call reads the
// access token once, fetches a fresh snapshot and renders it.
type SpendingService struct {
	transactions TransactionSource
	balances     BalanceSource
	tokens       AccessTokenStore
	resolver     *analytics.Resolver
	timeout      time.Duration
	log          *logrus.Entry
}

func NewSpendingService(deps Dependencies) *SpendingService {
	resolver := deps.Resolver
	if resolver == nil {
		resolver = analytics.NewResolver(nil)
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.SetupLogging()
	}

	return &SpendingService{
		transactions: deps.Transactions,
		balances:     deps.Balances,
		tokens:       deps.Tokens,
		resolver:     resolver,
		timeout:      deps.UpstreamTimeout,
		log:          logging.Component(logger, "SpendingService"),
	}
}

// GetSpendingSummary renders the summary for timeRange, optionally narrowed to
// categories containing category. Failures are returned as text.
func (s *SpendingService) GetSpendingSummary(ctx context.Context, timeRange, category string) string {
	report, err := s.BuildSummary(ctx, timeRange, category)
	if err != nil {
		return s.errorText("Error fetching transactions", "GetSpendingSummary", err)
	}
	return report.Render()
}

// BuildSummary is GetSpendingSummary without the text boundary.
func (s *SpendingService) BuildSummary(ctx context.Context, timeRange, category string) (analytics.SummaryReport, error) {
	window := s.resolver.Resolve(timeRange)

	snapshot, err := s.fetchTransactions(ctx)
	if err != nil {
		return analytics.SummaryReport{}, err
	}

	report := analytics.Summarize(snapshot, window, timeRange, category)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("snapshotSize", len(snapshot))
		logData.AddData("includedCount", report.Count)
	}
	return report, nil
}

func (s *SpendingService) GetAccountBalance(ctx context.Context) string {
	accounts, err := s.fetchAccounts(ctx)
	if err != nil {
		return s.errorText("Error getting account balance", "GetAccountBalance", err)
	}
	return analytics.RenderBalances(accounts)
}

// SearchTransactions scans the whole snapshot, ignoring any time window.
// A limit below one uses analytics.DefaultSearchLimit.
func (s *SpendingService) SearchTransactions(ctx context.Context, term string, limit int) string {
	snapshot, err := s.fetchTransactions(ctx)
	if err != nil {
		return s.errorText("Error searching transactions", "SearchTransactions", err)
	}

	hits := analytics.Search(snapshot, term, limit)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("searchHits", len(hits))
	}
	return analytics.RenderSearch(hits)
}

func (s *SpendingService) fetchTransactions(ctx context.Context) ([]analytics.Transaction, error) {
	if s.transactions == nil {
		return nil, apperr.Newf(apperr.KindNotConfigured, "FetchTransactions", "no transaction source configured")
	}

	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.upstreamContext(ctx)
	defer cancel()

	if logData := logging.GetLogData(ctx); logData != nil {
		defer logData.AddTiming("fetchTransactionsMs")()
	}
	return s.transactions.FetchTransactions(ctx, token)
}

func (s *SpendingService) fetchAccounts(ctx context.Context) ([]analytics.Account, error) {
	if s.balances == nil {
		return nil, apperr.Newf(apperr.KindNotConfigured, "FetchAccounts", "no balance source configured")
	}

	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.upstreamContext(ctx)
	defer cancel()

	if logData := logging.GetLogData(ctx); logData != nil {
		defer logData.AddTiming("fetchAccountsMs")()
	}
	return s.balances.FetchAccounts(ctx, token)
}

// accessToken reads the credential once per invocation.
func (s *SpendingService) accessToken(ctx context.Context) (string, error) {
	if s.tokens == nil {
		return "", apperr.Newf(apperr.KindNotConfigured, "AccessToken", "no access token store configured")
	}

	token, err := s.tokens.Get(ctx)
	if err != nil {
		return "", apperr.New(apperr.KindUpstream, "AccessToken", err)
	}
	if token == "" {
		return "", apperr.Newf(apperr.KindAuth, "AccessToken", "no access token stored")
	}
	return token, nil
}

func (s *SpendingService) upstreamContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *SpendingService) errorText(prefix, op string, err error) string {
	return boundaryError(s.log, prefix, op, err)
}

// boundaryError logs err and converts it to the text returned to callers.
func boundaryError(log *logrus.Entry, prefix, op string, err error) string {
	kind := apperr.KindOf(err)
	log.WithError(err).WithField("kind", kind.String()).Warn(op + ".Failed")

	if kind == apperr.KindAuth {
		return fmt.Sprintf("%s: %s", prefix, reconnectHint)
	}
	return fmt.Sprintf("%s: %v", prefix, err)
}

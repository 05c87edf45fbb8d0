// Package toolserver exposes the report entry points as MCP tools over stdio.
package toolserver

import (
	"context"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-inspector/internal/analytics"
	"github.com/carson-networks/finance-inspector/internal/apperr"
	"github.com/carson-networks/finance-inspector/internal/logging"
)

const ServerName = "Plaid Finance Inspector"

type spendingReporter interface {
	GetSpendingSummary(ctx context.Context, timeRange, category string) string
	GetAccountBalance(ctx context.Context) string
	SearchTransactions(ctx context.Context, term string, limit int) string
}

type hostedLinkCreator interface {
	CreateHostedLink(ctx context.Context) string
}

type Tools struct {
	spending spendingReporter
	links    hostedLinkCreator
	logger   *logrus.Logger
	log      *logrus.Entry
}

func NewTools(spending spendingReporter, links hostedLinkCreator, logger *logrus.Logger) *Tools {
	return &Tools{
		spending: spending,
		links:    links,
		logger:   logger,
		log:      logging.Component(logger, "ToolServer"),
	}
}

// MCPServer registers every tool on a new MCP server.
func (t *Tools) MCPServer(version string) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.AddTool(mcp.NewTool("get_spending_summary",
		mcp.WithDescription("Gets spending summary for a specific time range, and optionally filters by category if specified. Returns formatted spending information."),
		mcp.WithString("time_range",
			mcp.Required(),
			mcp.Description("today, yesterday, last_week or last_month. Anything else covers the last 90 days."),
		),
		mcp.WithString("category",
			mcp.Description("Only count transactions whose category contains this text."),
		),
	), t.getSpendingSummary)

	s.AddTool(mcp.NewTool("get_account_balance",
		mcp.WithDescription("Get current account balances. Returns formatted account balance information."),
	), t.getAccountBalance)

	s.AddTool(mcp.NewTool("search_transactions",
		mcp.WithDescription("Search for transactions by merchant name or category. Returns a formatted list of matching transactions."),
		mcp.WithString("search_term",
			mcp.Required(),
			mcp.Description("Term to search for in merchant names and categories"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of transactions to return"),
			mcp.DefaultNumber(analytics.DefaultSearchLimit),
		),
	), t.searchTransactions)

	s.AddTool(mcp.NewTool("get_hosted_link",
		mcp.WithDescription("Creates a hosted link for connecting a bank account and returns its URL."),
	), t.getHostedLink)

	return s
}

// Serve runs the stdio transport until ctx is cancelled or in is closed.
func (t *Tools) Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(log.New(t.logger.WriterLevel(logrus.ErrorLevel), "", 0))

	t.log.Info("ToolServer.Serve.listening")
	err := stdio.Listen(ctx, in, out)
	t.log.Info("ToolServer.Serve.stopped")
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func (t *Tools) getSpendingSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	timeRange, err := request.RequireString("time_range")
	if err != nil {
		return t.invalidArgument("get_spending_summary", err), nil
	}
	category := request.GetString("category", "")

	t.log.WithFields(logrus.Fields{"timeRange": timeRange, "category": category}).Debug("get_spending_summary")
	return mcp.NewToolResultText(t.spending.GetSpendingSummary(ctx, timeRange, category)), nil
}

func (t *Tools) getAccountBalance(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.spending.GetAccountBalance(ctx)), nil
}

func (t *Tools) searchTransactions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term, err := request.RequireString("search_term")
	if err != nil {
		return t.invalidArgument("search_transactions", err), nil
	}
	limit := request.GetInt("limit", analytics.DefaultSearchLimit)

	return mcp.NewToolResultText(t.spending.SearchTransactions(ctx, term, limit)), nil
}

func (t *Tools) getHostedLink(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.links.CreateHostedLink(ctx)), nil
}

// invalidArgument reports a malformed tool call back to the client as a tool error.
func (t *Tools) invalidArgument(tool string, err error) *mcp.CallToolResult {
	err = apperr.New(apperr.KindInvalidInput, tool, err)
	t.log.WithError(err).WithField("kind", apperr.KindOf(err).String()).Warn("ToolServer.InvalidArgument")
	return mcp.NewToolResultError(err.Error())
}

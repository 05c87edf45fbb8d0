package plaidclient

import (
	"context"

	"github.com/plaid/plaid-go/v20/plaid"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-inspector/internal/analytics"
	"github.com/carson-networks/finance-inspector/internal/apperr"
	"github.com/carson-networks/finance-inspector/internal/config"
	"github.com/carson-networks/finance-inspector/internal/logging"
)

// maxSyncPages bounds a single snapshot fetch.
const maxSyncPages = 50

// Client implements the provider collaborators on top of the Plaid API.
type Client struct {
	api *plaid.APIClient

	clientName string
	webhookURL string
	linkUserID string

	log *logrus.Entry
}

func NewClient(env *config.Config, logger *logrus.Logger) *Client {
	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", env.PlaidClientID)
	configuration.AddDefaultHeader("PLAID-SECRET", env.PlaidSecret)
	configuration.UseEnvironment(environment(env.PlaidEnv))

	return &Client{
		api:        plaid.NewAPIClient(configuration),
		clientName: env.PlaidClientName,
		webhookURL: env.PlaidWebhookURL,
		linkUserID: env.PlaidLinkUserID,
		log:        logging.Component(logger, "PlaidClient"),
	}
}

func environment(name string) plaid.Environment {
	switch name {
	case "production":
		return plaid.Production
	case "development":
		return plaid.Development
	default:
		return plaid.Sandbox
	}
}

// FetchTransactions pulls the full transaction history for the item by
// syncing from an empty cursor until has_more is false.
func (c *Client) FetchTransactions(ctx context.Context, accessToken string) ([]analytics.Transaction, error) {
	const op = "TransactionsSync"

	var (
		snapshot []analytics.Transaction
		cursor   string
	)
	for page := 0; page < maxSyncPages; page++ {
		request := plaid.NewTransactionsSyncRequest(accessToken)
		if cursor != "" {
			request.SetCursor(cursor)
		}

		resp, _, err := c.api.PlaidApi.TransactionsSync(ctx).TransactionsSyncRequest(*request).Execute()
		if err != nil {
			return nil, classifyError(op, err)
		}

		for _, t := range resp.GetAdded() {
			snapshot = append(snapshot, fromPlaidTransaction(t))
		}

		if !resp.GetHasMore() {
			c.log.WithFields(logrus.Fields{
				"pages":        page + 1,
				"transactions": len(snapshot),
			}).Debug("FetchTransactions.Complete")
			return snapshot, nil
		}
		cursor = resp.GetNextCursor()
	}

	return nil, apperr.Newf(apperr.KindUpstream, op, "more than %d pages of transactions", maxSyncPages)
}

func (c *Client) FetchAccounts(ctx context.Context, accessToken string) ([]analytics.Account, error) {
	request := plaid.NewAccountsBalanceGetRequest(accessToken)

	resp, _, err := c.api.PlaidApi.AccountsBalanceGet(ctx).AccountsBalanceGetRequest(*request).Execute()
	if err != nil {
		return nil, classifyError("AccountsBalanceGet", err)
	}

	accounts := make([]analytics.Account, 0, len(resp.GetAccounts()))
	for _, account := range resp.GetAccounts() {
		accounts = append(accounts, fromPlaidAccount(account))
	}
	return accounts, nil
}

func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (string, error) {
	request := plaid.NewItemPublicTokenExchangeRequest(publicToken)

	resp, _, err := c.api.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*request).Execute()
	if err != nil {
		return "", classifyError("ItemPublicTokenExchange", err)
	}

	c.log.WithField("itemID", resp.GetItemId()).Info("ExchangePublicToken.Complete")
	return resp.GetAccessToken(), nil
}

// CreateHostedLink creates a transactions link token with a hosted link
// session and returns the hosted link URL.
func (c *Client) CreateHostedLink(ctx context.Context) (string, error) {
	request := plaid.NewLinkTokenCreateRequest(
		c.clientName,
		"en",
		[]plaid.CountryCode{plaid.COUNTRYCODE_US},
		*plaid.NewLinkTokenCreateRequestUser(c.linkUserID),
	)
	request.SetProducts([]plaid.Products{plaid.PRODUCTS_TRANSACTIONS})
	request.SetHostedLink(plaid.LinkTokenCreateHostedLink{})
	if c.webhookURL != "" {
		request.SetWebhook(c.webhookURL)
	}

	resp, _, err := c.api.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*request).Execute()
	if err != nil {
		return "", classifyError("LinkTokenCreate", err)
	}

	url := resp.GetHostedLinkUrl()
	if url == "" {
		return "", apperr.Newf(apperr.KindUpstream, "LinkTokenCreate", "response did not include a hosted link url")
	}
	return url, nil
}

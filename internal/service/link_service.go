package service

import (
	"context"
	"encoding/json"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-inspector/internal/apperr"
	"github.com/carson-networks/finance-inspector/internal/logging"
	"github.com/carson-networks/finance-inspector/internal/operator/actions"
)

const (
	WebhookCodeSessionFinished = "SESSION_FINISHED"
	WebhookStatusSuccess       = "success"
)

// HostedLinkWebhook is the subset of the hosted link callback we act on.
type HostedLinkWebhook struct {
	WebhookType   string   `json:"webhook_type"`
	WebhookCode   string   `json:"webhook_code"`
	Status        string   `json:"status"`
	LinkSessionID string   `json:"link_session_id"`
	PublicTokens  []string `json:"public_tokens"`
}

// WebhookResult is the outcome of a hosted link callback. When Processed is
// false the payload was not a successful session or the exchange failed.
type WebhookResult struct {
	Processed     bool
	ReceivedToken *string
}

type LinkService struct {
	links       LinkCreator
	exchanger   TokenExchanger
	credentials CredentialWriter
	log         *logrus.Entry
}

func NewLinkService(deps Dependencies) *LinkService {
	logger := deps.Logger
	if logger == nil {
		logger = logging.SetupLogging()
	}

	return &LinkService{
		links:       deps.Links,
		exchanger:   deps.Exchanger,
		credentials: deps.Credentials,
		log:         logging.Component(logger, "LinkService"),
	}
}

// CreateHostedLink returns the hosted link URL, or an error line.
func (s *LinkService) CreateHostedLink(ctx context.Context) string {
	if s.links == nil {
		return boundaryError(s.log, "Error creating hosted link", "CreateHostedLink",
			apperr.Newf(apperr.KindNotConfigured, "CreateHostedLink", "no link provider configured"))
	}

	url, err := s.links.CreateHostedLink(ctx)
	if err != nil {
		return boundaryError(s.log, "Error creating hosted link", "CreateHostedLink", err)
	}
	return url
}

// HandleHostedLinkWebhook exchanges the first public token of a finished,
// successful session and persists the access token. Any other payload,
// including one that fails to decode, is reported as unprocessed.
func (s *LinkService) HandleHostedLinkWebhook(ctx context.Context, payload []byte) WebhookResult {
	var webhook HostedLinkWebhook
	if err := json.Unmarshal(payload, &webhook); err != nil {
		s.log.WithError(err).Warn("HandleHostedLinkWebhook.Decode")
		return WebhookResult{}
	}

	if s.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		s.log.WithField("payload", spew.Sdump(webhook)).Debug("HandleHostedLinkWebhook.Received")
	}

	if webhook.WebhookCode != WebhookCodeSessionFinished || webhook.Status != WebhookStatusSuccess {
		s.log.WithFields(logrus.Fields{
			"webhookType":   webhook.WebhookType,
			"webhookCode":   webhook.WebhookCode,
			"status":        webhook.Status,
			"linkSessionID": webhook.LinkSessionID,
		}).Info("HandleHostedLinkWebhook.Ignored")
		return WebhookResult{}
	}

	if len(webhook.PublicTokens) == 0 {
		return WebhookResult{Processed: true}
	}

	publicToken := webhook.PublicTokens[0]
	if s.exchanger == nil || s.credentials == nil {
		s.log.Error("HandleHostedLinkWebhook.NotConfigured")
		return WebhookResult{}
	}

	err := s.credentials.Process(ctx, &actions.StoreAccessToken{
		PublicToken: publicToken,
		Exchanger:   s.exchanger,
	})
	if err != nil {
		s.log.WithError(err).
			WithField("kind", apperr.KindOf(err).String()).
			Warn("HandleHostedLinkWebhook.ExchangeFailed")
		return WebhookResult{}
	}

	s.log.WithField("linkSessionID", webhook.LinkSessionID).Info("HandleHostedLinkWebhook.TokenStored")
	return WebhookResult{Processed: true, ReceivedToken: &publicToken}
}

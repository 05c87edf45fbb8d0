package actions

import (
	"context"
	"errors"
)

// PublicTokenExchanger swaps a short-lived public token for an access token.
type PublicTokenExchanger interface {
	ExchangePublicToken(ctx context.Context, publicToken string) (string, error)
}

// StoreAccessToken exchanges PublicToken and persists the resulting access
// token. Nothing is written when the exchange fails.
type StoreAccessToken struct {
	PublicToken string
	Exchanger   PublicTokenExchanger

	AccessToken string
	IAction
}

func (s *StoreAccessToken) Perform(ctx context.Context, writer TokenWriter) error {
	if s.PublicToken == "" {
		return errors.New("public token is empty")
	}

	accessToken, err := s.Exchanger.ExchangePublicToken(ctx, s.PublicToken)
	if err != nil {
		return err
	}
	if accessToken == "" {
		return errors.New("exchange returned an empty access token")
	}

	if err := writer.Set(ctx, accessToken); err != nil {
		return err
	}

	s.AccessToken = accessToken
	return nil
}

// SetAccessToken writes a known access token, e.g. one pasted from the dashboard.
type SetAccessToken struct {
	AccessToken string
	IAction
}

func (s *SetAccessToken) Perform(ctx context.Context, writer TokenWriter) error {
	if s.AccessToken == "" {
		return errors.New("access token is empty")
	}
	return writer.Set(ctx, s.AccessToken)
}

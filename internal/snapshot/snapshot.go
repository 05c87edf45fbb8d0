// Package snapshot serves transactions and balances from a YAML file so the
// reports can run without a Plaid connection.
package snapshot

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/carson-networks/finance-inspector/internal/analytics"
	"github.com/carson-networks/finance-inspector/internal/apperr"
)

// OfflineToken is handed out when the file does not name an access token.
const OfflineToken = "offline"

type File struct {
	AccessToken  string        `yaml:"access_token"`
	Transactions []Transaction `yaml:"transactions"`
	Accounts     []Account     `yaml:"accounts"`
}

// Transaction mirrors the provider fields used by the reports. Omitted keys
// stay nil and are treated as absent.
type Transaction struct {
	Amount         *float64 `yaml:"amount"`
	AuthorizedDate *string  `yaml:"authorized_date"`
	MerchantName   *string  `yaml:"merchant_name"`
	Category       *string  `yaml:"category"`
}

type Account struct {
	Name      *string  `yaml:"name"`
	Mask      *string  `yaml:"mask"`
	Available *float64 `yaml:"available"`
	Current   *float64 `yaml:"current"`
}

// FileSource re-reads the file on every call, so each invocation sees a fresh snapshot.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}
	return &file, nil
}

// Get returns the access token the file expects.
func (s *FileSource) Get(_ context.Context) (string, error) {
	file, err := Load(s.path)
	if err != nil {
		return "", err
	}
	if file.AccessToken == "" {
		return OfflineToken, nil
	}
	return file.AccessToken, nil
}

func (s *FileSource) FetchTransactions(_ context.Context, accessToken string) ([]analytics.Transaction, error) {
	file, err := s.load("FetchTransactions", accessToken)
	if err != nil {
		return nil, err
	}

	snapshot := make([]analytics.Transaction, 0, len(file.Transactions))
	for _, t := range file.Transactions {
		snapshot = append(snapshot, analytics.Transaction{
			Amount:         analytics.OptionalAmount(t.Amount),
			AuthorizedDate: analytics.OptionalDate(t.AuthorizedDate),
			MerchantName:   analytics.OptionalString(t.MerchantName),
			Category:       analytics.OptionalString(t.Category),
		})
	}
	return snapshot, nil
}

func (s *FileSource) FetchAccounts(_ context.Context, accessToken string) ([]analytics.Account, error) {
	file, err := s.load("FetchAccounts", accessToken)
	if err != nil {
		return nil, err
	}

	accounts := make([]analytics.Account, 0, len(file.Accounts))
	for _, a := range file.Accounts {
		accounts = append(accounts, analytics.Account{
			Name:      analytics.OptionalString(a.Name),
			Mask:      analytics.OptionalString(a.Mask),
			Available: analytics.OptionalAmount(a.Available),
			Current:   analytics.OptionalAmount(a.Current),
		})
	}
	return accounts, nil
}

func (s *FileSource) load(op, accessToken string) (*File, error) {
	file, err := Load(s.path)
	if err != nil {
		return nil, apperr.New(apperr.KindUpstream, op, err)
	}

	expected := file.AccessToken
	if expected == "" {
		expected = OfflineToken
	}
	if accessToken != expected {
		return nil, apperr.Newf(apperr.KindAuth, op, "access token does not match snapshot")
	}
	return file, nil
}

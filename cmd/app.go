package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-inspector/internal/config"
	"github.com/carson-networks/finance-inspector/internal/logging"
	"github.com/carson-networks/finance-inspector/internal/operator"
	"github.com/carson-networks/finance-inspector/internal/plaidclient"
	"github.com/carson-networks/finance-inspector/internal/service"
	"github.com/carson-networks/finance-inspector/internal/snapshot"
	"github.com/carson-networks/finance-inspector/internal/storage"
)

// app is the wired dependency graph shared by every command.
type app struct {
	env         *config.Config
	logger      *logrus.Logger
	store       storage.TokenStore
	credentials *operator.OperatorDelegator
	plaid       *plaidclient.Client
	svc         *service.Service
}

func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, err
	}
	if _, set := os.LookupEnv("ENV_FILE"); !set && envFile != "" {
		env.EnvFilePath = envFile
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return env, nil
}

// newApp wires the services. Logs go to logOut so commands that own stdout
// can keep it clean.
func newApp(logOut io.Writer) (*app, error) {
	env, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := logging.SetupLoggingTo(logOut, env.LogLevel)

	store, err := storage.NewTokenStore(env)
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}

	credentials := operator.NewOperatorDelegator(store)
	credentials.Start()

	deps := service.Dependencies{
		Tokens:          store,
		Credentials:     credentials,
		UpstreamTimeout: env.UpstreamTimeout,
		Logger:          logger,
	}

	var client *plaidclient.Client
	if env.PlaidClientID != "" && env.PlaidSecret != "" {
		client = plaidclient.NewClient(env, logger)
		deps.Transactions = client
		deps.Balances = client
		deps.Exchanger = client
		deps.Links = client
	}

	if env.SnapshotFile != "" {
		source := snapshot.NewFileSource(env.SnapshotFile)
		deps.Transactions = source
		deps.Balances = source
		deps.Tokens = source
		logger.WithField("snapshotFile", env.SnapshotFile).Info("App.UsingSnapshot")
	}

	return &app{
		env:         env,
		logger:      logger,
		store:       store,
		credentials: credentials,
		plaid:       client,
		svc:         service.NewService(deps),
	}, nil
}

func (a *app) Close() {
	a.credentials.Stop()
	if err := a.store.Close(); err != nil {
		a.logger.WithError(err).Warn("App.Close.store")
	}
}

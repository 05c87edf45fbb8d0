package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/finance-inspector/internal/config"
	"github.com/carson-networks/finance-inspector/internal/storage"
)

func main() {
	if err := server_config.LoadEnvFile(".env"); err != nil {
		logrus.WithError(err).Fatal("LoadEnvFile")
		return
	}

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	result, ok, err := storage.RunMigrations(env)
	if err != nil {
		logrus.WithError(err).Fatal("storage.RunMigrations")
		return
	}
	if !ok {
		logrus.WithField("tokenBackend", env.TokenBackend).Info("Token backend has no schema")
		return
	}

	logrus.WithFields(logrus.Fields{
		"tokenBackend":         env.TokenBackend,
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migration status")
}

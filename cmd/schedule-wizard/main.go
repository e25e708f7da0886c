package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Debug("no .env loaded")
	}

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("%+v", err)
	}
}

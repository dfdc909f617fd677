package logger

import (
	"go.uber.org/zap"
)

// New builds the process-wide logger: human-readable in development,
// JSON in production.
func New(environment string) (*zap.SugaredLogger, error) {
	var log *zap.Logger
	var err error
	if environment == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}

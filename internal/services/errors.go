package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns the service logger with the application level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// ErrNotFound is returned when the requested row does not exist
var ErrNotFound = errors.New("record not found")

// translateError maps gorm sentinels onto the service errors
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

package controllers

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns the controller logger with the application level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// logFailure records the internal error; clients only ever see a generic message
func logFailure(ctx *gin.Context, err error, message string) {
	log.WithError(err).WithFields(logrus.Fields{
		"request_id": ctx.GetString(middleware.ContextRequestID),
		"path":       ctx.Request.URL.Path,
	}).Error(message)
}

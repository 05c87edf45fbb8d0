package logging

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware gives each request its own LogData and writes a single
// line when the request finishes.
func LoggingMiddleware(loggingName string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logData := NewLogData(log)
		logData.AddData("method", c.Request.Method)
		logData.AddData("path", c.Request.URL.Path)
		c.Request = c.Request.WithContext(WithLogData(c.Request.Context(), logData))
		c.Header("X-Request-ID", logData.RequestID())

		log.Debugf("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		c.Next()
		endTimer()

		logData.AddData("status", c.Writer.Status())
		if len(c.Errors) > 0 {
			logData.Log().WithError(c.Errors.Last()).Errorf("Handler.%v.Error", loggingName)
			return
		}
		if c.Writer.Status() >= 500 {
			logData.Log().Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

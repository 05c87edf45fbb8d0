package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingTo_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLoggingTo(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"loglevel":"warning"`)
	assert.Equal(t, "info", SetupLoggingTo(&buf, "loud").Level.String())
}

func TestGetLogData_Missing(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))
}

func TestLogData_Log(t *testing.T) {
	var buf bytes.Buffer
	logData := NewLogData(SetupLoggingTo(&buf, "info"))

	stop := logData.AddTiming("fetchMs")
	stop()
	logData.AddData("transactionCount", 3)
	logData.Log().Info("done")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, float64(3), line["transactionCount"])
	assert.Contains(t, line, "fetchMs")
	assert.NotEmpty(t, line["requestID"])
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := SetupLoggingTo(&buf, "info")

	router := gin.New()
	router.Use(LoggingMiddleware("Test", logger))
	router.GET("/ping", func(c *gin.Context) {
		logData := GetLogData(c.Request.Context())
		require.NotNil(t, logData)
		logData.AddData("handled", true)
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Handler.Test.Complete", line["msg"])
	assert.Equal(t, true, line["handled"])
	assert.Equal(t, float64(200), line["status"])
}

package balance

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBalanceReporter struct {
	mock.Mock
}

func (m *mockBalanceReporter) GetAccountBalance(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

func TestGetAccountBalance(t *testing.T) {
	svc := &mockBalanceReporter{}
	svc.On("GetAccountBalance", mock.Anything).Return("Plaid Checking (****0000)")

	_, api := humatest.New(t)
	NewHandler(svc).Register(api)

	resp := api.Get("/v1/account/balance")

	require.Equal(t, http.StatusOK, resp.Code)
	var body AccountBalanceBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Plaid Checking (****0000)", body.Report)
	svc.AssertExpectations(t)
}

package plaidclient

import (
	"errors"
	"fmt"

	"github.com/plaid/plaid-go/v20/plaid"

	"github.com/carson-networks/finance-inspector/internal/apperr"
)

// authErrorCodes are the Plaid error codes that mean the user has to link again.
var authErrorCodes = map[string]bool{
	"ITEM_LOGIN_REQUIRED":  true,
	"INVALID_ACCESS_TOKEN": true,
	"INVALID_PUBLIC_TOKEN": true,
	"ACCESS_NOT_GRANTED":   true,
	"ITEM_NOT_FOUND":       true,
}

// classifyError maps a Plaid API failure to an apperr kind. Errors that
// never reached Plaid are upstream failures.
func classifyError(op string, err error) error {
	plaidErr, convErr := plaid.ToPlaidError(err)
	if convErr != nil {
		var openAPIErr plaid.GenericOpenAPIError
		if errors.As(err, &openAPIErr) && len(openAPIErr.Body()) > 0 {
			err = fmt.Errorf("%w: %s", err, string(openAPIErr.Body()))
		}
		return apperr.New(apperr.KindUpstream, op, err)
	}
	return classifyCode(op, plaidErr.GetErrorCode(), plaidErr.GetErrorMessage())
}

func classifyCode(op, code, message string) error {
	kind := apperr.KindUpstream
	if authErrorCodes[code] {
		kind = apperr.KindAuth
	}
	if message == "" {
		return apperr.Newf(kind, op, "%s", code)
	}
	return apperr.Newf(kind, op, "%s: %s", code, message)
}

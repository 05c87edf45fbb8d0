// Package auth guards operations that declare bearer security with an
// HS256-signed JWT.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/carson-networks/finance-inspector/internal/logging"
)

const SchemeName = "bearer"

// BearerSecurity is set on operations that require a token when a secret is configured.
var BearerSecurity = []map[string][]string{{SchemeName: {}}}

// AddSecurityScheme documents the bearer scheme in the OpenAPI components.
func AddSecurityScheme(api huma.API) {
	components := api.OpenAPI().Components
	if components.SecuritySchemes == nil {
		components.SecuritySchemes = map[string]*huma.SecurityScheme{}
	}
	components.SecuritySchemes[SchemeName] = &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}
}

// NewMiddleware rejects requests to secured operations that lack a valid
// token. With an empty secret every request passes.
func NewMiddleware(api huma.API, secret string) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if secret == "" || !requiresBearer(ctx.Operation()) {
			next(ctx)
			return
		}

		subject, err := ValidateToken(ctx.Header("Authorization"), []byte(secret))
		if err != nil {
			if logData := logging.GetLogData(ctx.Context()); logData != nil {
				logData.AddData("authError", err.Error())
			}
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or missing bearer token")
			return
		}

		if logData := logging.GetLogData(ctx.Context()); logData != nil {
			logData.AddData("subject", subject)
		}
		next(ctx)
	}
}

func requiresBearer(op *huma.Operation) bool {
	if op == nil {
		return false
	}
	for _, requirement := range op.Security {
		if _, ok := requirement[SchemeName]; ok {
			return true
		}
	}
	return false
}

// ValidateToken checks an Authorization header value and returns the token subject.
func ValidateToken(header string, secret []byte) (string, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return "", errors.New("authorization header must use the Bearer scheme")
	}

	token, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("read subject: %w", err)
	}
	return subject, nil
}

// IssueToken signs a token for subject, valid for ttl.
func IssueToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return token.SignedString(secret)
}

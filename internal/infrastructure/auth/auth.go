package auth

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"jan-server/services/image-api/internal/config"
	"jan-server/services/image-api/internal/utils/platformerrors"
)

// ContextKeyPrincipal is the gin context key holding the authenticated Principal.
const ContextKeyPrincipal = "auth_principal"

type principalKey struct{}

// Principal is the caller identified by a validated bearer token.
type Principal struct {
	Subject string
	Scopes  []string
}

// HasScope reports whether the token granted scope.
func (p Principal) HasScope(scope string) bool {
	return slices.Contains(p.Scopes, scope)
}

// PrincipalFromContext returns the principal stored by Middleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// Validator checks bearer JWTs against the issuer's JWKS.
type Validator struct {
	cfg     *config.Config
	log     zerolog.Logger
	keyFunc jwt.Keyfunc
}

// NewValidator fetches the JWKS when auth is enabled. The key set refreshes
// hourly and on unknown key IDs for as long as ctx lives.
func NewValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Validator, error) {
	log = log.With().Str("component", "auth").Logger()
	if !cfg.AuthEnabled {
		return &Validator{cfg: cfg, log: log}, nil
	}

	jwks, err := keyfunc.Get(cfg.AuthJWKSURL, keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			log.Error().Err(err).Str("jwks_url", cfg.AuthJWKSURL).Msg("jwks refresh failed")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch jwks: %w", err)
	}

	return newValidatorWithKeyFunc(cfg, log, jwks.Keyfunc), nil
}

func newValidatorWithKeyFunc(cfg *config.Config, log zerolog.Logger, keyFunc jwt.Keyfunc) *Validator {
	return &Validator{cfg: cfg, log: log, keyFunc: keyFunc}
}

// Middleware rejects requests without a valid bearer token, or without
// AUTH_REQUIRED_SCOPE when one is configured. It does nothing when auth is disabled.
func (v *Validator) Middleware() gin.HandlerFunc {
	if v == nil || !v.cfg.AuthEnabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	parser := jwt.NewParser(
		jwt.WithAudience(v.cfg.AuthAudience),
		jwt.WithIssuer(v.cfg.AuthIssuer),
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
	)

	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			abort(c, platformerrors.ErrorTypeUnauthorized, "missing bearer token")
			return
		}

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, v.keyFunc)
		if err != nil || !token.Valid {
			v.log.Debug().Err(err).Msg("rejected bearer token")
			abort(c, platformerrors.ErrorTypeUnauthorized, "invalid token")
			return
		}

		principal := principalFromClaims(claims)
		if scope := v.cfg.AuthRequiredScope; scope != "" && !principal.HasScope(scope) {
			abort(c, platformerrors.ErrorTypeForbidden, fmt.Sprintf("token lacks required scope %q", scope))
			return
		}

		c.Set(ContextKeyPrincipal, principal)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), principalKey{}, principal))
		c.Next()
	}
}

// principalFromClaims reads the subject and the scopes, which may arrive as a
// space separated "scope" string or a "scp" list.
func principalFromClaims(claims jwt.MapClaims) Principal {
	subject, _ := claims.GetSubject()
	p := Principal{Subject: subject}

	if scope, ok := claims["scope"].(string); ok {
		p.Scopes = append(p.Scopes, strings.Fields(scope)...)
	}
	if scp, ok := claims["scp"].([]any); ok {
		for _, s := range scp {
			if str, ok := s.(string); ok {
				p.Scopes = append(p.Scopes, str)
			}
		}
	}
	return p
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// errorBody mirrors the JSON shape of the HTTP layer's error responses.
type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func abort(c *gin.Context, errType platformerrors.ErrorType, message string) {
	requestID, _ := c.Request.Context().Value(platformerrors.RequestIDKey{}).(string)
	c.AbortWithStatusJSON(platformerrors.ErrorTypeToHTTPStatus(errType), errorBody{
		Code:      platformerrors.ErrorCode(errType),
		Message:   message,
		RequestID: requestID,
	})
}

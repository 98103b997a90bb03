// Package auth verifies and mints HS256 bearer tokens
//
// Tokens carry the caller id in sub and a display name in username. Issuance
// for end users happens elsewhere; Sign exists for the seed tool and tests.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"chargemap/internal/platform/config"
	perr "chargemap/internal/platform/errors"
	pnet "chargemap/internal/platform/net"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims this service reads
type Claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Verifier parses and signs tokens with one shared secret
type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
	now    func() time.Time
}

// Option tunes a Verifier
type Option func(*Verifier)

// WithIssuer requires and stamps iss
func WithIssuer(iss string) Option { return func(v *Verifier) { v.issuer = iss } }

// WithLeeway tolerates clock skew on exp and nbf
func WithLeeway(d time.Duration) Option { return func(v *Verifier) { v.leeway = d } }

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option { return func(v *Verifier) { v.now = now } }

// NewVerifier builds a Verifier; secret must not be empty
func NewVerifier(secret []byte, opts ...Option) (*Verifier, error) {
	if len(secret) == 0 {
		return nil, errors.New("auth: empty secret")
	}
	v := &Verifier{secret: secret, now: time.Now}
	for _, o := range opts {
		o(v)
	}
	return v, nil
}

// FromConf reads AUTH_JWT_SECRET and AUTH_JWT_ISSUER from c
// a missing secret returns (nil, nil) so protected routes reject every caller
func FromConf(c config.Conf) (*Verifier, error) {
	secret := c.MayString("JWT_SECRET", "")
	if secret == "" {
		return nil, nil
	}
	return NewVerifier([]byte(secret),
		WithIssuer(c.MayString("JWT_ISSUER", "")),
		WithLeeway(c.MayDuration("JWT_LEEWAY", 30*time.Second)),
	)
}

// ParseToken validates raw and returns its claims
// every failure is an unauthenticated perr error
func (v *Verifier) ParseToken(raw string) (*Claims, error) {
	if raw == "" {
		return nil, perr.Unauthorizedf("missing bearer token")
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) { return v.secret, nil }, opts...)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, perr.Wrap(err, perr.ErrorCodeUnauthorized, "token expired")
	case err != nil:
		return nil, perr.Wrap(err, perr.ErrorCodeUnauthorized, "invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, perr.Unauthorizedf("token has no subject")
	}
	return claims, nil
}

// Parse reads the Authorization header and returns the caller
// it satisfies the middleware auth port
func (v *Verifier) Parse(r *http.Request) (pnet.Principal, error) {
	raw, ok := BearerToken(r.Header.Get("Authorization"))
	if !ok {
		return pnet.Principal{}, perr.Unauthorizedf("missing bearer token")
	}
	c, err := v.ParseToken(raw)
	if err != nil {
		return pnet.Principal{}, err
	}
	name := c.Username
	if name == "" {
		name = c.Subject
	}
	return pnet.Principal{UserID: c.Subject, Username: name}, nil
}

// Sign mints a token for subject valid for ttl
func (v *Verifier) Sign(subject, username string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("auth: empty subject")
	}
	now := v.now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// BearerToken extracts the token from an Authorization header value
func BearerToken(h string) (string, bool) {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jastip-id/jastip-be/internal/models"
)

// TokenTTL bounds both the JWT expiry and the session cookie max-age. The two
// must stay in lockstep or a cookie could outlive its token (or vice versa).
const TokenTTL = time.Hour

// ErrInvalidToken covers every verification failure: bad signature, malformed
// payload, expired token. Callers get no finer-grained detail.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity snapshot embedded in a session token. Status is the
// user's approval status at issuance time; changes to the stored user do not
// affect tokens already in flight.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Status string `json:"status"`
	jwt.RegisteredClaims
}

// Approved reports whether the snapshot allows access to gated routes.
func (c *Claims) Approved() bool {
	return c.Status == models.StatusActive
}

// TokenService issues and verifies signed session tokens. The signing secret
// is fixed at construction and tokens are self-contained, so there is no
// server-side session state and no revocation before expiry.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret}
}

// Issue creates an HS256 token for the user, expiring after TokenTTL.
func (s *TokenService) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Status: user.Status,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string. Every failure mode is reported
// as ErrInvalidToken.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

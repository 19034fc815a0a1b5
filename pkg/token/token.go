package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Typed verification outcomes. Verify never panics on attacker-controlled
// input; anything unexpected collapses into ErrInvalidToken.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
)

// Claims is the fixed session-claim schema: a structured object carrying the
// username, applied uniformly by every protected handler.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// RevocationList blacklists token IDs until their natural expiry. A nil list
// disables revocation entirely.
type RevocationList interface {
	Revoke(jti string, ttl time.Duration)
	Revoked(jti string) bool
}

// Service signs and verifies HS256 bearer tokens. The signing key is
// process-wide state, loaded once at startup.
type Service struct {
	secret  []byte
	ttl     time.Duration
	revoked RevocationList
}

func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{
		secret: secret,
		ttl:    ttl,
	}
}

// WithRevocationList enables denylist checks during Verify.
func (s *Service) WithRevocationList(list RevocationList) *Service {
	s.revoked = list
	return s
}

// TTL reports the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token whose claim identity is username, expiring at
// now + TTL. Each token carries a unique ID so it can be revoked
// individually.
func (s *Service) Issue(username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Username: username,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature, expiry and the revocation list, returning the
// decoded claims or a typed error.
func (s *Service) Verify(raw string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !parsed.Valid || claims.Username == "" {
		return nil, ErrInvalidToken
	}

	if s.revoked != nil && s.revoked.Revoked(claims.ID) {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// Revoke blacklists the token's ID for the remainder of its lifetime. With
// revocation disabled this is a successful no-op so logout stays idempotent.
func (s *Service) Revoke(raw string) error {
	claims, err := s.Verify(raw)
	if err != nil {
		return err
	}

	if s.revoked == nil {
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	s.revoked.Revoke(claims.ID, remaining)
	return nil
}

package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cse-motors/dealership/internal/core/domain"
)

// TokenService issues and verifies the HS256-signed bearer tokens that back
// the jwt cookie. Claims are deliberately minimal: account id (subject),
// role, and expiry. Anything else is loaded from the database on demand.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given account. The expiry is absolute;
// nothing is persisted server-side.
func (s *TokenService) Issue(accountID int, role string) (string, error) {
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(accountID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token. Expired tokens return
// domain.ErrTokenExpired; any other failure (bad signature, wrong
// algorithm, malformed subject) returns domain.ErrTokenInvalid.
func (s *TokenService) Verify(token string) (domain.Claims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Claims{}, domain.ErrTokenExpired
		}
		return domain.Claims{}, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return domain.Claims{}, domain.ErrTokenInvalid
	}

	accountID, err := strconv.Atoi(claims.Subject)
	if err != nil || accountID <= 0 {
		return domain.Claims{}, domain.ErrTokenInvalid
	}

	return domain.Claims{AccountID: accountID, Role: claims.Role}, nil
}

// TTL returns the token lifetime in whole seconds, matching the cookie
// max-age set alongside the token.
func (s *TokenService) TTL() int {
	return int(s.ttl / time.Second)
}

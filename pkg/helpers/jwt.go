package helpers

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and verifies the bearer tokens used by the API. Tokens
// are HS256-signed and carry issuer, audience, expiry, the numeric user id
// and a userEmail identity claim.
type JWTManager struct {
	Secret   []byte
	Issuer   string
	Audience string
	Realm    string
	TokenTTL time.Duration
}

var defaultManager *JWTManager

func NewJWTManager(secret, issuer, audience, realm string, ttl time.Duration) *JWTManager {
	m := &JWTManager{
		Secret:   []byte(secret),
		Issuer:   issuer,
		Audience: audience,
		Realm:    realm,
		TokenTTL: ttl,
	}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

type Claims struct {
	UserID    int64  `json:"uid"`
	UserEmail string `json:"userEmail"`
	jwt.RegisteredClaims
}

var (
	ErrMissingIdentity = errors.New("token has no identity claim")
)

// Issue signs a token for the given user identity.
func (m *JWTManager) Issue(userID int64, email string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.TokenTTL)
	claims := &Claims{
		UserID:    userID,
		UserEmail: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			Audience:  jwt.ClaimStrings{m.Audience},
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Verify checks signature, issuer, audience and expiry, and requires the
// userEmail identity claim to be present.
func (m *JWTManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	}, jwt.WithIssuer(m.Issuer), jwt.WithAudience(m.Audience), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserEmail == "" {
		return nil, ErrMissingIdentity
	}
	return claims, nil
}

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid means the signature did not match or the token
	// structure is malformed.
	ErrTokenInvalid = errors.New("auth: token is not valid")
	// ErrTokenExpired means the token was well-formed and correctly
	// signed but its expiry has passed.
	ErrTokenExpired = errors.New("auth: token has expired")
)

// Claims is the identity payload embedded in a token.
type Claims struct {
	UserID uint
}

type userClaim struct {
	ID uint `json:"id"`
}

// tokenClaims is the wire shape: {"user":{"id":...}} plus registered claims.
type tokenClaims struct {
	User userClaim `json:"user"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HMAC-SHA256 bearer tokens carrying the
// user id and an expiry. Verification never touches the database.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager returns a manager signing with secret and issuing tokens
// valid for ttl.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding claims and expiring at now + ttl.
func (m *TokenManager) Issue(claims Claims) (string, error) {
	now := time.Now()
	tc := tokenClaims{
		User: userClaim{ID: claims.UserID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tc)
	return token.SignedString(m.secret)
}

// Verify validates signature, structure and expiry, returning the embedded
// claims. It fails with ErrTokenExpired when the expiry has passed and
// ErrTokenInvalid for every other defect.
func (m *TokenManager) Verify(tokenString string) (Claims, error) {
	var tc tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &tc, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !token.Valid || tc.User.ID == 0 {
		return Claims{}, ErrTokenInvalid
	}

	return Claims{UserID: tc.User.ID}, nil
}

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionTTL is the lifetime of a login session token.
	SessionTTL = time.Hour
	// RecoveryTTL is the lifetime of a password-recovery token.
	RecoveryTTL = 15 * time.Minute
	// RecoveryRole is the sentinel role carried by recovery tokens. It marks
	// the token as single-purpose: Verify cannot tell token kinds apart, so
	// callers must check the claims' Rol field before accepting a token for
	// password reset.
	RecoveryRole = "recuperacion"
)

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the signed payload carried inside every token: subject email,
// expiry, role label and user id. It is the only piece of session state in
// the system; nothing is persisted server-side.
type Claims struct {
	jwt.RegisteredClaims
	Rol       string `json:"rol"`
	UsuarioID int    `json:"usuario_id"`
}

// TokenService issues and verifies HS256-signed claims with a server-held
// shared secret.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs claims for the given subject with an absolute expiry of now+ttl.
func (s *TokenService) Issue(email, rol string, usuarioID int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Rol:       rol,
		UsuarioID: usuarioID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. The signature is checked before
// any claim is trusted. Expired tokens yield ErrTokenExpired; anything else
// wrong (bad signature, wrong algorithm, malformed structure) yields
// ErrTokenInvalid.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

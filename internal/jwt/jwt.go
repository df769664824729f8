package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie that carries the signed session token.
const CookieName = "sessionid"

var (
	ErrNoToken      = errors.New("session cookie missing")
	ErrInvalidToken = errors.New("invalid session token")
)

// Claims are the identifiers carried by a session token.
type Claims struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
}

type tokenClaims struct {
	SessionID string `json:"sid"`
	UserID    string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWT signs and verifies session tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) { j.SecretKey = key }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.Exp = exp }
}

// New creates a new JWT instance. Tokens live one hour unless configured otherwise.
func New(opts ...Opt) *JWT {
	j := &JWT{Exp: time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token binding sessionID to userID.
func (j *JWT) Generate(ctx context.Context, sessionID, userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		SessionID: sessionID.String(),
		UserID:    userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims verifies tokenString and returns its identifiers.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, errors.New("invalid sid format"))
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, errors.New("invalid user_id format"))
	}

	return &Claims{SessionID: sessionID, UserID: userID}, nil
}

// GetTokenFromRequest extracts the token string from the session cookie
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}

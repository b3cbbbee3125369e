package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinSecretLength is the shortest HMAC secret NewJWTIssuer accepts
const MinSecretLength = 32

var (
	ErrEmptySecretKey  = errors.New("secret key cannot be empty")
	ErrWeakSecretKey   = fmt.Errorf("secret key must be at least %d characters", MinSecretLength)
	ErrInvalidDuration = errors.New("token ttl must be positive")
)

// tokenClaims is the JWT payload. The subject carries the uid.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTConfig configures the issuer
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// JWTIssuer signs and validates HS256 bearer tokens
type JWTIssuer struct {
	config       JWTConfig
	timeProvider coreport.TimeProvider
}

var _ identity.TokenIssuer = (*JWTIssuer)(nil)

// NewJWTIssuer creates a new JWTIssuer
func NewJWTIssuer(config JWTConfig, timeProvider coreport.TimeProvider) (*JWTIssuer, error) {
	if config.Secret == "" {
		return nil, ErrEmptySecretKey
	}
	if len(config.Secret) < MinSecretLength {
		return nil, ErrWeakSecretKey
	}
	if config.TTL <= 0 {
		return nil, ErrInvalidDuration
	}
	return &JWTIssuer{config: config, timeProvider: timeProvider}, nil
}

// Issue signs a token for uid with the given role
func (i *JWTIssuer) Issue(uid string, role entity.Role) (*identity.Token, error) {
	now := i.timeProvider.Now()
	expiresAt := now.Add(i.config.TTL)

	claims := &tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    i.config.Issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.config.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &identity.Token{Value: signed, ExpiresAt: expiresAt.Truncate(time.Second)}, nil
}

// Validate parses token and returns its claims. Every failure is
// ErrUnauthenticated with a short reason.
func (i *JWTIssuer) Validate(token string) (*identity.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithTimeFunc(i.timeProvider.Now),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	}
	if i.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.config.Issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(i.config.Secret), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.WithMessage(errs.ErrUnauthenticated, "token has expired")
		}
		return nil, errs.WithMessage(errs.ErrUnauthenticated, "invalid token")
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid || claims.Subject == "" || claims.IssuedAt == nil {
		return nil, errs.WithMessage(errs.ErrUnauthenticated, "invalid token")
	}

	return &identity.Claims{
		UID:      claims.Subject,
		Role:     entity.Role(claims.Role),
		IssuedAt: claims.IssuedAt.UTC(),
	}, nil
}

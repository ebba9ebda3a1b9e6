package identity

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingSigningSecret = errors.New("missing USER_VERIFY_TOKEN")

const defaultTokenTTL = time.Hour

// Claims is the payload of an identity assertion.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService signs HS256 identity assertions.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

var _ interfaces.ITokenService = (*JWTService)(nil)

func NewJWTService(secret string, ttl time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, ErrMissingSigningSecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl}, nil
}

// NewJWTServiceFromEnv reads USER_VERIFY_TOKEN and TOKEN_TTL (a Go duration,
// default 1h).
func NewJWTServiceFromEnv() (*JWTService, error) {
	ttl := defaultTokenTTL
	if raw := strings.TrimSpace(os.Getenv("TOKEN_TTL")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", raw, err)
		}
		ttl = parsed
	}
	svc, err := NewJWTService(os.Getenv("USER_VERIFY_TOKEN"), ttl)
	if err != nil {
		return nil, err
	}
	log.Printf("[auth][jwt] token service initialized ttl=%s", svc.ttl)
	return svc, nil
}

func (s *JWTService) Issue(email string, now time.Time) (string, entities.Identity, error) {
	issuedAt := now.UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", entities.Identity{}, err
	}
	return token, entities.Identity{Email: email, IssuedAt: issuedAt, ExpiresAt: expiresAt}, nil
}

func (s *JWTService) Verify(tokenString string) (entities.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return entities.Identity{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return entities.Identity{}, errors.New("invalid token claims")
	}

	id := entities.Identity{Email: claims.Email}
	if claims.IssuedAt != nil {
		id.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return id, nil
}

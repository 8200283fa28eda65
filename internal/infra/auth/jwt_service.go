// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bizdesk/config"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/domain/service"
	"bizdesk/internal/errors"
)

const bearerScheme = "Bearer"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // Secret key for signing access tokens.
	ttl    time.Duration    // Time-to-live for access tokens.
	now    func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}

	svc, err := newJWTService(cfg.SecretKey.Access, ttl, time.Now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.Errorf("token ttl must be positive, got %s", ttl)
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// IssueToken signs an HS256 token carrying sub, iat and exp.
func (s *jwtService) IssueToken(subject string) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("token subject must not be empty")
	}

	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,                       // Subject (who the token is for)
		IssuedAt:  jwt.NewNumericDate(issuedAt),  // Issued At
		ExpiresAt: jwt.NewNumericDate(expiresAt), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return signed, expiresAt, nil
}

// VerifyToken checks the validity of a token string against the signing secret.
func (s *jwtService) VerifyToken(tokenString string) (*service.Principal, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails(err.Error())
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("token has no subject")
	}

	principal := &service.Principal{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		principal.IssuedAt = claims.IssuedAt.Time
	}

	return principal, nil
}

// AuthenticateRequest reads "Authorization: Bearer <token>" and verifies the token.
func (s *jwtService) AuthenticateRequest(header http.Header) (*service.Principal, error) {
	fields := strings.Fields(header.Get("Authorization"))
	if len(fields) != 2 || !strings.EqualFold(fields[0], bearerScheme) {
		return nil, domainerrors.ErrMissingCredential
	}

	return s.VerifyToken(fields[1])
}

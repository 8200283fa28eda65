package auth

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk/config"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/errors"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := newJWTService(testSecret, time.Hour, time.Now)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t)

	token, expiresAt, err := svc.IssueToken("a@x.io")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)

	principal, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", principal.Subject)
	assert.Equal(t, expiresAt.Unix(), principal.ExpiresAt.Unix())
	assert.False(t, principal.IssuedAt.IsZero())
}

func TestJWTService_WrongKey(t *testing.T) {
	svc := newTestJWTService(t)
	other, err := newJWTService("another_secret_key_of_reasonable_length", time.Hour, time.Now)
	require.NoError(t, err)

	token, _, err := other.IssueToken("a@x.io")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_MutatedToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, _, err := svc.IssueToken("a@x.io")
	require.NoError(t, err)
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	forgedPayload := base64.RawURLEncoding.EncodeToString(
		[]byte(`{"sub":"mallory@x.io","exp":` + strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10) + `}`))

	sig := []byte(parts[2])
	if sig[10] == 'A' {
		sig[10] = 'B'
	} else {
		sig[10] = 'A'
	}

	tests := map[string]string{
		"payload":   parts[0] + "." + forgedPayload + "." + parts[2],
		"signature": parts[0] + "." + parts[1] + "." + string(sig),
		"truncated": parts[0] + "." + parts[1],
		"garbage":   "clearly-not-a-jwt-token-format",
	}

	for name, mutated := range tests {
		t.Run(name, func(t *testing.T) {
			principal, err := svc.VerifyToken(mutated)
			require.Error(t, err)
			assert.Nil(t, principal)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestJWTService_Expired(t *testing.T) {
	past := func() time.Time { return time.Now().Add(-48 * time.Hour) }
	issuer, err := newJWTService(testSecret, time.Hour, past)
	require.NoError(t, err)

	token, _, err := issuer.IssueToken("a@x.io")
	require.NoError(t, err)

	_, err = newTestJWTService(t).VerifyToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t)
	claims := jwt.RegisteredClaims{
		Subject:   "a@x.io",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for _, token := range []string{hs512, none} {
		_, err := svc.VerifyToken(token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	}
}

func TestJWTService_MissingSubjectOrExpiry(t *testing.T) {
	svc := newTestJWTService(t)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "a@x.io",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for _, token := range []string{noSubject, noExpiry} {
		_, err := svc.VerifyToken(token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	}
}

func TestJWTService_AuthenticateRequest(t *testing.T) {
	svc := newTestJWTService(t)
	token, _, err := svc.IssueToken("a@x.io")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "valid", header: "Bearer " + token},
		{name: "lowercase scheme", header: "bearer " + token},
		{name: "missing", header: "", wantErr: domainerrors.ErrMissingCredential},
		{name: "basic scheme", header: "Basic dXNlcjpwdw==", wantErr: domainerrors.ErrMissingCredential},
		{name: "scheme only", header: "Bearer", wantErr: domainerrors.ErrMissingCredential},
		{name: "bad token", header: "Bearer nope", wantErr: domainerrors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}

			principal, err := svc.AuthenticateRequest(header)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, principal)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "a@x.io", principal.Subject)
		})
	}
}

func TestNewJWTService_Validation(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret must be provided")

	_, err = NewJWTService(&config.Config{SecretKey: config.SecretKeyConfig{Access: testSecret}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token ttl must be positive")

	svc, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKeyConfig{Access: testSecret},
		Auth:      &config.AuthConfig{TokenTTL: time.Minute},
	})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

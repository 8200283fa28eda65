package service

import (
	"net/http"
	"strconv"
	"time"
)

// Principal is the authenticated identity carried by a verified token.
type Principal struct {
	// Subject is the decimal id of the user the token was issued to.
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// UserID parses Subject. ok is false when the subject is not a positive id.
func (p *Principal) UserID() (id int64, ok bool) {
	id, err := strconv.ParseInt(p.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// It proves token validity only; whether the subject still exists is the caller's concern.
type TokenService interface {
	// IssueToken signs a token for subject and returns it with its expiry.
	IssueToken(subject string) (token string, expiresAt time.Time, err error)

	// VerifyToken checks signature, algorithm, expiry and subject of a token string.
	VerifyToken(token string) (*Principal, error)

	// AuthenticateRequest extracts the Bearer credential from the request headers and verifies it.
	AuthenticateRequest(header http.Header) (*Principal, error)
}

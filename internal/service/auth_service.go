package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

const tokenIssuer = "ledger-server"

var (
	// ErrInvalidClass indicates an account class outside {Savings, Current}.
	ErrInvalidClass = errors.New("invalid account class")

	// ErrInvalidToken indicates a missing, malformed, or expired bearer
	// token.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthConfig carries the credential-verification settings injected by the
// calling context. The admin password is never stored in the ledger core.
type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AttemptBudget int
	AdminPassword string
}

// AuthService authenticates PIN logins and mints bearer tokens. Login
// attempt budgets are per-account sessions held in memory: lockout is
// ephemeral and dies with the process, matching the original behavior of
// a caller-local counter rather than durable account state.
type AuthService struct {
	ledger *ledger.Ledger
	cfg    AuthConfig

	mu       sync.Mutex
	sessions map[string]*accountSession
}

// accountSession serializes concurrent logins against one account so the
// shared attempt budget is consumed one failure at a time.
type accountSession struct {
	mu   sync.Mutex
	sess *ledger.Session
}

// NewAuthService creates a new AuthService.
func NewAuthService(ldg *ledger.Ledger, cfg AuthConfig) *AuthService {
	if cfg.AttemptBudget <= 0 {
		cfg.AttemptBudget = 3
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 15 * time.Minute
	}
	return &AuthService{
		ledger:   ldg,
		cfg:      cfg,
		sessions: make(map[string]*accountSession),
	}
}

// Login verifies the PIN and returns a signed bearer token. Unknown
// account ids and wrong PINs both come back as ErrAuthenticationFailed so
// the response does not reveal which accounts exist; an exhausted attempt
// budget comes back as ErrSessionLocked.
func (s *AuthService) Login(ctx context.Context, accountID, pin string) (string, error) {
	as := s.session(accountID)
	as.mu.Lock()
	a, err := s.ledger.Authenticate(accountID, pin, as.sess)
	as.mu.Unlock()
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			return "", ledger.ErrAuthenticationFailed
		}
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   a.ID(),
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", err
	}
	return signed, nil
}

// VerifyToken validates a bearer token and returns the account id it was
// minted for.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// VerifyAdmin checks the admin gate credential in constant time.
func (s *AuthService) VerifyAdmin(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(s.cfg.AdminPassword)) == 1
}

func (s *AuthService) session(accountID string) *accountSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	as, ok := s.sessions[accountID]
	if !ok {
		as = &accountSession{sess: ledger.NewSession(s.cfg.AttemptBudget)}
		s.sessions[accountID] = as
	}
	return as
}

type accountIDKey struct{}

// AccountIDKey is the context key under which the authenticated account id
// is stored by the bearer-token middleware.
var AccountIDKey = accountIDKey{}

// AccountIDFromContext returns the authenticated account id, or the empty
// string when the request carried no verified token.
func AccountIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(AccountIDKey).(string)
	return id
}

package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/datamon-go/apperror"
	"github.com/user/datamon-go/config"
	"github.com/user/datamon-go/store"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// AuthService provides authentication-related services. It owns credential
// verification against the user store and the issuance and validation of
// session tokens.
type AuthService struct {
	users      *store.UserStore
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService. Dependencies (the user store and
// the auth configuration) are injected explicitly through the constructor.
func NewAuthService(users *store.UserStore, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		users:      users,
		authConfig: authConfig,
	}
}

// SessionClaims defines the payload of a session token: the username plus the
// standard registered claims (expiry, issue time).
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Register creates a new user. The username must not already be taken (exact,
// case-sensitive match); the password is stored only as a bcrypt hash, which
// is salted and one-way. All profile fields are stored as given.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	existing, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		// 409 at the API surface; the register form shows the message as-is.
		return apperror.NewConflictError("Username already exists.", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.users.Append(ctx, store.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Email:    req.Email,
		Age:      req.Age,
		Language: req.Language,
	})
}

// Login verifies the supplied credentials and, on success, returns a signed
// session token bound to the username. An unknown username and a wrong
// password produce the same error, so login failures do not reveal which of
// the two was wrong.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, time.Time, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return "", time.Time{}, err
	}
	if user == nil {
		return "", time.Time{}, apperror.NewAuthError("Login failed. Please check your username and password.", nil)
	}

	// bcrypt's comparison is resistant to timing attacks; the stored value
	// embeds the salt.
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", time.Time{}, apperror.NewAuthError("Login failed. Please check your username and password.", nil)
	}

	return s.issueSessionToken(user.Username)
}

// issueSessionToken mints an HS256-signed token identifying the session.
func (s *AuthService) issueSessionToken(username string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.authConfig.SessionDuration)
	claims := &SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.authConfig.SessionSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// ValidateSessionToken parses and validates a session token, returning its
// claims. The signature, the expiry, and the presence of a username are all
// checked.
func (s *AuthService) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			// Reject tokens signed with anything but the expected HMAC family.
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.authConfig.SessionSecret), nil
	})
	if err != nil {
		return nil, apperror.NewAuthError("invalid session token", err)
	}
	if !token.Valid {
		return nil, apperror.NewAuthError("invalid session token", nil)
	}
	if claims.Username == "" {
		return nil, apperror.NewAuthError("session token carries no username", nil)
	}
	return claims, nil
}

// SessionUsername extracts and validates the session from the request's
// cookie. It returns the bound username and true when a valid session exists.
// A missing cookie, an expired token, or a bad signature all simply mean
// "no session".
func (s *AuthService) SessionUsername(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		// r.Cookie only ever fails with http.ErrNoCookie.
		return "", false
	}
	claims, err := s.ValidateSessionToken(cookie.Value)
	if err != nil {
		return "", false
	}
	return claims.Username, true
}

// SetSessionCookie attaches the session token to the response. Re-login
// simply overwrites any previous session cookie.
func SetSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie destroys the session cookie. It is idempotent: clearing
// when no session exists is a no-op from the client's point of view.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthRouter(t *testing.T) (*chi.Mux, *AuthService) {
	t.Helper()
	service, _ := newTestAuthService(t)
	handlers := NewHandlers(service)

	r := chi.NewRouter()
	r.Post("/login", handlers.HandleLogin())
	r.Post("/register", handlers.HandleRegister())
	r.Get("/logout", handlers.HandleLogout())
	r.Group(func(r chi.Router) {
		r.Use(RequireSession(service))
		r.Get("/data_monitoring", func(w http.ResponseWriter, r *http.Request) {
			username, _ := UsernameFromContext(r.Context())
			w.Write([]byte("hello " + username))
		})
	})
	return r, service
}

func postForm(t *testing.T, r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestHandleRegisterAndLoginFlow(t *testing.T) {
	r, _ := newTestAuthRouter(t)

	rr := postForm(t, r, "/register", url.Values{
		"username": {"ana"},
		"password": {"hunter2"},
		"email":    {"ana@example.com"},
		"age":      {"31"},
		"language": {"es"},
	})
	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	rr = postForm(t, r, "/login", url.Values{
		"username": {"ana"},
		"password": {"hunter2"},
	})
	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/data_monitoring", rr.Header().Get("Location"))

	cookie := sessionCookie(rr)
	require.NotNil(t, cookie, "successful login must set the session cookie")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// The cookie admits the visitor to the protected page.
	req := httptest.NewRequest(http.MethodGet, "/data_monitoring", nil)
	req.AddCookie(cookie)
	pageRR := httptest.NewRecorder()
	r.ServeHTTP(pageRR, req)
	require.Equal(t, http.StatusOK, pageRR.Code)
	assert.Equal(t, "hello ana", pageRR.Body.String())
}

func TestHandleRegisterDuplicate(t *testing.T) {
	r, _ := newTestAuthRouter(t)

	form := url.Values{"username": {"ana"}, "password": {"hunter2"}}
	require.Equal(t, http.StatusFound, postForm(t, r, "/register", form).Code)

	rr := postForm(t, r, "/register", form)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "Username already exists.")
}

func TestHandleLoginFailure(t *testing.T) {
	r, _ := newTestAuthRouter(t)
	require.Equal(t, http.StatusFound,
		postForm(t, r, "/register", url.Values{"username": {"ana"}, "password": {"hunter2"}}).Code)

	rr := postForm(t, r, "/login", url.Values{"username": {"ana"}, "password": {"nope"}})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Login failed.")
	assert.Nil(t, sessionCookie(rr), "failed login must not establish a session")
}

func TestHandleLogoutClearsSession(t *testing.T) {
	r, _ := newTestAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	// Logout works with or without an existing session.
	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	cookie := sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	r, _ := newTestAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/data_monitoring", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestRequireSessionRejectsTamperedCookie(t *testing.T) {
	r, _ := newTestAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/data_monitoring", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged-token"})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestReloginOverwritesSession(t *testing.T) {
	r, service := newTestAuthRouter(t)

	for _, u := range []string{"ana", "bob"} {
		require.Equal(t, http.StatusFound,
			postForm(t, r, "/register", url.Values{"username": {u}, "password": {"pw-" + u}}).Code)
	}

	first := sessionCookie(postForm(t, r, "/login", url.Values{"username": {"ana"}, "password": {"pw-ana"}}))
	require.NotNil(t, first)
	second := sessionCookie(postForm(t, r, "/login", url.Values{"username": {"bob"}, "password": {"pw-bob"}}))
	require.NotNil(t, second)

	// A later login simply binds the cookie to the new identity.
	claims, err := service.ValidateSessionToken(second.Value)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Username)
}

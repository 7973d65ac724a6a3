// Package pages serves the HTML views: the login and registration forms and
// the session-protected monitoring pages. It is a deliberately thin
// presentation layer over the record and auth APIs; the pages carry no
// styling or client-side behavior of their own.
package pages

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/user/datamon-go/auth"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Handlers serves the HTML pages. It needs the auth service only to decide
// whether the index should show the login form or bounce an already
// authenticated visitor to the monitoring page.
type Handlers struct {
	sessions *auth.AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(sessions *auth.AuthService) *Handlers {
	return &Handlers{sessions: sessions}
}

// HandleIndex serves the login page, or redirects to the monitoring page when
// the visitor already has an active session.
func (h *Handlers) HandleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.sessions.SessionUsername(r); ok {
			http.Redirect(w, r, "/data_monitoring", http.StatusFound)
			return
		}
		render(w, "login.html", nil)
	}
}

// HandleRegisterForm serves the registration form.
func (h *Handlers) HandleRegisterForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, "register.html", nil)
	}
}

// HandleDataMonitoring serves the monitoring view. The route is mounted
// behind the session middleware, so a username is always present in the
// context here.
func (h *Handlers) HandleDataMonitoring() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, _ := auth.UsernameFromContext(r.Context())
		render(w, "data_monitoring.html", map[string]any{"Username": username})
	}
}

// HandleFilterResults serves the filter-results view, likewise behind the
// session middleware.
func (h *Handlers) HandleFilterResults() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, _ := auth.UsernameFromContext(r.Context())
		render(w, "filter_results.html", map[string]any{"Username": username})
	}
}

// render executes the named template. Template errors are server-side bugs;
// they are logged and answered with a bare 500.
func render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("failed to render %s: %v", name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

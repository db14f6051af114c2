package http

import (
	"net/http"

	"stockroom/internal/identity"
	"stockroom/internal/shared/middleware"
	"stockroom/internal/web"
)

// HandleHealth returns a simple health check response.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

type PageHandler struct {
	verifier identity.Verifier
}

func NewPageHandler(verifier identity.Verifier) *PageHandler {
	return &PageHandler{verifier: verifier}
}

// HandleLanding serves the sign-in page. A visitor who already holds a valid
// session is sent straight to the dashboard instead.
func (h *PageHandler) HandleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if token := middleware.SessionToken(r); token != "" {
		if _, err := h.verifier.GetUser(r.Context(), token); err == nil {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
	}

	http.ServeFileFS(w, r, web.FS, "index.html")
}

// HandleDashboard serves the inventory dashboard page.
func (h *PageHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, web.FS, "dashboard.html")
}

// HandleSalesPage serves the sales history page.
func (h *PageHandler) HandleSalesPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, web.FS, "sales.html")
}

// HandleSettingsPage serves the profile and account settings page.
func (h *PageHandler) HandleSettingsPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, web.FS, "settings.html")
}

package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/acadport/papergen/internal/catalog"
	"github.com/acadport/papergen/internal/llm"
	"github.com/acadport/papergen/internal/model"
	"github.com/acadport/papergen/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// Config holds runtime handler parameters set via CLI flags.
type Config struct {
	SecureCookies bool
}

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	store  *store.Store
	llm    *llm.Client // nil when no API key is configured
	config Config
	tmpl   *template.Template
}

// New creates a new Handler. llmClient may be nil, which disables the
// external generation path entirely in favor of local fallback.
func New(s *store.Store, llmClient *llm.Client, cfg Config) (*Handler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{store: s, llm: llmClient, config: cfg, tmpl: tmpl}, nil
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Get("/login", h.handleLoginPage)
	r.Post("/login", h.handleLogin)
	r.Get("/register", h.handleRegisterPage)
	r.Post("/register", h.handleRegister)
	r.Get("/logout", h.handleLogout)

	r.Group(func(pr chi.Router) {
		pr.Use(h.requireAuth)
		pr.Get("/view_paper/{paperID}", h.handleViewPaper)
		pr.Get("/download_pdf/{paperID}", h.handleDownloadPDF)

		pr.Group(func(sr chi.Router) {
			sr.Use(h.requireRole(model.UserRoleStudent))
			sr.Get("/student", h.handleStudentDashboard)
			sr.Post("/student/quiz/start", h.handleQuizStart)
			sr.Post("/student/quiz/submit", h.handleQuizSubmit)
		})

		pr.Group(func(sr chi.Router) {
			sr.Use(h.requireRole(model.UserRoleStaff))
			sr.Get("/staff", h.handleStaffDashboard)
			sr.Post("/staff/publish/{paperID}", h.handlePublish)
			sr.Post("/generate", h.handleGenerate)
		})
	})
}

// handleHome routes an authenticated user to their dashboard and
// everyone else to the login page.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	user := h.sessionUser(r)
	switch {
	case user == nil:
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case user.Role == model.UserRoleStaff:
		http.Redirect(w, r, "/staff", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/student", http.StatusSeeOther)
	}
}

// sessionUser resolves the session cookie to a user without enforcing
// authentication. Returns nil for anonymous or stale sessions.
func (h *Handler) sessionUser(r *http.Request) *model.User {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	sess, err := h.store.GetAuthSession(cookie.Value)
	if err != nil || sess == nil {
		return nil
	}
	user, err := h.store.GetUserByUsername(sess.Username)
	if err != nil {
		return nil
	}
	return user
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("render error", "template", name, "error", err)
	}
}

// DeptView is the catalog shape templates consume.
type DeptView struct {
	Code    string
	Name    string
	Courses []CourseView
}

// CourseView pairs a course with its syllabus string.
type CourseView struct {
	Name     string
	Syllabus string
}

func departmentViews() []DeptView {
	var out []DeptView
	for _, code := range catalog.Codes() {
		d := DeptView{Code: code, Name: catalog.Name(code)}
		courses := catalog.Courses(code)
		names := make([]string, 0, len(courses))
		for name := range courses {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			d.Courses = append(d.Courses, CourseView{Name: name, Syllabus: courses[name]})
		}
		out = append(out, d)
	}
	return out
}

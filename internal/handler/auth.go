package handler

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	appI18n "github.com/acadport/papergen/internal/i18n"
	"github.com/acadport/papergen/internal/model"
	"github.com/acadport/papergen/internal/store"
)

const sessionCookieName = "session"

// minPasswordLen is the registration password floor.
const minPasswordLen = 6

// requireAuth is middleware that resolves the session cookie into a
// user and stores user plus session token in the request context.
// Anonymous and stale sessions redirect to login rather than erroring.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		sess, err := h.store.GetAuthSession(cookie.Value)
		if err != nil {
			slog.Error("failed to get auth session", "error", err)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if sess == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		user, err := h.store.GetUserByUsername(sess.Username)
		if err != nil || user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := model.ContextWithUser(r.Context(), user)
		ctx = model.ContextWithSessionToken(ctx, sess.Token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole checks the user has the expected role. Violations
// redirect to login, matching the rest of the route guards.
func (h *Handler) requireRole(role model.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := model.UserFromContext(r.Context())
			if user == nil || user.Role != role {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type loginData struct {
	Error string
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", loginData{})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.store.GetUserByUsername(username)
	if err != nil {
		slog.Error("failed to get user", "error", err)
		h.renderLoginError(w, r)
		return
	}
	if user == nil {
		h.renderLoginError(w, r)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		h.renderLoginError(w, r)
		return
	}

	token, err := h.store.CreateAuthSession(user.Username)
	if err != nil {
		slog.Error("failed to create auth session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.config.SecureCookies,
	})
	slog.Info("user logged in", "username", user.Username, "role", user.Role)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderLoginError(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusUnauthorized)
	h.render(w, "login.html", loginData{Error: appI18n.T(r.Context(), "LoginError")})
}

type registerData struct {
	Error       string
	Success     string
	Departments []DeptView
}

func (h *Handler) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", registerData{Departments: departmentViews()})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")
	name := r.FormValue("name")
	role := r.FormValue("role")
	department := r.FormValue("department")

	fail := func(msgID string) {
		h.render(w, "register.html", registerData{
			Error:       appI18n.T(r.Context(), msgID),
			Departments: departmentViews(),
		})
	}

	// Checks run in a fixed order: existing username, password
	// mismatch, password length. Nothing persists on failure.
	existing, err := h.store.GetUserByUsername(username)
	if err != nil {
		slog.Error("failed to check username", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		fail("RegisterUserExists")
		return
	}
	if password != confirm {
		fail("RegisterPasswordMismatch")
		return
	}
	if len(password) < minPasswordLen {
		fail("RegisterPasswordTooShort")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	err = h.store.CreateUser(model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         model.UserRole(role),
		Name:         name,
		Department:   department,
	})
	if err == store.ErrUserExists {
		fail("RegisterUserExists")
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.render(w, "register.html", registerData{
		Success:     appI18n.T(r.Context(), "RegisterSuccess"),
		Departments: departmentViews(),
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err == nil && cookie.Value != "" {
		_ = h.store.DeleteAuthSession(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.SecureCookies,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

package model

import (
	"context"
	"time"
)

// TimeFormat is the human-readable timestamp format used on papers
// and publication stamps.
const TimeFormat = "2006-01-02 15:04"

// UserRole represents a user's access level.
type UserRole string

const (
	// UserRoleStudent is a student user role.
	UserRoleStudent UserRole = "student"
	// UserRoleStaff is a staff (teaching) user role.
	UserRoleStaff UserRole = "staff"
)

// User represents a portal account. Users are keyed by username in the
// user store; records are created at registration and never mutated.
type User struct {
	Username     string   `json:"-"`
	PasswordHash string   `json:"password_hash"`
	Role         UserRole `json:"role"`
	Name         string   `json:"name"`
	Department   string   `json:"department"`
}

// Paper is a generated exam question paper. IDs are assigned as
// count+1 at creation time; only the publish fields are ever mutated.
type Paper struct {
	ID          int    `json:"id"`
	Department  string `json:"department"`
	Course      string `json:"course"`
	Syllabus    string `json:"syllabus"`
	Difficulty  string `json:"difficulty"`
	Date        string `json:"date"`
	Content     string `json:"content"`
	CreatedBy   string `json:"created_by"`
	Published   bool   `json:"published"`
	PublishedBy string `json:"published_by,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// QuizQuestion is a single multiple-choice question. Options holds
// exactly four distinct strings and Answer equals one of them.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// ActiveQuiz is the quiz a student is currently taking. It lives in
// the session from quiz start until submission.
type ActiveQuiz struct {
	Department string         `json:"department"`
	Course     string         `json:"course"`
	Questions  []QuizQuestion `json:"questions"`
}

// QuizDetail records the outcome of a single quiz question.
type QuizDetail struct {
	Question  string `json:"question"`
	Selected  string `json:"selected"`
	Correct   string `json:"correct"`
	IsCorrect bool   `json:"is_correct"`
}

// QuizResult is a graded quiz. It is stored in the session by submit
// and consumed by the next dashboard render (pop-once).
type QuizResult struct {
	Score      int          `json:"score"`
	Total      int          `json:"total"`
	Details    []QuizDetail `json:"details"`
	Department string       `json:"department"`
	Course     string       `json:"course"`
}

// AuthSession represents an authentication session.
type AuthSession struct {
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type userCtxKey struct{}

// ContextWithUser stores a user in the request context.
func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFromContext retrieves the authenticated user from context, or nil.
func UserFromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userCtxKey{}).(*User)
	return u
}

type sessionCtxKey struct{}

// ContextWithSessionToken stores the session token in the request context.
func ContextWithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, token)
}

// SessionTokenFromContext retrieves the session token from context
// (empty string if not set).
func SessionTokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(sessionCtxKey{}).(string)
	return t
}

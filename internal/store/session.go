package store

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/acadport/papergen/internal/model"
)

const authSessionTTL = 24 * time.Hour

// CreateAuthSession creates a new auth session token for a user.
func (s *Store) CreateAuthSession(username string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	now := time.Now()
	_, err = s.db.Exec(
		`INSERT INTO auth_sessions (id, username, created_at, expires_at) VALUES (?, ?, ?, ?)`,
		token, username, now, now.Add(authSessionTTL),
	)
	if err != nil {
		return "", err
	}
	return token, nil
}

// GetAuthSession returns the auth session for the given token, or nil
// if not found/expired.
func (s *Store) GetAuthSession(token string) (*model.AuthSession, error) {
	var sess model.AuthSession
	err := s.db.QueryRow(
		`SELECT id, username, created_at, expires_at FROM auth_sessions WHERE id = ?`, token,
	).Scan(&sess.Token, &sess.Username, &sess.CreatedAt, &sess.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.DeleteAuthSession(token)
		return nil, nil
	}
	return &sess, nil
}

// DeleteAuthSession removes a session token along with any quiz state
// attached to it.
func (s *Store) DeleteAuthSession(token string) error {
	_, err := s.db.Exec(`DELETE FROM auth_sessions WHERE id = ?`, token)
	return err
}

// CleanupExpiredSessions removes all expired auth sessions.
func (s *Store) CleanupExpiredSessions() error {
	_, err := s.db.Exec(`DELETE FROM auth_sessions WHERE expires_at < ?`, time.Now())
	return err
}

// SetActiveQuiz stores the quiz a session is currently taking and
// clears any stale result.
func (s *Store) SetActiveQuiz(token string, quiz model.ActiveQuiz) error {
	data, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("marshal active quiz: %w", err)
	}
	_, err = s.db.Exec(
		`UPDATE auth_sessions SET active_quiz = ?, quiz_result = '' WHERE id = ?`,
		string(data), token,
	)
	return err
}

// GetActiveQuiz returns the session's in-progress quiz, or nil.
func (s *Store) GetActiveQuiz(token string) (*model.ActiveQuiz, error) {
	var raw string
	err := s.db.QueryRow(`SELECT active_quiz FROM auth_sessions WHERE id = ?`, token).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var quiz model.ActiveQuiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		return nil, fmt.Errorf("parse active quiz: %w", err)
	}
	return &quiz, nil
}

// ClearActiveQuiz removes the session's in-progress quiz.
func (s *Store) ClearActiveQuiz(token string) error {
	_, err := s.db.Exec(`UPDATE auth_sessions SET active_quiz = '' WHERE id = ?`, token)
	return err
}

// SetQuizResult stores a graded quiz result and consumes the active quiz.
func (s *Store) SetQuizResult(token string, result model.QuizResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal quiz result: %w", err)
	}
	_, err = s.db.Exec(
		`UPDATE auth_sessions SET quiz_result = ?, active_quiz = '' WHERE id = ?`,
		string(data), token,
	)
	return err
}

// TakeQuizResult returns the session's quiz result and clears it, so a
// result renders exactly once. Returns nil when there is none.
func (s *Store) TakeQuizResult(token string) (*model.QuizResult, error) {
	var raw string
	err := s.db.QueryRow(`SELECT quiz_result FROM auth_sessions WHERE id = ?`, token).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	if _, err := s.db.Exec(`UPDATE auth_sessions SET quiz_result = '' WHERE id = ?`, token); err != nil {
		return nil, err
	}
	var result model.QuizResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("parse quiz result: %w", err)
	}
	return &result, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

package store

import (
	"log/slog"

	"github.com/acadport/papergen/internal/model"
)

// loadUsers reads the user map from disk. Callers must hold usersMu.
func (s *Store) loadUsers() (map[string]model.User, error) {
	users := map[string]model.User{}
	if _, err := readJSONFile(s.usersPath(), &users); err != nil {
		return nil, err
	}
	for name, u := range users {
		u.Username = name
		users[name] = u
	}
	return users, nil
}

// saveUsers rewrites the user file. Callers must hold usersMu.
func (s *Store) saveUsers(users map[string]model.User) error {
	return writeJSONFile(s.usersPath(), users)
}

// CreateUser adds a new user record. It fails with ErrUserExists when
// the username is already taken; nothing is written in that case.
func (s *Store) CreateUser(u model.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return err
	}
	if _, ok := users[u.Username]; ok {
		return ErrUserExists
	}
	users[u.Username] = u
	if err := s.saveUsers(users); err != nil {
		return err
	}
	slog.Info("created user", "username", u.Username, "role", u.Role, "department", u.Department)
	return nil
}

// GetUserByUsername returns a user by username, or nil if not found.
func (s *Store) GetUserByUsername(username string) (*model.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}
	u, ok := users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// UserCount returns the total number of users.
func (s *Store) UserCount() (int, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

// SeedUsers writes the given accounts only if the user file does not
// exist yet, so a deployed file is never clobbered on restart.
func (s *Store) SeedUsers(users []model.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	existing := map[string]model.User{}
	found, err := readJSONFile(s.usersPath(), &existing)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	seeded := make(map[string]model.User, len(users))
	for _, u := range users {
		seeded[u.Username] = u
	}
	if err := s.saveUsers(seeded); err != nil {
		return err
	}
	slog.Info("seeded built-in users", "count", len(users))
	return nil
}

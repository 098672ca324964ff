package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/acadport/papergen/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), ":memory:")
	if err != nil {
		t.Fatalf("newTestStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestPaper(t *testing.T, s *Store, department, course string) model.Paper {
	t.Helper()
	p, err := s.CreatePaper(model.Paper{
		Department: department,
		Course:     course,
		Syllabus:   "Topic One, Topic Two",
		Difficulty: "Medium",
		Date:       "2026-09-01 10:00",
		Content:    "1. Define Topic One.\n\n2. Explain Topic Two.",
		CreatedBy:  "Ms. Smith",
	})
	if err != nil {
		t.Fatalf("createTestPaper: %v", err)
	}
	return p
}

func TestUserCreateAndGet(t *testing.T) {
	s := newTestStore(t)

	count, err := s.UserCount()
	if err != nil {
		t.Fatalf("UserCount: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 users, got %d", count)
	}

	u := model.User{
		Username:     "staff1",
		PasswordHash: "hash",
		Role:         model.UserRoleStaff,
		Name:         "Ms. Smith",
		Department:   "IT",
	}
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := s.GetUserByUsername("staff1")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if got == nil {
		t.Fatal("expected user, got nil")
	}
	if got.Username != "staff1" || got.Name != "Ms. Smith" || got.Department != "IT" {
		t.Errorf("unexpected user: %+v", got)
	}
	if got.Role != model.UserRoleStaff {
		t.Errorf("expected staff role, got %q", got.Role)
	}

	// Unknown usernames return nil, not an error.
	missing, err := s.GetUserByUsername("nobody")
	if err != nil {
		t.Fatalf("GetUserByUsername(nobody): %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown user, got %+v", missing)
	}
}

func TestCreateUserDuplicateLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore(t)

	if err := s.CreateUser(model.User{Username: "student1", PasswordHash: "h1", Role: model.UserRoleStudent, Name: "John"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	err := s.CreateUser(model.User{Username: "student1", PasswordHash: "h2", Role: model.UserRoleStaff, Name: "Impostor"})
	if err != ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	got, err := s.GetUserByUsername("student1")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if got.PasswordHash != "h1" || got.Name != "John" {
		t.Errorf("duplicate registration mutated the store: %+v", got)
	}

	count, _ := s.UserCount()
	if count != 1 {
		t.Errorf("expected 1 user, got %d", count)
	}
}

func TestSeedUsersOnlyOnFirstBoot(t *testing.T) {
	s := newTestStore(t)

	seeds := []model.User{
		{Username: "student1", PasswordHash: "h", Role: model.UserRoleStudent, Name: "John Student", Department: "AI&DS"},
		{Username: "staff1", PasswordHash: "h", Role: model.UserRoleStaff, Name: "Ms. Smith", Department: "IT"},
	}
	if err := s.SeedUsers(seeds); err != nil {
		t.Fatalf("SeedUsers: %v", err)
	}
	count, _ := s.UserCount()
	if count != 2 {
		t.Fatalf("expected 2 seeded users, got %d", count)
	}

	// A second seeding run must not clobber registered users.
	if err := s.CreateUser(model.User{Username: "newuser", PasswordHash: "h", Role: model.UserRoleStudent}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := s.SeedUsers(seeds); err != nil {
		t.Fatalf("SeedUsers second run: %v", err)
	}
	count, _ = s.UserCount()
	if count != 3 {
		t.Errorf("reseed clobbered the user file: got %d users, want 3", count)
	}
}

func TestCreatePaperAssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)

	p1 := createTestPaper(t, s, "IT", "Web Development")
	p2 := createTestPaper(t, s, "CS", "Operating Systems")

	if p1.ID != 1 || p2.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", p1.ID, p2.ID)
	}
}

func TestPaperRoundTrip(t *testing.T) {
	s := newTestStore(t)

	created := createTestPaper(t, s, "IT", "Web Development")

	got, err := s.GetPaper(created.ID)
	if err != nil {
		t.Fatalf("GetPaper: %v", err)
	}
	if got == nil {
		t.Fatal("expected paper, got nil")
	}
	if got.Department != created.Department ||
		got.Course != created.Course ||
		got.Syllabus != created.Syllabus ||
		got.Difficulty != created.Difficulty ||
		got.Content != created.Content {
		t.Errorf("round-trip mismatch:\ncreated %+v\ngot     %+v", created, *got)
	}
	if got.Published {
		t.Error("new papers must start unpublished")
	}

	missing, err := s.GetPaper(999)
	if err != nil {
		t.Fatalf("GetPaper(999): %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown paper, got %+v", missing)
	}
}

func TestPapersPersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, ":memory:")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	created := createTestPaper(t, s, "IT", "Web Development")
	s.Close()

	reopened, err := New(dir, ":memory:")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetPaper(created.ID)
	if err != nil {
		t.Fatalf("GetPaper after reopen: %v", err)
	}
	if got == nil || got.Content != created.Content {
		t.Errorf("paper did not survive reopen: %+v", got)
	}

	// The file on disk is plain JSON, human-inspectable.
	if _, err := os.Stat(filepath.Join(dir, papersFile)); err != nil {
		t.Errorf("expected %s on disk: %v", papersFile, err)
	}
}

func TestPublishPaper(t *testing.T) {
	s := newTestStore(t)
	p := createTestPaper(t, s, "IT", "Web Development")

	if err := s.PublishPaper(p.ID, "IT", "Ms. Smith"); err != nil {
		t.Fatalf("PublishPaper: %v", err)
	}
	got, _ := s.GetPaper(p.ID)
	if !got.Published {
		t.Fatal("paper should be published")
	}
	if got.PublishedBy != "Ms. Smith" || got.PublishedAt == "" {
		t.Errorf("missing publish stamp: %+v", got)
	}

	// Republishing is idempotent and only refreshes the stamp.
	if err := s.PublishPaper(p.ID, "IT", "Admin"); err != nil {
		t.Fatalf("PublishPaper again: %v", err)
	}
	got, _ = s.GetPaper(p.ID)
	if !got.Published || got.PublishedBy != "Admin" {
		t.Errorf("republish should keep published=true with latest publisher: %+v", got)
	}
}

func TestPublishPaperWrongDepartmentIsNoOp(t *testing.T) {
	s := newTestStore(t)
	p := createTestPaper(t, s, "IT", "Web Development")

	if err := s.PublishPaper(p.ID, "CS", "Admin"); err != nil {
		t.Fatalf("PublishPaper: %v", err)
	}
	got, _ := s.GetPaper(p.ID)
	if got.Published {
		t.Error("cross-department publish must be a no-op")
	}
	if got.PublishedBy != "" {
		t.Errorf("cross-department publish must not stamp: %+v", got)
	}
}

func TestListPapersByDepartmentNewestFirst(t *testing.T) {
	s := newTestStore(t)
	createTestPaper(t, s, "IT", "Web Development")
	createTestPaper(t, s, "CS", "Operating Systems")
	createTestPaper(t, s, "IT", "Cybersecurity")

	papers, err := s.ListPapersByDepartment("IT")
	if err != nil {
		t.Fatalf("ListPapersByDepartment: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("expected 2 IT papers, got %d", len(papers))
	}
	if papers[0].ID < papers[1].ID {
		t.Errorf("expected newest first, got ids %d, %d", papers[0].ID, papers[1].ID)
	}
}

func TestListPublishedPapers(t *testing.T) {
	s := newTestStore(t)
	p1 := createTestPaper(t, s, "IT", "Web Development")
	createTestPaper(t, s, "IT", "Cybersecurity")
	p3 := createTestPaper(t, s, "IT", "Web Development")

	if err := s.PublishPaper(p1.ID, "IT", "Ms. Smith"); err != nil {
		t.Fatalf("PublishPaper: %v", err)
	}
	if err := s.PublishPaper(p3.ID, "IT", "Ms. Smith"); err != nil {
		t.Fatalf("PublishPaper: %v", err)
	}

	tests := []struct {
		name      string
		course    string
		wantCount int
	}{
		{"all courses", "", 2},
		{"one course", "Web Development", 2},
		{"unpublished course filtered", "Cybersecurity", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			papers, err := s.ListPublishedPapers("IT", tt.course)
			if err != nil {
				t.Fatalf("ListPublishedPapers: %v", err)
			}
			if len(papers) != tt.wantCount {
				t.Errorf("expected %d papers, got %d", tt.wantCount, len(papers))
			}
		})
	}
}

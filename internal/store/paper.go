package store

import (
	"log/slog"
	"sort"
	"time"

	"github.com/acadport/papergen/internal/model"
)

// loadPapers reads the paper list from disk. Callers must hold papersMu.
func (s *Store) loadPapers() ([]model.Paper, error) {
	var papers []model.Paper
	if _, err := readJSONFile(s.papersPath(), &papers); err != nil {
		return nil, err
	}
	return papers, nil
}

// savePapers rewrites the paper file. Callers must hold papersMu.
func (s *Store) savePapers(papers []model.Paper) error {
	return writeJSONFile(s.papersPath(), papers)
}

// CreatePaper appends a paper, assigning the next id as count+1.
// Unique within one process because all paper writes go through
// papersMu; two processes sharing a data dir can still collide.
func (s *Store) CreatePaper(p model.Paper) (model.Paper, error) {
	s.papersMu.Lock()
	defer s.papersMu.Unlock()

	papers, err := s.loadPapers()
	if err != nil {
		return model.Paper{}, err
	}
	p.ID = len(papers) + 1
	papers = append(papers, p)
	if err := s.savePapers(papers); err != nil {
		return model.Paper{}, err
	}
	slog.Info("created paper", "id", p.ID, "department", p.Department, "course", p.Course, "created_by", p.CreatedBy)
	return p, nil
}

// GetPaper returns a paper by id, or nil if not found.
func (s *Store) GetPaper(id int) (*model.Paper, error) {
	s.papersMu.Lock()
	defer s.papersMu.Unlock()

	papers, err := s.loadPapers()
	if err != nil {
		return nil, err
	}
	for i := range papers {
		if papers[i].ID == id {
			return &papers[i], nil
		}
	}
	return nil, nil
}

// ListPapersByDepartment returns all papers of a department, newest
// (highest id) first.
func (s *Store) ListPapersByDepartment(department string) ([]model.Paper, error) {
	s.papersMu.Lock()
	defer s.papersMu.Unlock()

	papers, err := s.loadPapers()
	if err != nil {
		return nil, err
	}
	var out []model.Paper
	for _, p := range papers {
		if p.Department == department {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// ListPublishedPapers returns published papers of a department,
// optionally restricted to one course, in stored order.
func (s *Store) ListPublishedPapers(department, course string) ([]model.Paper, error) {
	s.papersMu.Lock()
	defer s.papersMu.Unlock()

	papers, err := s.loadPapers()
	if err != nil {
		return nil, err
	}
	var out []model.Paper
	for _, p := range papers {
		if p.Department != department || !p.Published {
			continue
		}
		if course != "" && p.Course != course {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// PublishPaper marks the paper published, stamping publisher and time.
// The paper must belong to the given department; otherwise this is a
// silent no-op. Republishing only refreshes the stamp.
func (s *Store) PublishPaper(id int, department, publishedBy string) error {
	s.papersMu.Lock()
	defer s.papersMu.Unlock()

	papers, err := s.loadPapers()
	if err != nil {
		return err
	}
	for i := range papers {
		if papers[i].ID == id && papers[i].Department == department {
			papers[i].Published = true
			papers[i].PublishedBy = publishedBy
			papers[i].PublishedAt = time.Now().Format(model.TimeFormat)
			if err := s.savePapers(papers); err != nil {
				return err
			}
			slog.Info("published paper", "id", id, "published_by", publishedBy)
			return nil
		}
	}
	return nil
}

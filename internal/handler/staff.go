package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/acadport/papergen/internal/catalog"
	"github.com/acadport/papergen/internal/fallback"
	"github.com/acadport/papergen/internal/llm"
	"github.com/acadport/papergen/internal/llm/prompts"
	"github.com/acadport/papergen/internal/model"
)

type staffData struct {
	Name        string
	Department  string
	Departments []DeptView
	Papers      []model.Paper
	Output      string
	PaperID     int
	Success     bool
}

func (h *Handler) handleStaffDashboard(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	papers, err := h.store.ListPapersByDepartment(user.Department)
	if err != nil {
		slog.Error("failed to list papers", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, "staff.html", staffData{
		Name:        user.Name,
		Department:  user.Department,
		Departments: departmentViews(),
		Papers:      papers,
	})
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	department := r.FormValue("department")
	course := r.FormValue("course")
	difficulty := r.FormValue("difficulty")

	twoMarks, err := strconv.Atoi(r.FormValue("two_marks"))
	if err != nil {
		http.Error(w, "invalid two_marks count", http.StatusBadRequest)
		return
	}
	fiveMarks, err := strconv.Atoi(r.FormValue("five_marks"))
	if err != nil {
		http.Error(w, "invalid five_marks count", http.StatusBadRequest)
		return
	}
	tenMarks, err := strconv.Atoi(r.FormValue("ten_marks"))
	if err != nil {
		http.Error(w, "invalid ten_marks count", http.StatusBadRequest)
		return
	}

	// Missing courses resolve to an empty syllabus, not an error; the
	// fallback generator then works from the course name instead.
	syllabus := catalog.Syllabus(department, course)

	content := h.generateContent(r, department, course, syllabus, difficulty, twoMarks, fiveMarks, tenMarks)

	paper, err := h.store.CreatePaper(model.Paper{
		Department: department,
		Course:     course,
		Syllabus:   syllabus,
		Difficulty: difficulty,
		Date:       time.Now().Format(model.TimeFormat),
		Content:    content,
		CreatedBy:  user.Name,
		Published:  false,
	})
	if err != nil {
		slog.Error("failed to persist paper", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	papers, err := h.store.ListPapersByDepartment(user.Department)
	if err != nil {
		slog.Error("failed to list papers", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, "staff.html", staffData{
		Name:        user.Name,
		Department:  user.Department,
		Departments: departmentViews(),
		Papers:      papers,
		Output:      content,
		PaperID:     paper.ID,
		Success:     true,
	})
}

// generateContent produces paper text via the external API, falling
// back to the local template generator when no API key is configured
// or the provider throttles the call. Any other API failure surfaces
// its message as the content; the paper is persisted either way.
func (h *Handler) generateContent(r *http.Request, department, course, syllabus, difficulty string, twoMarks, fiveMarks, tenMarks int) string {
	if h.llm == nil {
		return fallback.Paper(course, syllabus, twoMarks, fiveMarks, tenMarks)
	}

	prompt := prompts.Paper(catalog.Name(department), course, syllabus, difficulty, twoMarks, fiveMarks, tenMarks)
	content, err := h.llm.GeneratePaper(r.Context(), prompt)
	if errors.Is(err, llm.ErrRateLimited) {
		slog.Warn("generation API rate limited, using fallback", "course", course)
		return fallback.Paper(course, syllabus, twoMarks, fiveMarks, tenMarks)
	}
	if err != nil {
		slog.Error("generation API failed", "course", course, "error", err)
		return "Error: " + err.Error()
	}
	return content
}

func (h *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "paperID"))
	if err != nil {
		http.Redirect(w, r, "/staff", http.StatusSeeOther)
		return
	}

	// Publishing a paper outside the caller's department is a silent
	// no-op inside the store.
	if err := h.store.PublishPaper(id, user.Department, user.Name); err != nil {
		slog.Error("failed to publish paper", "id", id, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/staff", http.StatusSeeOther)
}

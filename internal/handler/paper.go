package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/acadport/papergen/internal/catalog"
	"github.com/acadport/papergen/internal/model"
	"github.com/acadport/papergen/internal/pdf"
)

type paperData struct {
	Paper          model.Paper
	DepartmentName string
}

// lookupPaper resolves the paper for view/download routes, enforcing
// that students only see published papers. A nil return means a
// redirect was already written.
func (h *Handler) lookupPaper(w http.ResponseWriter, r *http.Request) *model.Paper {
	user := model.UserFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "paperID"))
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}

	paper, err := h.store.GetPaper(id)
	if err != nil {
		slog.Error("failed to get paper", "id", id, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	if paper == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}
	if user.Role == model.UserRoleStudent && !paper.Published {
		http.Redirect(w, r, "/student", http.StatusSeeOther)
		return nil
	}
	return paper
}

func (h *Handler) handleViewPaper(w http.ResponseWriter, r *http.Request) {
	paper := h.lookupPaper(w, r)
	if paper == nil {
		return
	}
	h.render(w, "view_paper.html", paperData{
		Paper:          *paper,
		DepartmentName: catalog.Name(paper.Department),
	})
}

func (h *Handler) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	paper := h.lookupPaper(w, r)
	if paper == nil {
		return
	}

	data, err := pdf.Render(*paper, catalog.Name(paper.Department))
	if err != nil {
		slog.Error("failed to render PDF", "id", paper.ID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%d.pdf", strings.ReplaceAll(paper.Course, " ", "_"), paper.ID)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write PDF response", "error", err)
	}
}

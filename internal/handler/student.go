package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/acadport/papergen/internal/catalog"
	"github.com/acadport/papergen/internal/llm/prompts"
	"github.com/acadport/papergen/internal/model"
	"github.com/acadport/papergen/internal/quiz"
	"github.com/acadport/papergen/internal/quizbank"
)

// quizSize is the number of questions per generated quiz.
const quizSize = 5

type studentData struct {
	Name               string
	Departments        []DeptView
	SelectedDepartment string
	SelectedCourse     string
	Courses            []CourseView
	Papers             []model.Paper
	ActiveQuiz         *model.ActiveQuiz
	QuizResult         *model.QuizResult
}

func (h *Handler) handleStudentDashboard(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())
	token := model.SessionTokenFromContext(r.Context())

	selectedDept := strings.TrimSpace(r.URL.Query().Get("department"))
	if selectedDept == "" {
		selectedDept = catalog.DefaultDepartment(user.Department)
	}

	courses := catalog.Courses(selectedDept)
	selectedCourse := strings.TrimSpace(r.URL.Query().Get("course"))
	if _, ok := courses[selectedCourse]; !ok {
		selectedCourse = ""
	}

	papers, err := h.store.ListPublishedPapers(selectedDept, selectedCourse)
	if err != nil {
		slog.Error("failed to list published papers", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	activeQuiz, err := h.store.GetActiveQuiz(token)
	if err != nil {
		slog.Error("failed to load active quiz", "error", err)
	}
	// Pop-once: the result renders on this request and is gone after.
	quizResult, err := h.store.TakeQuizResult(token)
	if err != nil {
		slog.Error("failed to take quiz result", "error", err)
	}

	var courseViews []CourseView
	for _, d := range departmentViews() {
		if d.Code == selectedDept {
			courseViews = d.Courses
			break
		}
	}

	h.render(w, "student.html", studentData{
		Name:               user.Name,
		Departments:        departmentViews(),
		SelectedDepartment: selectedDept,
		SelectedCourse:     selectedCourse,
		Courses:            courseViews,
		Papers:             papers,
		ActiveQuiz:         activeQuiz,
		QuizResult:         quizResult,
	})
}

func (h *Handler) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	token := model.SessionTokenFromContext(r.Context())

	department := strings.TrimSpace(r.FormValue("department"))
	course := strings.TrimSpace(r.FormValue("course"))

	if !catalog.Exists(department) {
		http.Redirect(w, r, "/student", http.StatusSeeOther)
		return
	}
	if !catalog.HasCourse(department, course) {
		http.Redirect(w, r, "/student?department="+url.QueryEscape(department), http.StatusSeeOther)
		return
	}

	questions := h.quizQuestions(r, department, course, quizSize)

	if err := h.store.SetActiveQuiz(token, model.ActiveQuiz{
		Department: department,
		Course:     course,
		Questions:  questions,
	}); err != nil {
		slog.Error("failed to store active quiz", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, studentURL(department, course), http.StatusSeeOther)
}

// quizQuestions generates MCQs via the external API when configured,
// falling back to the static quiz bank on any failure or when the
// response yields no valid items. A department/course pair missing
// from the bank produces an empty, unscoreable quiz.
func (h *Handler) quizQuestions(r *http.Request, department, course string, count int) []model.QuizQuestion {
	if h.llm != nil {
		seed := time.Now().Format("2006-01-02 15:04:05")
		prompt := prompts.Quiz(catalog.Name(department), course, catalog.Syllabus(department, course), count, seed)
		questions, err := h.llm.GenerateQuiz(r.Context(), prompt)
		if err == nil {
			if len(questions) > count {
				questions = questions[:count]
			}
			return questions
		}
		slog.Warn("quiz generation failed, using bank", "department", department, "course", course, "error", err)
	}
	return quizbank.Sample(department, course, count)
}

func (h *Handler) handleQuizSubmit(w http.ResponseWriter, r *http.Request) {
	token := model.SessionTokenFromContext(r.Context())

	active, err := h.store.GetActiveQuiz(token)
	if err != nil {
		slog.Error("failed to load active quiz", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if active == nil {
		http.Redirect(w, r, "/student", http.StatusSeeOther)
		return
	}

	selected := make([]string, len(active.Questions))
	for i := range active.Questions {
		selected[i] = r.FormValue(fmt.Sprintf("q_%d", i))
	}

	result := quiz.Score(*active, selected)

	// Storing the result also consumes the active quiz.
	if err := h.store.SetQuizResult(token, result); err != nil {
		slog.Error("failed to store quiz result", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, studentURL(active.Department, active.Course), http.StatusSeeOther)
}

func studentURL(department, course string) string {
	return "/student?department=" + url.QueryEscape(department) + "&course=" + url.QueryEscape(course)
}

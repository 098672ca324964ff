// Package quiz scores submitted quiz attempts.
package quiz

import "github.com/acadport/papergen/internal/model"

// NotAnswered is recorded as the selection for questions the student
// left blank.
const NotAnswered = "Not Answered"

// Score grades a quiz attempt. selected is indexed by question
// position; a missing or empty entry counts as unanswered. Answers
// compare by exact string equality.
func Score(active model.ActiveQuiz, selected []string) model.QuizResult {
	result := model.QuizResult{
		Total:      len(active.Questions),
		Details:    make([]model.QuizDetail, 0, len(active.Questions)),
		Department: active.Department,
		Course:     active.Course,
	}

	for i, q := range active.Questions {
		var answer string
		if i < len(selected) {
			answer = selected[i]
		}
		isCorrect := answer == q.Answer
		if isCorrect {
			result.Score++
		}
		shown := answer
		if shown == "" {
			shown = NotAnswered
		}
		result.Details = append(result.Details, model.QuizDetail{
			Question:  q.Question,
			Selected:  shown,
			Correct:   q.Answer,
			IsCorrect: isCorrect,
		})
	}

	return result
}

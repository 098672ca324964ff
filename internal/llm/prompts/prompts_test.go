package prompts

import (
	"strings"
	"testing"
)

func TestPaper(t *testing.T) {
	prompt := Paper("Information Technology", "Web Development", "HTML, CSS", "Medium", 5, 3, 2)

	for _, want := range []string{
		"Department: Information Technology",
		"Course: Web Development",
		"Syllabus Topics: HTML, CSS",
		"Difficulty Level: Medium",
		"- 5 questions of 2 marks each",
		"- 3 questions of 5 marks each",
		"- 2 questions of 10 marks each",
		"sections A, B, and C",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestQuiz(t *testing.T) {
	prompt := Quiz("Computer Science", "Operating Systems", "Processes, Threads", 5, "2026-09-01 10:00:00")

	for _, want := range []string{
		"Generate 5 multiple-choice quiz questions.",
		"Department: Computer Science",
		"Course: Operating Systems",
		"Syllabus Topics: Processes, Threads",
		"Unique Seed: 2026-09-01 10:00:00",
		"ONLY valid JSON array",
		"exactly these keys: question, options, answer",
		"exactly 4 distinct strings",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

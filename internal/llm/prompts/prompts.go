// Package prompts builds the natural-language prompts sent to the
// generation API.
package prompts

import (
	"fmt"
	"strings"
)

// Paper builds the question-paper generation prompt. The counts are
// questions per mark weight; the response is expected as free text
// with sections A, B, and C.
func Paper(departmentName, course, syllabus, difficulty string, twoMarks, fiveMarks, tenMarks int) string {
	var sb strings.Builder
	sb.WriteString("Generate a question paper for the following:\n")
	sb.WriteString("Department: " + departmentName + "\n")
	sb.WriteString("Course: " + course + "\n")
	sb.WriteString("Syllabus Topics: " + syllabus + "\n")
	sb.WriteString("Difficulty Level: " + difficulty + "\n\n")
	sb.WriteString("Create:\n")
	fmt.Fprintf(&sb, "- %d questions of 2 marks each\n", twoMarks)
	fmt.Fprintf(&sb, "- %d questions of 5 marks each\n", fiveMarks)
	fmt.Fprintf(&sb, "- %d questions of 10 marks each\n\n", tenMarks)
	sb.WriteString("Format the response clearly with sections A, B, and C.")
	return sb.String()
}

// Quiz builds the strict-JSON multiple-choice prompt. The seed is a
// freshness marker (current timestamp) to discourage cached answers.
func Quiz(departmentName, course, syllabus string, count int, seed string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate %d multiple-choice quiz questions.\n", count)
	sb.WriteString("Department: " + departmentName + "\n")
	sb.WriteString("Course: " + course + "\n")
	sb.WriteString("Syllabus Topics: " + syllabus + "\n")
	sb.WriteString("Unique Seed: " + seed + "\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("1. Return ONLY valid JSON array.\n")
	sb.WriteString("2. Each item must have exactly these keys: question, options, answer.\n")
	sb.WriteString("3. options must have exactly 4 distinct strings.\n")
	sb.WriteString("4. answer must exactly match one of the options.\n")
	sb.WriteString("5. Keep questions clear and suitable for undergraduate students.\n\n")
	sb.WriteString("Output format example:\n")
	sb.WriteString("[\n")
	sb.WriteString(`  {"question": "...", "options": ["A", "B", "C", "D"], "answer": "B"}`)
	sb.WriteString("\n]")
	return sb.String()
}

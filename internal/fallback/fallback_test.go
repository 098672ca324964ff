package fallback

import (
	"regexp"
	"strings"
	"testing"
)

var questionLine = regexp.MustCompile(`(?m)^\d+\. \S`)

// sectionOf returns the slice of the paper between the given section
// header and the next one (or the end).
func sectionOf(t *testing.T, paper, label string) string {
	t.Helper()
	start := strings.Index(paper, "SECTION "+label)
	if start == -1 {
		t.Fatalf("paper missing SECTION %s:\n%s", label, paper)
	}
	rest := paper[start+len("SECTION "+label):]
	if next := strings.Index(rest, "SECTION "); next != -1 {
		rest = rest[:next]
	}
	return rest
}

func TestPaperSectionCounts(t *testing.T) {
	tests := []struct {
		name           string
		two, five, ten int
	}{
		{"typical", 5, 3, 2},
		{"only two marks", 3, 0, 0},
		{"empty paper", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paper := Paper("Web Development", "HTML, CSS, JavaScript", tt.two, tt.five, tt.ten)

			wants := []struct {
				label string
				count int
			}{
				{"A", tt.two},
				{"B", tt.five},
				{"C", tt.ten},
			}
			for _, w := range wants {
				section := sectionOf(t, paper, w.label)
				got := len(questionLine.FindAllString(section, -1))
				if got != w.count {
					t.Errorf("SECTION %s: expected %d questions, got %d:\n%s", w.label, w.count, got, section)
				}
			}
		})
	}
}

func TestPaperHeadersAndLayout(t *testing.T) {
	paper := Paper("Operating Systems", "Process Management, Memory Management", 2, 1, 1)

	if !strings.HasPrefix(paper, "Question Paper - Operating Systems\n") {
		t.Errorf("unexpected title line:\n%s", paper)
	}
	if !strings.Contains(paper, "Generated on: ") {
		t.Error("paper missing generation timestamp")
	}
	for _, header := range []string{
		"SECTION A - 2 Mark Questions (2 questions)",
		"SECTION B - 5 Mark Questions (1 questions)",
		"SECTION C - 10 Mark Questions (1 questions)",
	} {
		if !strings.Contains(paper, header) {
			t.Errorf("paper missing header %q", header)
		}
	}
	if !strings.Contains(paper, divider) {
		t.Error("paper missing section dividers")
	}
	if strings.Contains(paper, "{topic") || strings.Contains(paper, "{context}") {
		t.Errorf("unfilled template placeholder in paper:\n%s", paper)
	}
}

func TestPaperQuestionsUseSyllabusTopics(t *testing.T) {
	topics := []string{"Alpha", "Beta", "Gamma"}
	paper := Paper("Some Course", "Alpha, Beta, Gamma", 10, 10, 10)

	// Every question must mention at least one topic or the course name
	// (the {context} placeholder).
	for _, q := range strings.Split(paper, "\n") {
		if !questionLine.MatchString(q) {
			continue
		}
		found := strings.Contains(q, "Some Course")
		for _, topic := range topics {
			if strings.Contains(q, topic) {
				found = true
			}
		}
		if !found {
			t.Errorf("question mentions no syllabus topic: %q", q)
		}
	}
}

func TestTopics(t *testing.T) {
	tests := []struct {
		name     string
		course   string
		syllabus string
		want     []string
	}{
		{"comma separated", "C", "A, B, C", []string{"A", "B", "C"}},
		{"extra whitespace", "C", "  A ,B,  C  ", []string{"A", "B", "C"}},
		{"empty entries dropped", "C", "A,,B,", []string{"A", "B"}},
		{"empty syllabus falls back to course words", "Machine Learning", "", []string{"Machine", "Learning"}},
		{"commas only falls back to course words", "Big Data", ",,,", []string{"Big", "Data"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Topics(tt.course, tt.syllabus)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("topic %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestFillTemplateSingleTopic(t *testing.T) {
	// A single-topic pool must not panic on comparison templates.
	for i := 0; i < 50; i++ {
		q := fillTemplate("2mark", "Course", []string{"Only"})
		if strings.Contains(q, "{") {
			t.Fatalf("unfilled placeholder: %q", q)
		}
	}
}

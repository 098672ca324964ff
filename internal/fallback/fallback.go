// Package fallback generates question papers locally when the
// external generation API is unavailable or rate limited. It fills
// fixed per-section templates from the course's syllabus topic pool.
package fallback

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/acadport/papergen/internal/model"
)

var sectionTemplates = map[string][]string{
	"2mark": {
		"Define and explain the concept of {topic}.",
		"What is {topic}? List its key characteristics.",
		"Describe the importance of {topic} in {context}.",
		"Explain the difference between {topic} and related concepts.",
		"What are the main advantages of {topic}?",
		"Write short notes on {topic}.",
		"Differentiate between {topic_a} and {topic_b}.",
		"What do you understand by {topic}?",
	},
	"5mark": {
		"Explain {topic} in detail with relevant examples.",
		"Discuss the principles and applications of {topic}.",
		"How is {topic} implemented in modern systems? Explain.",
		"Analyze the advantages and disadvantages of {topic}.",
		"Describe the process of {topic} with a flowchart.",
		"Compare and contrast {topic_a} and {topic_b}.",
		"What are the practical applications of {topic}? Discuss.",
		"Explain the architecture/structure of {topic}.",
	},
	"10mark": {
		"Write a comprehensive essay on {topic}. Include examples and diagrams where applicable.",
		"Analyze and discuss the significance of {topic} in detail.",
		"Compare {topic_a} and {topic_b} with their advantages, disadvantages, and real-world applications.",
		"Describe the complete process/lifecycle of {topic} with detailed explanation.",
		"Discuss the challenges and solutions related to {topic}.",
		"Evaluate the impact of {topic} on modern technology.",
		"Explain the theoretical foundations and practical implementations of {topic}.",
		"Create a detailed analysis of {topic} including case studies and examples.",
	},
}

var divider = strings.Repeat("=", 60)

// Paper produces a sectioned question paper from the syllabus topic
// pool. Topics come from splitting the syllabus on commas; if that
// yields nothing, the words of the course name serve as topics.
func Paper(course, syllabus string, twoMarks, fiveMarks, tenMarks int) string {
	topics := Topics(course, syllabus)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Question Paper - %s\n", course)
	fmt.Fprintf(&sb, "Generated on: %s\n\n", time.Now().Format(model.TimeFormat))
	sb.WriteString(divider + "\n")

	writeSection(&sb, "A", "2 Mark", "2mark", twoMarks, course, topics, false)
	writeSection(&sb, "B", "5 Mark", "5mark", fiveMarks, course, topics, true)
	writeSection(&sb, "C", "10 Mark", "10mark", tenMarks, course, topics, true)

	return sb.String()
}

// Topics splits the syllabus on commas, trimming entries and dropping
// empties. An empty pool falls back to the course name's words.
func Topics(course, syllabus string) []string {
	var topics []string
	for _, t := range strings.Split(syllabus, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			topics = append(topics, t)
		}
	}
	if len(topics) == 0 {
		topics = strings.Fields(course)
	}
	return topics
}

func writeSection(sb *strings.Builder, label, markLabel, key string, count int, course string, topics []string, leadingBlank bool) {
	if leadingBlank {
		sb.WriteString("\n" + divider + "\n")
	}
	fmt.Fprintf(sb, "SECTION %s - %s Questions (%d questions)\n", label, markLabel, count)
	sb.WriteString(divider + "\n\n")
	for i := 1; i <= count; i++ {
		fmt.Fprintf(sb, "%d. %s\n\n", i, fillTemplate(key, course, topics))
	}
}

// fillTemplate picks a random template for the section and fills its
// placeholders from the topic pool. With fewer than two topics the
// comparison placeholders both get the same topic, which can make
// comparison questions degenerate.
func fillTemplate(key, course string, topics []string) string {
	templates := sectionTemplates[key]
	tmpl := templates[rand.Intn(len(templates))]
	topic := topics[rand.Intn(len(topics))]

	topicA, topicB := topic, topic
	if len(topics) >= 2 {
		i := rand.Intn(len(topics))
		j := rand.Intn(len(topics) - 1)
		if j >= i {
			j++
		}
		topicA, topicB = topics[i], topics[j]
	}

	return strings.NewReplacer(
		"{topic}", topic,
		"{context}", course,
		"{topic_a}", topicA,
		"{topic_b}", topicB,
	).Replace(tmpl)
}

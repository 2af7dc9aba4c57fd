package questions

import (
	"fmt"
	"strings"
)

// Difficulty of a single interview question.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Shape is the fixed difficulty sequence of every interview. Only the
// question content is tailored to the candidate, never the shape.
var Shape = [4]Difficulty{Easy, Easy, Medium, Hard}

// Question is one generated interview question.
type Question struct {
	Number     int        `json:"number"`
	Difficulty Difficulty `json:"difficulty"`
	Technology string     `json:"technology"`
	Text       string     `json:"question"`
}

// parseQuestions parses the labeled response format:
//
//	DIFFICULTY: Easy
//	QUESTION: ...
//
// It requires exactly len(Shape) questions whose difficulties match
// the fixed shape; anything else is treated as a malformed response.
func parseQuestions(response string, techStack []string) ([]Question, error) {
	var parsed []Question
	var current *Question

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "DIFFICULTY:"):
			if current != nil {
				parsed = append(parsed, *current)
			}
			difficulty, err := parseDifficulty(strings.TrimSpace(strings.TrimPrefix(line, "DIFFICULTY:")))
			if err != nil {
				return nil, err
			}
			current = &Question{Difficulty: difficulty}
		case strings.HasPrefix(line, "QUESTION:"):
			if current == nil {
				return nil, fmt.Errorf("QUESTION line without preceding DIFFICULTY")
			}
			current.Text = strings.TrimSpace(strings.TrimPrefix(line, "QUESTION:"))
		}
	}
	if current != nil {
		parsed = append(parsed, *current)
	}

	if len(parsed) != len(Shape) {
		return nil, fmt.Errorf("expected %d questions, parsed %d", len(Shape), len(parsed))
	}

	for i := range parsed {
		if parsed[i].Text == "" {
			return nil, fmt.Errorf("question %d has no text", i+1)
		}
		if parsed[i].Difficulty != Shape[i] {
			return nil, fmt.Errorf("question %d has difficulty %s, shape requires %s",
				i+1, parsed[i].Difficulty, Shape[i])
		}
		parsed[i].Number = i + 1
		parsed[i].Technology = targetTechnology(parsed[i].Text, techStack, i)
	}

	return parsed, nil
}

func parseDifficulty(raw string) (Difficulty, error) {
	raw = strings.Trim(raw, "[] ")
	switch strings.ToLower(raw) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", raw)
}

// targetTechnology picks the stack entry a question targets: the
// first one mentioned in its text, or position-based otherwise.
func targetTechnology(text string, techStack []string, position int) string {
	if len(techStack) == 0 {
		return "programming"
	}

	lower := strings.ToLower(text)
	for _, tech := range techStack {
		if strings.Contains(lower, strings.ToLower(tech)) {
			return tech
		}
	}

	return techStack[position%len(techStack)]
}

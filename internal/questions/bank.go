package questions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Bank holds generic question templates per difficulty, used when the
// language capability cannot deliver a usable set. Each template takes
// one technology name.
type Bank struct {
	Easy   []string `yaml:"easy"`
	Medium []string `yaml:"medium"`
	Hard   []string `yaml:"hard"`
}

// DefaultBank returns the compiled-in templates.
func DefaultBank() *Bank {
	return &Bank{
		Easy: []string{
			"Explain the basic concepts and principles of %s. What are its main features and use cases?",
			"What are the key differences between %s and similar technologies, and when would you choose it over the alternatives?",
		},
		Medium: []string{
			"Describe a real-world scenario where you would use %s. How would you implement it and what challenges might you face?",
		},
		Hard: []string{
			"Explain how you would optimize a %s application for performance and scalability. What best practices would you follow?",
		},
	}
}

// LoadBank reads a template bank from a YAML file.
func LoadBank(filename string) (*Bank, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filename, err)
	}

	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("error parsing YAML: %w", err)
	}

	if len(bank.Easy) == 0 || len(bank.Medium) == 0 || len(bank.Hard) == 0 {
		return nil, fmt.Errorf("bank must contain at least one template per difficulty")
	}

	return &bank, nil
}

// Build produces a deterministic question set from the declared tech
// stack: one question per technology, capped and padded to the fixed
// shape by cycling through the stack.
func (b *Bank) Build(techStack []string) []Question {
	techs := make([]string, len(Shape))
	for i := range techs {
		if len(techStack) == 0 {
			techs[i] = "programming"
			continue
		}
		techs[i] = techStack[i%len(techStack)]
	}

	set := make([]Question, len(Shape))
	for i, difficulty := range Shape {
		var template string
		switch difficulty {
		case Medium:
			template = b.Medium[i%len(b.Medium)]
		case Hard:
			template = b.Hard[i%len(b.Hard)]
		default:
			template = b.Easy[i%len(b.Easy)]
		}

		set[i] = Question{
			Number:     i + 1,
			Difficulty: difficulty,
			Technology: techs[i],
			Text:       fmt.Sprintf(template, techs[i]),
		}
	}

	return set
}

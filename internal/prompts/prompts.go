package prompts

import (
	"fmt"
	"strings"
)

// BuildQuestionPrompt creates the prompt for generating the four
// technical questions from the candidate's declared stack.
func BuildQuestionPrompt(techStack []string, experienceYears int, language string) string {
	var prompt strings.Builder

	prompt.WriteString("You are an experienced technical interviewer. Generate exactly 4 technical questions for a candidate with the following profile:\n\n")
	prompt.WriteString(fmt.Sprintf("Tech Stack: %s\n", strings.Join(techStack, ", ")))
	prompt.WriteString(fmt.Sprintf("Experience Level: %d years\n\n", experienceYears))

	prompt.WriteString("Requirements:\n")
	prompt.WriteString("- 2 Easy questions (fundamental concepts)\n")
	prompt.WriteString("- 1 Medium question (practical application)\n")
	prompt.WriteString("- 1 Hard question (advanced concepts or problem-solving)\n\n")

	prompt.WriteString("Format each question as:\n")
	prompt.WriteString("DIFFICULTY: [Easy/Medium/Hard]\n")
	prompt.WriteString("QUESTION: [The actual question]\n\n")

	prompt.WriteString("Make questions specific to their tech stack and appropriate for their experience level.\n")
	prompt.WriteString("Focus on practical knowledge and real-world scenarios.\n")
	prompt.WriteString(fmt.Sprintf("Write the questions in %s.\n", language))
	prompt.WriteString("Output ONLY the 4 labeled questions, nothing else.")

	return prompt.String()
}

// BuildEvaluationPrompt creates the prompt for classifying a
// candidate's answer. The response contract is one classification
// token on the first line followed by short feedback; the evaluator
// rejects anything else.
func BuildEvaluationPrompt(question, answer string, experienceYears int, language string) string {
	var prompt strings.Builder

	prompt.WriteString("You are a technical interviewer evaluating a candidate's answer.\n\n")
	prompt.WriteString(fmt.Sprintf("Question: %s\n", question))
	prompt.WriteString(fmt.Sprintf("Answer: %s\n", answer))
	prompt.WriteString(fmt.Sprintf("Candidate's Experience: %d years\n\n", experienceYears))

	prompt.WriteString("Evaluate if this answer demonstrates:\n")
	prompt.WriteString("1. Basic understanding of the concept\n")
	prompt.WriteString("2. Relevant technical knowledge\n")
	prompt.WriteString("3. Clear communication\n\n")

	prompt.WriteString("Classify the answer with exactly one of:\n")
	prompt.WriteString("- ADEQUATE if the answer is technically correct, complete and well explained\n")
	prompt.WriteString("- NEEDS_CLARIFICATION if the answer is partially correct, vague or incomplete\n")
	prompt.WriteString("- IRRELEVANT if the answer is off-topic or incorrect\n\n")

	prompt.WriteString("Respond with the classification token alone on the first line,\n")
	prompt.WriteString(fmt.Sprintf("then a brief explanation for the candidate in 1-2 sentences, written in %s.", language))

	return prompt.String()
}

package interview

import (
	"fmt"
	"strings"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/questions"
)

const consentPrompt = `👋 Welcome to TalentScout's AI Hiring Assistant!

Before we begin, please note that:
• All your data is stored locally and securely
• Your information is only used for recruitment purposes
• You can end the interview at any time by typing 'end', 'quit' or 'stop'

Do you consent to the collection and processing of your data for recruitment purposes? (yes/no)`

const consentRePrompt = `Please answer 'yes' to consent and continue, or 'no' to decline.`

const declineFarewell = `We respect your decision. Thank you for your time!`

const endedFarewell = `👋 Thank you for your time! The interview has been ended at your request.
Your responses have been saved and someone from our team will contact you regarding the next steps.`

const completedFarewell = `🎉 Interview completed successfully — thank you!

Here's what happens next:
• Your responses have been recorded and saved securely
• Our technical team will review your answers
• Someone from our team will contact you within 3-5 business days`

func formWelcome() string {
	return "Thank you for your consent! Let's start by collecting some basic information about you."
}

func interviewWelcome(profile CandidateProfile, total int) string {
	return fmt.Sprintf("Hello %s! Thank you for providing your information. I've prepared %d technical questions based on your tech stack: %s. Let's begin the technical interview!",
		profile.FullName, total, strings.Join(profile.TechStack, ", "))
}

func formatQuestion(q questions.Question, total int) string {
	return fmt.Sprintf("❓ Question %d/%d [%s]\n%s", q.Number, total, q.Difficulty, q.Text)
}

func formatRetry(q questions.Question, total int) string {
	return fmt.Sprintf("Let's give question %d/%d another try:\n%s", q.Number, total, q.Text)
}

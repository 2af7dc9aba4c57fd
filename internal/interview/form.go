package interview

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The form stage collects the candidate profile one field per turn,
// in fixed order. Invalid input re-prompts the same field and does
// not consume interview attempts.

type formField int

const (
	fieldFullName formField = iota
	fieldEmail
	fieldPhone
	fieldExperience
	fieldPosition
	fieldLocation
	fieldTechStack
	fieldLanguage
	fieldCount
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validPhone applies the basic shape check: 10 to 15 digits after
// stripping separators, optional leading plus.
func validPhone(phone string) bool {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n := digits.Len()
	return n >= 10 && n <= 15
}

// parseExperience accepts a plain number, a range like "3-5" (lower
// bound wins) or an open form like "12+".
func parseExperience(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if idx := strings.IndexByte(raw, '-'); idx > 0 {
		raw = raw[:idx]
	}
	raw = strings.TrimSuffix(raw, "+")
	raw = strings.TrimSpace(raw)

	years, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("could not read %q as years of experience", raw)
	}
	if years < 0 {
		return 0, fmt.Errorf("years of experience must not be negative")
	}
	return years, nil
}

// parseTechStack splits a comma separated list into an ordered,
// non-empty set of technology names.
func parseTechStack(raw string) []string {
	var stack []string
	seen := make(map[string]struct{})

	for _, part := range strings.Split(raw, ",") {
		tech := strings.TrimSpace(part)
		if tech == "" {
			continue
		}
		key := strings.ToLower(tech)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		stack = append(stack, tech)
	}

	return stack
}

func (e *Engine) fieldPrompt(field formField) string {
	switch field {
	case fieldFullName:
		return "What is your full name?"
	case fieldEmail:
		return "What is your email address?"
	case fieldPhone:
		return "What is your phone number? (e.g. +1234567890)"
	case fieldExperience:
		return "How many years of professional experience do you have? (e.g. 3, 3-5 or 12+)"
	case fieldPosition:
		return "What position are you applying for?"
	case fieldLocation:
		return "Where are you currently located? (City, Country)"
	case fieldTechStack:
		return "List your tech stack, comma separated (e.g. Python, React, AWS, PostgreSQL)."
	case fieldLanguage:
		return fmt.Sprintf("Which language would you like the interview in? Options: %s.",
			strings.Join(e.cfg.Languages, ", "))
	}
	return ""
}

// applyField validates one field's input and stores it on the profile
// under construction. Returns a candidate-facing error message when
// the input fails its shape check.
func (e *Engine) applyField(profile *CandidateProfile, field formField, text string) string {
	switch field {
	case fieldFullName:
		if text == "" {
			return "Full name is required."
		}
		profile.FullName = text
	case fieldEmail:
		if !validEmail(text) {
			return "That doesn't look like a valid email address."
		}
		profile.Email = text
	case fieldPhone:
		if !validPhone(text) {
			return "That doesn't look like a valid phone number."
		}
		profile.Phone = text
	case fieldExperience:
		years, err := parseExperience(text)
		if err != nil {
			return "Please enter your experience as a number of years, e.g. 3, 3-5 or 12+."
		}
		profile.ExperienceYears = years
	case fieldPosition:
		if text == "" {
			return "Desired position is required."
		}
		profile.Position = text
	case fieldLocation:
		if text == "" {
			return "Current location is required."
		}
		profile.Location = text
	case fieldTechStack:
		stack := parseTechStack(text)
		if len(stack) == 0 {
			return "Please list at least one technology."
		}
		profile.TechStack = stack
	case fieldLanguage:
		lang := e.matchLanguage(text)
		if lang == "" {
			return fmt.Sprintf("Please pick one of: %s.", strings.Join(e.cfg.Languages, ", "))
		}
		profile.Language = lang
	}
	return ""
}

// matchLanguage resolves user input to a configured language,
// case-insensitively. Returns "" when nothing matches.
func (e *Engine) matchLanguage(text string) string {
	for _, lang := range e.cfg.Languages {
		if strings.EqualFold(lang, text) {
			return lang
		}
	}
	return ""
}

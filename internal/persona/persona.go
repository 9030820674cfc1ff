// Package persona infers the conversational context of an excuse request:
// who the excuse is addressed to and what register it should be written in.
package persona

import "strings"

// Tone is the stylistic register of the generated text.
type Tone string

const (
	ToneSincere     Tone = "sincere"
	ToneFormal      Tone = "formal"
	ToneLightHumour Tone = "light-humour"
)

// ParseTone validates a client-supplied tone value, case-insensitively.
func ParseTone(s string) (Tone, bool) {
	switch Tone(strings.ToLower(s)) {
	case ToneSincere, ToneFormal, ToneLightHumour:
		return Tone(strings.ToLower(s)), true
	}
	return "", false
}

// Audience labels for the inferred recipient of the excuse.
const (
	AudienceBoss      = "Boss / Manager"
	AudienceClient    = "Client"
	AudienceColleague = "Colleague"
	AudienceTeacher   = "Teacher / Tutor"
	AudiencePartner   = "Partner"
	AudienceFriend    = "Friend"
	AudienceFamily    = "Parent / Family"
	AudienceGeneral   = "General"
)

// Keyword sets tested against the lower-cased scenario text. Matching is raw
// substring containment, not tokenized, so "classy" matches "class"; this is
// intentional and matches the service's documented behavior.
var (
	workWords = []string{
		"work", "office", "shift", "deadline", "manager", "boss", "colleague",
		"meeting", "standup", "presentation", "interview", "client", "project",
		"deck", "call", "zoom", "teams", "slack",
	}
	colleagueWords = []string{"colleague", "coworker", "teammate"}
	schoolWords    = []string{
		"school", "class", "lecture", "seminar", "professor", "teacher",
		"tutor", "assignment", "exam", "mock", "campus",
	}
	partnerWords = []string{
		"partner", "girlfriend", "boyfriend", "fiancé", "fiance", "husband",
		"wife", "date", "anniversary", "relationship",
	}
	friendWords = []string{"friend", "mate", "hangout", "drink", "party", "birthday", "pub"}
	familyWords = []string{
		"mum", "dad", "mother", "father", "parents", "sister", "brother",
		"family", "cousin", "aunt", "uncle",
	}
	seriousWords = []string{
		"upset", "hurt", "argument", "sorry", "apologise", "apologize",
		"forgot", "missed", "trust", "let down",
	}
	minorDelayWords = []string{
		"late", "delay", "running", "traffic", "train", "bus", "tube",
		"metrolink", "tram", "signal", "wifi", "internet", "connection", "battery",
	}
)

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Classify maps free-text scenario to an (audience, tone) pair. Categories
// are tested in a fixed priority order and the first match wins; there is no
// scoring. The function is pure and deterministic.
func Classify(scenario string) (string, Tone) {
	t := strings.ToLower(scenario)

	switch {
	case containsAny(t, workWords):
		// distinguish client vs internal
		switch {
		case strings.Contains(t, "client"):
			return AudienceClient, ToneFormal
		case containsAny(t, colleagueWords):
			return AudienceColleague, ToneFormal
		default:
			return AudienceBoss, ToneFormal
		}
	case containsAny(t, schoolWords):
		return AudienceTeacher, ToneFormal
	case containsAny(t, partnerWords):
		// serious vs minor
		if containsAny(t, seriousWords) {
			return AudiencePartner, ToneSincere
		}
		if containsAny(t, minorDelayWords) {
			return AudiencePartner, ToneLightHumour
		}
		return AudiencePartner, ToneSincere
	case containsAny(t, friendWords):
		return AudienceFriend, ToneLightHumour
	case containsAny(t, familyWords):
		return AudienceFamily, ToneSincere
	}

	return AudienceGeneral, ToneSincere
}

// AgeStyleHint maps an age in years to a phrasing directive for the prompt.
// Ages below 18, including out-of-range negatives, fall into the first band.
func AgeStyleHint(age int) string {
	switch {
	case age < 18:
		return "Keep phrasing simple and clear (under 18)."
	case age < 30:
		return "Modern, natural phrasing; avoid heavy slang."
	case age < 45:
		return "Neutral professional phrasing."
	default:
		return "Slightly more formal, straightforward phrasing (age 45+)."
	}
}

// Package prompt assembles the system and user instructions sent to the
// generation model.
package prompt

import (
	"fmt"
	"strings"

	"github.com/excuselab/excuse-engine/apimodels"
	"github.com/excuselab/excuse-engine/internal/persona"
)

// SystemPrompt is the fixed style and safety instruction, invariant across
// requests.
const SystemPrompt = "You write short, natural excuses in UK English, tailored to the user's persona.\n" +
	"Rules:\n" +
	"• 1–2 sentences, ≤ 45 words total.\n" +
	"• No medical/legal claims, impersonation, harassment, or blaming specific people.\n" +
	"• Avoid clichés like ‘personal reasons’/‘urgent matter’.\n" +
	"• Prefer mundane, verifiable causes (prior commitment, transit/app/device hiccup).\n" +
	"• Match formality to inferred audience (boss/client/teacher → formal; friends/partner → context-appropriate); use contractions.\n" +
	"• Be age-appropriate (avoid teen slang for 30+; keep it simple for under 18) and gender-appropriate; no emojis; no follow-up/reschedule lines."

// ResolveAudience prefers the client-supplied audience over the inferred one.
func ResolveAudience(requested, inferred string) string {
	if requested != "" {
		return requested
	}
	return inferred
}

// ResolveTone prefers a valid client-supplied tone over the inferred one.
// Invalid values are silently discarded.
func ResolveTone(requested string, inferred persona.Tone) persona.Tone {
	if requested == "" {
		return inferred
	}
	if tone, ok := persona.ParseTone(requested); ok {
		return tone
	}
	return inferred
}

// Build produces the user instruction for a request: the strict-JSON output
// contract, the persona fragment string and the raw scenario text.
func Build(req apimodels.GenerateRequest, inferredAudience string, inferredTone persona.Tone, styleHint string) string {
	audience := ResolveAudience(req.Audience, inferredAudience)
	tone := ResolveTone(req.Tone, inferredTone)

	// Present fields only, in fixed order. Age is always present.
	bits := make([]string, 0, 10)
	if req.Location != "" {
		bits = append(bits, "Location: "+req.Location)
	}
	if req.Role != "" {
		bits = append(bits, "Role: "+req.Role)
	}
	if req.Gender != "" {
		bits = append(bits, "Gender: "+req.Gender)
	}
	bits = append(bits, fmt.Sprintf("Age: %d", req.Age))
	if req.Commute != "" {
		bits = append(bits, "Commute: "+req.Commute)
	}
	if req.Platform != "" {
		bits = append(bits, "Platform: "+req.Platform)
	}
	if audience != "" {
		bits = append(bits, "Audience: "+audience)
	}
	bits = append(bits, "Tone: "+string(tone))
	if req.Slang {
		bits = append(bits, "Style: light slang allowed")
	}
	bits = append(bits, styleHint)

	return "Return STRICT JSON:\n" +
		`{ "options": [ { "text": string } ] }` + "\n" +
		"Make it read like the user would speak; subtly weave in relevant persona details " +
		"(place, app, commute) only if they help. Do not add a follow-up line.\n" +
		fmt.Sprintf("Persona: %q\n", strings.Join(bits, " | ")) +
		"Scenario: " + req.Scenario
}

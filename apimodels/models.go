package apimodels

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	// Name of the person the excuse is written for
	Name string `json:"name"`

	// Age in years; drives the phrasing style hint
	Age int `json:"age"`

	// Scenario is the free-text description of what happened
	Scenario string `json:"scenario"`

	// Tone overrides the inferred tone when set to one of
	// "sincere", "formal" or "light-humour" (case-insensitive).
	// Any other value is ignored.
	Tone string `json:"tone,omitempty"`

	// Audience overrides the inferred recipient category (e.g. "Partner")
	Audience string `json:"audience,omitempty"`

	// Optional persona fields woven into the prompt when present
	Gender   string `json:"gender,omitempty"`
	Location string `json:"location,omitempty"`
	Role     string `json:"role,omitempty"`
	Commute  string `json:"commute,omitempty"`
	Platform string `json:"platform,omitempty"`

	// Slang allows light slang in the generated text
	Slang bool `json:"slang,omitempty"`

	// Constraints is accepted for forward compatibility and not used
	Constraints map[string]interface{} `json:"constraints,omitempty"`

	// Variants is the number of excuse options to generate (1-5).
	// Zero means 1.
	Variants int `json:"variants,omitempty"`
}

// ExcuseOption is a single generated excuse candidate.
type ExcuseOption struct {
	Text string `json:"text"`
}

// GenerateResponse is the body of a successful POST /generate.
type GenerateResponse struct {
	// Options holds between 1 and the requested number of excuses,
	// in the order the model produced them
	Options []ExcuseOption `json:"options"`

	// Metadata about the generation
	Metadata GenerateMetadata `json:"metadata"`
}

type GenerateMetadata struct {
	// Time taken for generation
	Duration string `json:"duration"`

	// Model used for generation
	Model string `json:"model"`

	// Tokens used in generation
	TokensUsed int64 `json:"tokensUsed"`
}

// ErrorResponse is the body of any non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Package sanitize turns possibly-malformed model output into the response
// contract: a bounded, policy-filtered list of excuse options.
package sanitize

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/excuselab/excuse-engine/apimodels"
)

// FallbackText is returned as the single option when every candidate is
// rejected by the content filter.
const FallbackText = "Running a few minutes behind after a connection hiccup—back online shortly."

// maxWords is the hard cap on a single excuse; longer candidates are dropped.
const maxWords = 50

// banned are substrings that disqualify a candidate, matched
// case-insensitively against the whole text.
var banned = []string{
	"doctor note", "prescription", "fake note", "police", "court", "lawsuit",
	"insurance fraud", "bank fraud", "illegal", "cheat exam", "fake sick",
	"medical certificate", "tax fraud",
}

// ErrNoOptions reports a parsed payload without a list-valued "options" field.
var ErrNoOptions = errors.New(`model JSON missing "options" list`)

// Recovery stages, in the order they are attempted.
const (
	StageDirect       = "direct"
	StageFenceStrip   = "fence-strip"
	StageBraceExtract = "brace-extract"
)

// StageError records which recovery stage rejected the payload and why.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

var (
	fenceRe = regexp.MustCompile("(?im)^```(?:json)?\\s*|\\s*```$")
	braceRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// Parse extracts candidate option texts from raw model output. Three recovery
// stages are attempted in order, first success wins: parse the text directly,
// strip surrounding code fences and retry, then extract the outermost
// brace-delimited object and retry. Entries without a string "text" field
// come back empty and are dropped by Filter.
func Parse(raw string) ([]string, error) {
	obj, err := recoverJSON(raw)
	if err != nil {
		return nil, err
	}

	list, ok := obj["options"].([]interface{})
	if !ok {
		return nil, ErrNoOptions
	}

	texts := make([]string, 0, len(list))
	for _, entry := range list {
		m, _ := entry.(map[string]interface{})
		text, _ := m["text"].(string)
		texts = append(texts, text)
	}
	return texts, nil
}

func recoverJSON(raw string) (map[string]interface{}, error) {
	stages := []struct {
		name string
		text string
	}{
		{StageDirect, raw},
		{StageFenceStrip, fenceRe.ReplaceAllString(strings.TrimSpace(raw), "")},
		{StageBraceExtract, braceRe.FindString(raw)},
	}

	var stageErrs []error
	for _, stage := range stages {
		if stage.text == "" {
			stageErrs = append(stageErrs, &StageError{Stage: stage.name, Err: errors.New("no candidate text")})
			continue
		}
		// fresh map per stage: a failed unmarshal can leave partial data
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(stage.text), &obj); err != nil {
			stageErrs = append(stageErrs, &StageError{Stage: stage.name, Err: err})
			continue
		}
		return obj, nil
	}

	return nil, fmt.Errorf("model returned invalid JSON: %w", errors.Join(stageErrs...))
}

// Filter applies the content policy to the first limit candidates, in order:
// trimmed-empty, banned-substring and over-length entries are silently
// dropped. When nothing survives, the fixed fallback option is substituted so
// the response is never empty.
func Filter(texts []string, limit int) []apimodels.ExcuseOption {
	if limit > len(texts) {
		limit = len(texts)
	}

	out := make([]apimodels.ExcuseOption, 0, limit)
	for _, text := range texts[:limit] {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if isBanned(text) {
			continue
		}
		if len(strings.Fields(text)) > maxWords {
			continue
		}
		out = append(out, apimodels.ExcuseOption{Text: text})
	}

	if len(out) == 0 {
		out = append(out, apimodels.ExcuseOption{Text: FallbackText})
	}
	return out
}

func isBanned(text string) bool {
	low := strings.ToLower(text)
	for _, bad := range banned {
		if strings.Contains(low, bad) {
			return true
		}
	}
	return false
}

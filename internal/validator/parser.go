package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/json-validator-api/internal/types"
)

// Marker phrases printed by the Java validator. The parser is a contract
// against that exact console format: plain substring matching, no semantic
// parsing. Keep the phrases and their precedence as-is; "VALID JSON" is a
// substring of "INVALID JSON", so the compound check below is load-bearing.
const (
	checkedValidMarker = "✅ VALID JSON"
	validMarker        = "VALID JSON"
	invalidMarker      = "INVALID JSON"
	wellFormedPhrase   = "JSON is well-formed and structurally valid"
	wellFormedPrefix   = "JSON is well-formed"
	errorsHeader       = "Errors Found:"
	sectionDivider     = "=========="
	fallbackMessage    = "Validation completed"
)

// ParseOutput converts the validator's captured stdout into a structured
// verdict.
func ParseOutput(output string) *types.ValidationResult {
	valid := strings.Contains(output, checkedValidMarker) ||
		(strings.Contains(output, validMarker) && !strings.Contains(output, invalidMarker)) ||
		strings.Contains(output, wellFormedPhrase)

	return &types.ValidationResult{
		Valid:   valid,
		Message: extractMessage(output),
		Errors:  extractErrors(output),
	}
}

// extractMessage returns the human-readable line the validator prints after
// its verdict marker. Invalid markers win over valid ones so that mixed
// output still surfaces the failure reason.
func extractMessage(output string) string {
	switch {
	case strings.Contains(output, invalidMarker):
		if msg := lineAfterMarker(output, invalidMarker); msg != "" {
			return msg
		}
	case strings.Contains(output, validMarker) || strings.Contains(output, wellFormedPrefix):
		if strings.Contains(output, wellFormedPhrase) {
			return wellFormedPhrase
		}
		if msg := lineAfterMarker(output, validMarker); msg != "" {
			return msg
		}
	}
	return fallbackMessage
}

// lineAfterMarker returns the first non-blank line immediately following a
// line that contains marker, or "" if there is none.
func lineAfterMarker(output, marker string) string {
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		if strings.Contains(line, marker) && i+1 < len(lines) {
			if msg := strings.TrimSpace(lines[i+1]); msg != "" {
				return msg
			}
		}
	}
	return ""
}

// extractErrors collects the numbered entries of the "Errors Found:" block.
// The block runs until the next "==========" divider; each entry line starts
// with a digit and carries a "<number>. " prefix that is stripped.
func extractErrors(output string) []string {
	errs := []string{}

	_, section, found := strings.Cut(output, errorsHeader)
	if !found {
		return errs
	}
	section, _, _ = strings.Cut(section, sectionDivider)

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(line)
		if !unicode.IsDigit(first) {
			continue
		}
		if _, entry, ok := strings.Cut(line, ". "); ok {
			line = entry
		}
		errs = append(errs, line)
	}

	return errs
}

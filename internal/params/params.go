/*
PURPOSE:
  Cleans raw string-valued parameter maps (as captured from artifact
  metadata or result sheets) into typed values the report code can use.

REQUIREMENTS:
  User-specified:
  - Drop entries whose value is empty or a literal "{}".
  - Coerce the rest: integers, floats, booleans and none/null, in that
    order; anything else passes through as the original string.

  Implementation-discovered:
  - Integer parsing must run before float parsing so "10" stays an int
    while "10.0" becomes a float64.

ARCHITECTURE INTEGRATION:
  - Called by: internal/output (artifact listing)
  - Depends on: stdlib only (strconv, strings)

ERROR HANDLING:
  - None; unconvertible values pass through as strings.

USAGE:
  typed := params.Clean(artifact.Params)

MAINTENANCE:
  - Extend convert() if new literal spellings show up in the sheets.
*/

package params

import (
	"strconv"
	"strings"
)

// Clean drops empty entries from a raw string map and coerces the remaining
// values to their natural types. The input map is not modified.
func Clean(raw map[string]string) map[string]any {
	cleaned := make(map[string]any, len(raw))

	for key, value := range raw {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" || trimmed == "{}" {
			continue
		}
		cleaned[key] = convert(trimmed, value)
	}

	return cleaned
}

// convert coerces one trimmed value; raw is returned untouched when no
// coercion applies.
func convert(trimmed, raw string) any {
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return int(n)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	if strings.EqualFold(trimmed, "true") {
		return true
	}
	if strings.EqualFold(trimmed, "false") {
		return false
	}
	if strings.EqualFold(trimmed, "none") || strings.EqualFold(trimmed, "null") {
		return nil
	}
	return raw
}

package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/lead-validator/internal/types"
)

// recheckStatuses are lead statuses that need a human to look again.
var recheckStatuses = map[string]bool{
	"r":                true,
	"no info":          true,
	"no company match": true,
}

// ValidateNWC maps the lead status column to a verdict.
func ValidateNWC(lead types.Lead) (types.Verdict, error) {
	status := strings.ToLower(strings.TrimSpace(lead.Status))

	switch {
	case status == "", status == "valid":
		return types.Valid(), nil
	case status == "a":
		return types.Invalid("retired lead"), nil
	case status == "!":
		return types.Invalid("suspicious lead"), nil
	case recheckStatuses[status]:
		return types.Recheck(fmt.Sprintf("status is %s", status)), nil
	default:
		return types.Invalid("line is corrupted"), nil
	}
}

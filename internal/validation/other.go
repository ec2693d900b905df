package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/lead-validator/internal/parsing"
	"github.com/jonathan/lead-validator/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	sizeBound       = regexp.MustCompile(`(\d+)\s*\+`)
	plusBound       = regexp.MustCompile(`(\d[\d,]*)\s*\+`)
	rangeLowerBound = regexp.MustCompile(`(\d[\d,]*)\s*-`)
	geoSeparators   = regexp.MustCompile(`[:&,]`)
	onlyWord        = regexp.MustCompile(`(?i)only`)
)

// Meta keys read from the requisition.
const (
	metaCompanySize = "company_size"
	metaIndustry    = "industry"
	metaGeo         = "geo"
)

// ValidateOther checks that the lead has the contact fields it needs and that
// its company matches the requisition's size, industry and geo requirements.
// The first failing check decides the verdict.
func ValidateOther(lead types.Lead) (types.Verdict, error) {
	parsed := parsing.ParseRequisition(lead.Req)

	if strings.TrimSpace(lead.Company) == "" {
		return types.Invalid("Missing company"), nil
	}

	email := strings.TrimSpace(lead.Email)
	if email == "" {
		return types.Invalid("Missing email"), nil
	}
	if !emailPattern.MatchString(email) {
		return types.Invalid("Invalid email format"), nil
	}

	if size, ok := parsed.MetaValue(metaCompanySize); ok && size != "" && !strings.EqualFold(size, "ANY") {
		reqMin, reqOK := parseMinCompanySize(size)
		empMin, empOK := parseEmployeesBucket(lead.Employees)
		if reqOK && empOK && empMin < reqMin {
			return types.Invalid(fmt.Sprintf("Company size does not meet requirement (%s)", size)), nil
		}
	}

	if industry, ok := parsed.MetaValue(metaIndustry); ok && !isOpenRequirement(industry) {
		have := parsing.FoldSpace(lead.Industry)
		if have == "" || !strings.Contains(have, parsing.FoldSpace(industry)) {
			return types.Invalid("Industry does not match requirement"), nil
		}
	}

	if geo, ok := parsed.MetaValue(metaGeo); ok && !isOpenRequirement(geo) {
		location := parsing.FoldSpace(lead.Location)
		if location != "" && !matchesAnyGeo(location, geoTokens(geo)) {
			return types.Invalid("Location does not match Geo requirement"), nil
		}
	}

	return types.Valid(), nil
}

// isOpenRequirement reports whether a meta value places no constraint on the lead.
func isOpenRequirement(value string) bool {
	return value == "" || strings.EqualFold(value, "ANY") || strings.EqualFold(value, "see comment")
}

// parseMinCompanySize reads the lower bound of a requirement like "500+".
// Only the digit run directly before "+" counts, so "1,000+" reads as 0.
func parseMinCompanySize(value string) (int, bool) {
	if m := sizeBound.FindStringSubmatch(value); m != nil {
		return parseCount(m[1])
	}
	return 0, false
}

// parseEmployeesBucket reads the lower bound of an employee bucket such as
// "1,000-5,000" or "10,001+". Anything else, a bare count included, is indeterminate.
func parseEmployeesBucket(value string) (int, bool) {
	if strings.TrimSpace(value) == "" {
		return 0, false
	}
	if m := plusBound.FindStringSubmatch(value); m != nil {
		return parseCount(m[1])
	}
	if m := rangeLowerBound.FindStringSubmatch(value); m != nil {
		return parseCount(m[1])
	}
	return 0, false
}

func parseCount(digits string) (int, bool) {
	n, err := strconv.Atoi(strings.ReplaceAll(digits, ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

// geoTokens splits a geo requirement like "US & Canada only" into place names.
func geoTokens(geo string) []string {
	parts := geoSeparators.Split(onlyWord.ReplaceAllString(geo, ""), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = parsing.FoldSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

func matchesAnyGeo(location string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(location, t) {
			return true
		}
	}
	return false
}

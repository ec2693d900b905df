package types

import "strings"

// SubStatus selects which validation rule applies to a lead.
// The zero value is SubStatusUnknown.
type SubStatus int

const (
	SubStatusUnknown SubStatus = iota
	SubStatusTitlePLSummary
	SubStatusProofLink
	SubStatusNWC
	SubStatusOther
)

// Discriminator values as they appear in the sub_status column.
const (
	SubStatusTitlePLSummaryLabel = "N/A: Title/PL Summary"
	SubStatusProofLinkLabel      = "N/A: Prooflink"
	SubStatusNWCLabel            = "N1: NWC"
	SubStatusOtherLabel          = "N/A: Other (auto)"
)

var subStatusLabels = map[SubStatus]string{
	SubStatusTitlePLSummary: SubStatusTitlePLSummaryLabel,
	SubStatusProofLink:      SubStatusProofLinkLabel,
	SubStatusNWC:            SubStatusNWCLabel,
	SubStatusOther:          SubStatusOtherLabel,
}

// KnownSubStatuses lists every recognized discriminator.
var KnownSubStatuses = []SubStatus{
	SubStatusTitlePLSummary,
	SubStatusProofLink,
	SubStatusNWC,
	SubStatusOther,
}

// ParseSubStatus maps a raw column value to its SubStatus.
// Surrounding whitespace is ignored; the match is otherwise exact.
func ParseSubStatus(raw string) (SubStatus, bool) {
	s := strings.TrimSpace(raw)
	for k, label := range subStatusLabels {
		if label == s {
			return k, true
		}
	}
	return SubStatusUnknown, false
}

// String returns the column label for the sub-status.
func (s SubStatus) String() string {
	if label, ok := subStatusLabels[s]; ok {
		return label
	}
	return "unknown"
}

package types

// Comment section names.
const (
	SectionRoot             = "root"
	SectionTitles           = "titles"
	SectionIndustry         = "industry"
	SectionCustomIndustries = "custom_industries"
)

// LinesKey collects comment lines that are not key:value pairs.
const LinesKey = "lines"

// SectionDict maps a normalized comment key to its ordered unique values.
type SectionDict map[string][]string

// ParsedRequisition is the structured form of a requisition string.
type ParsedRequisition struct {
	// Meta holds the pipe-delimited key:value pairs, keyed by normalized key.
	Meta map[string]string `json:"meta"`
	// Comments holds the comment segment grouped by section, then by key.
	Comments map[string]SectionDict `json:"comments"`
}

// NewParsedRequisition returns an empty ParsedRequisition.
func NewParsedRequisition() *ParsedRequisition {
	return &ParsedRequisition{
		Meta:     map[string]string{},
		Comments: map[string]SectionDict{},
	}
}

// MetaValue returns the meta value for a normalized key.
func (p *ParsedRequisition) MetaValue(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.Meta[key]
	return v, ok
}

// Values returns the values stored under section/key, or nil.
func (p *ParsedRequisition) Values(section, key string) []string {
	if p == nil {
		return nil
	}
	dict, ok := p.Comments[section]
	if !ok {
		return nil
	}
	return dict[key]
}

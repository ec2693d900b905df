// Package types provides type definitions for structured data used throughout the lead-validator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Lead represents one normalized input row to be validated.
// All fields are plain strings; absent columns are empty.
type Lead struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Company            string `json:"company"`
	Title              string `json:"title"`
	ProofLink          string `json:"prooflink"`
	Location           string `json:"location"`
	Status             string `json:"status"`
	Email              string `json:"email"`
	Employees          string `json:"employees"`
	EmployeesProofLink string `json:"employees_prooflink"`
	Industry           string `json:"industry"`
	Req                string `json:"req"`
	SubStatus          string `json:"sub_status"`
}

// Column names, in output order.
const (
	ColumnFirstName          = "first_name"
	ColumnLastName           = "last_name"
	ColumnCompany            = "company"
	ColumnTitle              = "title"
	ColumnProofLink          = "prooflink"
	ColumnLocation           = "location"
	ColumnStatus             = "status"
	ColumnEmail              = "email"
	ColumnEmployees          = "employees"
	ColumnEmployeesProofLink = "employees_prooflink"
	ColumnIndustry           = "industry"
	ColumnReq                = "req"
	ColumnSubStatus          = "sub_status"
	ColumnResult             = "result"
	ColumnComment            = "comment"
)

// LeadColumns lists the lead columns in the order they are written back out.
var LeadColumns = []string{
	ColumnFirstName,
	ColumnLastName,
	ColumnCompany,
	ColumnTitle,
	ColumnProofLink,
	ColumnLocation,
	ColumnStatus,
	ColumnEmail,
	ColumnEmployees,
	ColumnEmployeesProofLink,
	ColumnIndustry,
	ColumnReq,
	ColumnSubStatus,
}

// OutputColumns returns the header row for verdict-augmented output.
func OutputColumns() []string {
	cols := make([]string, 0, len(LeadColumns)+2)
	cols = append(cols, LeadColumns...)
	return append(cols, ColumnResult, ColumnComment)
}

// LeadFromRecord builds a Lead from a record keyed by normalized column name.
// Missing columns become empty strings.
func LeadFromRecord(rec map[string]string) Lead {
	return Lead{
		FirstName:          rec[ColumnFirstName],
		LastName:           rec[ColumnLastName],
		Company:            rec[ColumnCompany],
		Title:              rec[ColumnTitle],
		ProofLink:          rec[ColumnProofLink],
		Location:           rec[ColumnLocation],
		Status:             rec[ColumnStatus],
		Email:              rec[ColumnEmail],
		Employees:          rec[ColumnEmployees],
		EmployeesProofLink: rec[ColumnEmployeesProofLink],
		Industry:           rec[ColumnIndustry],
		Req:                rec[ColumnReq],
		SubStatus:          rec[ColumnSubStatus],
	}
}

// Values returns the lead fields in LeadColumns order.
func (l Lead) Values() []string {
	return []string{
		l.FirstName,
		l.LastName,
		l.Company,
		l.Title,
		l.ProofLink,
		l.Location,
		l.Status,
		l.Email,
		l.Employees,
		l.EmployeesProofLink,
		l.Industry,
		l.Req,
		l.SubStatus,
	}
}

package models

// FindingType classifies the severity of an audit finding
type FindingType string

const (
	FindingIssue       FindingType = "Issue"
	FindingWarning     FindingType = "Warning"
	FindingOpportunity FindingType = "Opportunity"
)

// IsValid returns true if the type is a known value
func (t FindingType) IsValid() bool {
	switch t {
	case FindingIssue, FindingWarning, FindingOpportunity:
		return true
	}
	return false
}

// Priority ranks how urgently a finding should be addressed
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// IsValid returns true if the priority is a known value
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Finding is one detected defect on one page. Findings are immutable value
// records; nothing owns them beyond the slice that holds them.
type Finding struct {
	Category    string      // Fixed taxonomy, e.g. "Response Codes", "Page Titles"
	CheckName   string      // Rule identifier within the category
	Type        FindingType // Issue, Warning or Opportunity
	Priority    Priority    // High, Medium or Low
	URL         string      // Subject page
	Description string      // Human-readable, includes the offending value
	Guidance    string      // Remediation advice
}

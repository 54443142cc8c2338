package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Category identifies the authority a report is filed against.
type Category string

const (
	CategoryWASA         Category = "WASA"
	CategoryIESCO        Category = "IESCO"
	CategoryMunicipality Category = "Municipality"
	CategoryOthers       Category = "Others"
)

// Priority is the citizen-assigned urgency of a report.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Status is a report's position in the resolution workflow.
// StatusAll is not a workflow state; it is only valid as a list filter.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusForwarded  Status = "Forwarded"
	StatusInProgress Status = "In-Progress"
	StatusResolved   Status = "Resolved"

	StatusAll Status = "All"
)

// User is the identity record for the authenticated citizen.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// AssignedTo references the official a report has been routed to.
type AssignedTo struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// StatusUpdate is one audit-trail entry in a report's history.
// The server returns entries in chronological ascending order and the
// client never reorders or rewrites them.
type StatusUpdate struct {
	StatusType  Status    `json:"statusType"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Report is a citizen-submitted civic issue as the server last reported it.
//
// CanEdit is a server-supplied hint only; the Editable and Deletable
// methods are the authority for gating local mutations, so a stale flag
// can never unlock an action the workflow forbids.
type Report struct {
	ID                  string         `json:"_id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Category            Category       `json:"category"`
	SubCategory         string         `json:"subCategory"`
	Priority            Priority       `json:"priority"`
	CurrentStatus       Status         `json:"currentStatus"`
	Status              []StatusUpdate `json:"status"`
	CompletedPercentage int            `json:"completedPercentage"`
	CanEdit             bool           `json:"canEdit"`
	AssignedTo          *AssignedTo    `json:"assignedTo,omitempty"`
	EstimatedCompletion *time.Time     `json:"estimatedCompletion,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// Editable reports whether the citizen may still change this report:
// only while it is Pending and nobody has been assigned to it.
func (r Report) Editable() bool {
	return r.CurrentStatus == StatusPending && r.AssignedTo == nil
}

// Deletable reports whether the citizen may withdraw this report:
// only while it is Pending.
func (r Report) Deletable() bool {
	return r.CurrentStatus == StatusPending
}

// Notice is an active announcement published by the authorities.
type Notice struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

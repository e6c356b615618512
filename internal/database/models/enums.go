package models

// UploadStatus tracks an upload batch through its lifecycle.
// Transitions are monotonic forward; failed is terminal and reachable
// from any non-terminal state.
type UploadStatus string

const (
	UploadStatusProcessed    UploadStatus = "processed"
	UploadStatusDistributing UploadStatus = "distributing"
	UploadStatusComplete     UploadStatus = "complete"
	UploadStatusFailed       UploadStatus = "failed"
)

// ItemStatus is the per-item workflow status an agent works through.
type ItemStatus string

const (
	ItemStatusPending    ItemStatus = "pending"
	ItemStatusInProgress ItemStatus = "in_progress"
	ItemStatusCompleted  ItemStatus = "completed"
)

// AgentStatus marks whether an agent is eligible for new distributions.
type AgentStatus string

const (
	AgentStatusActive   AgentStatus = "active"
	AgentStatusInactive AgentStatus = "inactive"
)

// IsValid checks if the UploadStatus is valid
func (s UploadStatus) IsValid() bool {
	switch s {
	case UploadStatusProcessed, UploadStatusDistributing, UploadStatusComplete, UploadStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s UploadStatus) IsTerminal() bool {
	return s == UploadStatusComplete || s == UploadStatusFailed
}

// CanTransitionTo reports whether moving from s to next is a legal
// forward transition.
func (s UploadStatus) CanTransitionTo(next UploadStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case UploadStatusFailed:
		return true
	case UploadStatusDistributing:
		return s == UploadStatusProcessed
	case UploadStatusComplete:
		return s == UploadStatusDistributing
	}
	return false
}

// IsValid checks if the ItemStatus is valid
func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusInProgress, ItemStatusCompleted:
		return true
	}
	return false
}

// IsValid checks if the AgentStatus is valid
func (s AgentStatus) IsValid() bool {
	switch s {
	case AgentStatusActive, AgentStatusInactive:
		return true
	}
	return false
}

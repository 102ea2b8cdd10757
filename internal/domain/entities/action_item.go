package entities

// Unassigned is the owner of an action item nobody was attributed to.
const Unassigned = "Unassigned"

// ActionItem is a commitment found in a transcript
type ActionItem struct {
	Owner string `json:"owner" validate:"omitempty,max=200"`
	Task  string `json:"task" validate:"omitempty,max=2000"`
}

// OwnerOrUnassigned returns the owner, or Unassigned when it is blank
func (a ActionItem) OwnerOrUnassigned() string {
	if a.Owner == "" {
		return Unassigned
	}
	return a.Owner
}

package invoicing

// Status represents the payment status of an invoice
type Status string

const (
	StatusPending       Status = "pending"
	StatusPaid          Status = "paid"
	StatusVoid          Status = "void"
	StatusUncollectible Status = "uncollectible"
)

// StatusOption pairs a status identifier with its display label.
type StatusOption struct {
	ID    Status `json:"id"`
	Label string `json:"label"`
}

// AvailableStatuses is the canonical ordered list of invoice statuses.
// It is the single source of truth consumed by domain validation, the
// storage layer's allowed-values constraint, and any UI affordance that
// offers status choices.
var AvailableStatuses = []StatusOption{
	{ID: StatusPending, Label: "Pending"},
	{ID: StatusPaid, Label: "Paid"},
	{ID: StatusVoid, Label: "Void"},
	{ID: StatusUncollectible, Label: "Uncollectible"},
}

// DefaultStatus is the status assigned to newly created invoices.
const DefaultStatus = StatusPending

// IsValidStatus reports whether s is a member of AvailableStatuses.
func IsValidStatus(s Status) bool {
	for _, opt := range AvailableStatuses {
		if opt.ID == s {
			return true
		}
	}
	return false
}

// StatusIDs returns the ordered status identifiers as strings.
func StatusIDs() []string {
	ids := make([]string, len(AvailableStatuses))
	for i, opt := range AvailableStatuses {
		ids[i] = string(opt.ID)
	}
	return ids
}

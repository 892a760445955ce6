package model

// RegistrationStatus represents the state of a registration.
type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "Pending"
	StatusApproved RegistrationStatus = "Approved"
	StatusRejected RegistrationStatus = "Rejected"
)

// Registration links a user to an event. It is created Pending and may be
// moved to Approved or Rejected by an organizer or admin; it is only ever
// removed as a cascade of deleting its event or its user.
type Registration struct {
	ID      int64              `json:"id"`
	EventID int64              `json:"eventId"`
	UserID  int64              `json:"userId"`
	Status  RegistrationStatus `json:"status"`
}

package booking

// Request is the transient payload a customer submits to request service.
// Fields are free-form; it is never persisted and only exists long enough to
// be forwarded into the operator notification.
type Request struct {
	Day           string
	Time          string
	ApplianceType string
	Description   string
	Address       string
	Phone         string
}

package warranty

// Status is the derived classification of an invoice's warranty coverage
// relative to a reference time. It is computed on every read and never stored.
type Status string

const (
	StatusActive       Status = "active"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
	StatusNoWarranty   Status = "no_warranty"
)

var validStatuses = map[Status]bool{
	StatusActive:       true,
	StatusExpiringSoon: true,
	StatusExpired:      true,
	StatusNoWarranty:   true,
}

// IsValid returns true if the status is a known warranty status.
func (s Status) IsValid() bool {
	return validStatuses[s]
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

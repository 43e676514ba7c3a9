package reservation

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusPartial   PaymentStatus = "partial"
	StatusCompleted PaymentStatus = "completed"
	StatusCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPartial, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// BlocksSlot reports whether a reservation in this status occupies its time
// slot. Cancelled reservations are kept as rows but never count against
// availability.
func (s PaymentStatus) BlocksSlot() bool {
	return s != StatusCancelled
}

package order

import "github.com/leafload/leafload-api/internal/httperr"

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusPreparing  Status = "PREPARING"
	StatusDelivering Status = "DELIVERING"
	StatusCompleted  Status = "COMPLETED"
)

// allowedNext is the whole state machine: each status has exactly one
// reachable successor, COMPLETED has none.
var allowedNext = map[Status]Status{
	StatusPending:    StatusPreparing,
	StatusPreparing:  StatusDelivering,
	StatusDelivering: StatusCompleted,
}

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusDelivering, StatusCompleted:
		return true
	}
	return false
}

// CanTransition enforces the fulfillment progression on the server side.
// An empty current status counts as PENDING (rows created before the
// default existed).
func CanTransition(from, to Status) error {
	if from == "" {
		from = StatusPending
	}
	if next, ok := allowedNext[from]; ok && next == to {
		return nil
	}
	return httperr.ErrBusiness("invalid_transition")
}

// NextStatus returns the only legal successor, or false for COMPLETED.
func NextStatus(from Status) (Status, bool) {
	if from == "" {
		from = StatusPending
	}
	next, ok := allowedNext[from]
	return next, ok
}

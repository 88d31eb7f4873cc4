package candidate

import "errors"

var ErrInvalidStatus = errors.New("invalid application status")

// Status is the application lifecycle. The booking engine flips
// pending <-> slot_selected; administrators set the terminal states.
type Status string

const (
	StatusPending      Status = "pending"
	StatusSlotSelected Status = "slot_selected"
	StatusInterviewed  Status = "interviewed"
	StatusSelected     Status = "selected"
	StatusRejected     Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSlotSelected, StatusInterviewed, StatusSelected, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusSelected || s == StatusRejected
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn = errors.New("you have already clocked in today")
	ErrNotClockedIn     = errors.New("you have not clocked in yet")
)

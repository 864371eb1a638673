package team

import "time"

// Member links a direct report to a manager. The manager visibility
// scope for reviews, goals and TNA records is derived from these rows.
type Member struct {
	ID         int64
	ManagerID  int64
	EmployeeID int64
	CreatedAt  time.Time
}

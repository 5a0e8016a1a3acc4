package models

import "time"

// ShiftRegular is the standard rota shift type; any other type is "other".
const ShiftRegular = "regular"

// Schedule is one employee shift. EmployeeID may reference an employee that
// is not loaded.
type Schedule struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	ShiftStart time.Time `json:"shift_start"`
	ShiftEnd   time.Time `json:"shift_end"`
	Type       string    `json:"type"`
}

// IsRegular reports whether the shift is a regular rota shift.
func (s Schedule) IsRegular() bool {
	return s.Type == ShiftRegular
}

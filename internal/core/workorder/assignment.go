package workorder

import "github.com/example/gridboard/internal/models"

// Assignment is the resolved crew of a work order. Missing lists assigned
// IDs with no matching loaded employee.
type Assignment struct {
	Employees []models.Employee
	Missing   []string
}

// FindEmployee looks up an employee by ID.
func FindEmployee(employees []models.Employee, id string) (models.Employee, bool) {
	for _, e := range employees {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

// AssignedEmployees resolves order.AssignedEmployeeIDs against employees,
// keeping assignment order.
func AssignedEmployees(order models.WorkOrder, employees []models.Employee) Assignment {
	var a Assignment
	for _, id := range order.AssignedEmployeeIDs {
		if e, ok := FindEmployee(employees, id); ok {
			a.Employees = append(a.Employees, e)
		} else {
			a.Missing = append(a.Missing, id)
		}
	}
	return a
}

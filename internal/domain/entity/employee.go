package entity

import "time"

// Employee is the business record managed by the directory. Email is unique
// across all employees and Salary never goes below SalaryFloor.
type Employee struct {
	ID            string    `json:"_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Gender        Gender    `json:"gender,omitempty"`
	Designation   string    `json:"designation"`
	Salary        float64   `json:"salary"`
	DateOfJoining time.Time `json:"date_of_joining"`
	Department    string    `json:"department"`
	EmployeePhoto string    `json:"employee_photo,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SalaryFloor is the inclusive minimum salary accepted on create and update.
const SalaryFloor = 1000

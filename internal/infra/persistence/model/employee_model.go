package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"empdir/internal/domain/entity"
)

// EmployeeModel mirrors the 'employees' collection. A unique index exists
// on email.
type EmployeeModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FirstName     string             `bson:"first_name"`
	LastName      string             `bson:"last_name"`
	Email         string             `bson:"email"`
	Gender        string             `bson:"gender,omitempty"`
	Designation   string             `bson:"designation"`
	Salary        float64            `bson:"salary"`
	DateOfJoining time.Time          `bson:"date_of_joining"`
	Department    string             `bson:"department"`
	EmployeePhoto string             `bson:"employee_photo,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// CollectionName is the MongoDB collection backing EmployeeModel.
func (EmployeeModel) CollectionName() string {
	return "employees"
}

// ToEntity maps the persistence model back to a pure domain entity.
func (m *EmployeeModel) ToEntity() *entity.Employee {
	return &entity.Employee{
		ID:            m.ID.Hex(),
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		Gender:        entity.Gender(m.Gender),
		Designation:   m.Designation,
		Salary:        m.Salary,
		DateOfJoining: m.DateOfJoining,
		Department:    m.Department,
		EmployeePhoto: m.EmployeePhoto,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromEmployeeEntity maps a domain entity to its persistence model.
func FromEmployeeEntity(employee *entity.Employee) *EmployeeModel {
	m := &EmployeeModel{
		FirstName:     employee.FirstName,
		LastName:      employee.LastName,
		Email:         employee.Email,
		Gender:        string(employee.Gender),
		Designation:   employee.Designation,
		Salary:        employee.Salary,
		DateOfJoining: employee.DateOfJoining,
		Department:    employee.Department,
		EmployeePhoto: employee.EmployeePhoto,
		CreatedAt:     employee.CreatedAt,
		UpdatedAt:     employee.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(employee.ID); err == nil {
		m.ID = oid
	}

	return m
}

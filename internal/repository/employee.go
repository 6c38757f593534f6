package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Yashwanthgowda1/backend-server/internal/apperror"
	"github.com/Yashwanthgowda1/backend-server/internal/models"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// List returns every employee ordered by name.
func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&employees).Error; err != nil {
		return nil, mapDatabaseError(err)
	}
	return employees, nil
}

// Upsert inserts the employee or, when the id already exists, updates
// its name and updated_at. Calling twice with the same inputs leaves
// the same final state.
func (r *EmployeeRepository) Upsert(ctx context.Context, empID, name string) (string, error) {
	empID = strings.TrimSpace(empID)
	name = strings.TrimSpace(name)
	if empID == "" || name == "" {
		return "", apperror.New(apperror.CodeValidation, "emp_id and name are required")
	}

	if err := upsertEmployee(r.db.WithContext(ctx), empID, name); err != nil {
		return "", mapDatabaseError(err)
	}
	return empID, nil
}

// upsertEmployee runs against either the root handle or a transaction,
// so the attendance write path can reuse it inside its transaction.
func upsertEmployee(tx *gorm.DB, empID, name string) error {
	employee := models.Employee{
		EmpID: empID,
		Name:  name,
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "emp_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&employee).Error
}

package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Yashwanthgowda1/backend-server/internal/apperror"
	"github.com/Yashwanthgowda1/backend-server/internal/models"
)

const dateLayout = "2006-01-02"

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Filter narrows ListFiltered results. Zero-value fields are
// unconstrained; set fields combine with AND.
type Filter struct {
	StartDate string
	EndDate   string
	Type      string
}

// Upsert records attendance for one employee on one date. The employee
// row is created or refreshed first, then the record keyed by
// (emp_id, date) is inserted or overwritten, all in one transaction.
// The record id is stable across overwrites.
func (r *AttendanceRepository) Upsert(ctx context.Context, empID, empName, attendanceType, date string) (uint, error) {
	empID = strings.TrimSpace(empID)
	empName = strings.TrimSpace(empName)
	attendanceType = strings.TrimSpace(attendanceType)
	date = strings.TrimSpace(date)

	if empID == "" || empName == "" || attendanceType == "" || date == "" {
		return 0, apperror.New(apperror.CodeValidation, "emp_id, emp_name, attendance_type and date are required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return 0, apperror.New(apperror.CodeValidation, "date must be in YYYY-MM-DD format")
	}

	var recordID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsertEmployee(tx, empID, empName); err != nil {
			return err
		}

		var existing models.AttendanceRecord
		err := tx.Where("emp_id = ? AND date = ?", empID, date).First(&existing).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"emp_name":        empName,
				"attendance_type": attendanceType,
				"timestamp":       time.Now(),
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			recordID = existing.ID
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			record := models.AttendanceRecord{
				EmpID:          empID,
				EmpName:        empName,
				AttendanceType: attendanceType,
				Date:           date,
				Timestamp:      time.Now(),
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			recordID = record.ID
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return 0, mapDatabaseError(err)
	}
	return recordID, nil
}

// ListByEmployee returns every record for one employee, newest date first.
func (r *AttendanceRepository) ListByEmployee(ctx context.Context, empID string) ([]models.AttendanceRecord, error) {
	empID = strings.TrimSpace(empID)
	if empID == "" {
		return nil, apperror.New(apperror.CodeValidation, "emp_id is required")
	}

	var records []models.AttendanceRecord
	if err := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, mapDatabaseError(err)
	}
	return records, nil
}

// ListFiltered returns records matching every set filter field.
// Predicates are always bound as parameters.
func (r *AttendanceRepository) ListFiltered(ctx context.Context, filter Filter) ([]models.AttendanceRecord, error) {
	if err := validateOptionalDate(filter.StartDate, "start_date"); err != nil {
		return nil, err
	}
	if err := validateOptionalDate(filter.EndDate, "end_date"); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Model(&models.AttendanceRecord{})
	if filter.StartDate != "" {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.Type != "" {
		query = query.Where("attendance_type = ?", filter.Type)
	}

	var records []models.AttendanceRecord
	if err := query.Order("date DESC").Order("emp_id ASC").Find(&records).Error; err != nil {
		return nil, mapDatabaseError(err)
	}
	return records, nil
}

// ListRange returns one employee's records with date between the
// inclusive bounds, newest first.
func (r *AttendanceRepository) ListRange(ctx context.Context, empID, startDate, endDate string) ([]models.AttendanceRecord, error) {
	empID = strings.TrimSpace(empID)
	if empID == "" {
		return nil, apperror.New(apperror.CodeValidation, "emp_id is required")
	}
	if strings.TrimSpace(startDate) == "" {
		return nil, apperror.New(apperror.CodeValidation, "start_date is required")
	}
	if strings.TrimSpace(endDate) == "" {
		return nil, apperror.New(apperror.CodeValidation, "end_date is required")
	}
	if err := validateOptionalDate(startDate, "start_date"); err != nil {
		return nil, err
	}
	if err := validateOptionalDate(endDate, "end_date"); err != nil {
		return nil, err
	}

	var records []models.AttendanceRecord
	if err := r.db.WithContext(ctx).
		Where("emp_id = ? AND date BETWEEN ? AND ?", empID, startDate, endDate).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, mapDatabaseError(err)
	}
	return records, nil
}

// DeleteByID removes one record. Zero affected rows is reported as
// not found.
func (r *AttendanceRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AttendanceRecord{}, id)
	if result.Error != nil {
		return mapDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.CodeNotFound, "attendance record not found")
	}
	return nil
}

func validateOptionalDate(value, field string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return apperror.New(apperror.CodeValidation, field+" must be in YYYY-MM-DD format")
	}
	return nil
}

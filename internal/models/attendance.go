package models

import "time"

// AttendanceRecord holds one WFO/WFH entry per employee per calendar day.
// A second write for the same (emp_id, date) overwrites the existing row.
type AttendanceRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	EmpID          string    `gorm:"column:emp_id;type:varchar(50);not null;uniqueIndex:idx_attendance_emp_date" json:"emp_id"`
	EmpName        string    `gorm:"column:emp_name;not null" json:"emp_name"`
	AttendanceType string    `gorm:"type:varchar(20);not null" json:"attendance_type"` // observed values "WFO" / "WFH"
	Date           string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_emp_date;index:idx_attendance_date" json:"date"` // ISO YYYY-MM-DD
	Timestamp      time.Time `gorm:"not null" json:"timestamp"`

	Employee Employee `gorm:"foreignKey:EmpID;references:EmpID" json:"-"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

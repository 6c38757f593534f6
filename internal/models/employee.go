package models

import "time"

type Employee struct {
	EmpID     string    `gorm:"column:emp_id;primaryKey;type:varchar(50)" json:"emp_id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

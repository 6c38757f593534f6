package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yashwanthgowda1/backend-server/internal/models"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type TypeCount struct {
	AttendanceType string `json:"attendance_type"`
	Count          int64  `json:"count"`
}

type Stats struct {
	TotalEmployees int64       `json:"total_employees"`
	TotalRecords   int64       `json:"total_records"`
	WFOCount       int64       `json:"wfo_count"`
	WFHCount       int64       `json:"wfh_count"`
	ByType         []TypeCount `json:"attendance_by_type"`
}

// Compute runs five independent read queries. They are not a consistent
// snapshot; concurrent writes may land between them.
func (r *StatsRepository) Compute(ctx context.Context) (Stats, error) {
	stats := Stats{ByType: []TypeCount{}}
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Employee{}).Count(&stats.TotalEmployees).Error; err != nil {
		return Stats{}, mapDatabaseError(err)
	}
	if err := db.Model(&models.AttendanceRecord{}).Count(&stats.TotalRecords).Error; err != nil {
		return Stats{}, mapDatabaseError(err)
	}
	if err := db.Model(&models.AttendanceRecord{}).
		Where("attendance_type = ?", "WFO").
		Count(&stats.WFOCount).Error; err != nil {
		return Stats{}, mapDatabaseError(err)
	}
	if err := db.Model(&models.AttendanceRecord{}).
		Where("attendance_type = ?", "WFH").
		Count(&stats.WFHCount).Error; err != nil {
		return Stats{}, mapDatabaseError(err)
	}
	if err := db.Model(&models.AttendanceRecord{}).
		Select("attendance_type, COUNT(*) AS count").
		Group("attendance_type").
		Order("count DESC").
		Scan(&stats.ByType).Error; err != nil {
		return Stats{}, mapDatabaseError(err)
	}

	return stats, nil
}

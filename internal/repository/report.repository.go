package repository

import (
	"gorm.io/gorm"

	"clinicare/internal/models"
)

type ReportRepository interface {
	Create(report *models.Report) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (rr *reportRepository) Create(report *models.Report) error {
	return rr.db.Create(report).Error
}

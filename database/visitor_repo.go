package database

import (
	"github.com/rpupo63/bilingual-portfolio-backend/models"
	"gorm.io/gorm"
)

type VisitorRepo struct {
	db *gorm.DB
}

func NewVisitorRepo(db *gorm.DB) *VisitorRepo {
	return &VisitorRepo{db}
}

// Add appends one visit row. The table is append-only.
func (r *VisitorRepo) Add(visitor *models.Visitor) error {
	return r.db.Create(visitor).Error
}

// FindAll returns the visit log, most recent first.
func (r *VisitorRepo) FindAll() ([]*models.Visitor, error) {
	var visitors []*models.Visitor
	err := r.db.Order("visit_time desc").Find(&visitors).Error
	return visitors, err
}

// Count returns the total number of recorded visits.
func (r *VisitorRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Visitor{}).Count(&count).Error
	return count, err
}

// CountByLang returns visit counts grouped by requested language.
func (r *VisitorRepo) CountByLang() (map[string]int64, error) {
	type langCount struct {
		Lang  string
		Count int64
	}
	var rows []langCount
	err := r.db.Model(&models.Visitor{}).
		Select("lang, count(*) as count").
		Group("lang").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Lang] = row.Count
	}
	return counts, nil
}

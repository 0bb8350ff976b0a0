package database

import (
	"errors"

	"github.com/rpupo63/bilingual-portfolio-backend/models"
	"gorm.io/gorm"
)

type AboutMeRepo struct {
	db *gorm.DB
}

func NewAboutMeRepo(db *gorm.DB) *AboutMeRepo {
	return &AboutMeRepo{db}
}

// First returns the bio row, or (nil, nil) when it has not been created yet.
// The table holds at most one meaningful row by convention.
func (r *AboutMeRepo) First() (*models.AboutMe, error) {
	var about models.AboutMe
	err := r.db.Order("id asc").First(&about).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// Save inserts the row on first edit and updates it afterwards.
func (r *AboutMeRepo) Save(about *models.AboutMe) error {
	return r.db.Save(about).Error
}

package database

import (
	"errors"

	"github.com/rpupo63/bilingual-portfolio-backend/errs"
	"github.com/rpupo63/bilingual-portfolio-backend/models"
	"gorm.io/gorm"
)

type SocialLinkRepo struct {
	db *gorm.DB
}

func NewSocialLinkRepo(db *gorm.DB) *SocialLinkRepo {
	return &SocialLinkRepo{db}
}

// FindAll returns all social links from the database
func (r *SocialLinkRepo) FindAll() ([]*models.SocialLink, error) {
	var links []*models.SocialLink
	err := r.db.Order("id asc").Find(&links).Error
	return links, err
}

// FindByID returns a social link by its ID, or a NotFound error if absent.
func (r *SocialLinkRepo) FindByID(id uint) (*models.SocialLink, error) {
	var link models.SocialLink
	err := r.db.First(&link, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("social link")
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Add inserts a new social link into the database
func (r *SocialLinkRepo) Add(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

// Update updates an existing social link in the database
func (r *SocialLinkRepo) Update(link *models.SocialLink) error {
	return r.db.Save(link).Error
}

// Delete removes a social link from the database by id
func (r *SocialLinkRepo) Delete(id uint) error {
	return r.db.Delete(&models.SocialLink{}, id).Error
}

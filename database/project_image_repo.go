package database

import (
	"errors"

	"github.com/rpupo63/bilingual-portfolio-backend/errs"
	"github.com/rpupo63/bilingual-portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectImageRepo struct {
	db *gorm.DB
}

func NewProjectImageRepo(db *gorm.DB) *ProjectImageRepo {
	return &ProjectImageRepo{db}
}

// FindByProjectID returns the gallery for one project sorted by sort_order
// ascending, ties broken by id ascending.
func (r *ProjectImageRepo) FindByProjectID(projectID uint) ([]*models.ProjectImage, error) {
	var images []*models.ProjectImage
	err := r.db.Where("project_id = ?", projectID).
		Order("sort_order asc, id asc").
		Find(&images).Error
	return images, err
}

// FindByID returns a project image by its ID, or a NotFound error if absent.
func (r *ProjectImageRepo) FindByID(id uint) (*models.ProjectImage, error) {
	var image models.ProjectImage
	err := r.db.First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("project image")
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Add inserts a new project image into the database
func (r *ProjectImageRepo) Add(image *models.ProjectImage) error {
	return r.db.Create(image).Error
}

// Delete removes a project image from the database by id
func (r *ProjectImageRepo) Delete(id uint) error {
	return r.db.Delete(&models.ProjectImage{}, id).Error
}

// DeleteByProjectID removes every gallery row owned by the given project.
// Called inside the project-delete transaction so the cascade is explicit
// rather than left to driver-dependent foreign key behavior.
func (r *ProjectImageRepo) DeleteByProjectID(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectImage{}).Error
}

// CountByProjectID returns the number of gallery rows for one project.
func (r *ProjectImageRepo) CountByProjectID(projectID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectImage{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

package database

import (
	"github.com/rpupo63/bilingual-portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	userRepo         *UserRepo
	projectRepo      *ProjectRepo
	projectImageRepo *ProjectImageRepo
	socialLinkRepo   *SocialLinkRepo
	aboutMeRepo      *AboutMeRepo
	visitorRepo      *VisitorRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:         NewUserRepo(db),
		projectRepo:      NewProjectRepo(db),
		projectImageRepo: NewProjectImageRepo(db),
		socialLinkRepo:   NewSocialLinkRepo(db),
		aboutMeRepo:      NewAboutMeRepo(db),
		visitorRepo:      NewVisitorRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectImageRepo() *ProjectImageRepo {
	return d.projectImageRepo
}

func (d Database) SocialLinkRepo() *SocialLinkRepo {
	return d.socialLinkRepo
}

func (d Database) AboutMeRepo() *AboutMeRepo {
	return d.aboutMeRepo
}

func (d Database) VisitorRepo() *VisitorRepo {
	return d.visitorRepo
}

// Transaction runs fn against a transaction-scoped Database. If fn returns an
// error the whole transaction rolls back and nothing is committed. Multi-row
// writes (project plus gallery rows, explicit cascade deletes) go through
// here so they stay all-or-nothing.
func (d Database) Transaction(fn func(tx Database) error) error {
	return d.projectRepo.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Migrate creates or updates the schema for every entity. The original
// deployment relied on create-all at startup; AutoMigrate is the equivalent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectImage{},
		&models.SocialLink{},
		&models.AboutMe{},
		&models.Visitor{},
	)
}

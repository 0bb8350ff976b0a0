package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/bilingual-portfolio-backend/database"
	"github.com/rpupo63/bilingual-portfolio-backend/errs"
	"github.com/rpupo63/bilingual-portfolio-backend/models"
)

// ProjectInput carries the Arabic-only form fields for a project write.
// English counterparts are never accepted from the caller; they are always
// derived through the translation collaborator.
type ProjectInput struct {
	TitleAr               string
	DescriptionAr         string
	DetailedDescriptionAr string
	Technologies          string
	Link                  string
}

// ImageUpload is one uploaded gallery file. SortOrder is only honored on
// update; on create the position in the submitted list wins.
type ImageUpload struct {
	Filename  string
	Content   io.Reader
	CaptionAr string
	SortOrder *int
}

// ProjectDetail is a project plus everything the detail page needs.
type ProjectDetail struct {
	Project *models.Project        `json:"project"`
	Images  []*models.ProjectImage `json:"images"`
	Prev    *models.Project        `json:"prev,omitempty"`
	Next    *models.Project        `json:"next,omitempty"`
}

// ContentService implements the admin content workflow: validate Arabic
// input, derive the English fields, and persist everything atomically.
type ContentService struct {
	db         database.Database
	translator Translator
	storage    FileStorage
	logger     zerolog.Logger
}

func NewContentService(db database.Database, translator Translator, storage FileStorage) *ContentService {
	return &ContentService{
		db:         db,
		translator: translator,
		storage:    storage,
		logger:     log.With().Str("serviceName", "contentService").Logger(),
	}
}

// CreateProject validates the Arabic fields, translates them, and persists
// the project together with its uploaded images in one transaction. A
// translation failure aborts before anything is written; a failure inside
// the transaction rolls the whole write back and best-effort removes any
// files already stored.
func (s *ContentService) CreateProject(ctx context.Context, input ProjectInput, primary *ImageUpload, additional []ImageUpload) (*models.Project, error) {
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	translated, err := s.translateProjectFields(ctx, input)
	if err != nil {
		return nil, err
	}

	captions, err := s.translateCaptions(ctx, additional)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		TitleAr:               input.TitleAr,
		TitleEn:               translated.titleEn,
		DescriptionAr:         input.DescriptionAr,
		DescriptionEn:         translated.descriptionEn,
		DetailedDescriptionAr: input.DetailedDescriptionAr,
		DetailedDescriptionEn: translated.detailedEn,
		Technologies:          input.Technologies,
		Link:                  input.Link,
	}

	var stored []string
	txErr := s.db.Transaction(func(tx database.Database) error {
		if err := tx.ProjectRepo().Add(project); err != nil {
			return errs.NewDatabaseError("create", "project", err)
		}

		if primary != nil {
			name := uploadFilename(project.ID, primary.Filename)
			if err := s.storage.Store(ctx, name, primary.Content); err != nil {
				return errs.NewInternalErrorWithCause("failed to store primary image", err)
			}
			stored = append(stored, name)
			project.Image = name
			if err := tx.ProjectRepo().Update(project); err != nil {
				return errs.NewDatabaseError("update", "project", err)
			}
		}

		for i, img := range additional {
			name := uploadFilename(project.ID, img.Filename)
			if err := s.storage.Store(ctx, name, img.Content); err != nil {
				return errs.NewInternalErrorWithCause("failed to store gallery image", err)
			}
			stored = append(stored, name)

			row := &models.ProjectImage{
				ProjectID: project.ID,
				ImagePath: name,
				CaptionAr: img.CaptionAr,
				CaptionEn: captions[i],
				SortOrder: i,
			}
			if err := tx.ProjectImageRepo().Add(row); err != nil {
				return errs.NewDatabaseError("create", "project image", err)
			}
		}
		return nil
	})
	if txErr != nil {
		s.removeStored(ctx, stored)
		return nil, txErr
	}

	return project, nil
}

// UpdateProject re-validates and always retranslates the Arabic content,
// whether or not it changed. A new primary image overwrites the existing
// reference; additional uploads are appended to the gallery with order 0
// unless an explicit order is supplied.
func (s *ContentService) UpdateProject(ctx context.Context, id uint, input ProjectInput, primary *ImageUpload, additional []ImageUpload) (*models.Project, error) {
	project, err := s.db.ProjectRepo().FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	translated, err := s.translateProjectFields(ctx, input)
	if err != nil {
		return nil, err
	}

	captions, err := s.translateCaptions(ctx, additional)
	if err != nil {
		return nil, err
	}

	project.TitleAr = input.TitleAr
	project.TitleEn = translated.titleEn
	project.DescriptionAr = input.DescriptionAr
	project.DescriptionEn = translated.descriptionEn
	project.DetailedDescriptionAr = input.DetailedDescriptionAr
	project.DetailedDescriptionEn = translated.detailedEn
	project.Technologies = input.Technologies
	project.Link = input.Link

	var stored []string
	txErr := s.db.Transaction(func(tx database.Database) error {
		if primary != nil {
			name := uploadFilename(project.ID, primary.Filename)
			if err := s.storage.Store(ctx, name, primary.Content); err != nil {
				return errs.NewInternalErrorWithCause("failed to store primary image", err)
			}
			stored = append(stored, name)
			project.Image = name
		}

		if err := tx.ProjectRepo().Update(project); err != nil {
			return errs.NewDatabaseError("update", "project", err)
		}

		for i, img := range additional {
			name := uploadFilename(project.ID, img.Filename)
			if err := s.storage.Store(ctx, name, img.Content); err != nil {
				return errs.NewInternalErrorWithCause("failed to store gallery image", err)
			}
			stored = append(stored, name)

			order := 0
			if img.SortOrder != nil {
				order = *img.SortOrder
			}
			row := &models.ProjectImage{
				ProjectID: project.ID,
				ImagePath: name,
				CaptionAr: img.CaptionAr,
				CaptionEn: captions[i],
				SortOrder: order,
			}
			if err := tx.ProjectImageRepo().Add(row); err != nil {
				return errs.NewDatabaseError("create", "project image", err)
			}
		}
		return nil
	})
	if txErr != nil {
		s.removeStored(ctx, stored)
		return nil, txErr
	}

	return project, nil
}

// DeleteProject removes the project and, in the same transaction, every
// gallery row it owns. File cleanup happens after the commit and is
// best-effort: a failed removal is logged, not reported.
func (s *ContentService) DeleteProject(ctx context.Context, id uint) error {
	project, err := s.db.ProjectRepo().FindByID(id)
	if err != nil {
		return err
	}

	images, err := s.db.ProjectImageRepo().FindByProjectID(id)
	if err != nil {
		return errs.NewDatabaseError("find images for", "project", err)
	}

	txErr := s.db.Transaction(func(tx database.Database) error {
		if err := tx.ProjectImageRepo().DeleteByProjectID(id); err != nil {
			return err
		}
		return tx.ProjectRepo().Delete(id)
	})
	if txErr != nil {
		return errs.NewTransactionError("delete project", txErr)
	}

	var paths []string
	for _, img := range images {
		paths = append(paths, img.ImagePath)
	}
	if project.Image != "" {
		paths = append(paths, project.Image)
	}
	s.removeStored(ctx, paths)

	return nil
}

// DeleteProjectImage removes one gallery entry. The database row is the
// source of truth: a failed file removal is returned as a non-fatal warning
// while the row delete still goes through. A failed row delete is fatal.
func (s *ContentService) DeleteProjectImage(ctx context.Context, id uint) (warning error, err error) {
	image, err := s.db.ProjectImageRepo().FindByID(id)
	if err != nil {
		return nil, err
	}

	if removeErr := s.storage.Remove(ctx, image.ImagePath); removeErr != nil {
		warning = errs.NewFileStorageWarning(image.ImagePath, removeErr)
		s.logger.Warn().Err(removeErr).Str("path", image.ImagePath).Msg("Failed to remove image file")
	}

	if err := s.db.ProjectImageRepo().Delete(id); err != nil {
		return warning, errs.NewDatabaseError("delete", "project image", err)
	}
	return warning, nil
}

// ListProjects returns every project ordered by ascending id.
func (s *ContentService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.db.ProjectRepo().FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// GetProject returns the project with its ordered gallery and the prev/next
// neighbors for detail-page navigation.
func (s *ContentService) GetProject(ctx context.Context, id uint) (*ProjectDetail, error) {
	project, err := s.db.ProjectRepo().FindByID(id)
	if err != nil {
		return nil, err
	}

	images, err := s.db.ProjectImageRepo().FindByProjectID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find images for", "project", err)
	}

	all, err := s.db.ProjectRepo().FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	prev, next := Neighbors(all, id)

	return &ProjectDetail{
		Project: project,
		Images:  images,
		Prev:    prev,
		Next:    next,
	}, nil
}

// Neighbors returns the previous and next project relative to id in a list
// already ordered by ascending id. Either side is nil at a boundary, and
// both are nil when id is not in the list. Catalogs are small, so the linear
// scan is fine.
func Neighbors(projects []*models.Project, id uint) (prev, next *models.Project) {
	for i, p := range projects {
		if p.ID != id {
			continue
		}
		if i > 0 {
			prev = projects[i-1]
		}
		if i < len(projects)-1 {
			next = projects[i+1]
		}
		return prev, next
	}
	return nil, nil
}

// ListSocialLinks returns all social links.
func (s *ContentService) ListSocialLinks(ctx context.Context) ([]*models.SocialLink, error) {
	links, err := s.db.SocialLinkRepo().FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "social links", err)
	}
	return links, nil
}

// SaveSocialLink creates the link when its ID is zero and updates the
// existing row otherwise.
func (s *ContentService) SaveSocialLink(ctx context.Context, link *models.SocialLink) error {
	switch {
	case strings.TrimSpace(link.Name) == "":
		return errs.NewMissingRequiredFieldError("name")
	case strings.TrimSpace(link.URL) == "":
		return errs.NewMissingRequiredFieldError("url")
	case strings.TrimSpace(link.Icon) == "":
		return errs.NewMissingRequiredFieldError("icon")
	}

	if link.ID == 0 {
		if err := s.db.SocialLinkRepo().Add(link); err != nil {
			return errs.NewDatabaseError("create", "social link", err)
		}
		return nil
	}

	if _, err := s.db.SocialLinkRepo().FindByID(link.ID); err != nil {
		return err
	}
	if err := s.db.SocialLinkRepo().Update(link); err != nil {
		return errs.NewDatabaseError("update", "social link", err)
	}
	return nil
}

// DeleteSocialLink removes one link, failing with NotFound when absent.
func (s *ContentService) DeleteSocialLink(ctx context.Context, id uint) error {
	if _, err := s.db.SocialLinkRepo().FindByID(id); err != nil {
		return err
	}
	if err := s.db.SocialLinkRepo().Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "social link", err)
	}
	return nil
}

// AboutMe returns the bio, or nil when it has never been saved.
func (s *ContentService) AboutMe(ctx context.Context) (*models.AboutMe, error) {
	about, err := s.db.AboutMeRepo().First()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "about me", err)
	}
	return about, nil
}

// SaveAboutMe retranslates and stores the bio, creating the singleton row on
// the first save.
func (s *ContentService) SaveAboutMe(ctx context.Context, textAr string) (*models.AboutMe, error) {
	if strings.TrimSpace(textAr) == "" {
		return nil, errs.NewMissingRequiredFieldError("text_ar")
	}

	textEn, err := s.translator.Translate(ctx, textAr, "ar", "en")
	if err != nil {
		return nil, errs.NewTranslationError("text_ar", err)
	}

	about, err := s.db.AboutMeRepo().First()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "about me", err)
	}
	if about == nil {
		about = &models.AboutMe{}
	}
	about.TextAr = textAr
	about.TextEn = textEn

	if err := s.db.AboutMeRepo().Save(about); err != nil {
		return nil, errs.NewDatabaseError("save", "about me", err)
	}
	return about, nil
}

type translatedFields struct {
	titleEn       string
	descriptionEn string
	detailedEn    string
}

func (s *ContentService) translateProjectFields(ctx context.Context, input ProjectInput) (translatedFields, error) {
	var out translatedFields
	var err error

	if out.titleEn, err = s.translator.Translate(ctx, input.TitleAr, "ar", "en"); err != nil {
		return out, errs.NewTranslationError("title_ar", err)
	}
	if out.descriptionEn, err = s.translator.Translate(ctx, input.DescriptionAr, "ar", "en"); err != nil {
		return out, errs.NewTranslationError("description_ar", err)
	}
	if out.detailedEn, err = s.translator.Translate(ctx, input.DetailedDescriptionAr, "ar", "en"); err != nil {
		return out, errs.NewTranslationError("detailed_description_ar", err)
	}
	return out, nil
}

func (s *ContentService) translateCaptions(ctx context.Context, uploads []ImageUpload) ([]string, error) {
	captions := make([]string, len(uploads))
	for i, img := range uploads {
		if img.CaptionAr == "" {
			continue
		}
		captionEn, err := s.translator.Translate(ctx, img.CaptionAr, "ar", "en")
		if err != nil {
			return nil, errs.NewTranslationError("caption_ar", err)
		}
		captions[i] = captionEn
	}
	return captions, nil
}

func (s *ContentService) removeStored(ctx context.Context, paths []string) {
	for _, p := range paths {
		if err := s.storage.Remove(ctx, p); err != nil {
			s.logger.Warn().Err(err).Str("path", p).Msg("Failed to remove stored file")
		}
	}
}

func validateProjectInput(input ProjectInput) error {
	if strings.TrimSpace(input.TitleAr) == "" {
		return errs.NewMissingRequiredFieldError("title_ar")
	}
	if strings.TrimSpace(input.DescriptionAr) == "" {
		return errs.NewMissingRequiredFieldError("description_ar")
	}
	return nil
}

// uploadFilename builds a collision-resistant stored name from the owning
// project id, a fresh UUID and the original extension. The UUID replaces the
// legacy timestamp+index scheme, which could collide within one second.
func uploadFilename(projectID uint, original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	return fmt.Sprintf("project_%d_%s%s", projectID, uuid.New().String(), ext)
}

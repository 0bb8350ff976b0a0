package models

// ProjectImage is one entry in a project's gallery. SortOrder determines the
// display sequence; ties are broken by id so insertion order survives.
// "order" is a SQL keyword, hence the sort_order column name.
type ProjectImage struct {
	ID        uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID uint   `json:"project_id" db:"project_id" gorm:"not null;index:idx_project_image_project_id"`
	ImagePath string `json:"image_path" db:"image_path" gorm:"type:varchar(256);not null"`
	CaptionAr string `json:"caption_ar,omitempty" db:"caption_ar" gorm:"type:varchar(256)"`
	CaptionEn string `json:"caption_en,omitempty" db:"caption_en" gorm:"type:varchar(256)"`
	SortOrder int    `json:"order" db:"sort_order" gorm:"not null;default:0"`
}

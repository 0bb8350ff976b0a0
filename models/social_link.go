package models

// SocialLink is a footer/header link managed through the admin forms.
// Icon holds a CSS icon identifier, e.g. "fab fa-facebook".
type SocialLink struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" db:"name" gorm:"type:varchar(50);not null"`
	URL  string `json:"url" db:"url" gorm:"type:varchar(255);not null"`
	Icon string `json:"icon" db:"icon" gorm:"type:varchar(100);not null"`
}

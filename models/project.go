package models

import "time"

// Project is a portfolio entry. The Arabic columns are the source of truth;
// every English column is derived from its Arabic counterpart by the
// translation collaborator at write time and regenerated on every update.
type Project struct {
	ID                    uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	TitleAr               string    `json:"title_ar" db:"title_ar" gorm:"type:varchar(128);not null"`
	TitleEn               string    `json:"title_en" db:"title_en" gorm:"type:varchar(128)"`
	DescriptionAr         string    `json:"description_ar" db:"description_ar" gorm:"type:text;not null"`
	DescriptionEn         string    `json:"description_en" db:"description_en" gorm:"type:text"`
	DetailedDescriptionAr string    `json:"detailed_description_ar" db:"detailed_description_ar" gorm:"type:text"`
	DetailedDescriptionEn string    `json:"detailed_description_en" db:"detailed_description_en" gorm:"type:text"`
	Image                 string    `json:"image,omitempty" db:"image" gorm:"type:varchar(256)"`
	Link                  string    `json:"link,omitempty" db:"link" gorm:"type:varchar(256)"`
	Technologies          string    `json:"technologies,omitempty" db:"technologies" gorm:"type:varchar(512)"`
	CreatedAt             time.Time `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime"`

	Images []ProjectImage `json:"images,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

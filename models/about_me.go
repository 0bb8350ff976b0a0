package models

// AboutMe is a singleton by convention: the first row is the bio, edits
// rewrite that row and it is created lazily on the first save. No uniqueness
// constraint enforces this.
type AboutMe struct {
	ID     uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	TextAr string `json:"text_ar" db:"text_ar" gorm:"type:text;not null;default:''"`
	TextEn string `json:"text_en" db:"text_en" gorm:"type:text;not null;default:''"`
}

package models

// User is the single admin account. It is provisioned out-of-band (see the
// -provision-admin flag in main) and never managed through the API.
type User struct {
	ID           uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" db:"username" gorm:"type:varchar(64);not null;uniqueIndex"`
	PasswordHash string `json:"-" db:"password_hash" gorm:"type:varchar(128);not null"`
}

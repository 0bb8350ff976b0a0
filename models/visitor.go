package models

import "time"

// Visitor is one public page view. Rows are append-only: never updated,
// never deleted. Duration is kept for schema compatibility with the legacy
// analytics table and always stays 0.
type Visitor struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	IP        string    `json:"ip" db:"ip" gorm:"type:varchar(64)"`
	VisitTime time.Time `json:"visit_time" db:"visit_time" gorm:"index"`
	Duration  int       `json:"duration" db:"duration" gorm:"not null;default:0"`
	Lang      string    `json:"lang" db:"lang" gorm:"type:varchar(8);default:'ar'"`
}

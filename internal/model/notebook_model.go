package model

import (
	"time"
)

type Notebook struct {
	Id          uint   `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	Filename    string `gorm:"type:varchar(200);not null"`
	// FilePath is empty for externally hosted notebooks (ExternalURL set).
	FilePath    string    `gorm:"type:varchar(500);not null;default:''"`
	ExternalURL string    `gorm:"type:varchar(500)"`
	AuthorName  string    `gorm:"type:varchar(120)"`
	Tags        string    `gorm:"type:varchar(500)"` // comma-separated, stored verbatim
	IsPublic    bool      `gorm:"not null;default:true"`
	UserId      uint      `gorm:"not null;index"`
	Views       int       `gorm:"not null;default:0"`
	Likes       int       `gorm:"not null;default:0"` // schema only; nothing increments it
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Notebook) TableName() string {
	return "notebooks"
}

package model

import (
	"time"
)

type User struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

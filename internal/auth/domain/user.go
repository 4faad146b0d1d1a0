package domain

import "time"

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Phone        string    `json:"phone" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"` // Never return password hash in JSON
	VIP          bool      `json:"vip" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
}

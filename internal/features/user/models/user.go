package models

import "time"

// User is an account known to the platform, created lazily from Telegram
// identity on first contact.
type User struct {
	ID         string    `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Username   string    `json:"username"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
}

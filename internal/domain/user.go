package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	Active         bool      `json:"active"`
	RegisteredAt   time.Time `json:"registered_at"`
}

func (u User) Key() string { return u.ID }

func (u User) WithKey(id string) User {
	u.ID = id
	return u
}

// Customer returns the snapshot copied into a hold.
func (u User) Customer() Customer {
	return Customer{
		UserID:         u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		TelegramChatID: u.TelegramChatID,
	}
}

type CreateUserInput struct {
	Email          string
	Name           string
	Phone          string
	TelegramChatID *int64
}

// UpdateUserInput carries optional changes; nil fields are left untouched.
type UpdateUserInput struct {
	Email          *string
	Name           *string
	Phone          *string
	TelegramChatID *int64
}

// Customer is a point-in-time copy of the user placing a hold.
type Customer struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

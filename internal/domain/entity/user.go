package entity

import "time"

// User usuário do painel administrativo.
type User struct {
	ID           string // UUID
	Username     string
	PasswordHash string // bcrypt
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

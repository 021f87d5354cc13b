package models

type Admin struct {
	Username     string `json:"username" db:"username"`
	Name         string `json:"name" db:"name"`
	PasswordHash string `json:"-" db:"password_hash"`
}

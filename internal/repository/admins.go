package repository

import (
	"context"
	"errors"

	"sifted_back_end/internal/database"
	"sifted_back_end/internal/models"

	"github.com/gocql/gocql"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (models.Admin, error)
}

type ScyllaAdminRepository struct{}

func NewScyllaAdminRepository() *ScyllaAdminRepository {
	return &ScyllaAdminRepository{}
}

func (r *ScyllaAdminRepository) GetByUsername(ctx context.Context, username string) (models.Admin, error) {
	session, err := database.GetAdminsSession()
	if err != nil {
		return models.Admin{}, err
	}

	var admin models.Admin
	err = session.Query(`SELECT username, name, password_hash FROM admins WHERE username = ?`, username).
		WithContext(ctx).
		Scan(&admin.Username, &admin.Name, &admin.PasswordHash)
	if errors.Is(err, gocql.ErrNotFound) {
		return models.Admin{}, ErrAdminNotFound
	}
	if err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

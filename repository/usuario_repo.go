package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kelydev/apiCitas/models"
)

// UsuarioRepository is the data access the user handlers depend on.
type UsuarioRepository interface {
	CreateUsuario(ctx context.Context, u *models.Usuario) error
	GetUsuarios(ctx context.Context) ([]models.Usuario, error)
	GetUsuariosPage(ctx context.Context, limit, offset int) ([]models.Usuario, int64, error)
	GetUsuarioByEmail(ctx context.Context, email string) (*models.Usuario, error)
	UpdateUsuario(ctx context.Context, email string, cambios models.ActualizacionUsuario) (*models.Usuario, error)
	DeleteUsuario(ctx context.Context, email string) error
}

// UsuarioStore implements UsuarioRepository with gorm. Every call opens a
// context-scoped session that ends with the request.
type UsuarioStore struct {
	db *gorm.DB
}

var _ UsuarioRepository = (*UsuarioStore)(nil)

// NewUsuarioStore returns a UsuarioStore over db.
func NewUsuarioStore(db *gorm.DB) *UsuarioStore {
	return &UsuarioStore{db: db}
}

// CreateUsuario inserts a user, rejecting an email that is already taken.
// The count gives the common case a clean answer; the unique index on email
// settles concurrent creates.
func (s *UsuarioStore) CreateUsuario(ctx context.Context, u *models.Usuario) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Usuario{}).Where("email = ?", u.Email).Count(&n).Error; err != nil {
			return fmt.Errorf("error checking for existing user: %w", err)
		}
		if n > 0 {
			return ErrDuplicateEmail
		}
		if err := tx.Create(u).Error; err != nil {
			return insertError(err)
		}
		return nil
	})
}

// GetUsuarios returns every user ordered by id.
func (s *UsuarioStore) GetUsuarios(ctx context.Context) ([]models.Usuario, error) {
	usuarios := []models.Usuario{}
	if err := s.db.WithContext(ctx).Order("id").Find(&usuarios).Error; err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	return usuarios, nil
}

// GetUsuariosPage returns one page of users plus the total row count.
func (s *UsuarioStore) GetUsuariosPage(ctx context.Context, limit, offset int) ([]models.Usuario, int64, error) {
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Usuario{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("error querying total user count: %w", err)
	}

	usuarios := []models.Usuario{}
	if err := db.Order("id").Limit(limit).Offset(offset).Find(&usuarios).Error; err != nil {
		return nil, 0, fmt.Errorf("error querying users page: %w", err)
	}
	return usuarios, total, nil
}

// GetUsuarioByEmail returns the first user with the email, or ErrNotFound.
func (s *UsuarioStore) GetUsuarioByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	return firstByEmail(s.db.WithContext(ctx), email)
}

// UpdateUsuario changes nombre and apellido of the user with the email.
func (s *UsuarioStore) UpdateUsuario(ctx context.Context, email string, cambios models.ActualizacionUsuario) (*models.Usuario, error) {
	var actualizado *models.Usuario
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := firstByEmail(tx, email)
		if err != nil {
			return err
		}
		err = tx.Model(u).Updates(map[string]any{
			"nombre":   cambios.Nombre,
			"apellido": cambios.Apellido,
		}).Error
		if err != nil {
			return fmt.Errorf("error updating user: %w", err)
		}
		actualizado = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// DeleteUsuario removes the user with the email, or returns ErrNotFound.
func (s *UsuarioStore) DeleteUsuario(ctx context.Context, email string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := firstByEmail(tx, email)
		if err != nil {
			return err
		}
		if err := tx.Delete(u).Error; err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		return nil
	})
}

// insertError maps a unique index violation (translated by gorm) to ErrDuplicateEmail.
func insertError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return fmt.Errorf("error inserting user: %w", err)
}

func firstByEmail(db *gorm.DB, email string) (*models.Usuario, error) {
	var u models.Usuario
	if err := db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}
	return &u, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kelydev/apiCitas/models"
)

// CitaRepository is the data access the quote handlers depend on.
type CitaRepository interface {
	GetAllCitas(ctx context.Context) ([]models.Cita, error)
	CreateCita(ctx context.Context, c *models.Cita) error
}

// CitaStore implements CitaRepository on top of a PostgreSQL pool.
type CitaStore struct {
	db *sql.DB
}

var _ CitaRepository = (*CitaStore)(nil)

// NewCitaStore returns a CitaStore over db.
func NewCitaStore(db *sql.DB) *CitaStore {
	return &CitaStore{db: db}
}

// GetAllCitas reads the whole "Citas" table in insertion order.
func (s *CitaStore) GetAllCitas(ctx context.Context) ([]models.Cita, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT cita, categoria FROM "Citas" ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying citas: %w", err)
	}
	defer rows.Close()

	citas := []models.Cita{}
	for rows.Next() {
		var c models.Cita
		if err := rows.Scan(&c.Texto, &c.Categoria); err != nil {
			return nil, fmt.Errorf("error scanning cita row: %w", err)
		}
		citas = append(citas, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating through cita rows: %w", err)
	}
	return citas, nil
}

// CreateCita inserts a new quote.
func (s *CitaStore) CreateCita(ctx context.Context, c *models.Cita) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO "Citas" (cita, categoria) VALUES ($1, $2)`, c.Texto, c.Categoria)
	if err != nil {
		return fmt.Errorf("error inserting cita: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PhotoRepository struct {
	pool *pgxpool.Pool
}

func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	query := `INSERT INTO photos (title, caption, image_url, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, photo.Title, photo.Caption, photo.ImageURL, photo.UserID).
		Scan(&photo.ID, &photo.CreatedAt, &photo.UpdatedAt)
}

func (r *PhotoRepository) List(ctx context.Context) ([]models.Photo, error) {
	query := `SELECT id, title, caption, image_url, user_id, created_at, updated_at
		FROM photos ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]models.Photo, 0)
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.Title, &p.Caption, &p.ImageURL, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *PhotoRepository) GetWithOwner(ctx context.Context, id int) (*models.PhotoDetail, error) {
	var d models.PhotoDetail
	query := `SELECT p.id, p.title, p.caption, p.image_url, p.created_at, p.updated_at,
			u.id, u.email, u.username
		FROM photos p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&d.ID, &d.Title, &d.Caption, &d.ImageURL, &d.CreatedAt, &d.UpdatedAt,
			&d.User.ID, &d.User.Email, &d.User.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/models"
)

type PhotoRepository struct {
	db *sql.DB
}

func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO photos (title, caption, image_url, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		photo.Title, photo.Caption, photo.ImageURL, photo.UserID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	photo.ID = int(id)
	photo.CreatedAt = now
	photo.UpdatedAt = now
	return nil
}

func (r *PhotoRepository) List(ctx context.Context) ([]models.Photo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, caption, image_url, user_id, created_at, updated_at
		 FROM photos ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	defer rows.Close()

	photos := make([]models.Photo, 0)
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.Title, &p.Caption, &p.ImageURL, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *PhotoRepository) GetWithOwner(ctx context.Context, id int) (*models.PhotoDetail, error) {
	d := &models.PhotoDetail{}
	err := r.db.QueryRowContext(ctx,
		`SELECT p.id, p.title, p.caption, p.image_url, p.created_at, p.updated_at,
			u.id, u.email, u.username
		 FROM photos p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.id = ?`, id,
	).Scan(&d.ID, &d.Title, &d.Caption, &d.ImageURL, &d.CreatedAt, &d.UpdatedAt,
		&d.User.ID, &d.User.Email, &d.User.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("query photo by id: %w", err)
	}
	return d, nil
}

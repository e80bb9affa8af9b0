// internal/db/photos.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type Photo struct {
	ID           int64
	Title        string
	ImagePath    string
	ThumbPath    string
	OriginalName string
	CreatedAt    time.Time
}

type CreatePhotoParams struct {
	Title        string
	ImagePath    string
	ThumbPath    string
	OriginalName string
}

const createPhotoSQL = `
INSERT INTO photos (title, image_path, thumb_path, original_name)
VALUES (?, ?, ?, ?)
RETURNING id, title, image_path, thumb_path, original_name, created_at`

// CreatePhoto inserts a photo row using the provided querier, which may be
// the database itself or an open transaction.
func CreatePhoto(ctx context.Context, q Querier, params CreatePhotoParams) (Photo, error) {
	row := q.QueryRowContext(ctx, createPhotoSQL,
		params.Title, params.ImagePath, params.ThumbPath, params.OriginalName)
	return scanPhoto(row)
}

// ListPhotos returns all photos in insertion order.
func (db *DB) ListPhotos(ctx context.Context) ([]Photo, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, title, image_path, thumb_path, original_name, created_at
		 FROM photos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	var photos []Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.Title, &p.ImagePath, &p.ThumbPath, &p.OriginalName, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}

// GetPhotoByID returns a single photo. sql.ErrNoRows is returned unwrapped
// so callers can branch on it.
func (db *DB) GetPhotoByID(ctx context.Context, id int64) (Photo, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, title, image_path, thumb_path, original_name, created_at
		 FROM photos WHERE id = ?`, id)
	return scanPhoto(row)
}

// UpdatePhotoTitle changes a photo's title. Returns sql.ErrNoRows when the
// photo does not exist.
func (db *DB) UpdatePhotoTitle(ctx context.Context, id int64, title string) error {
	result, err := db.ExecContext(ctx, `UPDATE photos SET title = ? WHERE id = ?`, title, id)
	if err != nil {
		return fmt.Errorf("update photo title: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update photo title: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeletePhoto removes a photo row. Returns sql.ErrNoRows when the photo
// does not exist.
func (db *DB) DeletePhoto(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func scanPhoto(row *sql.Row) (Photo, error) {
	var p Photo
	if err := row.Scan(&p.ID, &p.Title, &p.ImagePath, &p.ThumbPath, &p.OriginalName, &p.CreatedAt); err != nil {
		return Photo{}, err
	}
	return p, nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/whitecollar/shopgallery/internal/domain"
)

type PictureStore struct {
	db *sql.DB
}

func NewPictureStore(db *sql.DB) *PictureStore {
	return &PictureStore{db: db}
}

// Create inserts a picture under its explicit (shop_id, id) key. Id assignment
// is the admission coordinator's job; the store never auto-increments.
func (s *PictureStore) Create(ctx context.Context, p *domain.Picture) (*domain.Picture, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pictures (shop_id, id, name, author, price, entry_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.ShopID, p.ID, p.Name, p.Author, p.Price, p.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create picture: %w", err)
	}

	return s.GetByID(ctx, p.ShopID, p.ID)
}

func (s *PictureStore) GetByID(ctx context.Context, shopID, id int64) (*domain.Picture, error) {
	picture := &domain.Picture{}
	err := s.db.QueryRowContext(ctx, `
		SELECT shop_id, id, name, author, price, entry_date FROM pictures
		WHERE shop_id = ? AND id = ?
	`, shopID, id).Scan(&picture.ShopID, &picture.ID, &picture.Name, &picture.Author, &picture.Price, &picture.EntryDate)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get picture: %w", err)
	}

	return picture, nil
}

func (s *PictureStore) ListByShop(ctx context.Context, shopID int64) ([]*domain.Picture, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT shop_id, id, name, author, price, entry_date FROM pictures
		WHERE shop_id = ? ORDER BY id ASC
	`, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pictures: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var pictures []*domain.Picture
	for rows.Next() {
		picture := &domain.Picture{}
		if err := rows.Scan(&picture.ShopID, &picture.ID, &picture.Name, &picture.Author, &picture.Price, &picture.EntryDate); err != nil {
			return nil, fmt.Errorf("failed to scan picture: %w", err)
		}
		pictures = append(pictures, picture)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pictures: %w", err)
	}

	return pictures, nil
}

// MaxIDByShop returns the highest picture id the shop currently holds, or 0
// when it holds none. Deleted ids are not remembered: after the
// highest-numbered picture is removed the next admission may reuse its id.
func (s *PictureStore) MaxIDByShop(ctx context.Context, shopID int64) (int64, error) {
	var maxID int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(id), 0) FROM pictures WHERE shop_id = ?
	`, shopID).Scan(&maxID)
	if err != nil {
		return 0, fmt.Errorf("failed to get max picture id: %w", err)
	}

	return maxID, nil
}

// DeleteByShop removes every picture the shop holds in one statement.
// Pictures of other shops are untouched.
func (s *PictureStore) DeleteByShop(ctx context.Context, shopID int64) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM pictures WHERE shop_id = ?
	`, shopID)
	if err != nil {
		return fmt.Errorf("failed to delete pictures: %w", err)
	}

	return nil
}

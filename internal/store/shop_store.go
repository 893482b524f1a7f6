package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/whitecollar/shopgallery/internal/domain"
)

type ShopStore struct {
	db *sql.DB
}

func NewShopStore(db *sql.DB) *ShopStore {
	return &ShopStore{db: db}
}

func (s *ShopStore) Create(ctx context.Context, name string, capacity int64) (*domain.Shop, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO shops (name, capacity) VALUES (?, ?)
	`, name, capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ShopStore) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	shop := &domain.Shop{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, capacity FROM shops WHERE id = ?
	`, id).Scan(&shop.ID, &shop.Name, &shop.Capacity)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return shop, nil
}

func (s *ShopStore) List(ctx context.Context) ([]*domain.Shop, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, capacity FROM shops ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer rows.Close()

	var shops []*domain.Shop
	for rows.Next() {
		shop := &domain.Shop{}
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.Capacity); err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shops: %w", err)
	}

	return shops, nil
}

// CurrentOccupancy counts the pictures the shop holds right now. It reflects
// every committed admission at call time.
func (s *ShopStore) CurrentOccupancy(ctx context.Context, shopID int64) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM pictures WHERE shop_id = ?
	`, shopID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pictures: %w", err)
	}

	return count, nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/whitecollar/shopgallery/internal/domain"
)

// AnonymousAuthor is stored when a picture is submitted with an empty author.
const AnonymousAuthor = "ANONYMOUS"

// shopRepository is the subset of store.ShopStore that GalleryService requires.
type shopRepository interface {
	Create(ctx context.Context, name string, capacity int64) (*domain.Shop, error)
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
	List(ctx context.Context) ([]*domain.Shop, error)
	CurrentOccupancy(ctx context.Context, shopID int64) (int64, error)
}

// pictureRepository is the subset of store.PictureStore that GalleryService requires.
type pictureRepository interface {
	Create(ctx context.Context, p *domain.Picture) (*domain.Picture, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Picture, error)
	MaxIDByShop(ctx context.Context, shopID int64) (int64, error)
	DeleteByShop(ctx context.Context, shopID int64) error
}

// GalleryService coordinates shops and the pictures they hold. Its one piece
// of real logic is capacity-bounded admission: a picture enters a shop only
// while the shop has free capacity, and picture ids form a per-shop sequence.
type GalleryService struct {
	shopStore    shopRepository
	pictureStore pictureRepository
	locks        *shopLocks
	now          func() time.Time
	logger       *slog.Logger
}

func NewGalleryService(shopStore shopRepository, pictureStore pictureRepository, logger *slog.Logger) *GalleryService {
	return &GalleryService{
		shopStore:    shopStore,
		pictureStore: pictureStore,
		locks:        newShopLocks(),
		now:          time.Now,
		logger:       logger,
	}
}

func (s *GalleryService) CreateShop(ctx context.Context, name string, capacity int64) (*domain.Shop, error) {
	shop, err := s.shopStore.Create(ctx, name, capacity)
	if err != nil {
		return nil, err
	}
	s.logger.Info("shop created", "shop_id", shop.ID, "name", shop.Name, "capacity", shop.Capacity)
	return shop, nil
}

func (s *GalleryService) ListShops(ctx context.Context) ([]*domain.Shop, error) {
	return s.shopStore.List(ctx)
}

// AdmitPicture decides whether the shop has room for the candidate and, if
// so, assigns its id and persists it. The decision is strict: a shop whose
// occupancy equals its capacity is full, and a capacity of 0 never admits.
//
// The id is 1 + the highest id the shop currently holds (1 for an empty
// shop). The sequence is per shop and gap tolerant; deleting the
// highest-numbered picture lets its id be handed out again.
//
// The whole read-decide-write sequence runs under the shop's lock so two
// concurrent admissions cannot both observe the same occupancy or id.
func (s *GalleryService) AdmitPicture(ctx context.Context, shopID int64, candidate *domain.Picture) (*domain.Picture, *domain.Shop, error) {
	mu := s.locks.acquire(shopID)
	defer mu.Unlock()

	shop, err := s.shopStore.GetByID(ctx, shopID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get shop: %w", err)
	}
	if shop == nil {
		return nil, nil, &ShopNotFoundError{ShopID: shopID}
	}

	occupancy, err := s.shopStore.CurrentOccupancy(ctx, shopID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get occupancy: %w", err)
	}
	if shop.Capacity <= occupancy {
		s.logger.Info("admission rejected",
			"shop_id", shopID, "capacity", shop.Capacity, "occupancy", occupancy)
		return nil, nil, &CapacityExceededError{ShopID: shopID, Capacity: shop.Capacity, Occupancy: occupancy}
	}

	maxID, err := s.pictureStore.MaxIDByShop(ctx, shopID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get max picture id: %w", err)
	}

	candidate.ID = maxID + 1
	candidate.ShopID = shopID
	if candidate.EntryDate.IsZero() {
		candidate.EntryDate = s.now()
	}
	if candidate.Author == "" {
		candidate.Author = AnonymousAuthor
	}

	picture, err := s.pictureStore.Create(ctx, candidate)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to persist picture: %w", err)
	}

	s.logger.Info("picture admitted",
		"shop_id", shopID, "picture_id", picture.ID, "occupancy", occupancy+1)
	return picture, shop, nil
}

// ListPicturesByShop returns the shop and every picture it holds. The slice
// is empty (not an error) for a shop without pictures.
func (s *GalleryService) ListPicturesByShop(ctx context.Context, shopID int64) (*domain.Shop, []*domain.Picture, error) {
	shop, err := s.shopStore.GetByID(ctx, shopID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get shop: %w", err)
	}
	if shop == nil {
		return nil, nil, &ShopNotFoundError{ShopID: shopID}
	}

	pictures, err := s.pictureStore.ListByShop(ctx, shopID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list pictures: %w", err)
	}

	return shop, pictures, nil
}

// RemovePictures deletes every picture the shop holds in one bulk operation.
// The shop record itself and other shops' pictures are untouched. It takes
// the shop's lock so a concurrent admission cannot slot in between the shop
// lookup and the delete.
func (s *GalleryService) RemovePictures(ctx context.Context, shopID int64) error {
	mu := s.locks.acquire(shopID)
	defer mu.Unlock()

	shop, err := s.shopStore.GetByID(ctx, shopID)
	if err != nil {
		return fmt.Errorf("failed to get shop: %w", err)
	}
	if shop == nil {
		return &ShopNotFoundError{ShopID: shopID}
	}

	if err := s.pictureStore.DeleteByShop(ctx, shopID); err != nil {
		return fmt.Errorf("failed to delete pictures: %w", err)
	}

	s.logger.Info("pictures removed", "shop_id", shopID)
	return nil
}

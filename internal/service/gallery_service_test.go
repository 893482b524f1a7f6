package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whitecollar/shopgallery/internal/db"
	"github.com/whitecollar/shopgallery/internal/domain"
	"github.com/whitecollar/shopgallery/internal/store"
)

func newTestGallery(t *testing.T) *GalleryService {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGalleryService(store.NewShopStore(d), store.NewPictureStore(d), logger)
}

func candidate(name string) *domain.Picture {
	return &domain.Picture{Name: name, Author: "Francisco de Goya", Price: 1500}
}

func TestAdmitPictureSequentialIDsUpToCapacity(t *testing.T) {
	svc := newTestGallery(t)
	ctx := context.Background()

	shop, err := svc.CreateShop(ctx, "Downtown", 2)
	require.NoError(t, err)

	first, _, err := svc.AdmitPicture(ctx, shop.ID, candidate("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, _, err := svc.AdmitPicture(ctx, shop.ID, candidate("B"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	_, _, err = svc.AdmitPicture(ctx, shop.ID, candidate("C"))
	var capErr *CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, CodeInsufficientCapacity, capErr.Code())
	assert.Equal(t, int64(2), capErr.Capacity)
	assert.Equal(t, int64(2), capErr.Occupancy)

	// The rejection must not have changed occupancy.
	_, pictures, err := svc.ListPicturesByShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.Len(t, pictures, 2)
}

func TestAdmitPictureZeroCapacityNeverAdmits(t *testing.T) {
	svc := newTestGallery(t)
	ctx := context.Background()

	shop, err := svc.CreateShop(ctx, "Closet", 0)
	require.NoError(t, err)

	_, _, err = svc.AdmitPicture(ctx, shop.ID, candidate("A"))
	var capErr *CapacityExceededError
	assert.ErrorAs(t, err, &capErr)
}

func TestAdmitPicturePerShopNumbering(t *testing.T) {
	svc := newTestGallery(t)
	ctx := context.Background()

	first, err := svc.CreateShop(ctx, "Downtown", 5)
	require.NoError(t, err)
	second, err := svc.CreateShop(ctx, "Uptown", 5)
	require.NoError(t, err)

	a, _, err := svc.AdmitPicture(ctx, first.ID, candidate("A"))
	require.NoError(t, err)
	b, _, err := svc.AdmitPicture(ctx, first.ID, candidate("B"))
	require.NoError(t, err)
	c, _, err := svc.AdmitPicture(ctx, second.ID, candidate("C"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	// The second shop starts its own sequence at 1.
	assert.Equal(t, int64(1), c.ID)
}

func TestAdmitPictureDefaults(t *testing.T) {
	svc := newTestGallery(t)
	ctx := context.Background()

	stamped := time.Date(2026, time.August, 27, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamped }

	shop, err := svc.CreateShop(ctx, "Downtown", 5)
	require.NoError(t, err)

	picture, _, err := svc.AdmitPicture(ctx, shop.ID, &domain.Picture{Name: "Untitled", Price: 10})
	require.NoError(t, err)
	assert.Equal(t, AnonymousAuthor, picture.Author)
	assert.WithinDuration(t, stamped, picture.EntryDate, time.Second)
}

func TestAdmitPictureKeepsSuppliedFields(t *testing.T) {
	svc := newTestGallery(t)
	ctx := context.Background()

	shop, err := svc.CreateShop(ctx, "Downtown", 5)
	require.NoError(t, err)

	supplied := time.Date(2020, time.January, 2, 3, 4, 5, 0, time.UTC)
	picture, _, err := svc.AdmitPicture(ctx, shop.ID, &domain.Picture{
		Name:      "La Lechera de Burdeos",
		Author:    "Francisco de Goya",
		Price:     2000,
		EntryDate: supplied,
	})
	require.NoError(t, err)
	assert.Equal(t, "Francisco de Goya", picture.Author)
	assert.WithinDuration(t, supplied, picture.EntryDate, time.Second)
}

func TestAdmitPictureShopNotFound(t *testing.T) {
	svc := newTestGallery(t)

	_, _, err := svc.AdmitPicture(context.Background(), 99, candidate("A"))
	var notFound *ShopNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(99), notFound.ShopID)
}

func TestAdmitPictureIDRegressionAfterBulkDelete(t *testing.T) {
	svc := newTestGallery(t)
	ctx := context.Background()

	shop, err := svc.CreateShop(ctx, "Downtown", 5)
	require.NoError(t, err)

	_, _, err = svc.AdmitPicture(ctx, shop.ID, candidate("A"))
	require.NoError(t, err)
	_, _, err = svc.AdmitPicture(ctx, shop.ID, candidate("B"))
	require.NoError(t, err)

	require.NoError(t, svc.RemovePictures(ctx, shop.ID))

	// Max-plus-one over the current set: with everything deleted the
	// sequence starts over rather than continuing past the old max.
	picture, _, err := svc.AdmitPicture(ctx, shop.ID, candidate("C"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), picture.ID)
}

func TestRemovePicturesLeavesSiblingsAndShop(t *testing.T) {
	svc := newTestGallery(t)
	ctx := context.Background()

	first, err := svc.CreateShop(ctx, "Downtown", 5)
	require.NoError(t, err)
	second, err := svc.CreateShop(ctx, "Uptown", 5)
	require.NoError(t, err)

	for _, name := range []string{"A", "B", "C"} {
		_, _, err = svc.AdmitPicture(ctx, first.ID, candidate(name))
		require.NoError(t, err)
	}
	_, _, err = svc.AdmitPicture(ctx, second.ID, candidate("D"))
	require.NoError(t, err)

	require.NoError(t, svc.RemovePictures(ctx, first.ID))

	// The shop record survives; only its pictures are gone.
	shop, pictures, err := svc.ListPicturesByShop(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, shop.ID)
	assert.Empty(t, pictures)

	_, pictures, err = svc.ListPicturesByShop(ctx, second.ID)
	require.NoError(t, err)
	assert.Len(t, pictures, 1)
}

func TestRemovePicturesShopNotFound(t *testing.T) {
	svc := newTestGallery(t)

	err := svc.RemovePictures(context.Background(), 99)
	var notFound *ShopNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestListPicturesByShopNotFound(t *testing.T) {
	svc := newTestGallery(t)

	_, _, err := svc.ListPicturesByShop(context.Background(), 99)
	var notFound *ShopNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestConcurrentAdmissionsGetDistinctIDs(t *testing.T) {
	svc := newTestGallery(t)
	ctx := context.Background()

	shop, err := svc.CreateShop(ctx, "Downtown", 5)
	require.NoError(t, err)

	var wg sync.WaitGroup
	ids := make(chan int64, 2)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			picture, _, err := svc.AdmitPicture(ctx, shop.ID, candidate("Concurrent"))
			assert.NoError(t, err)
			if err == nil {
				ids <- picture.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		seen[id] = true
	}
	assert.Equal(t, map[int64]bool{1: true, 2: true}, seen)

	_, pictures, err := svc.ListPicturesByShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.Len(t, pictures, 2)
}

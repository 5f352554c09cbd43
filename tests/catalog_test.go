package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajat-ed/nagadiPOS/internal/dto"
	"github.com/rajat-ed/nagadiPOS/internal/repository"
	"github.com/rajat-ed/nagadiPOS/internal/service"
)

func TestCatalogAddProduct(t *testing.T) {
	reg := newRegister(t)

	resp, err := reg.catalog.Add(context.Background(), dto.AddProductRequest{
		Name:  "Coffee",
		Price: dec("2.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Coffee", resp.Name)
	assert.Equal(t, "2.5", resp.Price.String())
	assert.Len(t, reg.catalog.List(), 1)
}

func TestCatalogRejectsInvalidProduct(t *testing.T) {
	reg := newRegister(t)
	ctx := context.Background()

	_, err := reg.catalog.Add(ctx, dto.AddProductRequest{Name: "   ", Price: dec("2.50")})
	assert.ErrorIs(t, err, service.ErrInvalidProduct)

	_, err = reg.catalog.Add(ctx, dto.AddProductRequest{Name: "Coffee", Price: dec("0")})
	assert.ErrorIs(t, err, service.ErrInvalidProduct)

	_, err = reg.catalog.Add(ctx, dto.AddProductRequest{Name: "Coffee", Price: dec("-1")})
	assert.ErrorIs(t, err, service.ErrInvalidProduct)

	assert.Empty(t, reg.catalog.List())
}

func TestCatalogRejectsDuplicateName(t *testing.T) {
	reg := newRegister(t)
	ctx := context.Background()

	_, err := reg.catalog.Add(ctx, dto.AddProductRequest{Name: "Coffee", Price: dec("2.50")})
	require.NoError(t, err)

	_, err = reg.catalog.Add(ctx, dto.AddProductRequest{Name: "Coffee", Price: dec("3.00")})
	assert.ErrorIs(t, err, service.ErrDuplicateProduct)
	assert.Len(t, reg.catalog.List(), 1)
}

func TestCatalogRemoveProduct(t *testing.T) {
	reg := newRegister(t)
	ctx := context.Background()

	_, err := reg.catalog.Add(ctx, dto.AddProductRequest{Name: "Coffee", Price: dec("2.50")})
	require.NoError(t, err)
	_, err = reg.catalog.Add(ctx, dto.AddProductRequest{Name: "Tea", Price: dec("1.75")})
	require.NoError(t, err)

	require.NoError(t, reg.catalog.Remove(ctx, "Coffee"))
	assert.Len(t, reg.catalog.List(), 1)
	assert.Equal(t, "Tea", reg.catalog.List()[0].Name)

	assert.ErrorIs(t, reg.catalog.Remove(ctx, "Coffee"), service.ErrProductNotFound)
}

func TestCatalogPersistsAcrossRestart(t *testing.T) {
	reg := newRegister(t)
	ctx := context.Background()

	_, err := reg.catalog.Add(ctx, dto.AddProductRequest{Name: "Coffee", Price: dec("2.50")})
	require.NoError(t, err)

	// A second service over the same store sees the saved snapshot.
	reloaded, err := service.NewCatalogService(ctx, repository.NewCatalogRepository(reg.blobs))
	require.NoError(t, err)
	require.Len(t, reloaded.List(), 1)
	assert.Equal(t, "Coffee", reloaded.List()[0].Name)
}

func TestCartSnapshotSurvivesCatalogMutation(t *testing.T) {
	reg := newRegister(t)
	ctx := context.Background()

	_, err := reg.catalog.Add(ctx, dto.AddProductRequest{Name: "Coffee", Price: dec("2.50")})
	require.NoError(t, err)

	product, err := reg.catalog.Find("Coffee")
	require.NoError(t, err)
	reg.cart.Add(product)

	require.NoError(t, reg.catalog.Remove(ctx, "Coffee"))

	items := reg.cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Coffee", items[0].Name)
	assert.Equal(t, "2.5", items[0].Price.String())
}

package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rajat-ed/nagadiPOS/internal/model"
	"github.com/rajat-ed/nagadiPOS/internal/store"
)

// CatalogRepository persists the product catalog as one JSON snapshot under
// the "products" key.
type CatalogRepository interface {
	Load(ctx context.Context) ([]model.Product, error)
	Save(ctx context.Context, products []model.Product) error
}

type catalogRepo struct{ blobs store.BlobStore }

func NewCatalogRepository(blobs store.BlobStore) CatalogRepository {
	return &catalogRepo{blobs: blobs}
}

func (r *catalogRepo) Load(ctx context.Context) ([]model.Product, error) {
	blob, err := r.blobs.Get(ctx, store.KeyProducts)
	if errors.Is(err, store.ErrNotFound) {
		return []model.Product{}, nil
	}
	if err != nil {
		return nil, err
	}
	var products []model.Product
	if err := json.Unmarshal(blob, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *catalogRepo) Save(ctx context.Context, products []model.Product) error {
	blob, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.blobs.Set(ctx, store.KeyProducts, blob)
}

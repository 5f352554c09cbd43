package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rajat-ed/nagadiPOS/internal/dto"
	"github.com/rajat-ed/nagadiPOS/internal/model"
	"github.com/rajat-ed/nagadiPOS/internal/repository"
)

// CatalogService is the business logic contract for the product catalog.
type CatalogService interface {
	Add(ctx context.Context, req dto.AddProductRequest) (*dto.ProductResponse, error)
	Remove(ctx context.Context, name string) error
	List() []model.Product
	Find(name string) (model.Product, error)
}

type catalogService struct {
	mu       sync.RWMutex
	repo     repository.CatalogRepository
	products []model.Product
}

// NewCatalogService loads the persisted catalog and serves it from memory,
// writing the whole snapshot back on every mutation.
func NewCatalogService(ctx context.Context, repo repository.CatalogRepository) (CatalogService, error) {
	products, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &catalogService{repo: repo, products: products}, nil
}

func (s *catalogService) Add(ctx context.Context, req dto.AddProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || !req.Price.IsPositive() {
		return nil, ErrInvalidProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Name is the product identity; a duplicate would make removal and
	// lookup ambiguous.
	for _, p := range s.products {
		if p.Name == name {
			return nil, ErrDuplicateProduct
		}
	}

	next := make([]model.Product, len(s.products), len(s.products)+1)
	copy(next, s.products)
	next = append(next, model.Product{Name: name, Price: req.Price})

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, err
	}
	s.products = next
	return &dto.ProductResponse{Name: name, Price: req.Price}, nil
}

func (s *catalogService) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Product, 0, len(s.products))
	found := false
	for _, p := range s.products {
		if p.Name == name {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return ErrProductNotFound
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}
	s.products = next
	return nil
}

func (s *catalogService) List() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *catalogService) Find(name string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Name == name {
			return p, nil
		}
	}
	return model.Product{}, ErrProductNotFound
}

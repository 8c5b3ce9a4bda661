package services

import (
	"strings"

	"pickl/internal/domain"
	"pickl/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) Liked() ([]domain.Product, error) {
	return s.Prods.Liked()
}

// ToggleLiked flips a product's liked flag; missing ids are a no-op.
func (s *CatalogService) ToggleLiked(id string) (bool, error) {
	return s.Prods.ToggleLiked(id)
}

// AddListing prepends a new listing to the catalog.
func (s *CatalogService) AddListing(p domain.Product) error {
	return s.Prods.Insert(p)
}

// Feed applies the search query and then the category chip over the
// current catalog. Search narrows first; the chip narrows the result.
func (s *CatalogService) Feed(query, category string) ([]domain.Product, error) {
	prods, err := s.Prods.List()
	if err != nil {
		return nil, err
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		narrowed := prods[:0:0]
		for _, p := range prods {
			if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Brand), q) {
				narrowed = append(narrowed, p)
			}
		}
		prods = narrowed
	}

	if category == "" || category == "All" {
		return prods, nil
	}
	out := prods[:0:0]
	for _, p := range prods {
		if matchCategory(p, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matchCategory(p domain.Product, category string) bool {
	hay := strings.ToLower(p.Title + " " + p.Brand + " " + p.Size + " " + p.Category)
	switch category {
	case "Rare Finds":
		return p.Price > 100 || p.Condition == "Rare"
	case "Sneakers":
		return containsAny(hay, "nike", "dunk", "jordan") || p.Category == "Sneakers"
	case "Outerwear":
		return containsAny(hay, "jacket", "hoodie", "trucker", "coat") || p.Category == "Outerwear"
	case "Accessories":
		return p.Category == "Accessories"
	}
	// Unknown chips pass everything, same as All.
	return true
}

func containsAny(hay string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(hay, n) {
			return true
		}
	}
	return false
}

package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/gramsathi/gramsathi-api/internal/model"
)

// ProductFilter narrows a product listing.  Empty fields do not filter.
// Category must match exactly; Location is a case-insensitive substring.
type ProductFilter struct {
	Category string
	Location string
}

// ProductRepo is the in-memory marketplace.  The slice keeps insertion
// order so listings come back oldest first.
type ProductRepo struct {
	mu    sync.RWMutex
	items []model.Product
}

// NewProductRepo returns a repository seeded with the demo listings.
func NewProductRepo() *ProductRepo {
	return &ProductRepo{items: seedProducts()}
}

// List returns copies of all listings matching f (AND semantics).
func (r *ProductRepo) List(f ProductFilter) []model.Product {
	loc := strings.ToLower(f.Location)
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Product, 0, len(r.items))
	for _, p := range r.items {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if loc != "" && !strings.Contains(strings.ToLower(p.Location), loc) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GetByID returns a copy of the listing or ErrProductNotFound.
func (r *ProductRepo) GetByID(id string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.items[i], nil
	}
	return model.Product{}, ErrProductNotFound
}

// Create appends p.  The caller assigns the identifier; CreatedAt is set
// here when zero.
func (r *ProductRepo) Create(p model.Product) model.Product {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	r.items = append(r.items, p)
	r.mu.Unlock()
	return p
}

// SetImage relabels the stored image reference of a listing.
func (r *ProductRepo) SetImage(id, imageURL string) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return model.Product{}, ErrProductNotFound
	}
	url := imageURL
	r.items[i].ImageURL = &url // new pointer, earlier copies keep the old label
	return r.items[i], nil
}

// Categories returns the fixed category catalogue.
func (r *ProductRepo) Categories() []model.Category {
	out := make([]model.Category, len(productCategories))
	copy(out, productCategories)
	return out
}

// indexOf must be called with r.mu held.
func (r *ProductRepo) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

var productCategories = []model.Category{
	{ID: "vegetables", Name: "Vegetables", Icon: "🥕"},
	{ID: "fruits", Name: "Fruits", Icon: "🍎"},
	{ID: "grains", Name: "Grains & Cereals", Icon: "🌾"},
	{ID: "dairy", Name: "Dairy & Honey", Icon: "🥛"},
	{ID: "handicrafts", Name: "Handicrafts", Icon: "🧺"},
	{ID: "spices", Name: "Spices & Herbs", Icon: "🌶️"},
}

func seedProducts() []model.Product {
	img := func(s string) *string { return &s }
	at := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02T15:04:05", s)
		return t
	}
	return []model.Product{
		{
			ID:                "prod-001",
			Name:              "Fresh Tomatoes",
			Description:       "Organic tomatoes grown without pesticides",
			Price:             40.0,
			Category:          "vegetables",
			SellerName:        "Ramesh Kumar",
			SellerPhone:       "+91-9876543210",
			Location:          "Village Rampur, District Meerut",
			ImageURL:          img("/static/images/tomatoes.jpg"),
			QuantityAvailable: 50,
			Unit:              "kg",
			CreatedAt:         at("2024-01-15T10:30:00"),
		},
		{
			ID:                "prod-002",
			Name:              "Pure Honey",
			Description:       "Natural honey from local beekeepers",
			Price:             300.0,
			Category:          "dairy",
			SellerName:        "Sunita Devi",
			SellerPhone:       "+91-9876543211",
			Location:          "Village Madhavpur, District Mathura",
			ImageURL:          img("/static/images/honey.jpg"),
			QuantityAvailable: 20,
			Unit:              "bottle (500ml)",
			CreatedAt:         at("2024-01-14T15:45:00"),
		},
		{
			ID:                "prod-003",
			Name:              "Handwoven Baskets",
			Description:       "Traditional bamboo baskets for storage",
			Price:             150.0,
			Category:          "handicrafts",
			SellerName:        "Mohan Lal",
			SellerPhone:       "+91-9876543212",
			Location:          "Village Bamboo Nagar, District Bareilly",
			ImageURL:          img("/static/images/baskets.jpg"),
			QuantityAvailable: 15,
			Unit:              "piece",
			CreatedAt:         at("2024-01-13T09:20:00"),
		},
	}
}

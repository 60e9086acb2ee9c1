// Package catalog owns the product collection: browse, search, sort,
// view counting, and the seller's create/delete operations. Like the
// other components it keeps the collection in memory and writes it back
// whole after every mutation; it is not safe for concurrent use.
package catalog

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pentoria/pentoria/internal/common"
	"github.com/pentoria/pentoria/internal/logging"
	"github.com/pentoria/pentoria/internal/models"
	"github.com/pentoria/pentoria/internal/store"
	"github.com/pentoria/pentoria/internal/validation"
)

// Sort criteria accepted by SortedBy.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortPopular   = "popular"
)

// NewProduct carries the fields of the upload form. Image must be a
// fully decoded data URL before Create is called.
type NewProduct struct {
	Title         string
	Category      string
	Price         int64
	Condition     models.Condition
	Location      string
	MeetupAddress string
	Description   string
	Image         string
	Featured      bool
}

type Catalog struct {
	store    store.Store
	log      logging.Logger
	products []models.Product
}

// New loads the product collection from the store.
func New(ctx context.Context, s store.Store, log logging.Logger) (*Catalog, error) {
	c := &Catalog{store: s, log: log.With("component", "catalog")}

	data, err := s.Load(ctx, store.KeyProducts)
	if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}
	if data != nil {
		if err := json.Unmarshal(data, &c.products); err != nil {
			return nil, fmt.Errorf("decoding products: %w", err)
		}
	}

	c.log.Debug(ctx, "products loaded", "count", len(c.products))
	return c, nil
}

func (c *Catalog) persist(ctx context.Context, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encoding products: %w", err)
	}
	if err := c.store.Save(ctx, store.KeyProducts, data); err != nil {
		return err
	}
	c.products = products
	return nil
}

func (c *Catalog) nextID() int64 {
	id := time.Now().UnixMilli()
	for _, p := range c.products {
		if p.ID >= id {
			id = p.ID + 1
		}
	}
	return id
}

// All returns the listings in insertion order, newest first.
func (c *Catalog) All() []models.Product {
	return slices.Clone(c.products)
}

// ByID returns a copy of the listing with the given id.
func (c *Catalog) ByID(id int64) (*models.Product, error) {
	idx := c.indexByID(id)
	if idx < 0 {
		return nil, common.ErrNotFound
	}
	out := c.products[idx]
	return &out, nil
}

// BySeller returns the listings owned by the given seller.
func (c *Catalog) BySeller(sellerID int64) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out
}

// Search returns the listings whose title, description, or location
// contains term (case-insensitive), further narrowed to an exact
// category when one is given. An empty term matches everything.
func (c *Catalog) Search(term, category string) []models.Product {
	term = strings.ToLower(term)

	out := make([]models.Product, 0)
	for _, p := range c.products {
		matchesTerm := strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Location), term)
		matchesCategory := category == "" || p.Category == category

		if matchesTerm && matchesCategory {
			out = append(out, p)
		}
	}
	return out
}

// SortedBy returns items ordered by the given criterion. Sorts are
// stable: ties keep their relative order. An unknown criterion returns
// the items unchanged.
func (c *Catalog) SortedBy(criterion string, items []models.Product) []models.Product {
	out := slices.Clone(items)

	switch criterion {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortPopular:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(b.Views, a.Views)
		})
	}
	return out
}

// RecordView increments the listing's view counter and persists it.
// Repeated views by the same caller keep incrementing; there is no
// per-viewer de-duplication.
func (c *Catalog) RecordView(ctx context.Context, id int64) (*models.Product, error) {
	idx := c.indexByID(id)
	if idx < 0 {
		return nil, common.ErrNotFound
	}

	next := slices.Clone(c.products)
	next[idx].Views++
	if err := c.persist(ctx, next); err != nil {
		return nil, err
	}

	out := next[idx]
	return &out, nil
}

// Create lists a new product for the acting seller. The seller identity
// fields are snapshotted onto the listing and not re-validated later.
func (c *Catalog) Create(ctx context.Context, in NewProduct, actor *models.Account) (*models.Product, error) {
	if !actor.IsSeller() {
		return nil, fmt.Errorf("%w: only sellers can upload products", common.ErrForbidden)
	}

	in.Title = validation.Sanitize(in.Title)
	in.Category = validation.Sanitize(in.Category)
	in.Location = validation.Sanitize(in.Location)
	in.MeetupAddress = validation.Sanitize(in.MeetupAddress)
	in.Description = validation.Sanitize(in.Description)

	if in.Title == "" || in.Category == "" || in.Price <= 0 || in.Location == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: please fill in all required fields", common.ErrValidation)
	}

	p := models.Product{
		ID:            c.nextID(),
		Title:         in.Title,
		Category:      in.Category,
		Price:         in.Price,
		Condition:     in.Condition,
		Location:      in.Location,
		MeetupAddress: in.MeetupAddress,
		Description:   in.Description,
		Image:         in.Image,
		SellerID:      actor.ID,
		SellerName:    actor.Name,
		SellerBiz:     actor.BusinessName,
		SellerImage:   actor.Image,
		SellerRating:  actor.Rating,
		Featured:      in.Featured,
		CreatedAt:     time.Now(),
	}

	// newest first
	next := append([]models.Product{p}, c.products...)
	if err := c.persist(ctx, next); err != nil {
		return nil, err
	}

	c.log.Info(ctx, "product listed", "id", p.ID, "seller", actor.ID)
	return &p, nil
}

// Delete removes a listing. Only the owning seller may delete it.
func (c *Catalog) Delete(ctx context.Context, id int64, actor *models.Account) error {
	idx := c.indexByID(id)
	if idx < 0 {
		return common.ErrNotFound
	}
	if actor == nil || c.products[idx].SellerID != actor.ID {
		return fmt.Errorf("%w: you can only delete your own products", common.ErrForbidden)
	}

	next := slices.Delete(slices.Clone(c.products), idx, idx+1)
	if err := c.persist(ctx, next); err != nil {
		return err
	}

	c.log.Info(ctx, "product deleted", "id", id, "seller", actor.ID)
	return nil
}

// StatisticsFor aggregates a seller's listings for the dashboard.
func (c *Catalog) StatisticsFor(sellerID int64) models.SellerStats {
	var stats models.SellerStats
	for _, p := range c.products {
		if p.SellerID != sellerID {
			continue
		}
		stats.Count++
		stats.TotalViews += p.Views
		stats.TotalValue += p.Price
	}
	if stats.Count > 0 {
		stats.AverageViews = stats.TotalViews / int64(stats.Count)
	}
	return stats
}

func (c *Catalog) indexByID(id int64) int {
	return slices.IndexFunc(c.products, func(p models.Product) bool { return p.ID == id })
}

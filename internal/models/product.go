package models

import "time"

// Condition describes the physical state of a listed product.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// Product categories. The set is open ended; these are the ones the
// browse surface offers out of the box.
const (
	CategoryPhones      = "phones"
	CategoryElectronics = "electronics"
	CategoryFashion     = "fashion"
	CategoryVehicles    = "vehicles"
	CategoryHome        = "home"
	CategoryServices    = "services"
	CategoryProperty    = "property"
	CategoryHealth      = "health"
	CategorySports      = "sports"
)

// Product is a marketplace listing. The seller fields are a snapshot
// taken at creation time and are not re-validated afterwards.
type Product struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Price         int64     `json:"price"`
	Condition     Condition `json:"condition"`
	Location      string    `json:"location"`
	MeetupAddress string    `json:"meetupAddress,omitempty"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	SellerID      int64     `json:"sellerId"`
	SellerName    string    `json:"sellerName"`
	SellerBiz     string    `json:"sellerBusinessName,omitempty"`
	SellerImage   string    `json:"sellerProfilePicture,omitempty"`
	SellerRating  float64   `json:"sellerRating"`
	Views         int64     `json:"views"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SellerStats aggregates a seller's listings for the dashboard.
type SellerStats struct {
	Count        int
	TotalViews   int64
	TotalValue   int64
	AverageViews int64
}

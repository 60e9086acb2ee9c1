package catalog

import (
	"context"
	"time"

	"github.com/pentoria/pentoria/internal/models"
)

// Seed populates an empty catalog with the stock sample listings so a
// fresh install has something to browse. A non-empty catalog is left
// untouched.
func (c *Catalog) Seed(ctx context.Context) error {
	if len(c.products) > 0 {
		return nil
	}

	now := time.Now()
	samples := []models.Product{
		{
			ID:            1,
			Title:         "iPhone 15 Pro Max - 256GB",
			Category:      models.CategoryPhones,
			Price:         950000,
			Condition:     models.ConditionNew,
			Location:      "Lagos",
			MeetupAddress: "Ikeja City Mall, Lagos",
			Description:   "Brand new iPhone 15 Pro Max with 1 year warranty. Includes charger and earphones.",
			Image:         "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400",
			SellerName:    "TechHub Nigeria",
			SellerBiz:     "TechHub Nigeria",
			SellerRating:  4.8,
			Views:         1250,
			Featured:      true,
			CreatedAt:     now,
		},
		{
			ID:            2,
			Title:         "Samsung 65\" 4K Smart TV",
			Category:      models.CategoryElectronics,
			Price:         450000,
			Condition:     models.ConditionNew,
			Location:      "Abuja",
			MeetupAddress: "Shoprite, Abuja",
			Description:   "Crystal clear 4K display with smart features. Perfect for home entertainment.",
			Image:         "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400",
			SellerName:    "ElectroWorld",
			SellerBiz:     "ElectroWorld",
			SellerRating:  4.7,
			Views:         890,
			Featured:      true,
			CreatedAt:     now,
		},
		{
			ID:            3,
			Title:         "Designer Lace Gown",
			Category:      models.CategoryFashion,
			Price:         45000,
			Condition:     models.ConditionNew,
			Location:      "Lagos",
			MeetupAddress: "Palms Shopping Mall, Lekki",
			Description:   "Beautiful Nigerian lace gown perfect for occasions. Custom sizes available.",
			Image:         "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400",
			SellerName:    "Fabrics & Fashion",
			SellerBiz:     "Fabrics & Fashion",
			SellerRating:  4.9,
			Views:         678,
			CreatedAt:     now,
		},
		{
			ID:            4,
			Title:         "Toyota Camry 2019 Model",
			Category:      models.CategoryVehicles,
			Price:         12500000,
			Condition:     models.ConditionUsed,
			Location:      "Lagos",
			MeetupAddress: "AutoMart Lagos, Ikeja",
			Description:   "Well maintained Toyota Camry 2019. Clean title, all documents available.",
			Image:         "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=400",
			SellerName:    "AutoMart Nigeria",
			SellerBiz:     "AutoMart Nigeria",
			SellerRating:  4.6,
			Views:         2340,
			Featured:      true,
			CreatedAt:     now,
		},
		{
			ID:            5,
			Title:         "Modern Sofa Set",
			Category:      models.CategoryHome,
			Price:         180000,
			Condition:     models.ConditionNew,
			Location:      "Port Harcourt",
			MeetupAddress: "Genesis Mall, Port Harcourt",
			Description:   "Beautiful 3-seater and 2-seater sofa set. Premium fabric and comfort.",
			Image:         "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=400",
			SellerName:    "Home Comforts",
			SellerBiz:     "Home Comforts",
			SellerRating:  4.5,
			Views:         567,
			CreatedAt:     now,
		},
		{
			ID:            6,
			Title:         "MacBook Pro 14\" M3",
			Category:      models.CategoryElectronics,
			Price:         1350000,
			Condition:     models.ConditionNew,
			Location:      "Lagos",
			MeetupAddress: "Computer Village, Ikeja",
			Description:   "Latest MacBook Pro with M3 chip. Perfect for professionals and creatives.",
			Image:         "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=400",
			SellerName:    "Apple Store NG",
			SellerBiz:     "Apple Store NG",
			SellerRating:  5.0,
			Views:         1876,
			Featured:      true,
			CreatedAt:     now,
		},
	}

	c.log.Info(ctx, "seeding catalog", "count", len(samples))
	return c.persist(ctx, samples)
}

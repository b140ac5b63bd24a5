package catalog

import "github.com/SaakshamKindra/tumbler-vibe-shop/models"

// StaticProducts is the bundled fallback snapshot served when the product
// database is unreachable at load time. Prices are in rupees (major units).
func StaticProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Arctic Explorer Tumbler",
			Price:       1400,
			Description: "Keep your drinks ice cold for up to 24 hours or hot for up to 12 hours with our premium vacuum-insulated Arctic Explorer tumbler.",
			Features: models.FeatureList{
				"Double-wall vacuum insulation",
				"18/8 stainless steel construction",
				"Sweat-free exterior",
				"Copper lining for ultimate temperature retention",
				"BPA-free materials",
				"Dishwasher safe lid",
			},
			Specifications: []byte(`{"capacity":"30 oz (887 ml)","material":"18/8 Stainless Steel","dimensions":"3.5\" diameter x 7.5\" height","weight":"0.8 lbs","insulation":"Double-wall vacuum with copper lining","lidType":"Press-in lid with sliding closure"}`),
			Colors: models.ColorList{
				{Name: "Ocean Blue", Hex: "#0369A1", Available: true},
				{Name: "Forest Green", Hex: "#166534", Available: true},
				{Name: "Cherry Red", Hex: "#B91C1C", Available: true},
				{Name: "Midnight Black", Hex: "#1E293B", Available: true},
				{Name: "Arctic White", Hex: "#F8FAFC", Available: true},
			},
			Images: models.ImageList{
				"/uploads/5a7e70d9-2b15-4a5f-8316-c4ce15c95bf8.png",
				"/uploads/2795299f-3085-4dc2-8073-92bc7b6db911.png",
				"/uploads/5c2d8766-8f41-45ad-9ac6-d9459dcfc4e3.png",
			},
			Category:   "Premium",
			Tags:       models.TagsList{"Outdoor", "Travel", "Bestseller", "Insulated"},
			IsNew:      false,
			BestSeller: true,
			Rating:     4.8,
			Inventory:  250,
		},
		{
			ID:          2,
			Name:        "Summit Flask",
			Price:       1899,
			Description: "A rugged companion for long treks. The Summit Flask keeps water icy through a full day on the trail and shrugs off drops onto rock.",
			Features: models.FeatureList{
				"Triple-layer insulation",
				"Powder-coated grip finish",
				"Leak-proof screw cap",
				"Fits standard cup holders",
			},
			Specifications: []byte(`{"capacity":"32 oz (946 ml)","material":"18/8 Stainless Steel","dimensions":"3.6\" diameter x 9.4\" height","weight":"0.9 lbs","insulation":"Triple-layer vacuum","lidType":"Screw cap with carry loop"}`),
			Colors: models.ColorList{
				{Name: "Slate Gray", Hex: "#475569", Available: true},
				{Name: "Sunrise Orange", Hex: "#EA580C", Available: true},
				{Name: "Forest Green", Hex: "#166534", Available: false},
			},
			Images: models.ImageList{
				"/uploads/8f0c2b4e-11aa-4f31-9c55-74b1f0d2a9e1.png",
				"/uploads/3d9e8a72-60bc-49d5-8f12-aa0c4b7e6f20.png",
			},
			Category:   "Outdoor",
			Tags:       models.TagsList{"Outdoor", "Hiking", "Insulated"},
			IsNew:      true,
			BestSeller: false,
			Rating:     4.6,
			Inventory:  180,
		},
		{
			ID:          3,
			Name:        "Commuter Mug",
			Price:       999,
			Description: "Slim, one-handed sipping for the daily commute. The Commuter Mug's flip lid opens with a thumb and seals shut in your bag.",
			Features: models.FeatureList{
				"One-hand flip lid",
				"Slim cup-holder fit",
				"Ceramic-coated interior, no metal taste",
				"Dishwasher safe",
			},
			Specifications: []byte(`{"capacity":"16 oz (473 ml)","material":"Stainless Steel with ceramic coating","dimensions":"2.8\" diameter x 8.1\" height","weight":"0.6 lbs","insulation":"Double-wall vacuum","lidType":"Flip lid with lock"}`),
			Colors: models.ColorList{
				{Name: "Midnight Black", Hex: "#1E293B", Available: true},
				{Name: "Cream", Hex: "#FDF6E3", Available: true},
				{Name: "Teal", Hex: "#0D9488", Available: true},
			},
			Images: models.ImageList{
				"/uploads/b1a7d246-9e0f-4c88-a3d1-5f2e8c9b7a64.png",
			},
			Category:   "Classic",
			Tags:       models.TagsList{"Commute", "Coffee", "Bestseller"},
			IsNew:      false,
			BestSeller: true,
			Rating:     4.7,
			Inventory:  320,
		},
		{
			ID:          4,
			Name:        "Hydra Sport Bottle",
			Price:       1250,
			Description: "Built for the gym floor: a wide straw lid for fast gulps, measurement marks to track intake, and a silicone bumper for dropped-bottle days.",
			Features: models.FeatureList{
				"High-flow straw lid",
				"Intake measurement marks",
				"Removable silicone bumper",
				"Sweat-free exterior",
			},
			Specifications: []byte(`{"capacity":"40 oz (1.18 L)","material":"18/8 Stainless Steel","dimensions":"3.8\" diameter x 10.6\" height","weight":"1.0 lbs","insulation":"Double-wall vacuum","lidType":"Straw lid with handle"}`),
			Colors: models.ColorList{
				{Name: "Electric Blue", Hex: "#2563EB", Available: true},
				{Name: "Lime", Hex: "#65A30D", Available: true},
				{Name: "Cherry Red", Hex: "#B91C1C", Available: true},
			},
			Images: models.ImageList{
				"/uploads/c3f0e815-27dd-4b09-9a41-8e6b2d5c4f97.png",
				"/uploads/a9d4b728-53ef-4716-bc20-1f8e7a6d3c55.png",
			},
			Category:   "Sport",
			Tags:       models.TagsList{"Gym", "Sports", "Large"},
			IsNew:      true,
			BestSeller: false,
			Rating:     4.4,
			Inventory:  210,
		},
		{
			ID:          5,
			Name:        "Heritage Copper Tumbler",
			Price:       2499,
			Description: "Hand-finished copper exterior over a stainless core. The Heritage tumbler patinas beautifully with use and keeps drinks cold well past midnight.",
			Features: models.FeatureList{
				"Hand-finished copper shell",
				"Food-grade stainless interior",
				"Gift box included",
			},
			Specifications: []byte(`{"capacity":"20 oz (591 ml)","material":"Copper over 18/8 Stainless Steel","dimensions":"3.3\" diameter x 7.0\" height","weight":"0.85 lbs","insulation":"Double-wall vacuum","lidType":"Press-in splash lid"}`),
			Colors: models.ColorList{
				{Name: "Brushed Copper", Hex: "#B45309", Available: true},
				{Name: "Antique Bronze", Hex: "#78350F", Available: false},
			},
			Images: models.ImageList{
				"/uploads/e7c9f1a3-88bd-4f62-b054-6a2d8e4b9c10.png",
			},
			Category:   "Premium",
			Tags:       models.TagsList{"Gift", "Luxury", "Insulated"},
			IsNew:      true,
			BestSeller: true,
			Rating:     4.9,
			Inventory:  75,
		},
		{
			ID:          6,
			Name:        "Junior Sipper",
			Price:       749,
			Description: "A spill-proof sipper sized for small hands, with a one-piece silicone straw that pops out for easy cleaning.",
			Features: models.FeatureList{
				"Spill-proof straw lid",
				"Drop-resistant body",
				"One-piece removable straw",
				"BPA-free materials",
			},
			Specifications: []byte(`{"capacity":"12 oz (355 ml)","material":"18/8 Stainless Steel","dimensions":"2.6\" diameter x 6.2\" height","weight":"0.45 lbs","insulation":"Double-wall vacuum","lidType":"Pop-up straw lid"}`),
			Colors: models.ColorList{
				{Name: "Bubblegum Pink", Hex: "#DB2777", Available: true},
				{Name: "Sky Blue", Hex: "#38BDF8", Available: true},
				{Name: "Lime", Hex: "#65A30D", Available: true},
			},
			Images: models.ImageList{
				"/uploads/f2b8d694-40ce-4a17-9d83-7c5e1a0b6f42.png",
			},
			Category:   "Kids",
			Tags:       models.TagsList{"Kids", "School"},
			IsNew:      false,
			BestSeller: false,
			Rating:     4.3,
			Inventory:  400,
		},
	}
}

package main

import (
	"github.com/printkart/storefront/internal/catalog"
	"github.com/printkart/storefront/internal/content"
	"github.com/printkart/storefront/internal/identity"
	"github.com/printkart/storefront/internal/order"
)

// Demo data so the storefront is browsable at first boot.

func seedProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "A4 Portrait Photo Book", Description: "A classic choice to showcase your memories.", Price: "₹2,499", Image: "/photobook-a4-portrait.webp", Category: "Photo Books", Subcategory: "A4 Portrait"},
		{ID: 2, Name: "A4 Landscape Photo Book", Description: "Perfect for panoramic shots and wide landscapes.", Price: "₹2,499", Image: "/photobook-a4-landscape.png", Category: "Photo Books", Subcategory: "A4 Landscape"},
		{ID: 3, Name: "Classic Wooden Frame", Description: "A timeless frame to complement any photo.", Price: "₹1,299", Image: "/frame-wooden-classic.jpg", Category: "Frames", Subcategory: "Wooden"},
		{ID: 4, Name: "Modern Metal Frame", Description: "Sleek and stylish for a contemporary look.", Price: "₹1,499", Image: "/frame-metal-modern.jpg", Category: "Frames", Subcategory: "Metal"},
	}
}

func seedCategories() []catalog.Category {
	return []catalog.Category{
		{ID: 1, Name: "Photo Books", Subcategories: []catalog.Subcategory{{ID: 101, Name: "A4 Portrait"}, {ID: 102, Name: "A4 Landscape"}}},
		{ID: 2, Name: "Frames", Subcategories: []catalog.Subcategory{{ID: 201, Name: "Wooden"}, {ID: 202, Name: "Metal"}}},
	}
}

func seedSections() []content.Section {
	return []content.Section{
		{ID: 1, Title: "About Us Section", Slug: "about-us", Body: "This is the dynamic content for the About Us page."},
		{ID: 2, Title: "Terms & Conditions", Slug: "terms-conditions", Body: "These are the terms and conditions."},
	}
}

func seedFAQs() []content.FAQ {
	return []content.FAQ{
		{ID: 1, Question: "What is a photo book?", Answer: "A photo book is a personalized album of your photos printed and bound into a book."},
		{ID: 2, Question: "How do I upload my photos?", Answer: "You can upload your photos on the product customization page."},
	}
}

func seedGuests() []identity.GuestUser {
	return []identity.GuestUser{
		{ID: 1, Name: "Guest User 1", Email: "guest1@example.com"},
		{ID: 2, Name: "Guest User 2", Email: "guest2@example.com"},
	}
}

func seedOrders() []order.Order {
	return []order.Order{
		{
			ID:       1,
			Customer: order.Customer{Name: "John Doe"},
			Total:    "₹5,197",
			Status:   order.StatusNew,
			Items: []order.Item{
				{ProductID: 1, Name: "A4 Portrait Photo Book", Quantity: 1, Price: "₹2,499"},
				{ProductID: 3, Name: "Classic Wooden Frame", Quantity: 2, Price: "₹1,299"},
			},
		},
		{
			ID:       2,
			Customer: order.Customer{Name: "Jane Smith"},
			Total:    "₹2,499",
			Status:   order.StatusProcessing,
			Items: []order.Item{
				{ProductID: 2, Name: "A4 Landscape Photo Book", Quantity: 1, Price: "₹2,499"},
			},
		},
	}
}

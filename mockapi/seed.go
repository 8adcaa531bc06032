package mockapi

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shopadmin/models"
)

// Seed returns a store populated with a small, coherent demo catalog.
func Seed() *Store {
	s := NewStore()
	base := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	s.roles = []models.Role{
		{RoleID: "R1", RoleName: "Super Admin"},
		{RoleID: "R2", RoleName: "Catalog Manager"},
		{RoleID: "R3", RoleName: "Support"},
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.MinCost)
	for i, u := range []struct{ id, name, email, status string }{
		{"U001", "asha", "asha@example.com", "Active"},
		{"U002", "bilal", "bilal@example.com", "Inactive"},
		{"U003", "chen", "chen@example.com", "Active"},
	} {
		s.users = append(s.users, models.AdminUser{
			UserID:       models.ID(u.id),
			UserName:     u.name,
			Email:        u.email,
			Status:       u.status,
			RegisteredAt: models.NewTimestamp(base.Add(time.Duration(i) * 24 * time.Hour)),
		})
		s.passwords[models.ID(u.id)] = hash
	}
	s.userRoles["U001"] = []string{"Super Admin"}
	s.userRoles["U003"] = []string{"Catalog Manager", "Support"}

	for _, name := range []string{"Electronics", "Fashion", "Home"} {
		s.categories = append(s.categories, models.Category{CatID: models.ID(fmt.Sprint(s.nextCatID)), CatName: name})
		s.nextCatID++
	}
	for _, sc := range []struct{ name, cat string }{
		{"Phones", "1"}, {"Laptops", "1"}, {"Shoes", "2"}, {"Kitchen", "3"},
	} {
		s.subCategories = append(s.subCategories, models.SubCategory{
			SubCatID:   models.ID(fmt.Sprint(s.nextSubCatID)),
			SubCatName: sc.name,
			CatID:      models.ID(sc.cat),
		})
		s.nextSubCatID++
	}

	s.products = []models.Product{
		{
			ProductID: "P100", ProductName: "Pixel Phone", Category: "Electronics", Subcategory: "Phones",
			Brand: "Nimbus", Price: price("49999.00"), Quantity: 12,
			Images: models.NewEncodedList("https://img.example.com/p100.png"),
			Colors: models.NewEncodedList("Black", "Sage"), Sizes: models.NewEncodedList("128GB", "256GB"),
			Features:    models.NewEncodedList("OLED display", "5G"),
			Description: "Flagship phone.", AddedAt: models.NewTimestamp(base),
		},
		{
			ProductID: "P101", ProductName: "Trail Runner", Category: "Fashion", Subcategory: "Shoes",
			Brand: "Stride", Price: price("3499.5"), Quantity: 40,
			Images:      models.NewEncodedList("https://img.example.com/p101.png"),
			Colors:      models.NewEncodedList("Blue"),
			Sizes:       models.EncodedList{State: models.ListRaw, Raw: "[7, 8, 9"},
			Description: "Lightweight running shoe.", AddedAt: models.NewTimestamp(base.Add(48 * time.Hour)),
		},
		{
			ProductID: "P102", ProductName: "Chef Knife", Category: "Home", Subcategory: "Kitchen",
			Brand: "Edge", Quantity: 7,
			Features:    models.NewEncodedList("Carbon steel"),
			Description: "Price on request.", AddedAt: models.NewTimestamp(base.Add(72 * time.Hour)),
		},
	}

	s.retailers = []models.Retailer{
		{RetailerID: "RT1", RetailerName: "Northwind Traders", Email: "sales@northwind.example.com", Status: "Active", RegisteredAt: models.NewTimestamp(base)},
		{RetailerID: "RT2", RetailerName: "Contoso Outlet", Email: "hello@contoso.example.com", Status: "Inactive", RegisteredAt: models.NewTimestamp(base.Add(24 * time.Hour))},
	}
	s.retailerProducts["RT1"] = []models.ID{"P100", "P102"}
	s.retailerProducts["RT2"] = []models.ID{"P101"}

	s.customers = []models.Customer{
		{UserID: "C1", Username: "dmitri", FirstName: "Dmitri", LastName: "Ivanov", Email: "dmitri@example.com", Phone: "+91 90000 00001", City: "Pune", State: "MH", Country: "India", Status: "Active", CreatedAt: models.NewTimestamp(base)},
		{UserID: "C2", Username: "elena", FirstName: "Elena", LastName: "Rossi", Email: "elena@example.com", Phone: "+91 90000 00002", City: "Delhi", Country: "India", Status: "Inactive", CreatedAt: models.NewTimestamp(base.Add(24 * time.Hour))},
	}

	order1 := models.Order{
		OrderID: "O5001", FirstName: "Dmitri", LastName: "Ivanov", TotalAmount: price("50098.00"),
		PaymentMethod: "Card", PaymentStatus: "Paid", OrderStatus: models.TrackingShipped,
		CreatedAt: models.NewTimestamp(base.Add(96 * time.Hour)),
		Products: []models.OrderLine{
			{ProductID: "P100", Quantity: 1, Price: price("49999.00")},
			{ProductID: "P102", Quantity: 1, Price: price("99.00")},
		},
	}
	order2 := models.Order{
		OrderID: "O5002", FirstName: "Elena", LastName: "Rossi", TotalAmount: price("3499.50"),
		PaymentMethod: "UPI", PaymentStatus: "Pending", OrderStatus: models.TrackingPending,
		CreatedAt: models.NewTimestamp(base.Add(120 * time.Hour)),
		Products:  []models.OrderLine{{ProductID: "P101", Quantity: 1, Price: price("3499.50")}},
	}
	s.retailerOrders["RT1"] = []models.Order{order1}
	s.retailerOrders["RT2"] = []models.Order{order2}
	s.customerOrders["C1"] = []models.Order{order1}
	s.customerOrders["C2"] = []models.Order{order2}
	s.tracking["O5001"] = []models.TrackingEvent{
		{Status: models.TrackingPending, Notes: "Order placed", UpdateTime: models.NewTimestamp(base.Add(96 * time.Hour))},
		{Status: models.TrackingShipped, Notes: "Handed to courier", UpdateTime: models.NewTimestamp(base.Add(110 * time.Hour))},
	}

	return s
}

package memstore

import "github.com/CodeWander-666/GULLYLINK-AI/internal/core/domain"

// NewSeeded returns a store preloaded with the demo vendors and their
// menus.
func NewSeeded() *Store {
	s := New()
	s.AddVendor(
		domain.Vendor{ID: "v1", Name: "Chai Point", Lat: 28.6139, Lng: 77.2090, Icon: "☕", Category: "Beverages"},
		[]domain.MenuItem{{Item: "Masala Chai", Price: 20}, {Item: "Bun Maska", Price: 40}},
	)
	s.AddVendor(
		domain.Vendor{ID: "v2", Name: "Burger Singh", Lat: 28.6129, Lng: 77.2100, Icon: "🍔", Category: "Fast Food"},
		[]domain.MenuItem{{Item: "Veggie Burger", Price: 80}, {Item: "Fries", Price: 60}},
	)
	s.AddVendor(
		domain.Vendor{ID: "v3", Name: "Sharma Sweets", Lat: 28.6145, Lng: 77.2080, Icon: "🍬", Category: "Sweets"},
		[]domain.MenuItem{{Item: "Rasgulla", Price: 30}, {Item: "Samosa", Price: 15}},
	)
	s.AddVendor(
		domain.Vendor{ID: "v4", Name: "Pizza Hut Mobile", Lat: 28.6150, Lng: 77.2110, Icon: "🍕", Category: "Italian"},
		[]domain.MenuItem{{Item: "Margherita Pizza", Price: 150}, {Item: "Garlic Bread", Price: 90}},
	)
	s.AddVendor(
		domain.Vendor{ID: "v5", Name: "Gully Momos", Lat: 28.6110, Lng: 77.2070, Icon: "🥟", Category: "Street Food"},
		[]domain.MenuItem{{Item: "Steamed Momos", Price: 50}, {Item: "Fried Momos", Price: 60}},
	)
	return s
}

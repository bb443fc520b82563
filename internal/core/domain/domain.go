package domain

// Order status values. The core only ever assigns StatusPending; later
// transitions arrive from vendors as order_update messages and are not
// validated here.
const (
	StatusPending = "Pending"
)

// Vendor is a marketplace seller with a live position and its placed orders.
// Owned by the VendorStore; everything else refers to it by id.
type Vendor struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Icon     string  `json:"icon"`
	Category string  `json:"category"`
	Orders   []Order `json:"orders"`
}

// MenuItem is a single entry on a vendor's menu.
type MenuItem struct {
	Item  string `json:"item"`
	Price int    `json:"price"`
}

// Order is one customer's single-item purchase request.
// Lat/Lng are the customer's coordinates at placement time.
type Order struct {
	ID     int64   `json:"id"`
	Item   string  `json:"item"`
	Status string  `json:"status"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

// OrderRequest is what the HTTP facade collects before placing an order.
type OrderRequest struct {
	VendorID    string  `json:"vendor_id"`
	Item        string  `json:"item"`
	CustomerLat float64 `json:"customer_lat"`
	CustomerLng float64 `json:"customer_lng"`
}

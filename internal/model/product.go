package model

import "time"

// Product is a marketplace listing held in process memory.  Listings are
// created through the marketplace API, relabelled by the image upload
// endpoint and never deleted.
//
// Fields:
//
//	ID                – "prod-" followed by a short random token.
//	Price             – unit price in rupees.
//	ImageURL          – nil until an image has been uploaded.
//	QuantityAvailable – advertised stock; checkout does not decrement it.
//	Unit              – selling unit (kg, piece, bottle (500ml), ...).
type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	Category          string    `json:"category"`
	SellerName        string    `json:"seller_name"`
	SellerPhone       string    `json:"seller_phone"`
	Location          string    `json:"location"`
	ImageURL          *string   `json:"image_url"`
	QuantityAvailable int       `json:"quantity_available"`
	Unit              string    `json:"unit"`
	CreatedAt         time.Time `json:"created_at"`
}

// Category is a marketplace product category shown in the catalogue filter.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Order is the confirmation returned by checkout.
type Order struct {
	OrderID         string  `json:"order_id"`
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	TotalAmount     float64 `json:"total_amount"`
	SellerContact   string  `json:"seller_contact"`
	BuyerName       string  `json:"buyer_name"`
	BuyerPhone      string  `json:"buyer_phone"`
	DeliveryAddress string  `json:"delivery_address"`
	Status          string  `json:"status"`
	Message         string  `json:"message"`
}

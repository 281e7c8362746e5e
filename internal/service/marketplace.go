package service

import (
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gramsathi/gramsathi-api/internal/model"
	"github.com/gramsathi/gramsathi-api/internal/utils"
)

// Buyer carries the checkout contact details.
type Buyer struct {
	Name            string
	Phone           string
	DeliveryAddress string
}

// OrderTotal returns unitPrice × quantity rounded to paise.  Decimal maths
// keeps 0.1 × 3 at 0.3.
func OrderTotal(unitPrice float64, quantity int) float64 {
	return decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}

// Checkout simulates an order for p.  Stock is neither checked nor
// decremented.
func Checkout(p model.Product, quantity int, b Buyer) model.Order {
	return model.Order{
		OrderID:         utils.NewOrderID(),
		ProductID:       p.ID,
		ProductName:     p.Name,
		Quantity:        quantity,
		UnitPrice:       p.Price,
		TotalAmount:     OrderTotal(p.Price, quantity),
		SellerContact:   p.SellerPhone,
		BuyerName:       b.Name,
		BuyerPhone:      b.Phone,
		DeliveryAddress: b.DeliveryAddress,
		Status:          "confirmed",
		Message:         "Order placed successfully! Seller will contact you soon.",
	}
}

// ImageURL is the static path an uploaded product image is labelled with.
// Only the base name of the client-supplied filename is kept.
func ImageURL(productID, filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		name = "image"
	}
	return "/static/images/" + productID + "_" + name
}

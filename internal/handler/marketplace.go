package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gramsathi/gramsathi-api/internal/model"
	"github.com/gramsathi/gramsathi-api/internal/queue"
	"github.com/gramsathi/gramsathi-api/internal/repository"
	"github.com/gramsathi/gramsathi-api/internal/service"
	"github.com/gramsathi/gramsathi-api/internal/utils"
)

type MarketplaceHandler struct {
	Products *repository.ProductRepo
	Events   queue.Publisher
}

func NewMarketplaceHandler(r *repository.ProductRepo, events queue.Publisher) *MarketplaceHandler {
	if events == nil {
		events = queue.NopPublisher{}
	}
	return &MarketplaceHandler{Products: r, Events: events}
}

// Price and quantity are taken as given; the marketplace does not police
// listings.
type createProductReq struct {
	Name              string  `json:"name" validate:"required"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	Category          string  `json:"category" validate:"required"`
	SellerName        string  `json:"seller_name" validate:"required"`
	SellerPhone       string  `json:"seller_phone"`
	Location          string  `json:"location"`
	QuantityAvailable int     `json:"quantity_available"`
	Unit              string  `json:"unit"`
}

type checkoutReq struct {
	ProductID       string `json:"product_id" validate:"required"`
	Quantity        int    `json:"quantity" validate:"gt=0"`
	BuyerName       string `json:"buyer_name" validate:"required"`
	BuyerPhone      string `json:"buyer_phone" validate:"required"`
	DeliveryAddress string `json:"delivery_address" validate:"required"`
}

func productNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
}

func (h *MarketplaceHandler) ListProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Products.List(repository.ProductFilter{
		Category: c.QueryParam("category"),
		Location: c.QueryParam("location"),
	}))
}

func (h *MarketplaceHandler) GetProduct(c echo.Context) error {
	p, err := h.Products.GetByID(c.Param("id"))
	if errors.Is(err, repository.ErrProductNotFound) {
		return productNotFound(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *MarketplaceHandler) CreateProduct(c echo.Context) error {
	var req createProductReq
	if handled, err := bindValid(c, &req); handled {
		return err
	}
	p := h.Products.Create(model.Product{
		ID:                utils.NewProductID(),
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Category:          req.Category,
		SellerName:        req.SellerName,
		SellerPhone:       req.SellerPhone,
		Location:          req.Location,
		QuantityAvailable: req.QuantityAvailable,
		Unit:              req.Unit,
	})
	return c.JSON(http.StatusCreated, p)
}

// UploadImage relabels the product image.  The file content is discarded.
func (h *MarketplaceHandler) UploadImage(c echo.Context) error {
	id := c.Param("id")
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file required"})
	}
	url := service.ImageURL(id, fh.Filename)
	if _, err := h.Products.SetImage(id, url); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return productNotFound(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Image uploaded successfully", "image_url": url})
}

func (h *MarketplaceHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"categories": h.Products.Categories()})
}

// Checkout confirms an order without touching stock and announces it on
// the order queue.
func (h *MarketplaceHandler) Checkout(c echo.Context) error {
	var req checkoutReq
	if handled, err := bindValid(c, &req); handled {
		return err
	}
	p, err := h.Products.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return productNotFound(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	order := service.Checkout(p, req.Quantity, service.Buyer{
		Name:            req.BuyerName,
		Phone:           req.BuyerPhone,
		DeliveryAddress: req.DeliveryAddress,
	})

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), publishTimeout)
	defer cancel()
	_ = h.Events.Publish(ctx, queue.OrderPlacedQueue, queue.OrderPlacedEvent{
		OrderID:     order.OrderID,
		ProductID:   order.ProductID,
		ProductName: order.ProductName,
		Quantity:    order.Quantity,
		TotalAmount: order.TotalAmount,
		BuyerName:   order.BuyerName,
		BuyerPhone:  order.BuyerPhone,
		PlacedAt:    time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, order)
}

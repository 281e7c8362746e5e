package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gramsathi/gramsathi-api/internal/repository"
	"github.com/gramsathi/gramsathi-api/internal/service"
)

type SchemeHandler struct {
	Schemes *repository.SchemeRepo
}

func NewSchemeHandler(r *repository.SchemeRepo) *SchemeHandler { return &SchemeHandler{Schemes: r} }

type schemeFilterReq struct {
	Category string `json:"category"`
}

type schemeSearchReq struct {
	Query string `json:"query"`
}

type schemeChatReq struct {
	Message string `json:"message"`
}

// List handles GET with ?category= and POST with {"category": ...}.
func (h *SchemeHandler) List(c echo.Context) error {
	var req schemeFilterReq
	if c.Request().Method == http.MethodPost {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
		}
	}
	if req.Category == "" {
		req.Category = c.QueryParam("category")
	}
	return c.JSON(http.StatusOK, h.Schemes.List(req.Category))
}

func (h *SchemeHandler) Get(c echo.Context) error {
	s, err := h.Schemes.GetByID(c.Param("id"))
	if errors.Is(err, repository.ErrSchemeNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "scheme not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// Search accepts the query as JSON body or ?query=.
func (h *SchemeHandler) Search(c echo.Context) error {
	var req schemeSearchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	q := strings.TrimSpace(req.Query)
	if q == "" {
		q = strings.TrimSpace(c.QueryParam("query"))
	}
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "query required"})
	}
	return c.JSON(http.StatusOK, echo.Map{"query": q, "results": h.Schemes.Search(q)})
}

// Chat accepts the message as JSON body or ?message=.
func (h *SchemeHandler) Chat(c echo.Context) error {
	var req schemeChatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Message == "" {
		req.Message = c.QueryParam("message")
	}
	return c.JSON(http.StatusOK, service.SchemeChat(req.Message))
}

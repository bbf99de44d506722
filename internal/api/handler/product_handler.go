package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopdirectory/inventory-system/internal/api/metrics"
	"github.com/shopdirectory/inventory-system/internal/api/middleware"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /shops/:shopId/products.
//
// @Summary      Add a product to a shop
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        shopId           path      int             true   "Shop ID"
// @Param        Idempotency-Key  header    string          false  "Client-generated key for safe retries"
// @Param        body             body      productRequest  true   "Product details"
// @Success      201              {object}  productResponse
// @Success      200              {object}  productResponse  "Idempotent replay"
// @Failure      400              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /shops/{shopId}/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	shopID, err := middleware.PathID(c, "shopId")
	if err != nil {
		return err
	}

	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.service.Add(c.Request().Context(), identity, ports.CreateProductInput{
		ShopID:         shopID,
		Product:        toProductInput(req),
		IdempotencyKey: c.Request().Header.Get(headerIdempotencyKey),
	})
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("product", strconv.FormatBool(result.AlreadyExisted)).Inc()
	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, toProductResponse(result.Product))
}

// ListByShop handles GET /shops/:shopId/products.
//
// @Summary      List the products of a shop
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        shopId  path      int  true  "Shop ID"
// @Success      200     {array}   productResponse
// @Failure      404     {object}  errorResponse
// @Router       /shops/{shopId}/products [get]
func (h *ProductHandler) ListByShop(c echo.Context) error {
	shopID, err := middleware.PathID(c, "shopId")
	if err != nil {
		return err
	}
	products, err := h.service.ListByShop(c.Request().Context(), shopID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

// Update handles PUT /products/:id. The parent shop cannot change.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Product ID"
// @Param        body  body      productRequest  true  "New product fields"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}

	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.service.Update(c.Request().Context(), identity, id, toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id   path  int  true  "Product ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), identity, id)
	recordBulk("product", 1, err)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteMany handles DELETE /products/bulk.
//
// @Summary      Delete several products atomically
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bulkDeleteRequest  true  "IDs to delete; a bare array is accepted too"
// @Success      200   {object}  bulkDeleteResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/bulk [delete]
func (h *ProductHandler) DeleteMany(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	ids, err := decodeIDs(c)
	if err != nil {
		return err
	}

	err = h.service.DeleteMany(c.Request().Context(), identity, ids)
	recordBulk("product", len(ids), err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bulkDeleteResponse{Deleted: len(distinct(ids))})
}

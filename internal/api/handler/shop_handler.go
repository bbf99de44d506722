package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopdirectory/inventory-system/internal/api/metrics"
	"github.com/shopdirectory/inventory-system/internal/api/middleware"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

const headerIdempotencyKey = "Idempotency-Key"

// ShopHandler handles HTTP requests for shop operations. Role and ownership
// checks happen in middleware before these run.
type ShopHandler struct {
	service ports.ShopService
}

func NewShopHandler(service ports.ShopService) *ShopHandler {
	return &ShopHandler{service: service}
}

// Create handles POST /shops.
//
// The owner is always the caller. A repeated Idempotency-Key returns the shop
// created by the first request with 200 instead of 201.
//
// @Summary      Register a shop
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Client-generated key for safe retries"
// @Param        body             body      createShopRequest  true   "Shop details"
// @Success      201              {object}  shopResponse
// @Success      200              {object}  shopResponse       "Idempotent replay"
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Router       /shops [post]
func (h *ShopHandler) Create(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}

	var req createShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.service.Register(c.Request().Context(), identity, toCreateShopInput(req, c.Request().Header.Get(headerIdempotencyKey)))
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("shop", strconv.FormatBool(result.AlreadyExisted)).Inc()
	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, toShopResponse(result.Shop))
}

// List handles GET /shops (administrators).
//
// @Summary      List all shops
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   shopResponse
// @Failure      403  {object}  errorResponse
// @Router       /shops [get]
func (h *ShopHandler) List(c echo.Context) error {
	shops, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShopResponses(shops))
}

// ListMine handles GET /shops/mine.
//
// @Summary      List the caller's shops
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   shopResponse
// @Router       /shops/mine [get]
func (h *ShopHandler) ListMine(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	shops, err := h.service.ListMine(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShopResponses(shops))
}

// Get handles GET /shops/:id.
//
// @Summary      Get a shop
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Shop ID"
// @Success      200  {object}  shopResponse
// @Failure      404  {object}  errorResponse
// @Router       /shops/{id} [get]
func (h *ShopHandler) Get(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	shop, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShopResponse(shop))
}

// Delete handles DELETE /shops/:id. Products of the shop go with it.
//
// @Summary      Delete a shop and its products
// @Tags         shops
// @Security     BearerAuth
// @Param        id   path  int  true  "Shop ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /shops/{id} [delete]
func (h *ShopHandler) Delete(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), identity, id)
	recordBulk("shop", 1, err)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteMany handles DELETE /shops/bulk. Either every listed shop is deleted
// or none is.
//
// @Summary      Delete several shops atomically
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bulkDeleteRequest  true  "IDs to delete; a bare array is accepted too"
// @Success      200   {object}  bulkDeleteResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /shops/bulk [delete]
func (h *ShopHandler) DeleteMany(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	ids, err := decodeIDs(c)
	if err != nil {
		return err
	}

	err = h.service.DeleteMany(c.Request().Context(), identity, ids)
	recordBulk("shop", len(ids), err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bulkDeleteResponse{Deleted: len(distinct(ids))})
}

func recordBulk(kind string, size int, err error) {
	metrics.BulkDeleteBatchSize.WithLabelValues(kind).Observe(float64(size))
	metrics.BulkDeleteTotal.WithLabelValues(kind, metrics.Outcome(err, "deleted")).Inc()
}

func distinct(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

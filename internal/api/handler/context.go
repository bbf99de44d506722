package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopdirectory/inventory-system/internal/api/middleware"
	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

const maxBulkBody = 1 << 20

// actor returns the identity placed in the context by the Auth middleware.
// Its absence means the route was registered without Auth.
func actor(c echo.Context) (domain.UserIdentity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.UserIdentity{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return identity, nil
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrBadRequest)
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

// decodeIDs accepts either {"ids":[...]} or a bare JSON array.
func decodeIDs(c echo.Context) ([]int64, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, maxBulkBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge,
				fmt.Sprintf("id list exceeds %d bytes", tooLarge.Limit))
		}
		return nil, fmt.Errorf("%w: unreadable body", domain.ErrBadRequest)
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, domain.ErrEmptyBatch
	}

	var ids []int64
	if strings.HasPrefix(trimmed, "[") {
		err = json.Unmarshal([]byte(trimmed), &ids)
	} else {
		var req bulkDeleteRequest
		err = json.Unmarshal([]byte(trimmed), &req)
		ids = req.IDs
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ids must be a list of integers", domain.ErrBadRequest)
	}
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: invalid id %d", domain.ErrBadRequest, id)
		}
	}
	return ids, nil
}

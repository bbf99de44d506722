package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

const validShop = `{"name":"Corner","address":"1 Main","phone":"555","latitude":0,"longitude":-74.5,"openHours":"9-5","deliveryOption":"NO_DELIVERY"}`

func TestShopHandler_Create(t *testing.T) {
	stub := &stubShopService{
		registerFn: func(_ context.Context, actor domain.UserIdentity, in ports.CreateShopInput) (*ports.ShopResult, error) {
			if actor != shopOwner {
				t.Fatalf("unexpected actor %+v", actor)
			}
			if in.Latitude != 0 || in.Longitude != -74.5 || in.DeliveryOption != domain.DeliveryNone {
				t.Fatalf("unexpected input %+v", in)
			}
			if in.IdempotencyKey != "abc" {
				t.Fatalf("expected idempotency key to be forwarded, got %q", in.IdempotencyKey)
			}
			return &ports.ShopResult{Shop: &domain.Shop{ID: 3, OwnerID: actor.UserID, Name: in.Name, Location: domain.Location{Lng: in.Longitude}}}, nil
		},
	}

	c, rec := newContext(http.MethodPost, "/shops", strings.NewReader(validShop), shopOwner)
	c.Request().Header.Set(headerIdempotencyKey, "abc")
	if err := NewShopHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp shopResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 3 || resp.OwnerID != 7 || resp.Longitude != -74.5 {
		t.Fatalf("unexpected shop payload: %+v", resp)
	}
}

func TestShopHandler_Create_Replay(t *testing.T) {
	stub := &stubShopService{
		registerFn: func(context.Context, domain.UserIdentity, ports.CreateShopInput) (*ports.ShopResult, error) {
			return &ports.ShopResult{Shop: &domain.Shop{ID: 3}, AlreadyExisted: true}, nil
		},
	}

	c, rec := newContext(http.MethodPost, "/shops", strings.NewReader(validShop), shopOwner)
	if err := NewShopHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on replay, got %d", rec.Code)
	}
}

func TestShopHandler_Create_ZeroCoordinatesAreValidButMissingAreNot(t *testing.T) {
	stub := &stubShopService{
		registerFn: func(context.Context, domain.UserIdentity, ports.CreateShopInput) (*ports.ShopResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	body := strings.Replace(validShop, `"latitude":0,`, "", 1)

	c, _ := newContext(http.MethodPost, "/shops", strings.NewReader(body), shopOwner)
	err := NewShopHandler(stub).Create(c)
	if !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if !strings.Contains(err.Error(), "latitude") {
		t.Fatalf("expected latitude in message, got %v", err)
	}
}

func TestShopHandler_Get_InvalidID(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/shops/x", nil, shopOwner)
	withParam(c, "id", "-4")
	err := NewShopHandler(&stubShopService{}).Get(c)
	if !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestShopHandler_ListMine(t *testing.T) {
	stub := &stubShopService{shops: []*domain.Shop{{ID: 1, OwnerID: 7}, {ID: 2, OwnerID: 8}, {ID: 3, OwnerID: 7}}}

	c, rec := newContext(http.MethodGet, "/shops/mine", nil, shopOwner)
	if err := NewShopHandler(stub).ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp []shopResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != 1 || resp[1].ID != 3 {
		t.Fatalf("unexpected shops: %+v", resp)
	}
}

func TestShopHandler_List_EmptyIsArray(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/shops", nil, admin)
	if err := NewShopHandler(&stubShopService{}).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected [], got %s", got)
	}
}

func TestShopHandler_Delete(t *testing.T) {
	var deleted int64
	stub := &stubShopService{
		deleteFn: func(_ context.Context, _ domain.UserIdentity, id int64) error {
			deleted = id
			return nil
		},
	}

	c, rec := newContext(http.MethodDelete, "/shops/12", nil, admin)
	withParam(c, "id", "12")
	if err := NewShopHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || deleted != 12 {
		t.Fatalf("expected 204 deleting 12, got %d deleting %d", rec.Code, deleted)
	}
}

func TestShopHandler_DeleteMany_BodyForms(t *testing.T) {
	cases := map[string]string{
		"object":     `{"ids":[4,5,4]}`,
		"bare array": `[4, 5, 4]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var got []int64
			stub := &stubShopService{
				deleteManyFn: func(_ context.Context, _ domain.UserIdentity, ids []int64) error {
					got = ids
					return nil
				},
			}

			c, rec := newContext(http.MethodDelete, "/shops/bulk", strings.NewReader(body), shopOwner)
			if err := NewShopHandler(stub).DeleteMany(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if len(got) != 3 {
				t.Fatalf("expected ids forwarded untouched, got %v", got)
			}
			var resp bulkDeleteResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Deleted != 2 {
				t.Fatalf("expected 2 distinct deletions, got %d", resp.Deleted)
			}
		})
	}
}

func TestShopHandler_DeleteMany_RejectsBadBodies(t *testing.T) {
	cases := map[string]string{
		"empty body":  ``,
		"strings":     `{"ids":["a"]}`,
		"zero id":     `[0]`,
		"negative id": `{"ids":[3,-1]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			stub := &stubShopService{
				deleteManyFn: func(context.Context, domain.UserIdentity, []int64) error {
					t.Fatal("service must not be called")
					return nil
				},
			}
			c, _ := newContext(http.MethodDelete, "/shops/bulk", strings.NewReader(body), shopOwner)
			err := NewShopHandler(stub).DeleteMany(c)
			if !errors.Is(err, domain.ErrBadRequest) {
				t.Fatalf("expected ErrBadRequest, got %v", err)
			}
		})
	}
}

func TestShopHandler_DeleteMany_PropagatesDenial(t *testing.T) {
	stub := &stubShopService{
		deleteManyFn: func(context.Context, domain.UserIdentity, []int64) error {
			return domain.ErrNotOwner
		},
	}
	c, rec := newContext(http.MethodDelete, "/shops/bulk", strings.NewReader(`[1,2]`), shopOwner)
	err := NewShopHandler(stub).DeleteMany(c)
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("nothing should be written on failure, got %s", rec.Body.String())
	}
}

func TestShopHandler_DeleteMany_OversizedBody(t *testing.T) {
	stub := &stubShopService{
		deleteManyFn: func(context.Context, domain.UserIdentity, []int64) error {
			t.Fatal("service must not be called")
			return nil
		},
	}
	body := "[" + strings.Repeat("1,", maxBulkBody/2) + "1]"

	c, _ := newContext(http.MethodDelete, "/shops/bulk", strings.NewReader(body), shopOwner)
	err := NewShopHandler(stub).DeleteMany(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %v", err)
	}
}

package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

func TestOutcome(t *testing.T) {
	cases := map[string]error{
		"ok":                  nil,
		"insufficient_role":   fmt.Errorf("wrap: %w", domain.ErrInsufficientRole),
		"not_owner":           domain.ErrNotOwner,
		"not_found":           domain.ErrProductNotFound,
		"bad_request":         domain.ErrEmptyBatch,
		"invalid_credentials": domain.ErrInvalidCredentials,
		"error":               errors.New("boom"),
	}
	for want, err := range cases {
		if got := Outcome(err, "ok"); got != want {
			t.Errorf("Outcome(%v) = %q, want %q", err, got, want)
		}
	}
}

func TestBulkDeleteTotal_Increments(t *testing.T) {
	c := BulkDeleteTotal.WithLabelValues("shop", "deleted")
	before := testutil.ToFloat64(c)
	c.Inc()
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("expected %v, got %v", before+1, got)
	}
}

package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/BhanuPrakash2047/live-easy/internal/cache"
	"github.com/BhanuPrakash2047/live-easy/internal/handler"
	"github.com/BhanuPrakash2047/live-easy/internal/model"
	"github.com/BhanuPrakash2047/live-easy/internal/queue"
	"github.com/BhanuPrakash2047/live-easy/internal/router"
	"github.com/BhanuPrakash2047/live-easy/internal/service"
)

// newLoadApp builds a full load service Echo instance over in-memory
// storage so requests exercise routing, identity middleware and the
// handlers together.
func newLoadApp(t *testing.T) (*echo.Echo, *memLoadStore) {
	t.Helper()
	store := newMemLoadStore()
	svc := service.NewLoadService(store, queue.NopNotifier{}, cache.Noop{})
	e := echo.New()
	router.RegisterLoad(e, handler.NewLoadHandler(svc))
	return e, store
}

func doJSON(e *echo.Echo, method, target, userID, role, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != "" {
		req.Header.Set("userId", userID)
	}
	if role != "" {
		req.Header.Set("role", role)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func seedLoad(t *testing.T, store *memLoadStore, id, shipperID string, status model.LoadStatus) {
	t.Helper()
	if err := store.Save(t.Context(), &model.Load{
		ID: id, ShipperID: shipperID, TruckType: "FLATBED", Status: status,
	}); err != nil {
		t.Fatalf("seed load: %v", err)
	}
}

func TestLoadRoutesRequireIdentity(t *testing.T) {
	e, _ := newLoadApp(t)

	rec := doJSON(e, http.MethodGet, "/api/load", "", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("list without identity: status = %d, want 401", rec.Code)
	}
	rec = doJSON(e, http.MethodPost, "/api/load", "", "", `{"truckType":"FLATBED"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("create without identity: status = %d, want 401", rec.Code)
	}
}

func TestCreateLoadUsesCallerAsShipper(t *testing.T) {
	e, _ := newLoadApp(t)

	rec := doJSON(e, http.MethodPost, "/api/load", "shipper-1", model.RoleShipper,
		`{"productType":"steel","truckType":"FLATBED","noOfTrucks":2,"weight":12.5}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got model.Load
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ShipperID != "shipper-1" {
		t.Fatalf("ShipperID = %q, want shipper-1", got.ShipperID)
	}
	if got.Status != model.LoadPosted {
		t.Fatalf("Status = %q, want POSTED", got.Status)
	}
	if got.ID == "" {
		t.Fatal("expected generated load id")
	}
}

func TestCreateLoadRejectsTransporter(t *testing.T) {
	e, _ := newLoadApp(t)

	rec := doJSON(e, http.MethodPost, "/api/load", "trans-1", model.RoleTransporter,
		`{"truckType":"FLATBED"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestUpdateLoadOwnership(t *testing.T) {
	e, store := newLoadApp(t)
	seedLoad(t, store, "l-1", "shipper-1", model.LoadPosted)

	body := `{"productType":"coal","truckType":"TIPPER","noOfTrucks":1,"weight":8}`

	// A different shipper may not edit the load.
	rec := doJSON(e, http.MethodPut, "/api/load/l-1", "shipper-2", model.RoleShipper, body)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign shipper: status = %d, want 403", rec.Code)
	}

	// The owner may.
	rec = doJSON(e, http.MethodPut, "/api/load/l-1", "shipper-1", model.RoleShipper, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// So may an admin.
	rec = doJSON(e, http.MethodPut, "/api/load/l-1", "admin-1", model.RoleAdmin, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: status = %d, want 200", rec.Code)
	}
}

func TestDeleteLoadOwnership(t *testing.T) {
	e, store := newLoadApp(t)
	seedLoad(t, store, "l-1", "shipper-1", model.LoadPosted)

	rec := doJSON(e, http.MethodDelete, "/api/load/l-1", "shipper-2", model.RoleShipper, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign shipper: status = %d, want 403", rec.Code)
	}

	rec = doJSON(e, http.MethodDelete, "/api/load/l-1", "shipper-1", model.RoleShipper, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("owner: status = %d, want 200", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/api/load/l-1", "shipper-1", model.RoleShipper, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("after delete: status = %d, want 404", rec.Code)
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	e, store := newLoadApp(t)
	seedLoad(t, store, "l-1", "shipper-1", model.LoadPosted)

	// No identity headers: the booking service calls this directly.
	rec := doJSON(e, http.MethodPut, "/api/load/l-1/status", "", "", `{"status":"BOOKED"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got model.Load
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != model.LoadBooked {
		t.Fatalf("Status = %q, want BOOKED", got.Status)
	}

	rec = doJSON(e, http.MethodPut, "/api/load/l-1/status", "", "", `{"status":"SHIPPED"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown status: status = %d, want 422", rec.Code)
	}

	rec = doJSON(e, http.MethodPut, "/api/load/missing/status", "", "", `{"status":"BOOKED"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing load: status = %d, want 404", rec.Code)
	}
}

func TestGetAllLoadsFilters(t *testing.T) {
	e, store := newLoadApp(t)
	seedLoad(t, store, "l-1", "shipper-1", model.LoadPosted)
	seedLoad(t, store, "l-2", "shipper-2", model.LoadPosted)

	rec := doJSON(e, http.MethodGet, "/api/load?shipperId=shipper-1", "any", model.RoleTransporter, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []model.Load
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "l-1" {
		t.Fatalf("filtered loads = %+v, want just l-1", got)
	}
}

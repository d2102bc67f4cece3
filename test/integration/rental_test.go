package integrationtests

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"fleetbook/pkg/client"
	"fleetbook/pkg/model"
)

// These tests exercise a deployed service end to end through the API
// client. They are skipped unless TEST_SERVER_URL points at a running
// instance, e.g. TEST_SERVER_URL=http://localhost:8080 with a seeded
// MongoDB behind it.

func newRentalClient(t *testing.T) *client.RentalClient {
	t.Helper()

	serverURL := os.Getenv("TEST_SERVER_URL")
	if serverURL == "" {
		t.Skip("TEST_SERVER_URL not set, skipping integration tests")
	}
	return client.NewRentalClient(serverURL)
}

func decodeJSON(t *testing.T, resp *client.Response, target any) {
	t.Helper()
	if err := resp.DecodeJSON(target); err != nil {
		t.Fatalf("failed to decode response: %v. Body: %s", err, resp.Body)
	}
}

func TestHealth(t *testing.T) {
	c := newRentalClient(t)

	resp, err := c.Health()
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d. Body: %s", resp.StatusCode, resp.Body)
	}
}

func TestSeededCatalog(t *testing.T) {
	c := newRentalClient(t)

	resp, err := c.GetVehicleTypes(nil)
	if err != nil {
		t.Fatalf("vehicle types request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d. Body: %s", resp.StatusCode, resp.Body)
	}

	var types []model.VehicleType
	decodeJSON(t, resp, &types)
	if len(types) != 4 {
		t.Errorf("expected 4 seeded vehicle types, got %d", len(types))
	}

	wheels := 2
	resp, err = c.GetVehicleTypes(&wheels)
	if err != nil {
		t.Fatalf("filtered vehicle types request failed: %v", err)
	}

	var twoWheel []model.VehicleType
	decodeJSON(t, resp, &twoWheel)
	if len(twoWheel) != 1 || twoWheel[0].ID != "cruiser" {
		t.Errorf("expected only the cruiser type for wheels=2, got %+v", twoWheel)
	}

	resp, err = c.GetVehicles("suv", nil)
	if err != nil {
		t.Fatalf("vehicles request failed: %v", err)
	}

	var suvs []model.Vehicle
	decodeJSON(t, resp, &suvs)
	if len(suvs) != 3 {
		t.Errorf("expected 3 seeded SUVs, got %d", len(suvs))
	}
	for _, v := range suvs {
		if v.TypeID != "suv" {
			t.Errorf("vehicle %s has type %s, expected suv", v.ID, v.TypeID)
		}
	}
}

func TestBookingLifecycle(t *testing.T) {
	c := newRentalClient(t)

	// A fresh vehicle id per run keeps reruns independent: the service
	// does not cross-check vehicle ids against the catalog.
	vehicleID := fmt.Sprintf("it-vehicle-%d", time.Now().UnixNano())
	start := time.Now().UTC().AddDate(0, 1, 0)
	payload := map[string]any{
		"first_name":      "Asha",
		"last_name":       "Rao",
		"wheels":          4,
		"vehicle_type_id": "suv",
		"vehicle_id":      vehicleID,
		"start_date":      start.Format("2006-01-02"),
		"end_date":        start.AddDate(0, 0, 5).Format("2006-01-02"),
	}

	resp, err := c.CreateBooking(payload)
	if err != nil {
		t.Fatalf("create booking request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d. Body: %s", resp.StatusCode, resp.Body)
	}

	var created model.Booking
	decodeJSON(t, resp, &created)
	if created.ID == "" {
		t.Fatal("expected a generated booking id")
	}
	if created.VehicleID != vehicleID {
		t.Errorf("expected vehicle %s, got %s", vehicleID, created.VehicleID)
	}

	// Resubmitting the same interval must hit the overlap rejection and
	// report the existing booking's bounds.
	resp, err = c.CreateBooking(payload)
	if err != nil {
		t.Fatalf("overlapping create request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for overlap, got %d. Body: %s", resp.StatusCode, resp.Body)
	}

	var rejection struct {
		Detail string `json:"detail"`
	}
	decodeJSON(t, resp, &rejection)
	if !strings.Contains(rejection.Detail, "already booked") {
		t.Errorf("expected overlap detail, got %q", rejection.Detail)
	}
	if !strings.Contains(rejection.Detail, created.StartDate.String()) {
		t.Errorf("expected existing start date in detail, got %q", rejection.Detail)
	}

	resp, err = c.GetBookings()
	if err != nil {
		t.Fatalf("list bookings request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d. Body: %s", resp.StatusCode, resp.Body)
	}

	var bookings []model.Booking
	decodeJSON(t, resp, &bookings)
	found := false
	for _, b := range bookings {
		if b.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("created booking %s not present in listing", created.ID)
	}
}

func TestPastDateRejected(t *testing.T) {
	c := newRentalClient(t)

	start := time.Now().UTC().AddDate(0, 0, -7)
	resp, err := c.CreateBooking(map[string]any{
		"first_name":      "Asha",
		"last_name":       "Rao",
		"wheels":          4,
		"vehicle_type_id": "suv",
		"vehicle_id":      fmt.Sprintf("it-vehicle-%d", time.Now().UnixNano()),
		"start_date":      start.Format("2006-01-02"),
		"end_date":        start.AddDate(0, 0, 3).Format("2006-01-02"),
	})
	if err != nil {
		t.Fatalf("create booking request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d. Body: %s", resp.StatusCode, resp.Body)
	}

	var rejection struct {
		Detail string `json:"detail"`
	}
	decodeJSON(t, resp, &rejection)
	if rejection.Detail != "Start date cannot be in the past" {
		t.Errorf("unexpected detail: %q", rejection.Detail)
	}
}

func TestMalformedBookingBody(t *testing.T) {
	c := newRentalClient(t)

	resp, err := c.CreateBookingRaw([]byte(`{"first_name": `))
	if err != nil {
		t.Fatalf("raw create request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d. Body: %s", resp.StatusCode, resp.Body)
	}
}

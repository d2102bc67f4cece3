package client

import (
	"net/url"
	"strconv"
)

// RentalClient is a thin API client for the rental service, used by
// integration tests and sibling services.
type RentalClient struct {
	httpClient *HttpClient
}

func NewRentalClient(baseURL string) *RentalClient {
	return &RentalClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *RentalClient) GetVehicleTypes(wheels *int) (*Response, error) {
	path := "/api/vehicle-types"
	if wheels != nil {
		path += "?wheels=" + strconv.Itoa(*wheels)
	}
	return c.httpClient.GET(path)
}

func (c *RentalClient) GetVehicles(typeID string, wheels *int) (*Response, error) {
	q := url.Values{}
	if typeID != "" {
		q.Set("type_id", typeID)
	}
	if wheels != nil {
		q.Set("wheels", strconv.Itoa(*wheels))
	}

	path := "/api/vehicles"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return c.httpClient.GET(path)
}

func (c *RentalClient) CreateBooking(body any) (*Response, error) {
	return c.httpClient.POST("/api/bookings", body)
}

func (c *RentalClient) CreateBookingRaw(rawBody []byte) (*Response, error) {
	return c.httpClient.POSTRaw("/api/bookings", rawBody)
}

func (c *RentalClient) GetBookings() (*Response, error) {
	return c.httpClient.GET("/api/bookings")
}

func (c *RentalClient) Health() (*Response, error) {
	return c.httpClient.GET("/health")
}

package booking

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staydrive/internal/domain"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

// memListingCache stores listings as JSON, like the redis-backed cache does,
// and keeps a version per path that Invalidate bumps.
type memListingCache struct {
	entries  map[string][]byte
	versions map[string]int64
}

func newMemListingCache() *memListingCache {
	return &memListingCache{entries: map[string][]byte{}, versions: map[string]int64{}}
}

func (c *memListingCache) Get(_ context.Context, path string, dst any) (bool, error) {
	raw, ok := c.entries[path]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *memListingCache) Version(_ context.Context, path string) (int64, error) {
	return c.versions[path], nil
}

func (c *memListingCache) SetIfVersion(_ context.Context, path string, value any, version int64) (bool, error) {
	if c.versions[path] != version {
		return false, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	c.entries[path] = raw
	return true, nil
}

func (c *memListingCache) Invalidate(_ context.Context, path string) error {
	c.versions[path]++
	delete(c.entries, path)
	return nil
}

func setupRouter(t *testing.T) (*gin.Engine, *memoryStore, *memListingCache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemoryStore(fixedNow)
	cache := newMemListingCache()
	svc := NewService(store, testCatalog(), nil, cache, nil, WithClock(fixedClock))
	h := NewHandler(svc, cache, nil)

	router := gin.New()
	api := router.Group("/api/v1")
	h.RegisterRoutes(api)
	h.RegisterAdminRoutes(api.Group("/admin"))

	return router, store, cache
}

func performRequest(router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var env envelope
	_ = json.Unmarshal(resp.Body.Bytes(), &env)
	return resp, env
}

func stayBody() StayBookingRequest {
	return StayBookingRequest{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "j@x.com",
		CheckIn:      "2026-10-20",
		CheckOut:     "2026-10-23",
		NumGuests:    2,
		GuestHouseID: 1,
		TotalPrice:   10,
	}
}

func TestCreateStayBooking(t *testing.T) {
	router, store, _ := setupRouter(t)

	resp, env := performRequest(router, http.MethodPost, "/api/v1/bookings/stays", stayBody())
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	assert.True(t, env.Success)

	var res SubmitResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Regexp(t, bookingIDFmt, res.BookingID)
	assert.Contains(t, res.Message, res.BookingID)
	assert.Equal(t, 450.0, res.Booking.TotalPrice)

	require.Len(t, store.stays, 1)
	assert.Equal(t, domain.BookingPending, store.stays[0].Status)
}

func TestCreateStayBooking_ValidationFailure(t *testing.T) {
	router, store, _ := setupRouter(t)

	body := stayBody()
	body.CheckIn = "2026-10-01"

	resp, env := performRequest(router, http.MethodPost, "/api/v1/bookings/stays", body)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "Check-in date cannot be in the past", env.Error.Message)
	assert.Equal(t, "checkIn", env.Error.Details["field"])
	assert.Empty(t, store.stays)
}

func TestCreateRentalBooking(t *testing.T) {
	router, store, _ := setupRouter(t)

	body := RentalBookingRequest{
		FirstName:      "Ana",
		LastName:       "Lee",
		Email:          "ana@x.com",
		PickupDate:     "2026-10-21",
		ReturnDate:     "2026-10-23",
		PickupLocation: "Airport",
		DriverLicense:  "DL-9",
		CarID:          3,
	}

	resp, _ := performRequest(router, http.MethodPost, "/api/v1/bookings/rentals", body)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	require.Len(t, store.rentals, 1)
	assert.Equal(t, 90.0, store.rentals[0].TotalPrice)
	require.NotNil(t, store.rentals[0].DriverLicense)
}

func TestCreateBooking_MalformedBody(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/stays", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestQuoteEndpoint(t *testing.T) {
	router, _, _ := setupRouter(t)

	resp, env := performRequest(router, http.MethodPost, "/api/v1/bookings/quote", QuoteRequest{
		Kind: "stay", ItemID: 1, StartDate: "2026-10-20", EndDate: "2026-10-23",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var q Quote
	require.NoError(t, json.Unmarshal(env.Data, &q))
	assert.Equal(t, 3, q.Units)
	assert.Equal(t, 450.0, q.TotalPrice)

	resp, env = performRequest(router, http.MethodPost, "/api/v1/bookings/quote", QuoteRequest{
		Kind: "boat", ItemID: 1, StartDate: "2026-10-20", EndDate: "2026-10-23",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "oneof", env.Error.Details["Kind"])
}

func TestAdminListUsesCacheUntilInvalidated(t *testing.T) {
	router, _, cache := setupRouter(t)

	resp, _ := performRequest(router, http.MethodPost, "/api/v1/bookings/stays", stayBody())
	require.Equal(t, http.StatusCreated, resp.Code)

	resp, env := performRequest(router, http.MethodGet, "/api/v1/admin/bookings", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var listing struct {
		Bookings []domain.Booking `json:"bookings"`
		Total    int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.Equal(t, 1, listing.Total)
	assert.Contains(t, cache.entries, ListingPath)

	// A new booking drops the cached listing.
	resp, _ = performRequest(router, http.MethodPost, "/api/v1/bookings/stays", stayBody())
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.NotContains(t, cache.entries, ListingPath)

	_, env = performRequest(router, http.MethodGet, "/api/v1/admin/bookings", nil)
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.Equal(t, 2, listing.Total)
}

// submitDuringListStore creates a booking while the rental collection is
// being read, after the stay collection was already listed.
type submitDuringListStore struct {
	*memoryStore
	onList func()
}

func (s *submitDuringListStore) ListRentalBookings(ctx context.Context) ([]domain.RentalBooking, error) {
	if s.onList != nil {
		fn := s.onList
		s.onList = nil
		fn()
	}
	return s.memoryStore.ListRentalBookings(ctx)
}

func TestAdminList_InvalidationDuringReadIsNotOverwritten(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &submitDuringListStore{memoryStore: newMemoryStore(fixedNow)}
	cache := newMemListingCache()
	svc := NewService(store, testCatalog(), nil, cache, nil, WithClock(fixedClock))
	router := gin.New()
	NewHandler(svc, cache, nil).RegisterAdminRoutes(router.Group("/api/v1/admin"))

	store.onList = func() {
		_, err := svc.Submit(context.Background(), validStay())
		require.NoError(t, err)
	}

	var listing struct {
		Total int `json:"total"`
	}

	resp, env := performRequest(router, http.MethodGet, "/api/v1/admin/bookings", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.Equal(t, 0, listing.Total)
	assert.NotContains(t, cache.entries, ListingPath, "listing read before the booking must not be cached")

	_, env = performRequest(router, http.MethodGet, "/api/v1/admin/bookings", nil)
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.Equal(t, 1, listing.Total)
	assert.Contains(t, cache.entries, ListingPath)
}

func TestAdminGetBooking(t *testing.T) {
	router, _, _ := setupRouter(t)

	_, env := performRequest(router, http.MethodPost, "/api/v1/bookings/stays", stayBody())
	var res SubmitResult
	require.NoError(t, json.Unmarshal(env.Data, &res))

	resp, _ := performRequest(router, http.MethodGet, "/api/v1/admin/bookings/"+res.BookingID, nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp, env = performRequest(router, http.MethodGet, "/api/v1/admin/bookings/GH-MISSING-000000", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestAdminUpdateStatus(t *testing.T) {
	router, store, _ := setupRouter(t)

	resp, _ := performRequest(router, http.MethodPost, "/api/v1/bookings/stays", stayBody())
	require.Equal(t, http.StatusCreated, resp.Code)
	ref := store.stays[0].ID

	path := "/api/v1/admin/bookings/stay/" + strconv.FormatInt(ref, 10) + "/status"

	resp, _ = performRequest(router, http.MethodPatch, path, UpdateStatusRequest{Status: "confirmed"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, domain.BookingConfirmed, store.stays[0].Status)

	resp, env := performRequest(router, http.MethodPatch, path, UpdateStatusRequest{Status: "archived"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "INVALID_STATUS", env.Error.Code)
	assert.Equal(t, domain.BookingConfirmed, store.stays[0].Status)

	resp, env = performRequest(router, http.MethodPatch, "/api/v1/admin/bookings/boat/1/status", UpdateStatusRequest{Status: "confirmed"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "INVALID_KIND", env.Error.Code)

	resp, _ = performRequest(router, http.MethodPatch, "/api/v1/admin/bookings/rental/77/status", UpdateStatusRequest{Status: "confirmed"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp, _ = performRequest(router, http.MethodPatch, "/api/v1/admin/bookings/stay/abc/status", UpdateStatusRequest{Status: "confirmed"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMyBookings_RequiresSignIn(t *testing.T) {
	router, _, _ := setupRouter(t)

	resp, env := performRequest(router, http.MethodGet, "/api/v1/me/bookings", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staydrive/internal/pkg/logger"
	"staydrive/internal/pkg/response"
)

type Handler struct {
	service *Service
	log     logger.Logger
}

func NewHandler(service *Service, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/guest-houses", h.GetGuestHouses)
	rg.GET("/guest-houses/:id", h.GetGuestHouseByID)
	rg.GET("/cars", h.GetCars)
	rg.GET("/cars/:id", h.GetCarByID)
}

// GetGuestHouses handles GET /guest-houses?location=&max_price=&guests=
func (h *Handler) GetGuestHouses(c *gin.Context) {
	f := GuestHouseFilters{
		Location:  c.Query("location"),
		MaxPrice:  queryFloat(c, "max_price"),
		MinGuests: queryInt(c, "guests"),
	}

	list, err := h.service.ListGuestHouses(c.Request.Context(), f)
	if err != nil {
		h.log.Error("list_guest_houses_failed error=%v", err)
		response.Internal(c, "Failed to load guest houses")
		return
	}
	response.OK(c, gin.H{"guest_houses": list, "total": len(list)})
}

func (h *Handler) GetGuestHouseByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	gh, err := h.service.GetGuestHouse(c.Request.Context(), id)
	if err != nil {
		h.writeLookupError(c, "guest_house", id, err)
		return
	}
	response.OK(c, gin.H{"guest_house": gh})
}

// GetCars handles GET /cars?brand=&max_price=&seats=
func (h *Handler) GetCars(c *gin.Context) {
	f := CarFilters{
		Brand:    c.Query("brand"),
		MaxPrice: queryFloat(c, "max_price"),
		MinSeats: queryInt(c, "seats"),
	}

	list, err := h.service.ListCars(c.Request.Context(), f)
	if err != nil {
		h.log.Error("list_cars_failed error=%v", err)
		response.Internal(c, "Failed to load cars")
		return
	}
	response.OK(c, gin.H{"cars": list, "total": len(list)})
}

func (h *Handler) GetCarByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	car, err := h.service.GetCar(c.Request.Context(), id)
	if err != nil {
		h.writeLookupError(c, "car", id, err)
		return
	}
	response.OK(c, gin.H{"car": car})
}

func (h *Handler) writeLookupError(c *gin.Context, kind string, id int64, err error) {
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	h.log.Error("get_%s_failed id=%d error=%v", kind, id, err)
	response.Internal(c, "Failed to load item")
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid ID")
		return 0, false
	}
	return id, true
}

func queryFloat(c *gin.Context, key string) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

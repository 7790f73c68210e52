package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staydrive/internal/domain"
	"staydrive/internal/pkg/logger"
	"staydrive/internal/pkg/response"
	"staydrive/internal/pkg/validator"
)

type Handler struct {
	service  *Service
	listings ListingCache
	log      logger.Logger
}

func NewHandler(service *Service, listings ListingCache, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{service: service, listings: listings, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/quote", h.Quote)
	rg.POST("/bookings/stays", h.CreateStayBooking)
	rg.POST("/bookings/rentals", h.CreateRentalBooking)
	rg.GET("/me/bookings", h.MyBookings)
}

// RegisterAdminRoutes expects a group already guarded by the admin middleware.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/bookings", h.ListBookings)
	admin.GET("/bookings/:id", h.GetBooking)
	admin.PATCH("/bookings/:kind/:ref/status", h.UpdateStatus)
}

func (h *Handler) CreateStayBooking(c *gin.Context) {
	var req StayBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}
	h.submit(c, req.ToRequest())
}

func (h *Handler) CreateRentalBooking(c *gin.Context) {
	var req RentalBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}
	h.submit(c, req.ToRequest())
}

func (h *Handler) submit(c *gin.Context, req Request) {
	res, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, verr.Reason, gin.H{"field": verr.Field})
		case errors.Is(err, ErrInvalidKind):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidKind, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeBookingFailed, ErrSubmissionFailed.Error())
		}
		return
	}
	response.Created(c, res)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid quote request", errs)
		return
	}

	q, err := h.service.Quote(c.Request.Context(), req.Kind, req.ItemID, req.StartDate, req.EndDate)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, verr.Reason, gin.H{"field": verr.Field})
		case errors.Is(err, ErrInvalidKind):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidKind, err.Error())
		default:
			response.Internal(c, "Failed to calculate price")
		}
		return
	}
	response.OK(c, q)
}

func (h *Handler) MyBookings(c *gin.Context) {
	list, err := h.service.MyBookings(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, err.Error())
			return
		}
		h.log.Error("my_bookings_failed error=%v", err)
		response.Internal(c, "Failed to load bookings")
		return
	}
	response.OK(c, gin.H{"bookings": list})
}

func (h *Handler) ListBookings(c *gin.Context) {
	ctx := c.Request.Context()

	if h.listings != nil {
		var cached []domain.Booking
		hit, err := h.listings.Get(ctx, ListingPath, &cached)
		if err != nil {
			h.log.Error("listing_cache_read_failed path=%s error=%v", ListingPath, err)
		}
		if hit {
			response.OK(c, gin.H{"bookings": cached, "total": len(cached)})
			return
		}
	}

	cacheable := h.listings != nil
	var version int64
	if cacheable {
		v, err := h.listings.Version(ctx, ListingPath)
		if err != nil {
			h.log.Error("listing_cache_version_failed path=%s error=%v", ListingPath, err)
			cacheable = false
		}
		version = v
	}

	list, err := h.service.ListAll(ctx)
	if err != nil {
		h.log.Error("list_bookings_failed error=%v", err)
		response.Internal(c, "Failed to load bookings")
		return
	}

	if cacheable {
		stored, err := h.listings.SetIfVersion(ctx, ListingPath, list, version)
		if err != nil {
			h.log.Error("listing_cache_write_failed path=%s error=%v", ListingPath, err)
		} else if !stored {
			h.log.Debug("listing_cache_write_skipped path=%s version=%d", ListingPath, version)
		}
	}

	response.OK(c, gin.H{"bookings": list, "total": len(list)})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		h.log.Error("get_booking_failed booking_id=%s error=%v", c.Param("id"), err)
		response.Internal(c, "Failed to load booking")
		return
	}
	response.OK(c, gin.H{"booking": b})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	ref, err := strconv.ParseInt(c.Param("ref"), 10, 64)
	if err != nil || ref <= 0 {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid booking reference")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	b, err := h.service.SetStatus(c.Request.Context(), c.Param("kind"), ref, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidStatus, err.Error())
		case errors.Is(err, ErrInvalidKind):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidKind, err.Error())
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, err.Error())
		default:
			response.Internal(c, ErrStatusUpdateFailed.Error())
		}
		return
	}
	response.OK(c, gin.H{"booking": b})
}

package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NewRouter wires the validation surface. Every route ends in the proxy;
// validators only reject malformed requests before they cost a round trip.
func NewRouter(engine *gin.Engine, cfg config.Config, proxy *Proxy) {
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))

	v := &validator{maxSearchSize: cfg.Gateway.MaxSearchSize}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := engine.Group("/users")
	{
		users.POST("", v.validateBody(validCreateUser), proxy.Forward)
		users.GET("", proxy.Forward)
		users.GET("/:id", v.validateID, proxy.Forward)
		users.PATCH("/:id", v.validateID, v.validateBody(validUpdateUser), proxy.Forward)
		users.DELETE("/:id", v.validateID, proxy.Forward)
	}

	items := engine.Group("/items")
	items.Use(requireActorHeader)
	{
		items.POST("", v.validateBody(validCreateItem), proxy.Forward)
		items.GET("", v.validatePaging, proxy.Forward)
		items.GET("/search", v.validateSearch, proxy.Forward)
		items.GET("/:id", v.validateID, proxy.Forward)
		items.PATCH("/:id", v.validateID, v.validateBody(validUpdateItem), proxy.Forward)
		items.POST("/:id/comment", v.validateID, v.validateBody(validCreateComment), proxy.Forward)
	}

	bookings := engine.Group("/bookings")
	bookings.Use(requireActorHeader)
	{
		bookings.POST("", v.validateBody(validCreateBooking), proxy.Forward)
		bookings.GET("", v.validateState, v.validatePaging, proxy.Forward)
		bookings.GET("/owner", v.validateState, v.validatePaging, proxy.Forward)
		bookings.GET("/:id", v.validateID, proxy.Forward)
		bookings.PATCH("/:id", v.validateID, validateApproved, proxy.Forward)
		bookings.DELETE("/:id", v.validateID, proxy.Forward)
	}

	requests := engine.Group("/requests")
	requests.Use(requireActorHeader)
	{
		requests.POST("", v.validateBody(validCreateRequest), proxy.Forward)
		requests.GET("", proxy.Forward)
		requests.GET("/all", v.validatePaging, proxy.Forward)
		requests.GET("/:id", v.validateID, proxy.Forward)
	}
}

type validator struct {
	maxSearchSize int
}

func requireActorHeader(c *gin.Context) {
	raw := c.GetHeader(middleware.ActorHeader)
	if raw == "" {
		abort(c, "X-Sharer-User-Id header required")
		return
	}
	if _, err := uuid.Parse(raw); err != nil {
		abort(c, "Invalid X-Sharer-User-Id header format")
		return
	}
	c.Next()
}

func (v *validator) validateID(c *gin.Context) {
	if _, err := uuid.Parse(c.Param("id")); err != nil {
		abort(c, "Invalid ID format")
		return
	}
	c.Next()
}

func (v *validator) validatePaging(c *gin.Context) {
	if raw := c.Query("from"); raw != "" {
		if n, err := strconv.Atoi(raw); err != nil || n < 0 {
			abort(c, "Invalid from parameter")
			return
		}
	}
	if raw := c.Query("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err != nil || n < 0 {
			abort(c, "Invalid size parameter")
			return
		}
	}
	c.Next()
}

// validateSearch additionally bounds size to [1, maxSearchSize] when given.
func (v *validator) validateSearch(c *gin.Context) {
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > v.maxSearchSize {
			abort(c, "Search size must be between 1 and "+strconv.Itoa(v.maxSearchSize))
			return
		}
	}
	if raw := c.Query("from"); raw != "" {
		if n, err := strconv.Atoi(raw); err != nil || n < 0 {
			abort(c, "Invalid from parameter")
			return
		}
	}
	c.Next()
}

func (v *validator) validateState(c *gin.Context) {
	if _, err := booking.ParseState(c.Query("state")); err != nil {
		abort(c, "Unknown state: "+c.Query("state"))
		return
	}
	c.Next()
}

func validateApproved(c *gin.Context) {
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		abort(c, "Invalid approved parameter")
		return
	}
	c.Next()
}

// validateBody checks the payload shape and restores the body for the proxy.
func (v *validator) validateBody(check func([]byte) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abort(c, "Failed to read request body")
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if msg := check(body); msg != "" {
			abort(c, msg)
			return
		}
		c.Next()
	}
}

func validCreateUser(body []byte) string {
	var req reqdto.CreateUserRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "Invalid request format"
	}
	if strings.TrimSpace(req.Name) == "" {
		return "Name must not be blank"
	}
	if !strings.Contains(req.Email, "@") {
		return "Invalid email format"
	}
	return ""
}

func validUpdateUser(body []byte) string {
	var req reqdto.UpdateUserRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "Invalid request format"
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return "Name must not be blank"
	}
	if req.Email != nil && !strings.Contains(*req.Email, "@") {
		return "Invalid email format"
	}
	return ""
}

func validCreateItem(body []byte) string {
	var req reqdto.CreateItemRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "Invalid request format"
	}
	if strings.TrimSpace(req.Name) == "" {
		return "Item name must not be blank"
	}
	if strings.TrimSpace(req.Description) == "" {
		return "Item description must not be blank"
	}
	if req.Available == nil {
		return "Available flag is required"
	}
	return ""
}

func validUpdateItem(body []byte) string {
	var req reqdto.UpdateItemRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "Invalid request format"
	}
	return ""
}

func validCreateComment(body []byte) string {
	var req reqdto.CreateCommentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "Invalid request format"
	}
	if req.TrimmedText() == "" {
		return "Comment text must not be blank"
	}
	return ""
}

func validCreateBooking(body []byte) string {
	var req reqdto.CreateBookingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "Invalid request format"
	}
	if req.ItemID == uuid.Nil {
		return "Item ID is required"
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return "Start and end are required"
	}
	if !req.Start.Before(req.End) {
		return "Start must be before end"
	}
	return ""
}

func validCreateRequest(body []byte) string {
	var req reqdto.CreateItemRequestRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "Invalid request format"
	}
	if strings.TrimSpace(req.Description) == "" {
		return "Description must not be blank"
	}
	return ""
}

func abort(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}

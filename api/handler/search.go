package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/farescan/cache"
	"github.com/use-agent/farescan/models"
	"github.com/use-agent/farescan/search"
)

// SearchHandler serves POST /api/v1/search.
type SearchHandler struct {
	service *search.Service
	cache   *cache.Cache
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(service *search.Service, c *cache.Cache) *SearchHandler {
	return &SearchHandler{service: service, cache: c}
}

// Search runs a flight search. Input validation failures get a 400; a search
// that found nothing, or whose fetch failed, is still a 200 with the error
// carried inside the result envelope.
func (h *SearchHandler) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		serr := models.NewSearchError(models.ErrCodeInvalidInput, err.Error(), err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: serr.ToDetail()})
		return
	}
	req.Defaults()

	params := req.Params()
	key := cache.Key(params)

	if req.MaxAge > 0 {
		if cached, ok := h.cache.Get(key, time.Duration(req.MaxAge)*time.Millisecond); ok {
			slog.Debug("search: cache hit", "origin", params.Origin, "destination", params.Destination)
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	result := h.service.Search(c.Request.Context(), params)
	if result.Error == "" {
		h.cache.Set(key, &result)
	}
	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
	errors  dto.ErrorPolicy
}

// QuoteHandlerOption configures a QuoteHandler.
type QuoteHandlerOption func(*QuoteHandler)

// WithNotFoundStatus sets the status sent when a quote does not exist.
func WithNotFoundStatus(status int) QuoteHandlerOption {
	return func(h *QuoteHandler) {
		h.errors.NotFoundStatus = status
	}
}

// NewQuoteHandler creates a new quote handler.
// Missing quotes are reported as 200 unless WithNotFoundStatus says otherwise.
func NewQuoteHandler(service *app.QuoteService, opts ...QuoteHandlerOption) *QuoteHandler {
	h := &QuoteHandler{
		service: service,
		errors:  dto.ErrorPolicy{NotFoundStatus: http.StatusOK},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// ListQuotes handles GET /api/quotes
// Returns every quote in insertion order.
//
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Router /api/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.service.ListQuotes(c.Request.Context())
	if err != nil {
		h.errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// GetRandomQuote handles GET /api/quotes/random
// Returns a uniformly chosen quote.
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.FlatError
// @Router /api/quotes/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, err := h.service.GetRandomQuote(c.Request.Context())
	if err != nil {
		h.errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// GetQuoteByID handles GET /api/quotes/:id
// The id is read from the leading decimal digits of the segment, so "3abc"
// finds quote 3. A segment with no leading digits gets the same response as
// an unknown id.
//
// @Summary Get a quote by ID
// @Tags quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.FlatError
// @Router /api/quotes/{id} [get]
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	raw := c.Param("id")

	id, ok := parseQuoteID(raw)
	if !ok {
		logging.FromContext(c.Request.Context()).DebugContext(c.Request.Context(),
			"quote id is not an integer", slog.String("id", raw))
		h.errors.HandleError(c, domain.NewNotFoundError("quote", raw))

		return
	}

	quote, err := h.service.GetQuoteByID(c.Request.Context(), id)
	if err != nil {
		h.errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// CreateQuote handles POST /api/quotes
// Body: {"text": "...", "author": "..."}. Extra fields are ignored.
//
// @Summary Add a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.FlatError
// @Router /api/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest

	if err := dto.BindAndValidate(c, &req); err != nil {
		if dto.IsBindingError(err) {
			dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "request body must be a JSON object with string fields")
			return
		}

		logging.FromContext(c.Request.Context()).DebugContext(c.Request.Context(),
			"quote rejected", slog.Any("fields", dto.ValidationErrors(err)))
		dto.AbortWithFlatError(c, http.StatusBadRequest, dto.MessageTextAndAuthor)

		return
	}

	quote, err := h.service.CreateQuote(c.Request.Context(), req.Text, req.Author)
	if err != nil {
		h.errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote))
}

// parseQuoteID reads an optionally signed run of decimal digits at the start
// of s, after leading whitespace. Trailing characters are ignored.
func parseQuoteID(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return 0, false
	}

	id, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	return id, true
}

// RegisterQuoteRoutes registers quote routes on the given router group.
// /random is registered as a static segment so it never reaches GetQuoteByID.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("", h.CreateQuote)
	quotes.GET("/random", h.GetRandomQuote)
	quotes.GET("/:id", h.GetQuoteByID)
}

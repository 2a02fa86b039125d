package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	request "cotizador_taller/internal/adapter/http/dto/request"
	response "cotizador_taller/internal/adapter/http/dto/response"
	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/infrastructure/documents"
	"cotizador_taller/internal/usecase"
	"cotizador_taller/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves the advisor quoting screen.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	now     func() time.Time
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, now: time.Now}
}

func (h *QuoteHandler) ListMilestones(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Milestones())
}

// AvailableMilestones lists the milestones offered for a line under
// ?service_type= (particular when omitted). The custom milestone is last.
//
//	@Summary	Milestones available for a line
//	@Tags		quotes
//	@Produce	json
//	@Param		line_id			path		string	true	"Vehicle line id"
//	@Param		service_type	query		string	false	"particular | taxi | publico"
//	@Success	200				{array}		entities.Milestone
//	@Failure	404				{object}	pkg.HTTPError
//	@Router		/lines/{line_id}/milestones [get]
func (h *QuoteHandler) AvailableMilestones(c *gin.Context) {
	st := entities.ServiceType(strings.TrimSpace(c.Query("service_type")))
	list, err := h.usecase.AvailableMilestones(c.Request.Context(), pathParam(c, "line_id"), st)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *QuoteHandler) ListCrossSell(c *gin.Context) {
	items, err := h.usecase.CrossSellItems(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCrossSellList(items))
}

// CreateQuote prices a selection. Ids that are not in the catalog yield an
// empty quote, never an error.
//
//	@Summary	Price a selection
//	@Tags		quotes
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.QuoteRequest	true	"Advisor selection"
//	@Success	200		{object}	response.QuoteResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	view, ok := h.quote(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(view))
}

func (h *QuoteHandler) Suggestions(c *gin.Context) {
	view, ok := h.quote(c)
	if !ok {
		return
	}
	resp := response.FromQuote(view)
	c.JSON(http.StatusOK, response.SuggestionsResponse{Suggestions: resp.Suggestions})
}

// QuotePDF renders the priced selection as a printable service order.
func (h *QuoteHandler) QuotePDF(c *gin.Context) {
	view, ok := h.quote(c)
	if !ok {
		return
	}

	doc := documents.QuoteDocument{
		ServiceType: view.ServiceType,
		IssuedAt:    h.now(),
		Result:      view.Result,
	}
	if view.Line != nil {
		doc.LineName = view.Line.Name
	}
	if view.Milestone != nil {
		doc.MilestoneName = view.Milestone.Name
	}

	var buf bytes.Buffer
	if err := documents.WriteQuotePDF(&buf, doc); err != nil {
		writeError(c, internalError(err))
		return
	}
	c.Header("Content-Disposition", `inline; filename="cotizacion.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *QuoteHandler) quote(c *gin.Context) (usecase.QuoteView, bool) {
	var payload request.QuoteRequest
	if !bindJSON(c, &payload) {
		return usecase.QuoteView{}, false
	}
	view, err := h.usecase.Quote(c.Request.Context(), payload.ToUseCase())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return usecase.QuoteView{}, false
	}
	return view, true
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLineID), errors.Is(err, usecase.ErrInvalidMilestoneID),
		errors.Is(err, usecase.ErrInvalidServiceType):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Vehicle line not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

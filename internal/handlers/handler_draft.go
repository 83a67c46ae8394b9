package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/ledger_entry_app/internal/apperrors"
	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_entry_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_entry_app/internal/dto"
	"github.com/SscSPs/ledger_entry_app/internal/middleware"
	"github.com/SscSPs/ledger_entry_app/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// draftHandler handles HTTP requests related to draft sessions.
type draftHandler struct {
	formService portssvc.FormSvcFacade
}

// newDraftHandler creates a new draftHandler.
func newDraftHandler(formService portssvc.FormSvcFacade) *draftHandler {
	return &draftHandler{formService: formService}
}

// registerDraftRoutes registers the draft session routes on the given group.
func registerDraftRoutes(group *gin.RouterGroup, formService portssvc.FormSvcFacade) {
	h := newDraftHandler(formService)
	drafts := group.Group("/drafts")
	drafts.POST("", h.createDraft)
	drafts.GET("/:draftID", h.getDraft)
	drafts.PATCH("/:draftID/fields", h.changeField)
	drafts.PUT("/:draftID/variant", h.setVariant)
	drafts.POST("/:draftID/reset", h.resetDraft)
	drafts.POST("/:draftID/sales-lookup/retry", h.retrySalesLookup)
	drafts.POST("/:draftID/submit", h.submitDraft)
}

// respondWithDraft renders the merged session view including the sales
// cache snapshot for its current sales date.
func (h *draftHandler) respondWithDraft(c *gin.Context, status int, sess *domain.DraftSession) {
	snap, err := h.formService.SalesLookupStatus(c.Request.Context(), sess.DraftID)
	if err != nil {
		snap = portssvc.SalesSnapshot{}
	}
	c.JSON(status, mapping.ToDraftResponse(sess, snap))
}

func (h *draftHandler) handleServiceError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// createDraft godoc
// @Summary Create a new draft session
// @Description Opens a draft with variant simple_expense and default values
// @Tags drafts
// @Produce json
// @Success 201 {object} dto.DraftResponse
// @Failure 500 {object} map[string]string
// @Router /drafts [post]
func (h *draftHandler) createDraft(c *gin.Context) {
	sess, err := h.formService.CreateDraft(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "create draft")
		return
	}
	h.respondWithDraft(c, http.StatusCreated, sess)
}

// getDraft godoc
// @Summary Get the merged draft view
// @Description Returns the shared slice merged with the active variant's private slice
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string
// @Router /drafts/{draftID} [get]
func (h *draftHandler) getDraft(c *gin.Context) {
	sess, err := h.formService.GetDraft(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		h.handleServiceError(c, err, "get draft")
		return
	}
	h.respondWithDraft(c, http.StatusOK, sess)
}

// changeField godoc
// @Summary Change one draft field
// @Description Mutates one field and runs the reactive passes (category sync, date-gap fix, sales-fetch trigger)
// @Tags drafts
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param change body dto.FieldChangeRequest true "Field change"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{draftID}/fields [patch]
func (h *draftHandler) changeField(c *gin.Context) {
	var req dto.FieldChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	sess, err := h.formService.ChangeField(c.Request.Context(), c.Param("draftID"), req.Field, req.Value)
	if err != nil {
		h.handleServiceError(c, err, "change field")
		return
	}
	h.respondWithDraft(c, http.StatusOK, sess)
}

// setVariant godoc
// @Summary Switch the active transaction variant
// @Description Switches variant without losing the private fields of previously visited variants
// @Tags drafts
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param variant body dto.SetVariantRequest true "Target variant"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{draftID}/variant [put]
func (h *draftHandler) setVariant(c *gin.Context) {
	var req dto.SetVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	variant, err := domain.ParseVariant(req.Variant)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.formService.SetVariant(c.Request.Context(), c.Param("draftID"), variant)
	if err != nil {
		h.handleServiceError(c, err, "set variant")
		return
	}
	h.respondWithDraft(c, http.StatusOK, sess)
}

// resetDraft godoc
// @Summary Reset the draft to defaults
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string
// @Router /drafts/{draftID}/reset [post]
func (h *draftHandler) resetDraft(c *gin.Context) {
	sess, err := h.formService.ResetDraft(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		h.handleServiceError(c, err, "reset draft")
		return
	}
	h.respondWithDraft(c, http.StatusOK, sess)
}

// retrySalesLookup godoc
// @Summary Retry a failed sales total lookup
// @Description Clears the failed marker for the current sales date and re-triggers the fetch
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string
// @Router /drafts/{draftID}/sales-lookup/retry [post]
func (h *draftHandler) retrySalesLookup(c *gin.Context) {
	sess, err := h.formService.RetrySalesLookup(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		h.handleServiceError(c, err, "retry sales lookup")
		return
	}
	h.respondWithDraft(c, http.StatusOK, sess)
}

// submitDraft godoc
// @Summary Submit the draft to the backend ledger
// @Description Validates the merged draft, builds the wire payload and POSTs it. Validation failures return 422 with field errors and never reach the network.
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.SubmitResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} dto.SubmitResponse
// @Failure 502 {object} dto.SubmitResponse
// @Router /drafts/{draftID}/submit [post]
func (h *draftHandler) submitDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	draftID := c.Param("draftID")

	sess, err := h.formService.Submit(c.Request.Context(), draftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSubmissionRejected) {
			// The backend message travels verbatim; the draft is preserved.
			msg := strings.TrimPrefix(err.Error(), apperrors.ErrSubmissionRejected.Error()+": ")
			c.JSON(http.StatusBadGateway, dto.SubmitResponse{Message: msg})
			return
		}
		h.handleServiceError(c, err, "submit draft")
		return
	}

	if len(sess.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, dto.SubmitResponse{Errors: sess.Errors})
		return
	}

	logger.Info("Draft submitted", slog.String("draft_id", draftID))
	snap, serr := h.formService.SalesLookupStatus(c.Request.Context(), draftID)
	if serr != nil {
		snap = portssvc.SalesSnapshot{}
	}
	resp := mapping.ToDraftResponse(sess, snap)
	c.JSON(http.StatusOK, dto.SubmitResponse{Submitted: true, Draft: &resp})
}

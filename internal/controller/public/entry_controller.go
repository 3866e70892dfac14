package public

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/quangdng/talentgate/internal/dto"
	"github.com/quangdng/talentgate/internal/service"
)

type EntryController struct {
	entryService service.EntryService
}

func NewEntryController(entryService service.EntryService) *EntryController {
	return &EntryController{entryService: entryService}
}

// SubmitEntry godoc
// @Summary Submit answers for a form
// @Description Applicant submits their answer set for a form. Answers are written one by one without a transaction.
// @Tags entries
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param entry body dto.SubmitEntryRequest true "Applicant ID and answers"
// @Success 201 {object} dto.EntryDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid answers (type mismatch, unknown question, bad payload)"
// @Failure 404 {object} dto.ErrorResponse "Form or applicant not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/forms/{id}/entries [post]
func (c *EntryController) SubmitEntry(ctx *gin.Context) {
	formID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID format."})
		return
	}

	var req dto.SubmitEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitEntry: Failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing required fields."})
		return
	}

	entry, err := c.entryService.SubmitEntry(uint(formID), req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrQuestionNotInForm),
			errors.Is(err, service.ErrAnswerTypeMismatch),
			errors.Is(err, service.ErrAnswerPayloadInvalid):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint64("formID", formID).Msg("SubmitEntry: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit entry."})
		}
		return
	}
	ctx.JSON(http.StatusCreated, entry)
}

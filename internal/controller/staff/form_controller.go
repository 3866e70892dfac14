package staff

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

// FormController serves the staff review surface and form/question authoring.
type FormController struct {
	formService   service.FormService
	reviewService service.ReviewService
}

func NewFormController(formService service.FormService, reviewService service.ReviewService) *FormController {
	return &FormController{formService: formService, reviewService: reviewService}
}

// GetFormFeed godoc
// @Summary List all forms
// @Description Returns every form with its question count, newest first.
// @Tags forms
// @Produce json
// @Success 200 {array} dto.FormSummary
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/forms/feed [get]
func (c *FormController) GetFormFeed(ctx *gin.Context) {
	forms, err := c.reviewService.GetFormFeed()
	if err != nil {
		log.Error().Err(err).Msg("GetFormFeed: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve forms."})
		return
	}
	ctx.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary Get a form with its ordered questions
// @Tags forms
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} dto.FormResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/forms/{id} [get]
func (c *FormController) GetForm(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID format."})
		return
	}

	form, err := c.reviewService.GetForm(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found."})
			return
		}
		log.Error().Err(err).Uint64("formID", id).Msg("GetForm: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve form."})
		return
	}
	ctx.JSON(http.StatusOK, form)
}

// ListEntries godoc
// @Summary List applicants who submitted answers to a form
// @Tags entries
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {array} dto.EntrySummary
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/forms/{id}/entries [get]
func (c *FormController) ListEntries(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID format."})
		return
	}

	entries, err := c.reviewService.ListEntries(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found."})
			return
		}
		log.Error().Err(err).Uint64("formID", id).Msg("ListEntries: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve entries."})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// GetEntry godoc
// @Summary Get one applicant's entry for review
// @Description Returns the form, all its questions in order, and the applicant's answers. Unanswered questions carry an explicit placeholder and are never omitted.
// @Tags entries
// @Produce json
// @Param id path int true "Form ID"
// @Param entryId path int true "Applicant ID"
// @Success 200 {object} dto.EntryDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Form or applicant not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/forms/{id}/entries/{entryId} [get]
func (c *FormController) GetEntry(ctx *gin.Context) {
	formID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID format."})
		return
	}
	entryID, err := strconv.ParseUint(ctx.Param("entryId"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid entry ID format."})
		return
	}

	entry, err := c.reviewService.GetEntry(uint(formID), uint(entryID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("formID", formID).Uint64("entryID", entryID).Msg("GetEntry: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve entry."})
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// CreateForm godoc
// @Summary Create a new application form
// @Description Creates the form shell. Questions are added afterwards via separate calls; there is no transaction across the two.
// @Tags forms
// @Accept json
// @Produce json
// @Param form body dto.CreateFormRequest true "Form metadata"
// @Success 201 {object} dto.FormResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/forms/application [post]
func (c *FormController) CreateForm(ctx *gin.Context) {
	var req dto.CreateFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateForm: Failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing required fields."})
		return
	}

	form, err := c.formService.CreateForm(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateForm: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create form."})
		return
	}
	ctx.JSON(http.StatusCreated, form)
}

// AddQuestion godoc
// @Summary Add a question to a form
// @Description Creates one question. question_order must be unique within the form.
// @Tags forms
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields, bad type, or duplicate order"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/forms/entry/question [post]
func (c *FormController) AddQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("AddQuestion: Failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing required fields."})
		return
	}

	question, err := c.formService.AddQuestion(req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found."})
		case errors.Is(err, service.ErrDuplicateQuestionOrder):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint("formID", req.FormID).Msg("AddQuestion: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create question."})
		}
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// DeleteForm godoc
// @Summary Delete a form and its questions
// @Tags forms
// @Param id path int true "Form ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/forms/{id} [delete]
func (c *FormController) DeleteForm(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID format."})
		return
	}

	if err := c.formService.DeleteForm(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found."})
			return
		}
		log.Error().Err(err).Uint64("formID", id).Msg("DeleteForm: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete form."})
		return
	}
	ctx.Status(http.StatusNoContent)
}

package public

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/quangdng/talentgate/internal/dto"
	"github.com/quangdng/talentgate/internal/service"
)

type ApplicantController struct {
	applicantService service.ApplicantService
}

func NewApplicantController(applicantService service.ApplicantService) *ApplicantController {
	return &ApplicantController{applicantService: applicantService}
}

// CreateApplicant godoc
// @Summary Create an applicant record
// @Description Creates an applicant from first/last name. Applicants are immutable once created.
// @Tags applicants
// @Accept json
// @Produce json
// @Param applicant body dto.CreateApplicantRequest true "Applicant name"
// @Success 201 {object} dto.CreateApplicantResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/applicants [post]
func (c *ApplicantController) CreateApplicant(ctx *gin.Context) {
	var req dto.CreateApplicantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateApplicant: Failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing required fields."})
		return
	}

	applicant, err := c.applicantService.CreateApplicant(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateApplicant: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: "Failed to create applicant.",
			Err:     err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateApplicantResponse{
		Message:   "Applicant created successfully.",
		Applicant: *applicant,
	})
}

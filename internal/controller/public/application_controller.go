package public

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/quangdng/talentgate/internal/dto"
	"github.com/quangdng/talentgate/internal/service"
)

type ApplicationController struct {
	applicationService service.ApplicationService
}

func NewApplicationController(applicationService service.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// SubmitApplication godoc
// @Summary Submit a new application
// @Description Public intake: creates one application record per submission. Duplicate submissions create duplicate records.
// @Tags applications
// @Accept json
// @Produce json
// @Param application body dto.SubmitApplicationRequest true "Applicant contact details"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitApplication: Failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing required fields."})
		return
	}

	appResp, err := c.applicationService.SubmitApplication(req)
	if err != nil {
		log.Error().Err(err).Msg("SubmitApplication: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit application."})
		return
	}
	ctx.JSON(http.StatusCreated, appResp)
}

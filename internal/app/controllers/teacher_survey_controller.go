package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmrivero/chatsurvey/internal/app/models/dto"
	"github.com/lmrivero/chatsurvey/internal/app/services"
	"github.com/lmrivero/chatsurvey/internal/middleware"
	"github.com/lmrivero/chatsurvey/internal/pkg/apperrors"
)

// TeacherSurveyController handles teacher survey endpoints
type TeacherSurveyController struct {
	surveyService *services.TeacherSurveyService
}

// NewTeacherSurveyController creates a new TeacherSurveyController
func NewTeacherSurveyController(surveyService *services.TeacherSurveyService) *TeacherSurveyController {
	return &TeacherSurveyController{surveyService: surveyService}
}

// Create godoc
// @Summary Submit a teacher survey
// @Description The survey is always recorded against the authenticated user
// @Tags teacher-surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherSurveyRequest true "Survey data"
// @Success 201 {object} dto.TeacherSurveyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /teacher-surveys [post]
func (c *TeacherSurveyController) Create(ctx *gin.Context) {
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreateTeacherSurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	survey, err := c.surveyService.Create(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TeacherSurveyResponse{
		Message: "Survey submitted successfully",
		Survey:  survey,
	})
}

// List godoc
// @Summary List all teacher surveys
// @Tags teacher-surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TeacherSurveyListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /teacher-surveys [get]
func (c *TeacherSurveyController) List(ctx *gin.Context) {
	surveys, err := c.surveyService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherSurveyListResponse{
		Message: "Surveys retrieved successfully",
		Count:   len(surveys),
		Surveys: surveys,
	})
}

// ListMine godoc
// @Summary List the authenticated user's teacher surveys
// @Tags teacher-surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TeacherSurveyListResponse
// @Router /teacher-surveys/my-surveys [get]
func (c *TeacherSurveyController) ListMine(ctx *gin.Context) {
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	surveys, err := c.surveyService.ListMine(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherSurveyListResponse{
		Message: "Surveys retrieved successfully",
		Count:   len(surveys),
		Surveys: surveys,
	})
}

// Statistics godoc
// @Summary Get aggregate teacher survey statistics
// @Tags teacher-surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TeacherSurveyStatisticsResponse
// @Router /teacher-surveys/statistics [get]
func (c *TeacherSurveyController) Statistics(ctx *gin.Context) {
	stats, err := c.surveyService.Statistics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherSurveyStatisticsResponse{
		Message:    "Statistics retrieved successfully",
		Statistics: stats,
	})
}

// Get godoc
// @Summary Get a teacher survey by ID
// @Tags teacher-surveys
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.TeacherSurveyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher-surveys/{id} [get]
func (c *TeacherSurveyController) Get(ctx *gin.Context) {
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	survey, err := c.surveyService.Get(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherSurveyResponse{
		Message: "Survey retrieved successfully",
		Survey:  survey,
	})
}

// Update godoc
// @Summary Update a teacher survey
// @Description Merge-patch update. Omitted fields keep their stored values.
// @Tags teacher-surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param request body dto.UpdateTeacherSurveyRequest true "Fields to update"
// @Success 200 {object} dto.TeacherSurveyResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /teacher-surveys/{id} [put]
func (c *TeacherSurveyController) Update(ctx *gin.Context) {
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateTeacherSurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	survey, err := c.surveyService.Update(ctx.Request.Context(), actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherSurveyResponse{
		Message: "Survey updated successfully",
		Survey:  survey,
	})
}

// Delete godoc
// @Summary Delete a teacher survey
// @Tags teacher-surveys
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher-surveys/{id} [delete]
func (c *TeacherSurveyController) Delete(ctx *gin.Context) {
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if _, err := c.surveyService.Delete(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Survey deleted successfully"})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmrivero/chatsurvey/internal/app/models/dto"
	"github.com/lmrivero/chatsurvey/internal/app/services"
	"github.com/lmrivero/chatsurvey/internal/middleware"
	"github.com/lmrivero/chatsurvey/internal/pkg/apperrors"
)

// StudentSurveyController handles student survey endpoints
type StudentSurveyController struct {
	surveyService *services.StudentSurveyService
}

// NewStudentSurveyController creates a new StudentSurveyController
func NewStudentSurveyController(surveyService *services.StudentSurveyService) *StudentSurveyController {
	return &StudentSurveyController{surveyService: surveyService}
}

// Create godoc
// @Summary Submit a student survey
// @Description The survey is always recorded against the authenticated user
// @Tags student-surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentSurveyRequest true "Survey data"
// @Success 201 {object} dto.StudentSurveyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /student-surveys [post]
func (c *StudentSurveyController) Create(ctx *gin.Context) {
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreateStudentSurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	survey, err := c.surveyService.Create(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StudentSurveyResponse{
		Message: "Survey submitted successfully",
		Survey:  survey,
	})
}

// List godoc
// @Summary List all student surveys
// @Tags student-surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StudentSurveyListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /student-surveys [get]
func (c *StudentSurveyController) List(ctx *gin.Context) {
	surveys, err := c.surveyService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentSurveyListResponse{
		Message: "Surveys retrieved successfully",
		Count:   len(surveys),
		Surveys: surveys,
	})
}

// ListMine godoc
// @Summary List the authenticated user's student surveys
// @Tags student-surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StudentSurveyListResponse
// @Router /student-surveys/my-surveys [get]
func (c *StudentSurveyController) ListMine(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, dto.StudentSurveyListResponse{
		Message: "Surveys retrieved successfully",
		Count:   len(surveys),
		Surveys: surveys,
	})
}

// Statistics godoc
// @Summary Get aggregate student survey statistics
// @Tags student-surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StudentSurveyStatisticsResponse
// @Router /student-surveys/statistics [get]
func (c *StudentSurveyController) Statistics(ctx *gin.Context) {
	stats, err := c.surveyService.Statistics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentSurveyStatisticsResponse{
		Message:    "Statistics retrieved successfully",
		Statistics: stats,
	})
}

// Get godoc
// @Summary Get a student survey by ID
// @Tags student-surveys
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.StudentSurveyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student-surveys/{id} [get]
func (c *StudentSurveyController) Get(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, dto.StudentSurveyResponse{
		Message: "Survey retrieved successfully",
		Survey:  survey,
	})
}

// Update godoc
// @Summary Update a student survey
// @Description Merge-patch update. Omitted fields keep their stored values.
// @Tags student-surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param request body dto.UpdateStudentSurveyRequest true "Fields to update"
// @Success 200 {object} dto.StudentSurveyResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /student-surveys/{id} [put]
func (c *StudentSurveyController) Update(ctx *gin.Context) {
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

	var req dto.UpdateStudentSurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	survey, err := c.surveyService.Update(ctx.Request.Context(), actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentSurveyResponse{
		Message: "Survey updated successfully",
		Survey:  survey,
	})
}

// Delete godoc
// @Summary Delete a student survey
// @Tags student-surveys
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student-surveys/{id} [delete]
func (c *StudentSurveyController) Delete(ctx *gin.Context) {
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

package services

import (
	"context"

	"github.com/rs/zerolog"
	appauth "github.com/lmrivero/chatsurvey/internal/app/auth"
	"github.com/lmrivero/chatsurvey/internal/app/models"
	"github.com/lmrivero/chatsurvey/internal/app/models/dto"
	"github.com/lmrivero/chatsurvey/internal/app/repositories"
)

// TeacherSurveyService handles teacher survey operations. Role scoping
// (teacher or admin for create/list-mine) is enforced at the route.
type TeacherSurveyService struct {
	surveyRepo repositories.ITeacherSurveyRepository
	logger     zerolog.Logger
}

// NewTeacherSurveyService creates a new TeacherSurveyService
func NewTeacherSurveyService(surveyRepo repositories.ITeacherSurveyRepository, logger zerolog.Logger) *TeacherSurveyService {
	return &TeacherSurveyService{
		surveyRepo: surveyRepo,
		logger:     logger,
	}
}

// Create persists a new survey owned by the actor.
func (s *TeacherSurveyService) Create(ctx context.Context, actor appauth.Actor, req *dto.CreateTeacherSurveyRequest) (*models.TeacherSurvey, error) {
	survey := req.ToModel(actor.ID)
	if err := s.surveyRepo.Create(ctx, survey); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("surveyID", survey.ID).Int64("userID", actor.ID).Msg("Teacher survey created")
	return survey, nil
}

// List returns all surveys with owner info.
func (s *TeacherSurveyService) List(ctx context.Context) ([]*models.TeacherSurvey, error) {
	return s.surveyRepo.List(ctx)
}

// ListMine returns the actor's own surveys, newest first.
func (s *TeacherSurveyService) ListMine(ctx context.Context, actor appauth.Actor) ([]*models.TeacherSurvey, error) {
	return s.surveyRepo.ListByUserID(ctx, actor.ID)
}

// Get returns a survey by id when the actor owns it or is an admin.
func (s *TeacherSurveyService) Get(ctx context.Context, actor appauth.Actor, id int64) (*models.TeacherSurvey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := appauth.CanAccessOwned(actor, survey.UserID); err != nil {
		return nil, err
	}

	return survey, nil
}

// Update merge-patches a survey when the actor owns it or is an admin.
func (s *TeacherSurveyService) Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateTeacherSurveyRequest) (*models.TeacherSurvey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := appauth.CanAccessOwned(actor, survey.UserID); err != nil {
		return nil, err
	}

	updated, err := s.surveyRepo.Update(ctx, id, req.ToPatch())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("surveyID", id).Int64("actorID", actor.ID).Msg("Teacher survey updated")
	return updated, nil
}

// Delete removes a survey when the actor owns it or is an admin.
func (s *TeacherSurveyService) Delete(ctx context.Context, actor appauth.Actor, id int64) (int64, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	if err := appauth.CanAccessOwned(actor, survey.UserID); err != nil {
		return 0, err
	}

	deletedID, err := s.surveyRepo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("surveyID", id).Int64("actorID", actor.ID).Msg("Teacher survey deleted")
	return deletedID, nil
}

// Statistics recomputes the aggregates over the full table on every call.
func (s *TeacherSurveyService) Statistics(ctx context.Context) (*dto.TeacherSurveyStatistics, error) {
	return s.surveyRepo.Statistics(ctx)
}

package services

import (
	"context"

	"github.com/rs/zerolog"
	appauth "github.com/lmrivero/chatsurvey/internal/app/auth"
	"github.com/lmrivero/chatsurvey/internal/app/models"
	"github.com/lmrivero/chatsurvey/internal/app/models/dto"
	"github.com/lmrivero/chatsurvey/internal/app/repositories"
)

// StudentSurveyService handles student survey operations
type StudentSurveyService struct {
	surveyRepo repositories.IStudentSurveyRepository
	logger     zerolog.Logger
}

// NewStudentSurveyService creates a new StudentSurveyService
func NewStudentSurveyService(surveyRepo repositories.IStudentSurveyRepository, logger zerolog.Logger) *StudentSurveyService {
	return &StudentSurveyService{
		surveyRepo: surveyRepo,
		logger:     logger,
	}
}

// Create persists a new survey owned by the actor. The owner always comes
// from the authenticated identity, never from the request body.
func (s *StudentSurveyService) Create(ctx context.Context, actor appauth.Actor, req *dto.CreateStudentSurveyRequest) (*models.StudentSurvey, error) {
	survey := req.ToModel(actor.ID)
	if err := s.surveyRepo.Create(ctx, survey); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("surveyID", survey.ID).Int64("userID", actor.ID).Msg("Student survey created")
	return survey, nil
}

// List returns all surveys with owner info. Admin scope is enforced at the route.
func (s *StudentSurveyService) List(ctx context.Context) ([]*models.StudentSurvey, error) {
	return s.surveyRepo.List(ctx)
}

// ListMine returns the actor's own surveys, newest first.
func (s *StudentSurveyService) ListMine(ctx context.Context, actor appauth.Actor) ([]*models.StudentSurvey, error) {
	return s.surveyRepo.ListByUserID(ctx, actor.ID)
}

// Get returns a survey by id when the actor owns it or is an admin.
func (s *StudentSurveyService) Get(ctx context.Context, actor appauth.Actor, id int64) (*models.StudentSurvey, error) {
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
// Fields absent from the request keep their stored values.
func (s *StudentSurveyService) Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateStudentSurveyRequest) (*models.StudentSurvey, error) {
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

	s.logger.Info().Int64("surveyID", id).Int64("actorID", actor.ID).Msg("Student survey updated")
	return updated, nil
}

// Delete removes a survey when the actor owns it or is an admin, and
// returns the deleted id.
func (s *StudentSurveyService) Delete(ctx context.Context, actor appauth.Actor, id int64) (int64, error) {
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

	s.logger.Info().Int64("surveyID", id).Int64("actorID", actor.ID).Msg("Student survey deleted")
	return deletedID, nil
}

// Statistics recomputes the aggregates over the full table on every call.
func (s *StudentSurveyService) Statistics(ctx context.Context) (*dto.StudentSurveyStatistics, error) {
	return s.surveyRepo.Statistics(ctx)
}

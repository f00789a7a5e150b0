package services

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/lmrivero/chatsurvey/internal/app/models"
	"github.com/lmrivero/chatsurvey/internal/app/models/dto"
	"github.com/lmrivero/chatsurvey/internal/pkg/apperrors"
)

// testLogger discards all output
var testLogger = zerolog.New(io.Discard)

// stubUserRepo is an in-memory IUserRepository for service tests
type stubUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return apperrors.ErrDuplicateIdentity
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	copied.Password = ""
	return &copied, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, id int64, patch *models.UserPatch) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Role != nil {
		user.Role = models.Role(*patch.Role)
	}
	copied := *user
	copied.Password = ""
	return &copied, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		copied.Password = ""
		users = append(users, &copied)
	}
	return users, nil
}

// stubStudentSurveyRepo is an in-memory IStudentSurveyRepository
type stubStudentSurveyRepo struct {
	surveys map[int64]*models.StudentSurvey
	nextID  int64
	stats   *dto.StudentSurveyStatistics
}

func newStubStudentSurveyRepo() *stubStudentSurveyRepo {
	return &stubStudentSurveyRepo{surveys: make(map[int64]*models.StudentSurvey), nextID: 1}
}

func (r *stubStudentSurveyRepo) Create(_ context.Context, survey *models.StudentSurvey) error {
	survey.ID = r.nextID
	r.nextID++
	r.surveys[survey.ID] = survey
	return nil
}

func (r *stubStudentSurveyRepo) GetByID(_ context.Context, id int64) (*models.StudentSurvey, error) {
	survey, ok := r.surveys[id]
	if !ok {
		return nil, apperrors.ErrSurveyNotFound
	}
	copied := *survey
	return &copied, nil
}

func (r *stubStudentSurveyRepo) List(_ context.Context) ([]*models.StudentSurvey, error) {
	surveys := make([]*models.StudentSurvey, 0, len(r.surveys))
	for _, survey := range r.surveys {
		copied := *survey
		surveys = append(surveys, &copied)
	}
	return surveys, nil
}

func (r *stubStudentSurveyRepo) ListByUserID(_ context.Context, userID int64) ([]*models.StudentSurvey, error) {
	var surveys []*models.StudentSurvey
	for _, survey := range r.surveys {
		if survey.UserID == userID {
			copied := *survey
			surveys = append(surveys, &copied)
		}
	}
	return surveys, nil
}

func (r *stubStudentSurveyRepo) Update(_ context.Context, id int64, patch *models.StudentSurveyPatch) (*models.StudentSurvey, error) {
	survey, ok := r.surveys[id]
	if !ok {
		return nil, apperrors.ErrSurveyNotFound
	}
	if patch.HasUsedChatbot != nil {
		survey.HasUsedChatbot = *patch.HasUsedChatbot
	}
	if patch.ChatbotsUsed != nil {
		survey.ChatbotsUsed = patch.ChatbotsUsed
	}
	if patch.UsageFrequency != nil {
		survey.UsageFrequency = *patch.UsageFrequency
	}
	if patch.UsefulnessRating != nil {
		survey.UsefulnessRating = *patch.UsefulnessRating
	}
	if patch.TasksUsedFor != nil {
		survey.TasksUsedFor = patch.TasksUsedFor
	}
	if patch.OverallExperience != nil {
		survey.OverallExperience = *patch.OverallExperience
	}
	if patch.PreferredChatbot != nil {
		survey.PreferredChatbot = *patch.PreferredChatbot
	}
	if patch.EffectivenessComparison != nil {
		survey.EffectivenessComparison = *patch.EffectivenessComparison
	}
	if patch.WillContinueUsing != nil {
		survey.WillContinueUsing = *patch.WillContinueUsing
	}
	if patch.WouldRecommend != nil {
		survey.WouldRecommend = *patch.WouldRecommend
	}
	if patch.AdditionalComments != nil {
		survey.AdditionalComments = patch.AdditionalComments
	}
	copied := *survey
	return &copied, nil
}

func (r *stubStudentSurveyRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := r.surveys[id]; !ok {
		return 0, apperrors.ErrSurveyNotFound
	}
	delete(r.surveys, id)
	return id, nil
}

func (r *stubStudentSurveyRepo) Statistics(_ context.Context) (*dto.StudentSurveyStatistics, error) {
	if r.stats != nil {
		return r.stats, nil
	}
	return &dto.StudentSurveyStatistics{}, nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

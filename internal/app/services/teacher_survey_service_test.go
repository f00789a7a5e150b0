package services

import (
	"context"
	"errors"
	"testing"

	appauth "github.com/lmrivero/chatsurvey/internal/app/auth"
	"github.com/lmrivero/chatsurvey/internal/app/models"
	"github.com/lmrivero/chatsurvey/internal/app/models/dto"
	"github.com/lmrivero/chatsurvey/internal/pkg/apperrors"
)

// stubTeacherSurveyRepo is an in-memory ITeacherSurveyRepository
type stubTeacherSurveyRepo struct {
	surveys map[int64]*models.TeacherSurvey
	nextID  int64
	stats   *dto.TeacherSurveyStatistics
}

func newStubTeacherSurveyRepo() *stubTeacherSurveyRepo {
	return &stubTeacherSurveyRepo{surveys: make(map[int64]*models.TeacherSurvey), nextID: 1}
}

func (r *stubTeacherSurveyRepo) Create(_ context.Context, survey *models.TeacherSurvey) error {
	survey.ID = r.nextID
	r.nextID++
	r.surveys[survey.ID] = survey
	return nil
}

func (r *stubTeacherSurveyRepo) GetByID(_ context.Context, id int64) (*models.TeacherSurvey, error) {
	survey, ok := r.surveys[id]
	if !ok {
		return nil, apperrors.ErrSurveyNotFound
	}
	copied := *survey
	return &copied, nil
}

func (r *stubTeacherSurveyRepo) List(_ context.Context) ([]*models.TeacherSurvey, error) {
	surveys := make([]*models.TeacherSurvey, 0, len(r.surveys))
	for _, survey := range r.surveys {
		copied := *survey
		surveys = append(surveys, &copied)
	}
	return surveys, nil
}

func (r *stubTeacherSurveyRepo) ListByUserID(_ context.Context, userID int64) ([]*models.TeacherSurvey, error) {
	var surveys []*models.TeacherSurvey
	for _, survey := range r.surveys {
		if survey.UserID == userID {
			copied := *survey
			surveys = append(surveys, &copied)
		}
	}
	return surveys, nil
}

func (r *stubTeacherSurveyRepo) Update(_ context.Context, id int64, patch *models.TeacherSurveyPatch) (*models.TeacherSurvey, error) {
	survey, ok := r.surveys[id]
	if !ok {
		return nil, apperrors.ErrSurveyNotFound
	}
	if patch.LikelihoodFutureUse != nil {
		survey.LikelihoodFutureUse = *patch.LikelihoodFutureUse
	}
	if patch.Country != nil {
		survey.Country = *patch.Country
	}
	if patch.Challenges != nil {
		survey.Challenges = patch.Challenges
	}
	copied := *survey
	return &copied, nil
}

func (r *stubTeacherSurveyRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := r.surveys[id]; !ok {
		return 0, apperrors.ErrSurveyNotFound
	}
	delete(r.surveys, id)
	return id, nil
}

func (r *stubTeacherSurveyRepo) Statistics(_ context.Context) (*dto.TeacherSurveyStatistics, error) {
	if r.stats != nil {
		return r.stats, nil
	}
	return &dto.TeacherSurveyStatistics{}, nil
}

var (
	teacherActor      = appauth.Actor{ID: 5, Role: models.RoleTeacher}
	otherTeacherActor = appauth.Actor{ID: 6, Role: models.RoleTeacher}
)

func createTeacherSurveyReq() *dto.CreateTeacherSurveyRequest {
	return &dto.CreateTeacherSurveyRequest{
		HasUsedChatbot:      true,
		ChatbotsUsed:        []string{"ChatGPT"},
		CoursesUsed:         []string{"Programming"},
		Purposes:            []string{"Lesson planning"},
		LikelihoodFutureUse: "Likely",
		Country:             "Venezuela",
		YearsExperience:     "10-15",
	}
}

func TestTeacherSurveyCreateOwnerFromActor(t *testing.T) {
	repo := newStubTeacherSurveyRepo()
	service := NewTeacherSurveyService(repo, testLogger)

	survey, err := service.Create(context.Background(), teacherActor, createTeacherSurveyReq())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if survey.UserID != teacherActor.ID {
		t.Errorf("owner = %d, want %d", survey.UserID, teacherActor.ID)
	}
}

func TestTeacherSurveyUpdateMergePatch(t *testing.T) {
	repo := newStubTeacherSurveyRepo()
	service := NewTeacherSurveyService(repo, testLogger)
	ctx := context.Background()

	created, err := service.Create(ctx, teacherActor, createTeacherSurveyReq())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := service.Update(ctx, teacherActor, created.ID, &dto.UpdateTeacherSurveyRequest{
		LikelihoodFutureUse: strPtr("Very likely"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.LikelihoodFutureUse != "Very likely" {
		t.Errorf("likelihood = %q, want %q", updated.LikelihoodFutureUse, "Very likely")
	}
	if updated.Country != "Venezuela" {
		t.Errorf("country = %q, want Venezuela", updated.Country)
	}
}

func TestTeacherSurveyOwnershipEnforced(t *testing.T) {
	repo := newStubTeacherSurveyRepo()
	service := NewTeacherSurveyService(repo, testLogger)
	ctx := context.Background()

	created, err := service.Create(ctx, teacherActor, createTeacherSurveyReq())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := service.Get(ctx, otherTeacherActor, created.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Get error = %v, want ErrPermissionDenied", err)
	}
	if _, err := service.Delete(ctx, otherTeacherActor, created.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Delete error = %v, want ErrPermissionDenied", err)
	}
	if _, err := service.Get(ctx, surveyAdmin, created.ID); err != nil {
		t.Errorf("admin Get returned error: %v", err)
	}
}

func TestTeacherSurveyStatisticsBuckets(t *testing.T) {
	repo := newStubTeacherSurveyRepo()
	repo.stats = &dto.TeacherSurveyStatistics{
		TotalSurveys:          4,
		TeachersUsingChatbots: 3,
		VeryLikelyContinue:    1,
		LikelyContinue:        2,
		UnlikelyContinue:      1,
	}
	service := NewTeacherSurveyService(repo, testLogger)

	stats, err := service.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics returned error: %v", err)
	}
	if stats.TotalSurveys != 4 || stats.LikelyContinue != 2 {
		t.Errorf("unexpected statistics: %+v", stats)
	}
}

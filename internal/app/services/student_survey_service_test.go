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

var (
	surveyStudent = appauth.Actor{ID: 1, Role: models.RoleStudent}
	otherStudent  = appauth.Actor{ID: 2, Role: models.RoleStudent}
	surveyAdmin   = appauth.Actor{ID: 9, Role: models.RoleAdmin}
)

func createSurveyReq() *dto.CreateStudentSurveyRequest {
	return &dto.CreateStudentSurveyRequest{
		HasUsedChatbot:    true,
		ChatbotsUsed:      []string{"ChatGPT"},
		UsageFrequency:    "Daily",
		UsefulnessRating:  4,
		TasksUsedFor:      []string{"Homework help"},
		OverallExperience: 5,
		WillContinueUsing: true,
		WouldRecommend:    true,
	}
}

func TestStudentSurveyCreateOwnerFromActor(t *testing.T) {
	repo := newStubStudentSurveyRepo()
	service := NewStudentSurveyService(repo, testLogger)

	survey, err := service.Create(context.Background(), surveyStudent, createSurveyReq())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if survey.UserID != surveyStudent.ID {
		t.Errorf("owner = %d, want %d", survey.UserID, surveyStudent.ID)
	}
	if survey.ID == 0 {
		t.Error("Create did not assign an id")
	}
}

func TestStudentSurveyCreateNormalizesNilArrays(t *testing.T) {
	repo := newStubStudentSurveyRepo()
	service := NewStudentSurveyService(repo, testLogger)

	req := createSurveyReq()
	req.ChatbotsUsed = nil
	req.TasksUsedFor = nil

	survey, err := service.Create(context.Background(), surveyStudent, req)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if survey.ChatbotsUsed == nil || survey.TasksUsedFor == nil {
		t.Error("nil array fields were not normalized to empty slices")
	}
}

func TestStudentSurveyGetOwnership(t *testing.T) {
	repo := newStubStudentSurveyRepo()
	service := NewStudentSurveyService(repo, testLogger)
	ctx := context.Background()

	created, err := service.Create(ctx, surveyStudent, createSurveyReq())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := service.Get(ctx, surveyStudent, created.ID); err != nil {
		t.Errorf("owner Get returned error: %v", err)
	}
	if _, err := service.Get(ctx, otherStudent, created.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("non-owner Get error = %v, want ErrPermissionDenied", err)
	}
	if _, err := service.Get(ctx, surveyAdmin, created.ID); err != nil {
		t.Errorf("admin Get returned error: %v", err)
	}
}

func TestStudentSurveyGetUnknown(t *testing.T) {
	service := NewStudentSurveyService(newStubStudentSurveyRepo(), testLogger)
	if _, err := service.Get(context.Background(), surveyStudent, 999); !errors.Is(err, apperrors.ErrSurveyNotFound) {
		t.Errorf("error = %v, want ErrSurveyNotFound", err)
	}
}

func TestStudentSurveyUpdateMergePatch(t *testing.T) {
	repo := newStubStudentSurveyRepo()
	service := NewStudentSurveyService(repo, testLogger)
	ctx := context.Background()

	created, err := service.Create(ctx, surveyStudent, createSurveyReq())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := service.Update(ctx, surveyStudent, created.ID, &dto.UpdateStudentSurveyRequest{
		UsefulnessRating: intPtr(2),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.UsefulnessRating != 2 {
		t.Errorf("usefulness = %d, want 2", updated.UsefulnessRating)
	}
	// Omitted fields keep their stored values
	if updated.OverallExperience != 5 {
		t.Errorf("experience = %d, want 5", updated.OverallExperience)
	}
	if !updated.HasUsedChatbot {
		t.Error("has_used_chatbot flipped without being patched")
	}
}

func TestStudentSurveyUpdateForbiddenForNonOwner(t *testing.T) {
	repo := newStubStudentSurveyRepo()
	service := NewStudentSurveyService(repo, testLogger)
	ctx := context.Background()

	created, err := service.Create(ctx, surveyStudent, createSurveyReq())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = service.Update(ctx, otherStudent, created.ID, &dto.UpdateStudentSurveyRequest{
		UsefulnessRating: intPtr(1),
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("error = %v, want ErrPermissionDenied", err)
	}
}

func TestStudentSurveyDelete(t *testing.T) {
	repo := newStubStudentSurveyRepo()
	service := NewStudentSurveyService(repo, testLogger)
	ctx := context.Background()

	created, err := service.Create(ctx, surveyStudent, createSurveyReq())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := service.Delete(ctx, otherStudent, created.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("non-owner Delete error = %v, want ErrPermissionDenied", err)
	}

	deletedID, err := service.Delete(ctx, surveyStudent, created.ID)
	if err != nil {
		t.Fatalf("owner Delete returned error: %v", err)
	}
	if deletedID != created.ID {
		t.Errorf("deleted id = %d, want %d", deletedID, created.ID)
	}
	if _, err := service.Get(ctx, surveyStudent, created.ID); !errors.Is(err, apperrors.ErrSurveyNotFound) {
		t.Errorf("Get after delete error = %v, want ErrSurveyNotFound", err)
	}
}

func TestStudentSurveyListMine(t *testing.T) {
	repo := newStubStudentSurveyRepo()
	service := NewStudentSurveyService(repo, testLogger)
	ctx := context.Background()

	if _, err := service.Create(ctx, surveyStudent, createSurveyReq()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := service.Create(ctx, otherStudent, createSurveyReq()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	mine, err := service.ListMine(ctx, surveyStudent)
	if err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("len = %d, want 1", len(mine))
	}
	if mine[0].UserID != surveyStudent.ID {
		t.Errorf("owner = %d, want %d", mine[0].UserID, surveyStudent.ID)
	}
}

func TestStudentSurveyStatistics(t *testing.T) {
	repo := newStubStudentSurveyRepo()
	repo.stats = &dto.StudentSurveyStatistics{
		TotalSurveys:     3,
		AvgUsefulness:    4.2,
		AvgExperience:    3.8,
		UsersWithChatbot: 2,
		WillContinue:     2,
	}
	service := NewStudentSurveyService(repo, testLogger)

	stats, err := service.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics returned error: %v", err)
	}
	if stats.TotalSurveys != 3 || stats.UsersWithChatbot != 2 {
		t.Errorf("unexpected statistics: %+v", stats)
	}
}

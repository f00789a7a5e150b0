package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmrivero/chatsurvey/internal/app/models"
	"github.com/lmrivero/chatsurvey/internal/app/models/dto"
	"github.com/lmrivero/chatsurvey/internal/pkg/apperrors"
)

// IStudentSurveyRepository defines the interface for student survey database operations
type IStudentSurveyRepository interface {
	Create(ctx context.Context, survey *models.StudentSurvey) error
	GetByID(ctx context.Context, id int64) (*models.StudentSurvey, error)
	List(ctx context.Context) ([]*models.StudentSurvey, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.StudentSurvey, error)
	Update(ctx context.Context, id int64, patch *models.StudentSurveyPatch) (*models.StudentSurvey, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Statistics(ctx context.Context) (*dto.StudentSurveyStatistics, error)
}

// StudentSurveyRepository handles student survey database operations
type StudentSurveyRepository struct {
	db *pgxpool.Pool
}

// NewStudentSurveyRepository creates a new StudentSurveyRepository
func NewStudentSurveyRepository(db *pgxpool.Pool) *StudentSurveyRepository {
	return &StudentSurveyRepository{
		db: db,
	}
}

const studentSurveyColumns = `
	id, user_id, has_used_chatbot, chatbots_used, usage_frequency,
	usefulness_rating, tasks_used_for, overall_experience,
	preferred_chatbot, effectiveness_comparison,
	will_continue_using, would_recommend, additional_comments, created_at`

// scanStudentSurvey scans the survey columns into a model
func scanStudentSurvey(row pgx.Row, survey *models.StudentSurvey) error {
	return row.Scan(
		&survey.ID, &survey.UserID, &survey.HasUsedChatbot, &survey.ChatbotsUsed,
		&survey.UsageFrequency, &survey.UsefulnessRating, &survey.TasksUsedFor,
		&survey.OverallExperience, &survey.PreferredChatbot, &survey.EffectivenessComparison,
		&survey.WillContinueUsing, &survey.WouldRecommend, &survey.AdditionalComments,
		&survey.CreatedAt)
}

// Create inserts a new student survey
func (r *StudentSurveyRepository) Create(ctx context.Context, survey *models.StudentSurvey) error {
	err := scanStudentSurvey(r.db.QueryRow(ctx, `
		INSERT INTO student_surveys (
			user_id, has_used_chatbot, chatbots_used, usage_frequency,
			usefulness_rating, tasks_used_for, overall_experience,
			preferred_chatbot, effectiveness_comparison,
			will_continue_using, would_recommend, additional_comments
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING`+studentSurveyColumns,
		survey.UserID, survey.HasUsedChatbot, survey.ChatbotsUsed, survey.UsageFrequency,
		survey.UsefulnessRating, survey.TasksUsedFor, survey.OverallExperience,
		survey.PreferredChatbot, survey.EffectivenessComparison,
		survey.WillContinueUsing, survey.WouldRecommend, survey.AdditionalComments), survey)

	if err != nil {
		return fmt.Errorf("error creating student survey: %w", err)
	}

	return nil
}

// GetByID retrieves a survey by ID, joined with the owner's username and email
func (r *StudentSurveyRepository) GetByID(ctx context.Context, id int64) (*models.StudentSurvey, error) {
	survey := &models.StudentSurvey{}
	err := r.db.QueryRow(ctx, `
		SELECT s.id, s.user_id, s.has_used_chatbot, s.chatbots_used, s.usage_frequency,
		       s.usefulness_rating, s.tasks_used_for, s.overall_experience,
		       s.preferred_chatbot, s.effectiveness_comparison,
		       s.will_continue_using, s.would_recommend, s.additional_comments, s.created_at,
		       u.username, u.email
		FROM student_surveys s
		JOIN users u ON s.user_id = u.id
		WHERE s.id = $1`,
		id).Scan(
		&survey.ID, &survey.UserID, &survey.HasUsedChatbot, &survey.ChatbotsUsed,
		&survey.UsageFrequency, &survey.UsefulnessRating, &survey.TasksUsedFor,
		&survey.OverallExperience, &survey.PreferredChatbot, &survey.EffectivenessComparison,
		&survey.WillContinueUsing, &survey.WouldRecommend, &survey.AdditionalComments,
		&survey.CreatedAt, &survey.Username, &survey.Email)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("error finding student survey: %w", err)
	}

	return survey, nil
}

// List retrieves all surveys, newest first, joined with owner info
func (r *StudentSurveyRepository) List(ctx context.Context) ([]*models.StudentSurvey, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.user_id, s.has_used_chatbot, s.chatbots_used, s.usage_frequency,
		       s.usefulness_rating, s.tasks_used_for, s.overall_experience,
		       s.preferred_chatbot, s.effectiveness_comparison,
		       s.will_continue_using, s.would_recommend, s.additional_comments, s.created_at,
		       u.username, u.email
		FROM student_surveys s
		JOIN users u ON s.user_id = u.id
		ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing student surveys: %w", err)
	}
	defer rows.Close()

	surveys := []*models.StudentSurvey{}
	for rows.Next() {
		survey := &models.StudentSurvey{}
		if err := rows.Scan(
			&survey.ID, &survey.UserID, &survey.HasUsedChatbot, &survey.ChatbotsUsed,
			&survey.UsageFrequency, &survey.UsefulnessRating, &survey.TasksUsedFor,
			&survey.OverallExperience, &survey.PreferredChatbot, &survey.EffectivenessComparison,
			&survey.WillContinueUsing, &survey.WouldRecommend, &survey.AdditionalComments,
			&survey.CreatedAt, &survey.Username, &survey.Email); err != nil {
			return nil, fmt.Errorf("error scanning student survey row: %w", err)
		}
		surveys = append(surveys, survey)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student survey rows: %w", err)
	}

	return surveys, nil
}

// ListByUserID retrieves all surveys owned by a user, newest first
func (r *StudentSurveyRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.StudentSurvey, error) {
	rows, err := r.db.Query(ctx, `
		SELECT`+studentSurveyColumns+`
		FROM student_surveys
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing user student surveys: %w", err)
	}
	defer rows.Close()

	surveys := []*models.StudentSurvey{}
	for rows.Next() {
		survey := &models.StudentSurvey{}
		if err := scanStudentSurvey(rows, survey); err != nil {
			return nil, fmt.Errorf("error scanning student survey row: %w", err)
		}
		surveys = append(surveys, survey)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student survey rows: %w", err)
	}

	return surveys, nil
}

// Update applies a merge-patch: nil fields keep their stored values.
func (r *StudentSurveyRepository) Update(ctx context.Context, id int64, patch *models.StudentSurveyPatch) (*models.StudentSurvey, error) {
	survey := &models.StudentSurvey{}
	err := scanStudentSurvey(r.db.QueryRow(ctx, `
		UPDATE student_surveys
		SET has_used_chatbot = COALESCE($1, has_used_chatbot),
		    chatbots_used = COALESCE($2, chatbots_used),
		    usage_frequency = COALESCE($3, usage_frequency),
		    usefulness_rating = COALESCE($4, usefulness_rating),
		    tasks_used_for = COALESCE($5, tasks_used_for),
		    overall_experience = COALESCE($6, overall_experience),
		    preferred_chatbot = COALESCE($7, preferred_chatbot),
		    effectiveness_comparison = COALESCE($8, effectiveness_comparison),
		    will_continue_using = COALESCE($9, will_continue_using),
		    would_recommend = COALESCE($10, would_recommend),
		    additional_comments = COALESCE($11, additional_comments)
		WHERE id = $12
		RETURNING`+studentSurveyColumns,
		patch.HasUsedChatbot, patch.ChatbotsUsed, patch.UsageFrequency,
		patch.UsefulnessRating, patch.TasksUsedFor, patch.OverallExperience,
		patch.PreferredChatbot, patch.EffectivenessComparison,
		patch.WillContinueUsing, patch.WouldRecommend, patch.AdditionalComments, id), survey)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("error updating student survey: %w", err)
	}

	return survey, nil
}

// Delete removes a survey and returns the deleted id.
func (r *StudentSurveyRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var deletedID int64
	err := r.db.QueryRow(ctx, `
		DELETE FROM student_surveys WHERE id = $1 RETURNING id`,
		id).Scan(&deletedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrSurveyNotFound
		}
		return 0, fmt.Errorf("error deleting student survey: %w", err)
	}

	return deletedID, nil
}

// Statistics computes the aggregate numbers over the full table.
// Recomputed on every call; no caching.
func (r *StudentSurveyRepository) Statistics(ctx context.Context) (*dto.StudentSurveyStatistics, error) {
	stats := &dto.StudentSurveyStatistics{}
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(usefulness_rating), 0),
		       COALESCE(AVG(overall_experience), 0),
		       COUNT(CASE WHEN has_used_chatbot = true THEN 1 END),
		       COUNT(CASE WHEN will_continue_using = true THEN 1 END)
		FROM student_surveys`).Scan(
		&stats.TotalSurveys, &stats.AvgUsefulness, &stats.AvgExperience,
		&stats.UsersWithChatbot, &stats.WillContinue)

	if err != nil {
		return nil, fmt.Errorf("error computing student survey statistics: %w", err)
	}

	return stats, nil
}

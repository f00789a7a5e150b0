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

// ITeacherSurveyRepository defines the interface for teacher survey database operations
type ITeacherSurveyRepository interface {
	Create(ctx context.Context, survey *models.TeacherSurvey) error
	GetByID(ctx context.Context, id int64) (*models.TeacherSurvey, error)
	List(ctx context.Context) ([]*models.TeacherSurvey, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.TeacherSurvey, error)
	Update(ctx context.Context, id int64, patch *models.TeacherSurveyPatch) (*models.TeacherSurvey, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Statistics(ctx context.Context) (*dto.TeacherSurveyStatistics, error)
}

// TeacherSurveyRepository handles teacher survey database operations
type TeacherSurveyRepository struct {
	db *pgxpool.Pool
}

// NewTeacherSurveyRepository creates a new TeacherSurveyRepository
func NewTeacherSurveyRepository(db *pgxpool.Pool) *TeacherSurveyRepository {
	return &TeacherSurveyRepository{
		db: db,
	}
}

const teacherSurveyColumns = `
	id, user_id, has_used_chatbot, chatbots_used, courses_used,
	purposes, outcomes, challenges, likelihood_future_use,
	advantages, concerns, resources_needed, age_range,
	institution_type, country, years_experience, additional_comments, created_at`

// scanTeacherSurvey scans the survey columns into a model
func scanTeacherSurvey(row pgx.Row, survey *models.TeacherSurvey) error {
	return row.Scan(
		&survey.ID, &survey.UserID, &survey.HasUsedChatbot, &survey.ChatbotsUsed,
		&survey.CoursesUsed, &survey.Purposes, &survey.Outcomes, &survey.Challenges,
		&survey.LikelihoodFutureUse, &survey.Advantages, &survey.Concerns,
		&survey.ResourcesNeeded, &survey.AgeRange, &survey.InstitutionType,
		&survey.Country, &survey.YearsExperience, &survey.AdditionalComments,
		&survey.CreatedAt)
}

// Create inserts a new teacher survey
func (r *TeacherSurveyRepository) Create(ctx context.Context, survey *models.TeacherSurvey) error {
	err := scanTeacherSurvey(r.db.QueryRow(ctx, `
		INSERT INTO teacher_surveys (
			user_id, has_used_chatbot, chatbots_used, courses_used,
			purposes, outcomes, challenges, likelihood_future_use,
			advantages, concerns, resources_needed, age_range,
			institution_type, country, years_experience, additional_comments
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING`+teacherSurveyColumns,
		survey.UserID, survey.HasUsedChatbot, survey.ChatbotsUsed, survey.CoursesUsed,
		survey.Purposes, survey.Outcomes, survey.Challenges, survey.LikelihoodFutureUse,
		survey.Advantages, survey.Concerns, survey.ResourcesNeeded, survey.AgeRange,
		survey.InstitutionType, survey.Country, survey.YearsExperience, survey.AdditionalComments), survey)

	if err != nil {
		return fmt.Errorf("error creating teacher survey: %w", err)
	}

	return nil
}

// GetByID retrieves a survey by ID, joined with the owner's username and email
func (r *TeacherSurveyRepository) GetByID(ctx context.Context, id int64) (*models.TeacherSurvey, error) {
	survey := &models.TeacherSurvey{}
	err := r.db.QueryRow(ctx, `
		SELECT t.id, t.user_id, t.has_used_chatbot, t.chatbots_used, t.courses_used,
		       t.purposes, t.outcomes, t.challenges, t.likelihood_future_use,
		       t.advantages, t.concerns, t.resources_needed, t.age_range,
		       t.institution_type, t.country, t.years_experience, t.additional_comments, t.created_at,
		       u.username, u.email
		FROM teacher_surveys t
		JOIN users u ON t.user_id = u.id
		WHERE t.id = $1`,
		id).Scan(
		&survey.ID, &survey.UserID, &survey.HasUsedChatbot, &survey.ChatbotsUsed,
		&survey.CoursesUsed, &survey.Purposes, &survey.Outcomes, &survey.Challenges,
		&survey.LikelihoodFutureUse, &survey.Advantages, &survey.Concerns,
		&survey.ResourcesNeeded, &survey.AgeRange, &survey.InstitutionType,
		&survey.Country, &survey.YearsExperience, &survey.AdditionalComments,
		&survey.CreatedAt, &survey.Username, &survey.Email)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("error finding teacher survey: %w", err)
	}

	return survey, nil
}

// List retrieves all surveys, newest first, joined with owner info
func (r *TeacherSurveyRepository) List(ctx context.Context) ([]*models.TeacherSurvey, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.user_id, t.has_used_chatbot, t.chatbots_used, t.courses_used,
		       t.purposes, t.outcomes, t.challenges, t.likelihood_future_use,
		       t.advantages, t.concerns, t.resources_needed, t.age_range,
		       t.institution_type, t.country, t.years_experience, t.additional_comments, t.created_at,
		       u.username, u.email
		FROM teacher_surveys t
		JOIN users u ON t.user_id = u.id
		ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing teacher surveys: %w", err)
	}
	defer rows.Close()

	surveys := []*models.TeacherSurvey{}
	for rows.Next() {
		survey := &models.TeacherSurvey{}
		if err := rows.Scan(
			&survey.ID, &survey.UserID, &survey.HasUsedChatbot, &survey.ChatbotsUsed,
			&survey.CoursesUsed, &survey.Purposes, &survey.Outcomes, &survey.Challenges,
			&survey.LikelihoodFutureUse, &survey.Advantages, &survey.Concerns,
			&survey.ResourcesNeeded, &survey.AgeRange, &survey.InstitutionType,
			&survey.Country, &survey.YearsExperience, &survey.AdditionalComments,
			&survey.CreatedAt, &survey.Username, &survey.Email); err != nil {
			return nil, fmt.Errorf("error scanning teacher survey row: %w", err)
		}
		surveys = append(surveys, survey)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher survey rows: %w", err)
	}

	return surveys, nil
}

// ListByUserID retrieves all surveys owned by a user, newest first
func (r *TeacherSurveyRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.TeacherSurvey, error) {
	rows, err := r.db.Query(ctx, `
		SELECT`+teacherSurveyColumns+`
		FROM teacher_surveys
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing user teacher surveys: %w", err)
	}
	defer rows.Close()

	surveys := []*models.TeacherSurvey{}
	for rows.Next() {
		survey := &models.TeacherSurvey{}
		if err := scanTeacherSurvey(rows, survey); err != nil {
			return nil, fmt.Errorf("error scanning teacher survey row: %w", err)
		}
		surveys = append(surveys, survey)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher survey rows: %w", err)
	}

	return surveys, nil
}

// Update applies a merge-patch: nil fields keep their stored values.
func (r *TeacherSurveyRepository) Update(ctx context.Context, id int64, patch *models.TeacherSurveyPatch) (*models.TeacherSurvey, error) {
	survey := &models.TeacherSurvey{}
	err := scanTeacherSurvey(r.db.QueryRow(ctx, `
		UPDATE teacher_surveys
		SET has_used_chatbot = COALESCE($1, has_used_chatbot),
		    chatbots_used = COALESCE($2, chatbots_used),
		    courses_used = COALESCE($3, courses_used),
		    purposes = COALESCE($4, purposes),
		    outcomes = COALESCE($5, outcomes),
		    challenges = COALESCE($6, challenges),
		    likelihood_future_use = COALESCE($7, likelihood_future_use),
		    advantages = COALESCE($8, advantages),
		    concerns = COALESCE($9, concerns),
		    resources_needed = COALESCE($10, resources_needed),
		    age_range = COALESCE($11, age_range),
		    institution_type = COALESCE($12, institution_type),
		    country = COALESCE($13, country),
		    years_experience = COALESCE($14, years_experience),
		    additional_comments = COALESCE($15, additional_comments)
		WHERE id = $16
		RETURNING`+teacherSurveyColumns,
		patch.HasUsedChatbot, patch.ChatbotsUsed, patch.CoursesUsed, patch.Purposes,
		patch.Outcomes, patch.Challenges, patch.LikelihoodFutureUse, patch.Advantages,
		patch.Concerns, patch.ResourcesNeeded, patch.AgeRange, patch.InstitutionType,
		patch.Country, patch.YearsExperience, patch.AdditionalComments, id), survey)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("error updating teacher survey: %w", err)
	}

	return survey, nil
}

// Delete removes a survey and returns the deleted id.
func (r *TeacherSurveyRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var deletedID int64
	err := r.db.QueryRow(ctx, `
		DELETE FROM teacher_surveys WHERE id = $1 RETURNING id`,
		id).Scan(&deletedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrSurveyNotFound
		}
		return 0, fmt.Errorf("error deleting teacher survey: %w", err)
	}

	return deletedID, nil
}

// Statistics computes the aggregate numbers over the full table,
// bucketed by likelihood of future use.
func (r *TeacherSurveyRepository) Statistics(ctx context.Context) (*dto.TeacherSurveyStatistics, error) {
	stats := &dto.TeacherSurveyStatistics{}
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(CASE WHEN has_used_chatbot = true THEN 1 END),
		       COUNT(CASE WHEN likelihood_future_use = 'Very likely' THEN 1 END),
		       COUNT(CASE WHEN likelihood_future_use = 'Likely' THEN 1 END),
		       COUNT(CASE WHEN likelihood_future_use = 'Unlikely' THEN 1 END),
		       COUNT(CASE WHEN likelihood_future_use = 'Very unlikely' THEN 1 END)
		FROM teacher_surveys`).Scan(
		&stats.TotalSurveys, &stats.TeachersUsingChatbots,
		&stats.VeryLikelyContinue, &stats.LikelyContinue,
		&stats.UnlikelyContinue, &stats.VeryUnlikelyContinue)

	if err != nil {
		return nil, fmt.Errorf("error computing teacher survey statistics: %w", err)
	}

	return stats, nil
}

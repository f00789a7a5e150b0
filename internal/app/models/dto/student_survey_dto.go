package dto

import "github.com/lmrivero/chatsurvey/internal/app/models"

// CreateStudentSurveyRequest represents a new student survey submission.
// The owner is always the authenticated user, never taken from the body.
type CreateStudentSurveyRequest struct {
	HasUsedChatbot          bool     `json:"has_used_chatbot"`
	ChatbotsUsed            []string `json:"chatbots_used"`
	UsageFrequency          string   `json:"usage_frequency"`
	UsefulnessRating        int      `json:"usefulness_rating" binding:"required,min=1,max=5"`
	TasksUsedFor            []string `json:"tasks_used_for"`
	OverallExperience       int      `json:"overall_experience" binding:"required,min=1,max=5"`
	PreferredChatbot        string   `json:"preferred_chatbot"`
	EffectivenessComparison string   `json:"effectiveness_comparison"`
	WillContinueUsing       bool     `json:"will_continue_using"`
	WouldRecommend          bool     `json:"would_recommend"`
	AdditionalComments      *string  `json:"additional_comments"`
}

// ToModel maps the request to a survey owned by the given user
func (r *CreateStudentSurveyRequest) ToModel(userID int64) *models.StudentSurvey {
	return &models.StudentSurvey{
		UserID:                  userID,
		HasUsedChatbot:          r.HasUsedChatbot,
		ChatbotsUsed:            emptyIfNil(r.ChatbotsUsed),
		UsageFrequency:          r.UsageFrequency,
		UsefulnessRating:        r.UsefulnessRating,
		TasksUsedFor:            emptyIfNil(r.TasksUsedFor),
		OverallExperience:       r.OverallExperience,
		PreferredChatbot:        r.PreferredChatbot,
		EffectivenessComparison: r.EffectivenessComparison,
		WillContinueUsing:       r.WillContinueUsing,
		WouldRecommend:          r.WouldRecommend,
		AdditionalComments:      r.AdditionalComments,
	}
}

// UpdateStudentSurveyRequest carries a merge-patch update. Nil fields keep
// their stored values (COALESCE semantics in the repository).
type UpdateStudentSurveyRequest struct {
	HasUsedChatbot          *bool    `json:"has_used_chatbot"`
	ChatbotsUsed            []string `json:"chatbots_used"`
	UsageFrequency          *string  `json:"usage_frequency"`
	UsefulnessRating        *int     `json:"usefulness_rating" binding:"omitempty,min=1,max=5"`
	TasksUsedFor            []string `json:"tasks_used_for"`
	OverallExperience       *int     `json:"overall_experience" binding:"omitempty,min=1,max=5"`
	PreferredChatbot        *string  `json:"preferred_chatbot"`
	EffectivenessComparison *string  `json:"effectiveness_comparison"`
	WillContinueUsing       *bool    `json:"will_continue_using"`
	WouldRecommend          *bool    `json:"would_recommend"`
	AdditionalComments      *string  `json:"additional_comments"`
}

// ToPatch maps the request to a merge-patch carrier
func (r *UpdateStudentSurveyRequest) ToPatch() *models.StudentSurveyPatch {
	return &models.StudentSurveyPatch{
		HasUsedChatbot:          r.HasUsedChatbot,
		ChatbotsUsed:            r.ChatbotsUsed,
		UsageFrequency:          r.UsageFrequency,
		UsefulnessRating:        r.UsefulnessRating,
		TasksUsedFor:            r.TasksUsedFor,
		OverallExperience:       r.OverallExperience,
		PreferredChatbot:        r.PreferredChatbot,
		EffectivenessComparison: r.EffectivenessComparison,
		WillContinueUsing:       r.WillContinueUsing,
		WouldRecommend:          r.WouldRecommend,
		AdditionalComments:      r.AdditionalComments,
	}
}

// StudentSurveyResponse wraps a single survey payload
type StudentSurveyResponse struct {
	Message string                `json:"message"`
	Survey  *models.StudentSurvey `json:"survey"`
}

// StudentSurveyListResponse wraps a survey listing
type StudentSurveyListResponse struct {
	Message string                  `json:"message"`
	Count   int                     `json:"count"`
	Surveys []*models.StudentSurvey `json:"surveys"`
}

// StudentSurveyStatistics holds the aggregate numbers for student surveys
type StudentSurveyStatistics struct {
	TotalSurveys     int64   `json:"total_surveys"`
	AvgUsefulness    float64 `json:"avg_usefulness"`
	AvgExperience    float64 `json:"avg_experience"`
	UsersWithChatbot int64   `json:"users_with_chatbot"`
	WillContinue     int64   `json:"will_continue"`
}

// StudentSurveyStatisticsResponse wraps the statistics payload
type StudentSurveyStatisticsResponse struct {
	Message    string                   `json:"message"`
	Statistics *StudentSurveyStatistics `json:"statistics"`
}

// emptyIfNil normalizes absent array fields to empty arrays
func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

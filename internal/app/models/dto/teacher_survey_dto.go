package dto

import "github.com/lmrivero/chatsurvey/internal/app/models"

// CreateTeacherSurveyRequest represents a new teacher survey submission.
type CreateTeacherSurveyRequest struct {
	HasUsedChatbot      bool     `json:"has_used_chatbot"`
	ChatbotsUsed        []string `json:"chatbots_used"`
	CoursesUsed         []string `json:"courses_used"`
	Purposes            []string `json:"purposes"`
	Outcomes            []string `json:"outcomes"`
	Challenges          []string `json:"challenges"`
	LikelihoodFutureUse string   `json:"likelihood_future_use" binding:"omitempty,oneof='Very likely' Likely Unlikely 'Very unlikely'"`
	Advantages          []string `json:"advantages"`
	Concerns            []string `json:"concerns"`
	ResourcesNeeded     []string `json:"resources_needed"`
	AgeRange            string   `json:"age_range"`
	InstitutionType     string   `json:"institution_type"`
	Country             string   `json:"country"`
	YearsExperience     string   `json:"years_experience"`
	AdditionalComments  *string  `json:"additional_comments"`
}

// ToModel maps the request to a survey owned by the given user
func (r *CreateTeacherSurveyRequest) ToModel(userID int64) *models.TeacherSurvey {
	return &models.TeacherSurvey{
		UserID:              userID,
		HasUsedChatbot:      r.HasUsedChatbot,
		ChatbotsUsed:        emptyIfNil(r.ChatbotsUsed),
		CoursesUsed:         emptyIfNil(r.CoursesUsed),
		Purposes:            emptyIfNil(r.Purposes),
		Outcomes:            emptyIfNil(r.Outcomes),
		Challenges:          emptyIfNil(r.Challenges),
		LikelihoodFutureUse: r.LikelihoodFutureUse,
		Advantages:          emptyIfNil(r.Advantages),
		Concerns:            emptyIfNil(r.Concerns),
		ResourcesNeeded:     emptyIfNil(r.ResourcesNeeded),
		AgeRange:            r.AgeRange,
		InstitutionType:     r.InstitutionType,
		Country:             r.Country,
		YearsExperience:     r.YearsExperience,
		AdditionalComments:  r.AdditionalComments,
	}
}

// UpdateTeacherSurveyRequest carries a merge-patch update. Nil fields keep
// their stored values.
type UpdateTeacherSurveyRequest struct {
	HasUsedChatbot      *bool    `json:"has_used_chatbot"`
	ChatbotsUsed        []string `json:"chatbots_used"`
	CoursesUsed         []string `json:"courses_used"`
	Purposes            []string `json:"purposes"`
	Outcomes            []string `json:"outcomes"`
	Challenges          []string `json:"challenges"`
	LikelihoodFutureUse *string  `json:"likelihood_future_use" binding:"omitempty,oneof='Very likely' Likely Unlikely 'Very unlikely'"`
	Advantages          []string `json:"advantages"`
	Concerns            []string `json:"concerns"`
	ResourcesNeeded     []string `json:"resources_needed"`
	AgeRange            *string  `json:"age_range"`
	InstitutionType     *string  `json:"institution_type"`
	Country             *string  `json:"country"`
	YearsExperience     *string  `json:"years_experience"`
	AdditionalComments  *string  `json:"additional_comments"`
}

// ToPatch maps the request to a merge-patch carrier
func (r *UpdateTeacherSurveyRequest) ToPatch() *models.TeacherSurveyPatch {
	return &models.TeacherSurveyPatch{
		HasUsedChatbot:      r.HasUsedChatbot,
		ChatbotsUsed:        r.ChatbotsUsed,
		CoursesUsed:         r.CoursesUsed,
		Purposes:            r.Purposes,
		Outcomes:            r.Outcomes,
		Challenges:          r.Challenges,
		LikelihoodFutureUse: r.LikelihoodFutureUse,
		Advantages:          r.Advantages,
		Concerns:            r.Concerns,
		ResourcesNeeded:     r.ResourcesNeeded,
		AgeRange:            r.AgeRange,
		InstitutionType:     r.InstitutionType,
		Country:             r.Country,
		YearsExperience:     r.YearsExperience,
		AdditionalComments:  r.AdditionalComments,
	}
}

// TeacherSurveyResponse wraps a single survey payload
type TeacherSurveyResponse struct {
	Message string                `json:"message"`
	Survey  *models.TeacherSurvey `json:"survey"`
}

// TeacherSurveyListResponse wraps a survey listing
type TeacherSurveyListResponse struct {
	Message string                  `json:"message"`
	Count   int                     `json:"count"`
	Surveys []*models.TeacherSurvey `json:"surveys"`
}

// TeacherSurveyStatistics holds the aggregate numbers for teacher surveys,
// bucketed by likelihood of future use.
type TeacherSurveyStatistics struct {
	TotalSurveys          int64 `json:"total_surveys"`
	TeachersUsingChatbots int64 `json:"teachers_using_chatbots"`
	VeryLikelyContinue    int64 `json:"very_likely_continue"`
	LikelyContinue        int64 `json:"likely_continue"`
	UnlikelyContinue      int64 `json:"unlikely_continue"`
	VeryUnlikelyContinue  int64 `json:"very_unlikely_continue"`
}

// TeacherSurveyStatisticsResponse wraps the statistics payload
type TeacherSurveyStatisticsResponse struct {
	Message    string                   `json:"message"`
	Statistics *TeacherSurveyStatistics `json:"statistics"`
}

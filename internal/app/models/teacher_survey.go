package models

import "time"

// TeacherSurvey defines the teacher survey model based on the 'teacher_surveys' table.
type TeacherSurvey struct {
	ID                  int64     `json:"id" db:"id"`
	UserID              int64     `json:"user_id" db:"user_id"`
	HasUsedChatbot      bool      `json:"has_used_chatbot" db:"has_used_chatbot"`
	ChatbotsUsed        []string  `json:"chatbots_used" db:"chatbots_used"`
	CoursesUsed         []string  `json:"courses_used" db:"courses_used"`
	Purposes            []string  `json:"purposes" db:"purposes"`
	Outcomes            []string  `json:"outcomes" db:"outcomes"`
	Challenges          []string  `json:"challenges" db:"challenges"`
	LikelihoodFutureUse string    `json:"likelihood_future_use" db:"likelihood_future_use"`
	Advantages          []string  `json:"advantages" db:"advantages"`
	Concerns            []string  `json:"concerns" db:"concerns"`
	ResourcesNeeded     []string  `json:"resources_needed" db:"resources_needed"`
	AgeRange            string    `json:"age_range" db:"age_range"`
	InstitutionType     string    `json:"institution_type" db:"institution_type"`
	Country             string    `json:"country" db:"country"`
	YearsExperience     string    `json:"years_experience" db:"years_experience"`
	AdditionalComments  *string   `json:"additional_comments,omitempty" db:"additional_comments"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`

	// Owner info joined from the users table on list/get queries
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

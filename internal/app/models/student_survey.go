package models

import "time"

// StudentSurvey defines the student survey model based on the 'student_surveys' table.
// Array fields map to PostgreSQL text[] columns.
type StudentSurvey struct {
	ID                      int64     `json:"id" db:"id"`
	UserID                  int64     `json:"user_id" db:"user_id"`
	HasUsedChatbot          bool      `json:"has_used_chatbot" db:"has_used_chatbot"`
	ChatbotsUsed            []string  `json:"chatbots_used" db:"chatbots_used"`
	UsageFrequency          string    `json:"usage_frequency" db:"usage_frequency"`
	UsefulnessRating        int       `json:"usefulness_rating" db:"usefulness_rating"`
	TasksUsedFor            []string  `json:"tasks_used_for" db:"tasks_used_for"`
	OverallExperience       int       `json:"overall_experience" db:"overall_experience"`
	PreferredChatbot        string    `json:"preferred_chatbot" db:"preferred_chatbot"`
	EffectivenessComparison string    `json:"effectiveness_comparison" db:"effectiveness_comparison"`
	WillContinueUsing       bool      `json:"will_continue_using" db:"will_continue_using"`
	WouldRecommend          bool      `json:"would_recommend" db:"would_recommend"`
	AdditionalComments      *string   `json:"additional_comments,omitempty" db:"additional_comments"`
	CreatedAt               time.Time `json:"created_at" db:"created_at"`

	// Owner info joined from the users table on list/get queries
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

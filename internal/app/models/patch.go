package models

// Merge-patch carriers: nil fields keep the stored value (COALESCE in SQL).

// UserPatch is a partial user update
type UserPatch struct {
	Username *string
	Email    *string
	Role     *string
}

// StudentSurveyPatch is a partial student survey update
type StudentSurveyPatch struct {
	HasUsedChatbot          *bool
	ChatbotsUsed            []string
	UsageFrequency          *string
	UsefulnessRating        *int
	TasksUsedFor            []string
	OverallExperience       *int
	PreferredChatbot        *string
	EffectivenessComparison *string
	WillContinueUsing       *bool
	WouldRecommend          *bool
	AdditionalComments      *string
}

// TeacherSurveyPatch is a partial teacher survey update
type TeacherSurveyPatch struct {
	HasUsedChatbot      *bool
	ChatbotsUsed        []string
	CoursesUsed         []string
	Purposes            []string
	Outcomes            []string
	Challenges          []string
	LikelihoodFutureUse *string
	Advantages          []string
	Concerns            []string
	ResourcesNeeded     []string
	AgeRange            *string
	InstitutionType     *string
	Country             *string
	YearsExperience     *string
	AdditionalComments  *string
}

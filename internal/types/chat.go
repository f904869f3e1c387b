package types

import "github.com/go-playground/validator/v10"

// Intent is a closed-set category describing what kind of career advice
// a chat message is asking for.
type Intent string

// The fixed intent set. Classification precedence follows this order.
const (
	IntentCareerChange      Intent = "career_change"
	IntentSalaryNegotiation Intent = "salary_negotiation"
	IntentSkillDevelopment  Intent = "skill_development"
	IntentJobSearch         Intent = "job_search"
	IntentInterviewPrep     Intent = "interview_prep"
	IntentNetworking        Intent = "networking"
	IntentWorkLifeBalance   Intent = "work_life_balance"
	IntentGeneral           Intent = "general"
)

// String returns the intent name.
func (i Intent) String() string { return string(i) }

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is one message in a chat session's ordered log.
type ConversationTurn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// ChatContext carries optional user details used to personalize replies.
type ChatContext struct {
	ExperienceLevel string   `json:"experience_level,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Interests       []string `json:"interests,omitempty"`
}

// Empty reports whether no context fields are set.
func (c *ChatContext) Empty() bool {
	return c == nil || (c.ExperienceLevel == "" && len(c.Skills) == 0 && len(c.Interests) == 0)
}

// Merge overwrites set fields of c with the non-empty fields of other.
func (c *ChatContext) Merge(other *ChatContext) {
	if other == nil {
		return
	}
	if other.ExperienceLevel != "" {
		c.ExperienceLevel = other.ExperienceLevel
	}
	if len(other.Skills) > 0 {
		c.Skills = other.Skills
	}
	if len(other.Interests) > 0 {
		c.Interests = other.Interests
	}
}

// ChatRequest is the inbound chat payload.
type ChatRequest struct {
	Message   string       `json:"message" validate:"required,min=1"`
	SessionID string       `json:"session_id,omitempty" validate:"omitempty,uuid"`
	Context   *ChatContext `json:"user_context,omitempty"`
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ConversationSummary reports analytics for one chat session.
type ConversationSummary struct {
	TotalMessages    int      `json:"total_messages"`
	IntentsDiscussed []Intent `json:"intents_discussed"`
	UserMessages     int      `json:"conversation_length"`
}

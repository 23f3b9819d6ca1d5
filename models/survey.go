package models

import "time"

type SurveyQuestion struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Text         string    `json:"text" gorm:"not null"`
	TextAr       string    `json:"text_ar"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SurveyResponse is one respondent's submission; answers hang off it one
// row per question.
type SurveyResponse struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RespondentID string         `json:"respondent_id" gorm:"uniqueIndex;not null"`
	BranchCode   string         `json:"branch_code" gorm:"index"`
	Answers      []SurveyAnswer `json:"answers,omitempty" gorm:"foreignKey:ResponseID"`
	CreatedAt    time.Time      `json:"created_at"`
}

type SurveyAnswer struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	ResponseID uint   `json:"response_id" gorm:"index;not null"`
	QuestionID uint   `json:"question_id" gorm:"not null"`
	Answer     string `json:"answer"`
}

package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"restaurant-menu-api/config"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ── Survey Questions ─────────────────────────────────────────────────────────

type CreateQuestionRequest struct {
	Text         string `json:"text" binding:"required"`
	TextAr       string `json:"text_ar"`
	DisplayOrder int    `json:"display_order"`
}

// GetActiveQuestions returns the questions a visitor is asked (public)
func GetActiveQuestions(c *gin.Context) {
	var questions []models.SurveyQuestion
	config.DB.Where("is_active = ?", true).Order("display_order").Find(&questions)
	c.JSON(http.StatusOK, gin.H{"count": len(questions), "questions": questions})
}

// ListQuestions returns every question including inactive ones (admin)
func ListQuestions(c *gin.Context) {
	var questions []models.SurveyQuestion
	config.DB.Order("display_order").Find(&questions)
	c.JSON(http.StatusOK, gin.H{"count": len(questions), "questions": questions})
}

func CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	question := models.SurveyQuestion{
		Text:         req.Text,
		TextAr:       req.TextAr,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if err := config.DB.Create(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Question created", "question": question})
}

func UpdateQuestion(c *gin.Context) {
	var question models.SurveyQuestion
	if err := config.DB.First(&question, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"text": true, "text_ar": true, "display_order": true, "is_active": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&question).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update question"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question updated", "question": question})
}

func DeleteQuestion(c *gin.Context) {
	var question models.SurveyQuestion
	if err := config.DB.First(&question, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	config.DB.Delete(&question)
	c.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
}

// ── Survey Responses ─────────────────────────────────────────────────────────

type SubmitAnswer struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type SubmitResponseRequest struct {
	BranchCode string         `json:"branch_code"`
	Answers    []SubmitAnswer `json:"answers" binding:"required,min=1,dive"`
}

// SubmitResponse records one visitor's survey submission (public). Answers
// must reference active questions.
func SubmitResponse(c *gin.Context) {
	var req SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var active []models.SurveyQuestion
	config.DB.Where("is_active = ?", true).Find(&active)
	activeIDs := map[uint]bool{}
	for _, q := range active {
		activeIDs[q.ID] = true
	}
	for _, a := range req.Answers {
		if !activeIDs[a.QuestionID] {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Question %d is not an active survey question", a.QuestionID)})
			return
		}
	}

	response := models.SurveyResponse{
		RespondentID: uuid.NewString(),
		BranchCode:   req.BranchCode,
	}
	for _, a := range req.Answers {
		response.Answers = append(response.Answers, models.SurveyAnswer{
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
		})
	}
	if err := config.DB.Create(&response).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save response"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Thank you for your feedback", "respondent_id": response.RespondentID})
}

// ListResponses returns all responses with their answers (admin)
func ListResponses(c *gin.Context) {
	var responses []models.SurveyResponse
	query := config.DB.Preload("Answers").Order("created_at desc")
	if branch := c.Query("branch"); branch != "" {
		query = query.Where("branch_code = ?", branch)
	}
	query.Find(&responses)
	c.JSON(http.StatusOK, gin.H{"count": len(responses), "responses": responses})
}

// ExportResponsesCSV streams all responses as a UTF-8 CSV with a BOM so
// spreadsheet tools pick up the encoding. One row per respondent, one
// column per active question. Zero responses is refused, not an empty file.
func ExportResponsesCSV(c *gin.Context) {
	var responses []models.SurveyResponse
	config.DB.Preload("Answers").Order("created_at").Find(&responses)
	if len(responses) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No survey responses to export"})
		return
	}

	var questions []models.SurveyQuestion
	config.DB.Where("is_active = ?", true).Order("display_order").Find(&questions)

	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM for spreadsheet tools
	w := csv.NewWriter(&buf)

	header := []string{"respondent_id", "branch", "submitted_at"}
	for _, q := range questions {
		header = append(header, q.Text)
	}
	w.Write(header)

	for _, r := range responses {
		byQuestion := map[uint]string{}
		for _, a := range r.Answers {
			byQuestion[a.QuestionID] = a.Answer
		}
		row := []string{r.RespondentID, r.BranchCode, r.CreatedAt.Format("2006-01-02 15:04:05")}
		for _, q := range questions {
			row = append(row, byQuestion[q.ID])
		}
		w.Write(row)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build CSV"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="survey_responses.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

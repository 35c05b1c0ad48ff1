package handlers

import (
	"net/http"

	questionRepo "amora/database/repository/question"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var questionRepository questionRepo.QuestionRepository

// SetQuestionRepository injects the catalog repository used by the question
// handlers.
func SetQuestionRepository(repo questionRepo.QuestionRepository) {
	questionRepository = repo
}

// GetEnabledQuestionsHandler handles GET /api/questions: the enabled catalog
// in display order, as clients consume it.
func GetEnabledQuestionsHandler(c *gin.Context) {
	questions, err := questionRepository.GetEnabled()
	if err != nil {
		getLogger(c).Error("Failed to fetch questions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

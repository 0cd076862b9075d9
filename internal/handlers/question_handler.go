package handlers

import (
	"context"
	"errors"
	"net/http"

	"quizzle-service/internal/models"
	"quizzle-service/internal/request"
	"quizzle-service/internal/service"

	"github.com/gin-gonic/gin"
)

var (
	addQuestionContract = request.Contract{
		{Name: "quiz_id", Kind: request.String},
		{Name: "question", Kind: request.String},
		{Name: "answers", Kind: request.List},
		{Name: "correct_answer", Kind: request.String},
		{Name: "explanation", Kind: request.String},
	}
	updateQuestionContract = request.Contract{
		{Name: "quiz_id", Kind: request.String},
		{Name: "question", Kind: request.String},
		{Name: "answers", Kind: request.List},
		{Name: "correct_answer", Kind: request.String},
		{Name: "explanation", Kind: request.String},
		{Name: "_id", Kind: request.String},
	}
	deleteQuestionContract = request.Contract{
		{Name: "_id", Kind: request.String},
	}
	getQuestionsContract = request.Contract{
		{Name: "quiz_id", Kind: request.String},
	}
)

type QuestionHandler struct {
	Service *service.QuestionService
}

func NewQuestionHandler(s *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: s}
}

func (h *QuestionHandler) AddQuestion(c *gin.Context) {
	body, ok := bindValidated(c, addQuestionContract)
	if !ok {
		return
	}
	question := &models.Question{
		Question:      body["question"].(string),
		Answers:       body["answers"].([]interface{}),
		CorrectAnswer: body["correct_answer"].(string),
		Explanation:   body["explanation"].(string),
	}
	err := h.Service.AddQuestion(context.Background(), body["quiz_id"].(string), question)
	switch {
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Field 'quiz_id' is invalid"})
	case errors.Is(err, service.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Field 'quiz_id' doesn't exist"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"success": true, "question": question})
	}
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	body, ok := bindValidated(c, updateQuestionContract)
	if !ok {
		return
	}
	err := h.Service.UpdateQuestion(context.Background(),
		body["_id"].(string),
		body["question"].(string),
		body["answers"].([]interface{}),
		body["correct_answer"].(string),
		body["explanation"].(string),
	)
	switch {
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Field '_id' is invalid"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Record not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Successful update"})
	}
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	body, ok := bindValidated(c, deleteQuestionContract)
	if !ok {
		return
	}
	err := h.Service.DeleteQuestion(context.Background(), body["_id"].(string))
	switch {
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Field '_id' is invalid"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Record not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Successful delete"})
	}
}

// GetQuestions lists one quiz's questions. A quiz id that parses but
// matches no quiz is an empty list with 200; only a malformed id is an
// error.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	body, ok := bindValidated(c, getQuestionsContract)
	if !ok {
		return
	}
	questions, err := h.Service.QuestionsByQuiz(context.Background(), body["quiz_id"].(string))
	switch {
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Field 'quiz_id' is invalid"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "questions": questions})
	}
}

func (h *QuestionHandler) GetAllQuestions(c *gin.Context) {
	questions, err := h.Service.AllQuestions(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "questions": questions})
}

// DeleteQuizQuestions bulk-deletes by the quiz id in the path. This is
// the only route that reports store faults explicitly.
func (h *QuestionHandler) DeleteQuizQuestions(c *gin.Context) {
	count, err := h.Service.PurgeQuizQuestions(context.Background(), c.Param("quiz_id"))
	switch {
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Field 'quiz_id' is invalid"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "deleted_count": count})
	}
}

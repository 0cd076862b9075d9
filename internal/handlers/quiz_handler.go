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
	createQuizContract = request.Contract{
		{Name: "title", Kind: request.String},
		{Name: "description", Kind: request.String},
		{Name: "creator_username", Kind: request.String},
		{Name: "is_public", Kind: request.Bool},
	}
	updateQuizContract = request.Contract{
		{Name: "title", Kind: request.String},
		{Name: "description", Kind: request.String},
		{Name: "creator_username", Kind: request.String},
		{Name: "is_public", Kind: request.Bool},
		{Name: "date_created", Kind: request.String},
		{Name: "_id", Kind: request.String},
	}
	deleteQuizContract = request.Contract{
		{Name: "_id", Kind: request.String},
	}
	userQuizzesContract = request.Contract{
		{Name: "creator_username", Kind: request.String},
	}
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	body, ok := bindValidated(c, createQuizContract)
	if !ok {
		return
	}
	quiz := &models.Quiz{
		Title:           body["title"].(string),
		Description:     body["description"].(string),
		CreatorUsername: body["creator_username"].(string),
		IsPublic:        body["is_public"].(bool),
	}
	if err := h.Service.CreateQuiz(context.Background(), quiz); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "quiz": quiz})
}

func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	body, ok := bindValidated(c, updateQuizContract)
	if !ok {
		return
	}
	err := h.Service.UpdateQuiz(context.Background(),
		body["_id"].(string),
		body["title"].(string),
		body["description"].(string),
		body["is_public"].(bool),
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

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	body, ok := bindValidated(c, deleteQuizContract)
	if !ok {
		return
	}
	err := h.Service.DeleteQuiz(context.Background(), body["_id"].(string))
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

func (h *QuizHandler) GetUserQuizzes(c *gin.Context) {
	body, ok := bindValidated(c, userQuizzesContract)
	if !ok {
		return
	}
	public, private, err := h.Service.QuizzesByCreator(context.Background(), body["creator_username"].(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "public_quizzes": public, "private_quizzes": private})
}

func (h *QuizHandler) GetPublicQuizzes(c *gin.Context) {
	quizzes, err := h.Service.PublicQuizzes(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "public_quizzes": quizzes})
}

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
	addUserContract = request.Contract{
		{Name: "username", Kind: request.String},
		{Name: "email", Kind: request.String},
		{Name: "score_history", Kind: request.List},
	}
	updateUserContract = request.Contract{
		{Name: "username", Kind: request.String},
		{Name: "email", Kind: request.String},
		{Name: "score_history", Kind: request.List},
		{Name: "_id", Kind: request.String},
	}
	deleteUserContract = request.Contract{
		{Name: "_id", Kind: request.String},
	}
	getUserContract = request.Contract{
		{Name: "username", Kind: request.String},
	}
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

func (h *UserHandler) AddUser(c *gin.Context) {
	body, ok := bindValidated(c, addUserContract)
	if !ok {
		return
	}
	user := &models.User{
		Username:     body["username"].(string),
		Email:        body["email"].(string),
		ScoreHistory: body["score_history"].([]interface{}),
	}
	err := h.Service.AddUser(context.Background(), user)
	switch {
	case errors.Is(err, service.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Field 'username' already exists"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
	}
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	body, ok := bindValidated(c, updateUserContract)
	if !ok {
		return
	}
	err := h.Service.UpdateUser(context.Background(),
		body["_id"].(string),
		body["score_history"].([]interface{}),
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

func (h *UserHandler) DeleteUser(c *gin.Context) {
	body, ok := bindValidated(c, deleteUserContract)
	if !ok {
		return
	}
	err := h.Service.DeleteUser(context.Background(), body["_id"].(string))
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

func (h *UserHandler) GetUser(c *gin.Context) {
	body, ok := bindValidated(c, getUserContract)
	if !ok {
		return
	}
	user, err := h.Service.UserByUsername(context.Background(), body["username"].(string))
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Record not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

package handlers

import (
	"net/http"

	"quizzle-service/internal/request"

	"github.com/gin-gonic/gin"
)

// bindValidated decodes the request body and checks it against the
// route's contract. On failure it writes the 400 envelope itself and
// returns false.
func bindValidated(c *gin.Context, contract request.Contract) (map[string]interface{}, bool) {
	var body interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Request must be in JSON"})
		return nil, false
	}
	if msg := contract.Validate(body); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return nil, false
	}
	return body.(map[string]interface{}), true
}

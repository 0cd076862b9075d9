package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quizzle-service/internal/service"
	"quizzle-service/internal/storetest"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires every resource route over in-memory stores.
func newTestRouter() *gin.Engine {
	quizzes := storetest.NewQuizMemory()
	questions := storetest.NewQuestionMemory()
	users := storetest.NewUserMemory()

	quizHandler := NewQuizHandler(service.NewQuizService(quizzes, questions))
	questionHandler := NewQuestionHandler(service.NewQuestionService(questions, quizzes))
	userHandler := NewUserHandler(service.NewUserService(users))

	r := gin.New()
	r.POST("/create_quiz", quizHandler.CreateQuiz)
	r.POST("/update_quiz", quizHandler.UpdateQuiz)
	r.POST("/delete_quiz", quizHandler.DeleteQuiz)
	r.POST("/get_user_quizzes", quizHandler.GetUserQuizzes)
	r.GET("/get_public_quizzes", quizHandler.GetPublicQuizzes)
	r.POST("/add_question", questionHandler.AddQuestion)
	r.POST("/update_question", questionHandler.UpdateQuestion)
	r.POST("/delete_question", questionHandler.DeleteQuestion)
	r.POST("/get_questions", questionHandler.GetQuestions)
	r.GET("/get_all_questions", questionHandler.GetAllQuestions)
	r.DELETE("/delete_quiz_questions/:quiz_id", questionHandler.DeleteQuizQuestions)
	r.POST("/add_user", userHandler.AddUser)
	r.POST("/update_user", userHandler.UpdateUser)
	r.POST("/delete_user", userHandler.DeleteUser)
	r.POST("/get_user", userHandler.GetUser)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return out
}

func wantMessage(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if w.Code != status {
		t.Errorf("status = %d, want %d (%s)", w.Code, status, w.Body.String())
	}
	body := parseBody(t, w)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["message"] != message {
		t.Errorf("message = %q, want %q", body["message"], message)
	}
}

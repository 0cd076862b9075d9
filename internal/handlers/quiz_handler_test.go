package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

const createQuizBody = `{"title":"Testing","description":"Testing is important.","creator_username":"tester","is_public":true}`

func TestCreateQuiz(t *testing.T) {
	r := newTestRouter()
	w := do(t, r, http.MethodPost, "/create_quiz", createQuizBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	body := parseBody(t, w)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}

	quiz, ok := body["quiz"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing quiz envelope: %s", w.Body.String())
	}
	if len(quiz) != 6 {
		t.Errorf("quiz has %d keys, want 6: %v", len(quiz), quiz)
	}
	for _, key := range []string{"title", "description", "creator_username", "is_public", "date_created", "_id"} {
		if _, ok := quiz[key]; !ok {
			t.Errorf("quiz missing key %q", key)
		}
	}
	id, _ := quiz["_id"].(string)
	if len(id) != 24 {
		t.Errorf("_id = %q, want 24-hex string", id)
	}
	created, _ := quiz["date_created"].(string)
	if _, err := time.Parse(time.RFC3339Nano, created); err != nil {
		t.Errorf("date_created = %q: %v", created, err)
	}
}

func TestCreateQuizValidation(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/create_quiz", `{"title":"only"}`)
	wantMessage(t, w, http.StatusBadRequest, "Request needs 4 fields exactly")

	w = do(t, r, http.MethodPost, "/create_quiz", `["not","an","object","!"]`)
	wantMessage(t, w, http.StatusBadRequest, "Request must be in JSON")

	w = do(t, r, http.MethodPost, "/create_quiz",
		`{"title":"t","description":"d","creator_username":"c","is_public":"yes"}`)
	wantMessage(t, w, http.StatusBadRequest, "Field 'is_public' is supposed to be a bool")

	// Right key count, wrong key name: reported as the missing field.
	w = do(t, r, http.MethodPost, "/create_quiz",
		`{"title":"t","description":"d","creator_username":"c","public":true}`)
	wantMessage(t, w, http.StatusBadRequest, "Request missing field 'is_public'")
}

func TestUpdateQuizAbsentRecord(t *testing.T) {
	r := newTestRouter()
	body := `{"title":"t","description":"d","creator_username":"c","is_public":true,"date_created":"2023-12-01T00:00:00Z","_id":"6569f84b0c8b0f15c7a4f8b3"}`
	w := do(t, r, http.MethodPost, "/update_quiz", body)
	wantMessage(t, w, http.StatusNotFound, "Record not found")
}

func TestUpdateQuizInvalidID(t *testing.T) {
	r := newTestRouter()
	body := `{"title":"t","description":"d","creator_username":"c","is_public":true,"date_created":"x","_id":"short"}`
	w := do(t, r, http.MethodPost, "/update_quiz", body)
	wantMessage(t, w, http.StatusBadRequest, "Field '_id' is invalid")
}

func TestDeleteQuizTwice(t *testing.T) {
	r := newTestRouter()
	w := do(t, r, http.MethodPost, "/create_quiz", createQuizBody)
	quiz := parseBody(t, w)["quiz"].(map[string]interface{})
	id := quiz["_id"].(string)

	w = do(t, r, http.MethodPost, "/delete_quiz", fmt.Sprintf(`{"_id":%q}`, id))
	if w.Code != http.StatusOK {
		t.Fatalf("first delete: status = %d (%s)", w.Code, w.Body.String())
	}
	if msg := parseBody(t, w)["message"]; msg != "Successful delete" {
		t.Errorf("message = %q", msg)
	}

	w = do(t, r, http.MethodPost, "/delete_quiz", fmt.Sprintf(`{"_id":%q}`, id))
	wantMessage(t, w, http.StatusNotFound, "Record not found")
}

func TestGetUserQuizzes(t *testing.T) {
	r := newTestRouter()
	do(t, r, http.MethodPost, "/create_quiz", createQuizBody)
	do(t, r, http.MethodPost, "/create_quiz",
		`{"title":"Private","description":"d","creator_username":"tester","is_public":false}`)

	w := do(t, r, http.MethodPost, "/get_user_quizzes", `{"creator_username":"tester"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	body := parseBody(t, w)
	if n := len(body["public_quizzes"].([]interface{})); n != 1 {
		t.Errorf("public_quizzes = %d, want 1", n)
	}
	if n := len(body["private_quizzes"].([]interface{})); n != 1 {
		t.Errorf("private_quizzes = %d, want 1", n)
	}
}

func TestGetPublicQuizzesEmpty(t *testing.T) {
	r := newTestRouter()
	w := do(t, r, http.MethodGet, "/get_public_quizzes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := parseBody(t, w)
	quizzes, ok := body["public_quizzes"].([]interface{})
	if !ok {
		t.Fatalf("public_quizzes should be a list, got %T", body["public_quizzes"])
	}
	if len(quizzes) != 0 {
		t.Errorf("expected empty list, got %d", len(quizzes))
	}
}

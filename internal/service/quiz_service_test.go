package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizzle-service/internal/models"
	"quizzle-service/internal/storetest"
)

func newQuizService() *QuizService {
	return NewQuizService(storetest.NewQuizMemory(), storetest.NewQuestionMemory())
}

func TestCreateQuizStampsDateAndID(t *testing.T) {
	s := newQuizService()
	quiz := &models.Quiz{Title: "Testing", Description: "Testing is important.", CreatorUsername: "tester", IsPublic: true}
	if err := s.CreateQuiz(context.Background(), quiz); err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	if quiz.ID.IsZero() {
		t.Error("expected generated id")
	}
	if quiz.DateCreated == "" {
		t.Fatal("expected date_created to be stamped")
	}
	if _, err := time.Parse(time.RFC3339Nano, quiz.DateCreated); err != nil {
		t.Errorf("date_created %q is not an ISO timestamp: %v", quiz.DateCreated, err)
	}
}

func TestUpdateQuiz(t *testing.T) {
	s := newQuizService()
	quiz := &models.Quiz{Title: "old", IsPublic: false}
	if err := s.CreateQuiz(context.Background(), quiz); err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}

	if err := s.UpdateQuiz(context.Background(), quiz.ID.Hex(), "new", "desc", true); err != nil {
		t.Fatalf("UpdateQuiz: %v", err)
	}
	got, err := s.Quizzes.FindByID(context.Background(), quiz.ID)
	if err != nil || got == nil {
		t.Fatalf("FindByID: %v %v", got, err)
	}
	if got.Title != "new" || !got.IsPublic {
		t.Errorf("update not applied: %+v", got)
	}

	if err := s.UpdateQuiz(context.Background(), "not-hex", "t", "d", false); !errors.Is(err, ErrInvalidID) {
		t.Errorf("want ErrInvalidID, got %v", err)
	}
	if err := s.UpdateQuiz(context.Background(), "6569f84b0c8b0f15c7a4f8b3", "t", "d", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestDeleteQuizIsIdempotentInFailure(t *testing.T) {
	s := newQuizService()
	quiz := &models.Quiz{Title: "gone soon"}
	if err := s.CreateQuiz(context.Background(), quiz); err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}

	if err := s.DeleteQuiz(context.Background(), quiz.ID.Hex()); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := s.DeleteQuiz(context.Background(), quiz.ID.Hex()); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: want ErrNotFound, got %v", err)
	}
}

func TestDeleteQuizCascadesToQuestions(t *testing.T) {
	quizzes := storetest.NewQuizMemory()
	questions := storetest.NewQuestionMemory()
	quizSvc := NewQuizService(quizzes, questions)
	questionSvc := NewQuestionService(questions, quizzes)

	quiz := &models.Quiz{Title: "cascade"}
	if err := quizSvc.CreateQuiz(context.Background(), quiz); err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	for i := 0; i < 3; i++ {
		q := &models.Question{Question: "q", Answers: []interface{}{"a", "b"}, CorrectAnswer: "a"}
		if err := questionSvc.AddQuestion(context.Background(), quiz.ID.Hex(), q); err != nil {
			t.Fatalf("AddQuestion: %v", err)
		}
	}

	if err := quizSvc.DeleteQuiz(context.Background(), quiz.ID.Hex()); err != nil {
		t.Fatalf("DeleteQuiz: %v", err)
	}
	left, err := questionSvc.QuestionsByQuiz(context.Background(), quiz.ID.Hex())
	if err != nil {
		t.Fatalf("QuestionsByQuiz: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("expected 0 questions after cascade, got %d", len(left))
	}
}

func TestQuizzesByCreatorSplitsVisibility(t *testing.T) {
	s := newQuizService()
	for _, q := range []*models.Quiz{
		{Title: "pub1", CreatorUsername: "tester", IsPublic: true},
		{Title: "priv", CreatorUsername: "tester", IsPublic: false},
		{Title: "pub2", CreatorUsername: "tester", IsPublic: true},
		{Title: "other", CreatorUsername: "someone", IsPublic: true},
	} {
		if err := s.CreateQuiz(context.Background(), q); err != nil {
			t.Fatalf("CreateQuiz: %v", err)
		}
	}

	public, private, err := s.QuizzesByCreator(context.Background(), "tester")
	if err != nil {
		t.Fatalf("QuizzesByCreator: %v", err)
	}
	if len(public) != 2 || len(private) != 1 {
		t.Fatalf("got %d public, %d private", len(public), len(private))
	}
	// Most recently created first.
	if public[0].Title != "pub2" || public[1].Title != "pub1" {
		t.Errorf("wrong order: %q, %q", public[0].Title, public[1].Title)
	}
}

package service

import (
	"context"

	"quizzle-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuestionService struct {
	Questions QuestionStore
	Quizzes   QuizStore
}

func NewQuestionService(questions QuestionStore, quizzes QuizStore) *QuestionService {
	return &QuestionService{Questions: questions, Quizzes: quizzes}
}

// AddQuestion inserts a question after confirming the referenced quiz
// exists. An unparseable quiz id is ErrInvalidID; a parseable one that
// matches no quiz is ErrQuizNotFound.
func (s *QuestionService) AddQuestion(ctx context.Context, quizID string, question *models.Question) error {
	objID, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return ErrInvalidID
	}
	quiz, err := s.Quizzes.FindByID(ctx, objID)
	if err != nil {
		return err
	}
	if quiz == nil {
		return ErrQuizNotFound
	}
	question.QuizID = objID
	id, err := s.Questions.Insert(ctx, question)
	if err != nil {
		return err
	}
	question.ID = id
	return nil
}

// UpdateQuestion sets every question field except the id and the quiz
// linkage, which are immutable.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id, text string, answers []interface{}, correctAnswer, explanation string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	matched, err := s.Questions.UpdateFields(ctx, objID, bson.M{
		"question":       text,
		"answers":        answers,
		"correct_answer": correctAnswer,
		"explanation":    explanation,
	})
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	deleted, err := s.Questions.Delete(ctx, objID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// QuestionsByQuiz lists a quiz's questions, newest first. A quiz id
// that parses but matches nothing yields an empty list, not an error.
func (s *QuestionService) QuestionsByQuiz(ctx context.Context, quizID string) ([]models.Question, error) {
	objID, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.Questions.FindByQuiz(ctx, objID)
}

func (s *QuestionService) AllQuestions(ctx context.Context) ([]models.Question, error) {
	return s.Questions.FindAll(ctx)
}

// PurgeQuizQuestions bulk-deletes every question of a quiz and reports
// the count.
func (s *QuestionService) PurgeQuizQuestions(ctx context.Context, quizID string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.Questions.DeleteByQuiz(ctx, objID)
}

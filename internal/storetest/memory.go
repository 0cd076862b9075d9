// Package storetest provides in-memory implementations of the service
// store interfaces so services and handlers can be tested without a
// running MongoDB. Documents are kept in insertion order; listings are
// returned newest first, matching the _id-descending sort of the mongo
// repositories.
package storetest

import (
	"context"
	"sync"

	"quizzle-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuizMemory struct {
	mu      sync.Mutex
	quizzes []*models.Quiz
}

func NewQuizMemory() *QuizMemory {
	return &QuizMemory{}
}

func (m *QuizMemory) Insert(_ context.Context, quiz *models.Quiz) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *quiz
	stored.ID = primitive.NewObjectID()
	m.quizzes = append(m.quizzes, &stored)
	return stored.ID, nil
}

func (m *QuizMemory) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.quizzes {
		if q.ID != id {
			continue
		}
		for k, v := range fields {
			switch k {
			case "title":
				q.Title = v.(string)
			case "description":
				q.Description = v.(string)
			case "is_public":
				q.IsPublic = v.(bool)
			}
		}
		return 1, nil
	}
	return 0, nil
}

func (m *QuizMemory) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, q := range m.quizzes {
		if q.ID == id {
			m.quizzes = append(m.quizzes[:i], m.quizzes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *QuizMemory) FindByID(_ context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.quizzes {
		if q.ID == id {
			copied := *q
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *QuizMemory) FindByCreator(_ context.Context, username string, isPublic bool) ([]models.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Quiz{}
	for i := len(m.quizzes) - 1; i >= 0; i-- {
		q := m.quizzes[i]
		if q.CreatorUsername == username && q.IsPublic == isPublic {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (m *QuizMemory) FindPublic(_ context.Context) ([]models.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Quiz{}
	for i := len(m.quizzes) - 1; i >= 0; i-- {
		if m.quizzes[i].IsPublic {
			out = append(out, *m.quizzes[i])
		}
	}
	return out, nil
}

type QuestionMemory struct {
	mu        sync.Mutex
	questions []*models.Question
}

func NewQuestionMemory() *QuestionMemory {
	return &QuestionMemory{}
}

func (m *QuestionMemory) Insert(_ context.Context, question *models.Question) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *question
	stored.ID = primitive.NewObjectID()
	m.questions = append(m.questions, &stored)
	return stored.ID, nil
}

func (m *QuestionMemory) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.questions {
		if q.ID != id {
			continue
		}
		for k, v := range fields {
			switch k {
			case "question":
				q.Question = v.(string)
			case "answers":
				list, _ := v.([]interface{})
				q.Answers = list
			case "correct_answer":
				q.CorrectAnswer = v.(string)
			case "explanation":
				q.Explanation = v.(string)
			}
		}
		return 1, nil
	}
	return 0, nil
}

func (m *QuestionMemory) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, q := range m.questions {
		if q.ID == id {
			m.questions = append(m.questions[:i], m.questions[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *QuestionMemory) FindByQuiz(_ context.Context, quizID primitive.ObjectID) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Question{}
	for i := len(m.questions) - 1; i >= 0; i-- {
		if m.questions[i].QuizID == quizID {
			out = append(out, *m.questions[i])
		}
	}
	return out, nil
}

func (m *QuestionMemory) FindAll(_ context.Context) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Question{}
	for i := len(m.questions) - 1; i >= 0; i-- {
		out = append(out, *m.questions[i])
	}
	return out, nil
}

func (m *QuestionMemory) DeleteByQuiz(_ context.Context, quizID primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.questions[:0]
	var deleted int64
	for _, q := range m.questions {
		if q.QuizID == quizID {
			deleted++
			continue
		}
		kept = append(kept, q)
	}
	m.questions = kept
	return deleted, nil
}

type UserMemory struct {
	mu    sync.Mutex
	users []*models.User
}

func NewUserMemory() *UserMemory {
	return &UserMemory{}
}

func (m *UserMemory) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *user
	stored.ID = primitive.NewObjectID()
	m.users = append(m.users, &stored)
	return stored.ID, nil
}

func (m *UserMemory) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID != id {
			continue
		}
		if v, ok := fields["score_history"]; ok {
			list, _ := v.([]interface{})
			u.ScoreHistory = list
		}
		return 1, nil
	}
	return 0, nil
}

func (m *UserMemory) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *UserMemory) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

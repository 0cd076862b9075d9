package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"quizzle-service/internal/auth"
	"quizzle-service/internal/db"
	"quizzle-service/internal/event"
	"quizzle-service/internal/handlers"
	"quizzle-service/internal/repository"
	"quizzle-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:5173"
	}

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, CRUD events will not be published")
	}

	r := gin.Default()

	// The front end sends the session cookie cross-origin, so CORS must
	// be credentialed and pinned to that one origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Server-side session keyed by a signed cookie. The store is
	// in-process: session state is gone on restart.
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Println("SESSION_SECRET not set, sessions will not survive restarts anyway")
		var err error
		sessionSecret, err = auth.RandomToken()
		if err != nil {
			log.Fatalf("Failed to generate session secret: %v", err)
		}
	}
	store := memstore.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("quizzle_session", store))

	database := db.Client.Database("quizzle")

	// Quizzes
	quizRepo := repository.NewQuizRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	quizService := service.NewQuizService(quizRepo, questionRepo)
	quizHandler := handlers.NewQuizHandler(quizService)

	// Questions
	questionService := service.NewQuestionService(questionRepo, quizRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Users
	userRepo := repository.NewUserRepository(database)
	userService := service.NewUserService(userRepo)
	userHandler := handlers.NewUserHandler(userService)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "quizzle-service up")
	})

	r.POST("/create_quiz", func(c *gin.Context) {
		quizHandler.CreateQuiz(c)
		if publisher != nil {
			publisher.Publish("quiz.created", gin.H{"status": c.Writer.Status()})
		}
	})
	r.POST("/update_quiz", func(c *gin.Context) {
		quizHandler.UpdateQuiz(c)
		if publisher != nil {
			publisher.Publish("quiz.updated", gin.H{"status": c.Writer.Status()})
		}
	})
	r.POST("/delete_quiz", func(c *gin.Context) {
		quizHandler.DeleteQuiz(c)
		if publisher != nil {
			publisher.Publish("quiz.deleted", gin.H{"status": c.Writer.Status()})
		}
	})
	r.POST("/get_user_quizzes", quizHandler.GetUserQuizzes)
	r.GET("/get_public_quizzes", quizHandler.GetPublicQuizzes)

	r.POST("/add_question", func(c *gin.Context) {
		questionHandler.AddQuestion(c)
		if publisher != nil {
			publisher.Publish("question.created", gin.H{"status": c.Writer.Status()})
		}
	})
	r.POST("/update_question", func(c *gin.Context) {
		questionHandler.UpdateQuestion(c)
		if publisher != nil {
			publisher.Publish("question.updated", gin.H{"status": c.Writer.Status()})
		}
	})
	r.POST("/delete_question", func(c *gin.Context) {
		questionHandler.DeleteQuestion(c)
		if publisher != nil {
			publisher.Publish("question.deleted", gin.H{"status": c.Writer.Status()})
		}
	})
	r.POST("/get_questions", questionHandler.GetQuestions)
	r.GET("/get_all_questions", questionHandler.GetAllQuestions)
	r.DELETE("/delete_quiz_questions/:quiz_id", func(c *gin.Context) {
		questionHandler.DeleteQuizQuestions(c)
		if publisher != nil {
			publisher.Publish("question.purged", gin.H{"quiz_id": c.Param("quiz_id"), "status": c.Writer.Status()})
		}
	})

	r.POST("/add_user", func(c *gin.Context) {
		userHandler.AddUser(c)
		if publisher != nil {
			publisher.Publish("user.created", gin.H{"status": c.Writer.Status()})
		}
	})
	r.POST("/update_user", func(c *gin.Context) {
		userHandler.UpdateUser(c)
		if publisher != nil {
			publisher.Publish("user.updated", gin.H{"status": c.Writer.Status()})
		}
	})
	r.POST("/delete_user", func(c *gin.Context) {
		userHandler.DeleteUser(c)
		if publisher != nil {
			publisher.Publish("user.deleted", gin.H{"status": c.Writer.Status()})
		}
	})
	r.POST("/get_user", userHandler.GetUser)

	setupAuthRoutes(r, frontendOrigin)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	r.Run(":" + port)
}

func setupAuthRoutes(r *gin.Engine, frontendOrigin string) {
	issuer := os.Getenv("OIDC_ISSUER")
	if issuer == "" {
		log.Println("OIDC_ISSUER not set, auth routes disabled")
		return
	}
	authenticator, err := auth.New(context.Background(), auth.Config{
		Issuer:       issuer,
		ClientID:     os.Getenv("OIDC_CLIENT_ID"),
		ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
	})
	if err != nil {
		log.Fatalf("Failed to configure OIDC: %v", err)
	}
	authHandler := handlers.NewAuthHandler(authenticator, frontendOrigin)

	r.GET("/login", authHandler.Login)
	r.GET("/authorize", authHandler.Authorize)
	r.GET("/logout", authHandler.Logout)
	r.GET("/user_info", authHandler.UserInfo)
}

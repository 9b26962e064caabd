package main

import (
	"log"

	"github.com/classpoint/classroom-api/internal/auth"
	"github.com/classpoint/classroom-api/internal/config"
	"github.com/classpoint/classroom-api/internal/database"
	"github.com/classpoint/classroom-api/internal/handlers"
	"github.com/classpoint/classroom-api/internal/middleware"
	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/repository"
	"github.com/classpoint/classroom-api/internal/services"
	"github.com/classpoint/classroom-api/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// File storage for lesson summaries
	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	classroomRepo := repository.NewClassroomRepository(db)
	parentChildRepo := repository.NewParentChildRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	gameRepo := repository.NewGameRepository(db)
	tagRepo := repository.NewTagRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)
	teacherMetaRepo := repository.NewTeacherMetaRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	classroomService := services.NewClassroomService(classroomRepo, userRepo)
	parentService := services.NewParentService(parentChildRepo, userRepo)
	lessonService := services.NewLessonService(lessonRepo, gameRepo, files)
	gradeService := services.NewGradeService(gradeRepo, lessonRepo)
	gameService := services.NewGameService(gameRepo)
	tagService := services.NewTagService(tagRepo)
	leaderboardService := services.NewLeaderboardService(leaderboardRepo, userRepo, gameRepo)
	teacherMetaService := services.NewTeacherMetaService(teacherMetaRepo, tagRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, tokens)
	userHandler := handlers.NewUserHandler(authService)
	classroomHandler := handlers.NewClassroomHandler(classroomService)
	parentHandler := handlers.NewParentHandler(parentService)
	lessonHandler := handlers.NewLessonHandler(lessonService, classroomService)
	gradeHandler := handlers.NewGradeHandler(gradeService)
	gameHandler := handlers.NewGameHandler(gameService)
	tagHandler := handlers.NewTagHandler(tagService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	teacherMetaHandler := handlers.NewTeacherMetaHandler(teacherMetaService)

	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Classroom API is running",
		})
	})

	requireAuth := middleware.RequireAuth(tokens)
	teacherOnly := middleware.RequireRole(models.RoleTeacher)
	parentOnly := middleware.RequireRole(models.RoleParent)

	// Auth routes
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register-child", requireAuth, parentOnly, authHandler.RegisterChild)
		authGroup.GET("/me", requireAuth, authHandler.GetCurrentUser)
	}

	// Classroom routes
	classrooms := r.Group("/classroom")
	classrooms.Use(requireAuth)
	{
		classrooms.POST("", teacherOnly, classroomHandler.CreateClassroom)
		classrooms.GET("/teacher", teacherOnly, classroomHandler.ListAdministered)
		classrooms.GET("/:id/details", middleware.RequireClassroomMember(), classroomHandler.GetClassroomDetails)
		classrooms.DELETE("/:id", teacherOnly, middleware.RequireClassroomAdmin(), classroomHandler.DeleteClassroom)
		classrooms.POST("/:id/users", teacherOnly, middleware.RequireClassroomAdmin(), classroomHandler.AddMembers)
		classrooms.DELETE("/:id/users", classroomHandler.RemoveMembers)
	}

	// Game routes
	games := r.Group("/games")
	games.Use(requireAuth)
	{
		games.GET("", gameHandler.ListGames)
		games.GET("/:id", gameHandler.GetGame)
		games.POST("", teacherOnly, gameHandler.CreateGame)
		games.PUT("/:id", teacherOnly, gameHandler.UpdateGame)
		games.DELETE("/:id", teacherOnly, gameHandler.DeleteGame)
	}

	// Lesson routes
	lessons := r.Group("/lessons")
	lessons.Use(requireAuth)
	{
		lessons.POST("", teacherOnly, lessonHandler.CreateLesson)
		lessons.PUT("/:id", teacherOnly, lessonHandler.UpdateLesson)
		lessons.DELETE("/:id", teacherOnly, lessonHandler.DeleteLesson)
		lessons.GET("/classroom/:id", middleware.RequireClassroomMember(), lessonHandler.ListClassroomLessons)
		lessons.GET("/:id", lessonHandler.GetLesson)
		lessons.POST("/:id/summary", teacherOnly, lessonHandler.UploadSummary)
		lessons.GET("/:id/summary", lessonHandler.DownloadSummary)
		lessons.DELETE("/:id/summary", teacherOnly, lessonHandler.DeleteSummary)
	}

	// Grade routes
	grades := r.Group("/grades")
	grades.Use(requireAuth)
	{
		grades.POST("/lesson/:id", teacherOnly, gradeHandler.SetGrade)
		grades.GET("/lesson/:id", teacherOnly, gradeHandler.GetLessonGrades)
		grades.GET("/student/:id", middleware.RequireStudentAccess("id"), gradeHandler.GetStudentGrades)
		grades.GET("/classroom/:id", teacherOnly, gradeHandler.GetClassroomGrades)
		grades.DELETE("/lesson/:id/student/:sid", teacherOnly, gradeHandler.DeleteGrade)
	}

	// Parent routes
	parents := r.Group("/parent")
	parents.Use(requireAuth, parentOnly)
	{
		parents.GET("/children", parentHandler.ListChildren)
		parents.POST("/children", parentHandler.AddChild)
		parents.DELETE("/children/:id", parentHandler.RemoveChild)
	}

	// Leaderboard routes
	leaderboard := r.Group("/leaderboard")
	leaderboard.Use(requireAuth)
	{
		leaderboard.POST("", leaderboardHandler.SubmitScore)
		leaderboard.GET("/game/:id", leaderboardHandler.GameLeaderboard)
		leaderboard.GET("/classroom/:id", leaderboardHandler.ClassroomLeaderboard)
		leaderboard.GET("/user/:id", leaderboardHandler.UserScores)
	}

	// Tag routes
	tags := r.Group("/tags")
	tags.Use(requireAuth)
	{
		tags.GET("", tagHandler.ListTags)
		tags.POST("", teacherOnly, tagHandler.CreateTag)
	}

	// Teacher profile routes
	teacherInfo := r.Group("/teacher-info")
	teacherInfo.Use(requireAuth)
	{
		teacherInfo.GET("/search", teacherMetaHandler.Search)
		teacherInfo.GET("", teacherOnly, teacherMetaHandler.GetProfile)
		teacherInfo.POST("", teacherOnly, teacherMetaHandler.CreateProfile)
		teacherInfo.PUT("", teacherOnly, teacherMetaHandler.UpdateProfile)
		teacherInfo.DELETE("", teacherOnly, teacherMetaHandler.DeleteProfile)
	}

	// User lookup routes
	users := r.Group("/users")
	users.Use(requireAuth)
	{
		users.GET("", teacherOnly, userHandler.ListUsers)
		users.GET("/classroom/:id", userHandler.ListClassroomUsers)
		users.GET("/:id", userHandler.GetUser)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

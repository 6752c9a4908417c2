package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"basecampus-api/internal/domain/user"
	"basecampus-api/internal/handler/api"
	"basecampus-api/internal/handler/middleware"
	"basecampus-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Schedule *api.ScheduleHandler
	Course   *api.CourseHandler
	Quiz     *api.QuizHandler
	Team     *api.TeamHandler
	Sales    *api.SalesHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/password-reset", Handler: h.Auth.RequestPasswordReset},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPatch, Path: "/me", Handler: h.Auth.UpdateProfile},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.GetMyBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.UpdateBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.DeleteBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.CancelBooking},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.ConfirmBooking,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListRooms},
			})
		}

		courses := apiGroup.Group("/courses")
		{
			addRoutes(courses, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Course.GetPublishedCourses},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Course.GetCourse},
				{Method: http.MethodGet, Path: "/:id/modules", Handler: h.Course.GetSyllabus},
				{Method: http.MethodGet, Path: "/:id/team", Handler: h.Team.GetInstructors},
			})

			courseMgmt := courses.Group("")
			courseMgmt.Use(authMiddleware.RequireAuth())
			addRoutes(courseMgmt, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Course.CreateCourse,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleMentor)}},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Course.GetMyCourses},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Course.UpdateCourse},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Course.DeleteCourse},
				{Method: http.MethodPost, Path: "/:id/publish", Handler: h.Course.PublishCourse},
				{Method: http.MethodPost, Path: "/:id/modules", Handler: h.Course.AddModule},
				{Method: http.MethodPost, Path: "/:id/quizzes", Handler: h.Quiz.CreateQuiz},
				{Method: http.MethodGet, Path: "/:id/schedule", Handler: h.Schedule.GetCourseSchedule},
				{Method: http.MethodPut, Path: "/:id/schedule", Handler: h.Schedule.ReplaceSchedule},
				{Method: http.MethodPost, Path: "/:id/schedule", Handler: h.Schedule.AddSessions},
				{Method: http.MethodGet, Path: "/:id/progress", Handler: h.Sales.GetStudentProgress},
				{Method: http.MethodGet, Path: "/:id/team/invites", Handler: h.Team.GetInvites},
				{Method: http.MethodPost, Path: "/:id/team/invites", Handler: h.Team.InviteInstructor},
				{Method: http.MethodDelete, Path: "/:id/team/invites/:inviteId", Handler: h.Team.RevokeInvite},
				{Method: http.MethodDelete, Path: "/:id/team/:instructorId", Handler: h.Team.RemoveInstructor},
			})
		}

		team := apiGroup.Group("/team")
		team.Use(authMiddleware.RequireAuth())
		{
			addRoutes(team, []route{
				{Method: http.MethodPost, Path: "/invites/accept", Handler: h.Team.AcceptInvite},
			})
		}

		modules := apiGroup.Group("/modules")
		modules.Use(authMiddleware.RequireAuth())
		{
			addRoutes(modules, []route{
				{Method: http.MethodPut, Path: "/:moduleId", Handler: h.Course.UpdateModule},
				{Method: http.MethodDelete, Path: "/:moduleId", Handler: h.Course.RemoveModule},
				{Method: http.MethodGet, Path: "/:moduleId/lessons", Handler: h.Course.GetModuleLessons},
				{Method: http.MethodPost, Path: "/:moduleId/lessons", Handler: h.Course.AddLesson},
			})
		}

		lessons := apiGroup.Group("/lessons")
		lessons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(lessons, []route{
				{Method: http.MethodPut, Path: "/:lessonId", Handler: h.Course.UpdateLesson},
				{Method: http.MethodDelete, Path: "/:lessonId", Handler: h.Course.RemoveLesson},
				{Method: http.MethodPost, Path: "/:lessonId/complete", Handler: h.Course.CompleteLesson},
				{Method: http.MethodGet, Path: "/:lessonId/quiz", Handler: h.Quiz.GetLessonQuiz},
			})
		}

		quizzes := apiGroup.Group("/quizzes")
		quizzes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(quizzes, []route{
				{Method: http.MethodDelete, Path: "/:quizId", Handler: h.Quiz.DeleteQuiz},
				{Method: http.MethodPost, Path: "/:quizId/questions", Handler: h.Quiz.AddQuestion},
				{Method: http.MethodDelete, Path: "/:quizId/questions/:questionId", Handler: h.Quiz.RemoveQuestion},
				{Method: http.MethodPost, Path: "/:quizId/questions/:questionId/options", Handler: h.Quiz.AddOption},
				{Method: http.MethodPost, Path: "/:quizId/questions/:questionId/options/:optionId/correct", Handler: h.Quiz.MarkCorrectOption},
				{Method: http.MethodDelete, Path: "/:quizId/options/:optionId", Handler: h.Quiz.RemoveOption},
				{Method: http.MethodPost, Path: "/:quizId/attempts", Handler: h.Quiz.SubmitAttempt},
				{Method: http.MethodGet, Path: "/:quizId/attempts", Handler: h.Quiz.GetMyAttempts},
			})
		}

		paymentLinks := apiGroup.Group("/payment-links")
		{
			addRoutes(paymentLinks, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Sales.GetPaymentLink},
			})

			linkMgmt := paymentLinks.Group("")
			linkMgmt.Use(authMiddleware.RequireAuth())
			addRoutes(linkMgmt, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Sales.CreatePaymentLink,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleMentor)}},
				{Method: http.MethodGet, Path: "", Handler: h.Sales.GetMyPaymentLinks},
				{Method: http.MethodPost, Path: "/:id/active", Handler: h.Sales.SetPaymentLinkActive},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Sales.DeletePaymentLink},
				{Method: http.MethodPost, Path: "/:id/enroll", Handler: h.Sales.EnrollThroughLink},
			})
		}

		enrollments := apiGroup.Group("/enrollments")
		enrollments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(enrollments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Sales.GetMyEnrollments},
			})
		}

		me := apiGroup.Group("/me")
		me.Use(authMiddleware.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/quota", Handler: h.Schedule.GetMonthlyUsage},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package components

import (
	"basecampus-api/internal/handler"
	"basecampus-api/internal/handler/api"
	"basecampus-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewScheduleHandler,
		api.NewCourseHandler,
		api.NewQuizHandler,
		api.NewTeamHandler,
		api.NewSalesHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	schedule *api.ScheduleHandler,
	course *api.CourseHandler,
	quiz *api.QuizHandler,
	team *api.TeamHandler,
	sales *api.SalesHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Booking:  booking,
		Schedule: schedule,
		Course:   course,
		Quiz:     quiz,
		Team:     team,
		Sales:    sales,
	}
}

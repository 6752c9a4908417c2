package components

import (
	"basecampus-api/internal/pkg/clock"
	"basecampus-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewBookingUseCase,
		usecase.NewScheduleUseCase,
		usecase.NewCourseUseCase,
		usecase.NewQuizUseCase,
		usecase.NewTeamUseCase,
		usecase.NewSalesUseCase,
	),
)

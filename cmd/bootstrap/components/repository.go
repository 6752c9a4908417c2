package components

import (
	"basecampus-api/internal/infra/db"
	repo_impl "basecampus-api/internal/infra/repository"
	"basecampus-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			repo_impl.NewCourseRepository,
			fx.As(new(usecase.CourseRepository)),
		),
		fx.Annotate(
			repo_impl.NewSyllabusRepository,
			fx.As(new(usecase.SyllabusRepository)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewQuizRepository,
			fx.As(new(usecase.QuizRepository)),
		),
		fx.Annotate(
			repo_impl.NewTeamRepository,
			fx.As(new(usecase.TeamRepository)),
		),
		fx.Annotate(
			repo_impl.NewSalesRepository,
			fx.As(new(usecase.SalesRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

package main

import (
	"context"
	"log/slog"
	"os"

	"ucsbapi/config"
	"ucsbapi/internal/delivery"
	"ucsbapi/internal/delivery/http"
	"ucsbapi/internal/delivery/http/middleware"
	"ucsbapi/internal/delivery/http/router/handler"
	"ucsbapi/internal/delivery/http/validator"
	"ucsbapi/internal/domain/entity"
	"ucsbapi/internal/domain/policy"
	"ucsbapi/internal/domain/repository"
	"ucsbapi/internal/domain/resource"
	"ucsbapi/internal/domain/service"
	"ucsbapi/internal/infra/auth"
	"ucsbapi/internal/infra/auth/google"
	logs "ucsbapi/internal/infra/log"
	"ucsbapi/internal/infra/persistence"
	"ucsbapi/internal/infra/persistence/postgres"
	"ucsbapi/internal/infra/pubsub"
	"ucsbapi/internal/usecase"
	"ucsbapi/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.New,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewUserResourceRepository,
			postgres.NewAnimalRepository,
			postgres.NewBookRepository,
			postgres.NewCarRepository,
			postgres.NewCourseRepository,
			postgres.NewRestaurantRepository,
			postgres.NewStudentRepository,
			postgres.NewUCSBDateRepository,
			postgres.NewUCSBDiningCommonsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			google.NewAuthService,
			fx.Annotate(
				validator.New,
				fx.As(new(service.StructValidator)),
			),
			newPolicyTable,
		),
	)
}

// newPolicyTable builds the default role table over every registered resource.
func newPolicyTable() *policy.Table {
	return policy.Default(resource.All())
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewGrantedAuthoritiesService,
			impl.NewCurrentUserService,
			impl.NewSystemInfoService,
			resourceUsecase(resource.Animals),
			resourceUsecase(resource.Books),
			resourceUsecase(resource.Cars),
			resourceUsecase(resource.Courses),
			resourceUsecase(resource.Restaurants),
			resourceUsecase(resource.Students),
			resourceUsecase(resource.UCSBDates),
			resourceUsecase(resource.UCSBDiningCommons),
			resourceUsecase(resource.Users),
		),
	)
}

// resourceUsecase binds a descriptor to the generic CRUD service.
func resourceUsecase[T any, K resource.Key](desc resource.Descriptor[T, K]) any {
	return func(repo repository.ResourceRepository[T, K], deps impl.ResourceDeps) usecase.ResourceUsecase[T, K] {
		return impl.NewResourceService(desc, repo, deps)
	}
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewUserHandler,
			handler.NewSystemHandler,
			resourceHandler[entity.Animal, int64](),
			resourceHandler[entity.Book, int64](),
			resourceHandler[entity.Car, int64](),
			resourceHandler[entity.Course, int64](),
			resourceHandler[entity.Restaurant, int64](),
			resourceHandler[entity.Student, int64](),
			resourceHandler[entity.UCSBDate, int64](),
			resourceHandler[entity.UCSBDiningCommons, string](),
			resourceHandler[entity.User, int64](),
		),
	)
}

// resourceHandler provides the CRUD handler into the router's "resources" group.
func resourceHandler[T any, K resource.Key]() any {
	return fx.Annotate(
		handler.NewResourceHandler[T, K],
		fx.As(new(handler.ResourceRoutes)),
		fx.ResultTags(`group:"resources"`),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "ucsbapi/internal/delivery/context"
	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/domain/repository"
	"ucsbapi/internal/domain/resource"
	"ucsbapi/internal/domain/service"
	"ucsbapi/internal/errors"
	"ucsbapi/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// resourceService implements usecase.ResourceUsecase for one descriptor.
type resourceService[T any, K resource.Key] struct {
	desc      resource.Descriptor[T, K]
	repo      repository.ResourceRepository[T, K]
	txManager repository.TransactionManager
	validator service.StructValidator
	publisher service.EventPublisher
	logger    *slog.Logger
}

// ResourceDeps are the collaborators shared by every resource engine.
type ResourceDeps struct {
	fx.In

	TxManager repository.TransactionManager
	Validator service.StructValidator
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewResourceService is the constructor for resourceService.
func NewResourceService[T any, K resource.Key](
	desc resource.Descriptor[T, K],
	repo repository.ResourceRepository[T, K],
	deps ResourceDeps,
) usecase.ResourceUsecase[T, K] {
	return &resourceService[T, K]{
		desc:      desc,
		repo:      repo,
		txManager: deps.TxManager,
		validator: deps.Validator,
		publisher: deps.Publisher,
		logger:    deps.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *resourceService[T, K]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("resource", srv.desc.Path))
}

func (srv *resourceService[T, K]) Descriptor() resource.Descriptor[T, K] {
	return srv.desc
}

func (srv *resourceService[T, K]) List(ctx context.Context) ([]*T, error) {
	records, err := srv.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", srv.desc.Path)
	}

	return records, nil
}

func (srv *resourceService[T, K]) Get(ctx context.Context, key K) (*T, error) {
	record, err := srv.repo.FindByID(ctx, key)
	if err != nil {
		return nil, srv.mapError(err, key)
	}

	return record, nil
}

func (srv *resourceService[T, K]) Create(ctx context.Context, record *T) (*T, error) {
	if !srv.desc.ClientKey {
		var zero K
		srv.desc.SetKey(record, zero)
	}

	if err := srv.validate(record); err != nil {
		return nil, err
	}

	created, err := srv.repo.Create(ctx, record)
	if err != nil {
		return nil, srv.mapError(err, srv.desc.KeyOf(record))
	}

	key := srv.desc.KeyOf(created)
	srv.log(ctx).Info("Record created", slog.Any("key", key))
	srv.publish(ctx, resource.OpCreate, key)

	return created, nil
}

// Update runs the existence check and the write in one transaction on the primary.
// Concurrent updates of the same key are last-write-wins.
func (srv *resourceService[T, K]) Update(ctx context.Context, key K, record *T) (*T, error) {
	srv.desc.SetKey(record, key)

	if err := srv.validate(record); err != nil {
		return nil, err
	}

	var updated *T
	err := srv.txManager.Execute(ctx, func(txCtx context.Context) error {
		if _, err := srv.repo.FindByID(txCtx, key); err != nil {
			return err
		}

		var err error
		updated, err = srv.repo.Update(txCtx, record)

		return err
	})
	if err != nil {
		return nil, srv.mapError(err, key)
	}

	srv.log(ctx).Info("Record updated", slog.Any("key", key))
	srv.publish(ctx, resource.OpUpdate, key)

	return updated, nil
}

func (srv *resourceService[T, K]) Delete(ctx context.Context, key K) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context) error {
		if _, err := srv.repo.FindByID(txCtx, key); err != nil {
			return err
		}

		return srv.repo.Delete(txCtx, key)
	})
	if err != nil {
		return srv.mapError(err, key)
	}

	srv.log(ctx).Info("Record deleted", slog.Any("key", key))
	srv.publish(ctx, resource.OpDelete, key)

	return nil
}

func (srv *resourceService[T, K]) validate(record *T) error {
	if srv.validator == nil {
		return nil
	}

	return srv.validator.Validate(record)
}

// mapError turns repository sentinels into HTTP-mappable domain errors.
func (srv *resourceService[T, K]) mapError(err error, key K) error {
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return domainerrors.NewEntityNotFoundError(srv.desc.Name, key)
	case errors.Is(err, repository.ErrDuplicateKey):
		return domainerrors.ErrConflict.WithMessage(fmt.Sprintf("%s with id %v already exists", srv.desc.Name, key))
	default:
		return errors.Wrapf(err, "%s %v", srv.desc.Name, key)
	}
}

// publish emits a mutation event. Failures are logged and never fail the request.
func (srv *resourceService[T, K]) publish(ctx context.Context, op resource.Operation, key K) {
	if srv.publisher == nil {
		return
	}

	event := &service.ResourceEvent{
		EventID:    uuid.NewString(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Resource:   srv.desc.Path,
		Operation:  string(op),
		Key:        fmt.Sprint(key),
		OccurredAt: time.Now().UTC(),
	}
	if principal, ok := deliverycontext.GetPrincipalFromContext(ctx); ok {
		event.Actor = principal.Email
	}

	if err := srv.publisher.PublishResourceEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish resource event",
			slog.String("operation", event.Operation),
			slog.String("key", event.Key),
			slog.Any("error", err),
		)
	}
}

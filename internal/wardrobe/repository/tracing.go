package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

var tracer = otel.Tracer("wardrobe-repository")

// GormItemRepositoryWithTracing wraps GormItemRepository with tracing
type GormItemRepositoryWithTracing struct {
	*GormItemRepository
}

// NewGormItemRepositoryWithTracing creates a new repository with tracing
func NewGormItemRepositoryWithTracing(db *gorm.DB) *GormItemRepositoryWithTracing {
	return &GormItemRepositoryWithTracing{
		GormItemRepository: NewGormItemRepository(db),
	}
}

// CreateWithContext traces item creation
func (r *GormItemRepositoryWithTracing) CreateWithContext(ctx context.Context, item *domain.Item) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("item.user_id", item.UserID),
			attribute.String("item.category", item.Category),
		),
	)
	defer span.End()

	err := r.GormItemRepository.Create(item)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("item.id", item.ID))
	return nil
}

// FindByUserWithContext traces wardrobe listing
func (r *GormItemRepositoryWithTracing) FindByUserWithContext(ctx context.Context, userID, category string) ([]domain.Item, error) {
	_, span := tracer.Start(ctx, "repository.FindByUser",
		trace.WithAttributes(
			attribute.String("item.user_id", userID),
			attribute.String("query.category", category),
		),
	)
	defer span.End()

	items, err := r.GormItemRepository.FindByUser(userID, category)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

// FindByIDWithContext traces item lookup
func (r *GormItemRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id string) (*domain.Item, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.String("item.id", id),
		),
	)
	defer span.End()

	item, err := r.GormItemRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("item.category", item.Category))
	return item, nil
}

// DeleteWithContext traces item removal
func (r *GormItemRepositoryWithTracing) DeleteWithContext(ctx context.Context, id string) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.String("item.id", id),
		),
	)
	defer span.End()

	err := r.GormItemRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

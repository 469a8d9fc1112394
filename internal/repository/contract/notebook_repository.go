package contract

import (
	"context"

	"notebook-dashboard-be/internal/entity"
	"notebook-dashboard-be/internal/repository/specification"
)

type NotebookRepository interface {
	Create(ctx context.Context, notebook *entity.Notebook) error
	// IncrementViews bumps the view counter by exactly one and refreshes
	// the updated timestamp in a single statement.
	IncrementViews(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notebook, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

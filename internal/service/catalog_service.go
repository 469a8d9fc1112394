package service

import (
	"context"
	"time"

	"notebook-dashboard-be/internal/dto"
	"notebook-dashboard-be/internal/entity"
	"notebook-dashboard-be/internal/pkg/serverutils"
	"notebook-dashboard-be/internal/repository/contract"
	"notebook-dashboard-be/internal/repository/specification"
)

type ICatalogService interface {
	ListPublic(ctx context.Context, limit int) ([]*entity.Notebook, error)
	ListOwned(ctx context.Context, userID uint) ([]*entity.Notebook, error)
	// Get enforces the visibility rule and bumps the view counter by
	// exactly one on success. requester is nil for anonymous callers.
	Get(ctx context.Context, id uint, requester *uint) (*entity.Notebook, error)
	Search(ctx context.Context, query, tag string) ([]*entity.Notebook, error)
	ListSummaries(ctx context.Context, limit int) ([]*dto.NotebookSummaryResponse, error)
	// OwnerUsername resolves the owning user's name with an explicit
	// lookup; entities carry no user back-reference.
	OwnerUsername(ctx context.Context, notebook *entity.Notebook) (string, error)
}

type catalogService struct {
	notebookRepo contract.NotebookRepository
	userRepo     contract.UserRepository
}

func NewCatalogService(notebookRepo contract.NotebookRepository, userRepo contract.UserRepository) ICatalogService {
	return &catalogService{
		notebookRepo: notebookRepo,
		userRepo:     userRepo,
	}
}

func (s *catalogService) ListPublic(ctx context.Context, limit int) ([]*entity.Notebook, error) {
	return s.notebookRepo.FindAll(ctx,
		specification.PublicOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: limit},
	)
}

func (s *catalogService) ListOwned(ctx context.Context, userID uint) ([]*entity.Notebook, error) {
	return s.notebookRepo.FindAll(ctx,
		specification.OwnedBy{UserID: userID},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
}

func (s *catalogService) Get(ctx context.Context, id uint, requester *uint) (*entity.Notebook, error) {
	notebook, err := s.notebookRepo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, serverutils.NewAppError(serverutils.ErrCodeNotFound, "Notebook not found")
	}

	if !notebook.IsPublic && (requester == nil || *requester != notebook.UserId) {
		return nil, serverutils.NewAppError(serverutils.ErrCodeAccessDenied, "Access denied")
	}

	if err := s.notebookRepo.IncrementViews(ctx, notebook.Id); err != nil {
		return nil, err
	}
	notebook.Views++

	return notebook, nil
}

func (s *catalogService) Search(ctx context.Context, query, tag string) ([]*entity.Notebook, error) {
	// Search is not browse-all: an empty query and empty tag yield an
	// empty result.
	if query == "" && tag == "" {
		return []*entity.Notebook{}, nil
	}

	specs := []specification.Specification{specification.PublicOnly{}}
	if query != "" {
		specs = append(specs, specification.MatchesQuery{Query: query})
	}
	if tag != "" {
		specs = append(specs, specification.HasTag{Tag: tag})
	}
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	return s.notebookRepo.FindAll(ctx, specs...)
}

func (s *catalogService) ListSummaries(ctx context.Context, limit int) ([]*dto.NotebookSummaryResponse, error) {
	notebooks, err := s.ListPublic(ctx, limit)
	if err != nil {
		return nil, err
	}

	usernames, err := s.ownerUsernames(ctx, notebooks)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.NotebookSummaryResponse, 0, len(notebooks))
	for _, nb := range notebooks {
		summaries = append(summaries, &dto.NotebookSummaryResponse{
			Id:          nb.Id,
			Title:       nb.Title,
			Description: nb.Description,
			Author:      usernames[nb.UserId],
			Tags:        nb.TagList(),
			Views:       nb.Views,
			Likes:       nb.Likes,
			CreatedAt:   nb.CreatedAt.Format(time.RFC3339),
		})
	}
	return summaries, nil
}

func (s *catalogService) OwnerUsername(ctx context.Context, notebook *entity.Notebook) (string, error) {
	user, err := s.userRepo.FindOne(ctx, specification.ByID{ID: notebook.UserId})
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Username, nil
}

// ownerUsernames resolves owner display names with one batched lookup;
// notebook entities carry no user back-reference.
func (s *catalogService) ownerUsernames(ctx context.Context, notebooks []*entity.Notebook) (map[uint]string, error) {
	if len(notebooks) == 0 {
		return map[uint]string{}, nil
	}

	seen := make(map[uint]struct{}, len(notebooks))
	ids := make([]uint, 0, len(notebooks))
	for _, nb := range notebooks {
		if _, ok := seen[nb.UserId]; !ok {
			seen[nb.UserId] = struct{}{}
			ids = append(ids, nb.UserId)
		}
	}

	users, err := s.userRepo.FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.Id] = u.Username
	}
	return names, nil
}

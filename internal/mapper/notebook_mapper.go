package mapper

import (
	"notebook-dashboard-be/internal/entity"
	"notebook-dashboard-be/internal/model"
)

type NotebookMapper struct{}

func NewNotebookMapper() *NotebookMapper {
	return &NotebookMapper{}
}

func (m *NotebookMapper) ToEntity(n *model.Notebook) *entity.Notebook {
	if n == nil {
		return nil
	}
	return &entity.Notebook{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		Filename:    n.Filename,
		FilePath:    n.FilePath,
		ExternalURL: n.ExternalURL,
		AuthorName:  n.AuthorName,
		Tags:        n.Tags,
		IsPublic:    n.IsPublic,
		UserId:      n.UserId,
		Views:       n.Views,
		Likes:       n.Likes,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (m *NotebookMapper) ToModel(n *entity.Notebook) *model.Notebook {
	if n == nil {
		return nil
	}
	return &model.Notebook{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		Filename:    n.Filename,
		FilePath:    n.FilePath,
		ExternalURL: n.ExternalURL,
		AuthorName:  n.AuthorName,
		Tags:        n.Tags,
		IsPublic:    n.IsPublic,
		UserId:      n.UserId,
		Views:       n.Views,
		Likes:       n.Likes,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (m *NotebookMapper) ToEntities(notebooks []*model.Notebook) []*entity.Notebook {
	entities := make([]*entity.Notebook, len(notebooks))
	for i, n := range notebooks {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

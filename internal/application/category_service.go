package application

import (
	"context"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
)

type CategoryService struct {
	Categories repo.CategoryRepository
}

func NewCategoryService(categories repo.CategoryRepository) *CategoryService {
	return &CategoryService{Categories: categories}
}

type CategoryInput struct {
	Name        string
	Description string
	ParentID    *int64
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*entity.Category, error) {
	if err := s.checkParent(ctx, in.ParentID); err != nil {
		return nil, err
	}
	c := &entity.Category{Name: in.Name, Description: in.Description, ParentID: in.ParentID}
	if err := s.Categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*entity.Category, error) {
	return s.Categories.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	return s.Categories.List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id int64, in CategoryInput) (*entity.Category, error) {
	if err := s.checkParent(ctx, in.ParentID); err != nil {
		return nil, err
	}
	c, err := s.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Description = in.Description
	c.ParentID = in.ParentID
	if err := s.Categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.Categories.Delete(ctx, id)
}

func (s *CategoryService) checkParent(ctx context.Context, parentID *int64) error {
	if parentID == nil {
		return nil
	}
	ok, err := s.Categories.Exists(ctx, *parentID)
	if err != nil {
		return err
	}
	if !ok {
		return invalidField("parent_id", "does not reference an existing category")
	}
	return nil
}

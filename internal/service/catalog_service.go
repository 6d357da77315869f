package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

// CatalogService serves categories, projects and goals.
type CatalogService struct {
	categories repository.CategoriesRepositoryI
	projects   repository.ProjectsRepositoryI
	goals      repository.GoalsRepositoryI
}

func NewCatalogService(categories repository.CategoriesRepositoryI, projects repository.ProjectsRepositoryI, goals repository.GoalsRepositoryI) *CatalogService {
	if categories == nil || projects == nil || goals == nil {
		log.Fatal("on catalog service provided nil repos")
	}
	return &CatalogService{
		categories: categories,
		projects:   projects,
		goals:      goals,
	}
}

func (cs *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := cs.categories.List(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return categories, nil
}

func (cs *CatalogService) CreateProject(ctx context.Context, req *CreateProjectRequest) (*entity.Project, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	project := &entity.Project{
		UserID:      req.UserID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
	}
	id, err := cs.projects.Create(ctx, project)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrProjectExists),
			errors.Is(err, errorvalues.ErrCategoryNotFound),
			errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	created, err := cs.projects.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return created, nil
}

func (cs *CatalogService) ListProjects(ctx context.Context, uid uuid.UUID) ([]entity.Project, error) {
	projects, err := cs.projects.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return projects, nil
}

func (cs *CatalogService) CreateGoal(ctx context.Context, req *CreateGoalRequest) (*entity.Goal, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	goal := &entity.Goal{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		TargetHours: req.TargetHours,
		Deadline:    req.Deadline,
	}
	id, err := cs.goals.Create(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	goal.ID = id
	return goal, nil
}

func (cs *CatalogService) ListGoals(ctx context.Context, uid uuid.UUID) ([]entity.Goal, error) {
	goals, err := cs.goals.ListByUser(ctx, uid, false)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return goals, nil
}

func (cs *CatalogService) CompleteGoal(ctx context.Context, id, uid uuid.UUID) error {
	err := cs.goals.Complete(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

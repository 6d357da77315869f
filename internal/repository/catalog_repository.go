package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

// CategoriesRepository reads the fixed, seeded categories.
type CategoriesRepository struct {
	conn PgConnection
}

func NewCategoriesRepoWithConn(conn PgConnection) *CategoriesRepository {
	mustPing(conn, "categoriesRepo")
	return &CategoriesRepository{
		conn: conn,
	}
}

func (cr *CategoriesRepository) List(ctx context.Context) ([]entity.Category, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, name, color, description FROM categories ORDER BY name;`)
	if err != nil {
		return nil, errors.New("listing categories error: " + err.Error())
	}
	defer rows.Close()
	categories := make([]entity.Category, 0, 6)
	for rows.Next() {
		c := entity.Category{}
		if err = rows.Scan(&c.ID, &c.Name, &c.Color, &c.Description); err != nil {
			return nil, errors.New("category row parsing error: " + err.Error())
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected category rows error: " + err.Error())
	}
	return categories, nil
}

func (cr *CategoriesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	c := entity.Category{ID: id}
	row := cr.conn.QueryRow(ctx, `SELECT name, color, description FROM categories WHERE id = $1;`, id)
	if err := row.Scan(&c.Name, &c.Color, &c.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCategoryNotFound
		}
		return nil, errors.New("getting category by id error: " + err.Error())
	}
	return &c, nil
}

type ProjectsRepository struct {
	conn PgConnection
}

func NewProjectsRepoWithConn(conn PgConnection) *ProjectsRepository {
	mustPing(conn, "projectsRepo")
	return &ProjectsRepository{
		conn: conn,
	}
}

func (pr *ProjectsRepository) Create(ctx context.Context, project *entity.Project) (uuid.UUID, error) {
	if project == nil {
		return uuid.Nil, errors.New("project is nil")
	}
	var id uuid.UUID
	row := pr.conn.QueryRow(ctx, `INSERT INTO projects (user_id, category_id, name, description) VALUES ($1, $2, $3, $4) RETURNING id;`,
		project.UserID, project.CategoryID, project.Name, project.Description)
	if err := row.Scan(&id); err != nil {
		switch code, constraint := pgCode(err); code {
		case "23505":
			return uuid.Nil, errorvalues.ErrProjectExists
		case "23503":
			if constraint == "projects_user_id_fkey" {
				return uuid.Nil, errorvalues.ErrUserNotFound
			}
			return uuid.Nil, errorvalues.ErrCategoryNotFound
		}
		return uuid.Nil, errors.New("creating project db error: " + err.Error())
	}
	return id, nil
}

func (pr *ProjectsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	p := entity.Project{ID: id}
	row := pr.conn.QueryRow(ctx, `SELECT user_id, category_id, name, description, created_at FROM projects WHERE id = $1;`, id)
	if err := row.Scan(&p.UserID, &p.CategoryID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProjectNotFound
		}
		return nil, errors.New("getting project by id error: " + err.Error())
	}
	return &p, nil
}

func (pr *ProjectsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.Project, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, user_id, category_id, name, description, created_at FROM projects WHERE user_id = $1 ORDER BY name;`, uid)
	if err != nil {
		return nil, errors.New("listing projects error: " + err.Error())
	}
	defer rows.Close()
	projects := make([]entity.Project, 0)
	for rows.Next() {
		p := entity.Project{}
		if err = rows.Scan(&p.ID, &p.UserID, &p.CategoryID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, errors.New("project row parsing error: " + err.Error())
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected project rows error: " + err.Error())
	}
	return projects, nil
}

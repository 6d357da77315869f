package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	mustPing(conn, "goalsRepo")
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error) {
	if goal == nil {
		return uuid.Nil, errors.New("goal is nil")
	}
	var id uuid.UUID
	row := gr.conn.QueryRow(ctx, `INSERT INTO goals (user_id, title, description, target_hours, deadline) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		goal.UserID, goal.Title, goal.Description, goal.TargetHours, goal.Deadline)
	if err := row.Scan(&id); err != nil {
		if code, _ := pgCode(err); code == "23503" {
			return uuid.Nil, errorvalues.ErrUserNotFound
		}
		return uuid.Nil, errors.New("creating goal db error: " + err.Error())
	}
	return id, nil
}

func (gr *GoalsRepository) ListByUser(ctx context.Context, uid uuid.UUID, incompleteOnly bool) ([]entity.Goal, error) {
	query := `SELECT id, user_id, title, description, target_hours, deadline, completed, created_at FROM goals WHERE user_id = $1`
	if incompleteOnly {
		query += ` AND completed = FALSE`
	}
	rows, err := gr.conn.Query(ctx, query+` ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("listing goals error: " + err.Error())
	}
	defer rows.Close()
	goals := make([]entity.Goal, 0)
	for rows.Next() {
		g := entity.Goal{}
		err = rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.TargetHours, &g.Deadline, &g.Completed, &g.CreatedAt)
		if err != nil {
			return nil, errors.New("goal row parsing error: " + err.Error())
		}
		goals = append(goals, g)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected goal rows error: " + err.Error())
	}
	return goals, nil
}

func (gr *GoalsRepository) Complete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE goals SET completed = TRUE WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("completing goal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

type TakeawaysRepository struct {
	conn PgConnection
}

func NewTakeawaysRepoWithConn(conn PgConnection) *TakeawaysRepository {
	mustPing(conn, "takeawaysRepo")
	return &TakeawaysRepository{
		conn: conn,
	}
}

func (tr *TakeawaysRepository) Create(ctx context.Context, takeaway *entity.Takeaway) (uuid.UUID, error) {
	if takeaway == nil {
		return uuid.Nil, errors.New("takeaway is nil")
	}
	var id uuid.UUID
	row := tr.conn.QueryRow(ctx, `INSERT INTO takeaways (user_id, content, date) VALUES ($1, $2, $3) RETURNING id;`,
		takeaway.UserID, takeaway.Content, takeaway.Date)
	if err := row.Scan(&id); err != nil {
		if code, _ := pgCode(err); code == "23503" {
			return uuid.Nil, errorvalues.ErrUserNotFound
		}
		return uuid.Nil, errors.New("creating takeaway db error: " + err.Error())
	}
	return id, nil
}

func (tr *TakeawaysRepository) List(ctx context.Context, uid uuid.UUID, from, to *time.Time) ([]entity.Takeaway, error) {
	query := `SELECT id, user_id, content, date, created_at FROM takeaways WHERE user_id = $1`
	args := []any{uid}
	if from != nil {
		args = append(args, *from)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}
	rows, err := tr.conn.Query(ctx, query+` ORDER BY date DESC, created_at DESC;`, args...)
	if err != nil {
		return nil, errors.New("listing takeaways error: " + err.Error())
	}
	defer rows.Close()
	takeaways := make([]entity.Takeaway, 0)
	for rows.Next() {
		t := entity.Takeaway{}
		if err = rows.Scan(&t.ID, &t.UserID, &t.Content, &t.Date, &t.CreatedAt); err != nil {
			return nil, errors.New("takeaway row parsing error: " + err.Error())
		}
		takeaways = append(takeaways, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected takeaway rows error: " + err.Error())
	}
	return takeaways, nil
}

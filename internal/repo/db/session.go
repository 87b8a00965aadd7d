package db

import (
	"context"
	"database/sql"
	"errors"

	md "github.com/JMURv/authcore/internal/models"
	"github.com/JMURv/authcore/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) CreateSession(ctx context.Context, s *md.Session) error {
	const op = "sessions.CreateSession.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(
		ctx,
		sessionCreateQ,
		s.ID,
		s.UserID,
		s.IP,
		s.UA,
		s.ExpiresAt,
	)

	return translateErr(err)
}

func (r *Repository) GetSession(ctx context.Context, id string) (*md.Session, error) {
	const op = "sessions.GetSession.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Session{}
	err := r.conn.GetContext(ctx, res, sessionGetQ, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		return nil, err
	}

	return res, nil
}

func (r *Repository) DeleteSession(ctx context.Context, id string) error {
	const op = "sessions.DeleteSession.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, sessionDeleteQ, id)
	return err
}

func (r *Repository) DeleteSessionsByUser(ctx context.Context, uid uuid.UUID) error {
	const op = "sessions.DeleteSessionsByUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, sessionDeleteByUserQ, uid)
	return err
}

func (r *Repository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	const op = "sessions.DeleteExpiredSessions.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, sessionDeleteExpiredQ)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

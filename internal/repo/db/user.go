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

func (r *Repository) GetUserByID(ctx context.Context, uid uuid.UUID) (*md.User, error) {
	const op = "users.GetUserByID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByIDQ, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		return nil, err
	}

	return res, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*md.User, error) {
	const op = "users.GetUserByEmail.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByEmailQ, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateUser(ctx context.Context, u *md.User) (uuid.UUID, error) {
	const op = "users.CreateUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowxContext(
		ctx,
		userCreateQ,
		uuid.New(),
		u.Name,
		u.Password,
		u.Email,
		u.Avatar,
		u.IsEmailVerified,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, translateErr(err)
	}

	return id, nil
}

func (r *Repository) UpdateUserProfile(ctx context.Context, uid uuid.UUID, name, avatar string) error {
	const op = "users.UpdateUserProfile.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userUpdateProfileQ, name, avatar, uid)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) SetUserPassword(ctx context.Context, uid uuid.UUID, hash string) error {
	const op = "users.SetUserPassword.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userSetPasswordQ, hash, uid)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) SetEmailVerified(ctx context.Context, uid uuid.UUID) error {
	const op = "users.SetEmailVerified.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userSetVerifiedQ, uid)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}

	return nil
}

package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	md "github.com/JMURv/authcore/internal/models"
	"github.com/JMURv/authcore/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) CreateRefreshToken(ctx context.Context, t *md.RefreshToken) error {
	const op = "tokens.CreateRefreshToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(
		ctx,
		refreshCreateQ,
		t.ID,
		t.UserID,
		t.TokenHash,
		t.ExpiresAt,
	)

	return translateErr(err)
}

func (r *Repository) GetRefreshTokenByHash(ctx context.Context, hash string) (*md.RefreshToken, error) {
	const op = "tokens.GetRefreshTokenByHash.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.RefreshToken{}
	err := r.conn.GetContext(ctx, res, refreshGetByHashQ, hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		return nil, err
	}

	return res, nil
}

// RevokeRefreshToken flips a live token to revoked. The WHERE clause is
// the compare-and-swap: with two concurrent rotations only one caller
// sees an affected row.
func (r *Repository) RevokeRefreshToken(ctx context.Context, id uuid.UUID) (bool, error) {
	const op = "tokens.RevokeRefreshToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, refreshRevokeQ, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *Repository) TouchRefreshToken(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	const op = "tokens.TouchRefreshToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, refreshTouchQ, usedAt, id)
	return err
}

func (r *Repository) GetUserRefreshTokens(ctx context.Context, uid uuid.UUID) ([]*md.RefreshToken, error) {
	const op = "tokens.GetUserRefreshTokens.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.RefreshToken, 0, 8)
	if err := r.conn.SelectContext(ctx, &res, refreshListByUserQ, uid); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) RevokeAllRefreshTokens(ctx context.Context, uid uuid.UUID) error {
	const op = "tokens.RevokeAllRefreshTokens.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, refreshRevokeAllQ, uid)
	return err
}

func (r *Repository) DeleteExpiredRefreshTokens(ctx context.Context) (int64, error) {
	const op = "tokens.DeleteExpiredRefreshTokens.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, refreshDeleteExpiredQ)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *Repository) CreateLinkToken(ctx context.Context, t *md.LinkToken) error {
	const op = "tokens.CreateLinkToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(
		ctx,
		linkTokenCreateQ,
		t.Token,
		t.Purpose,
		t.UserID,
		t.Email,
		t.ReturnTo,
		t.ExpiresAt,
	)

	return translateErr(err)
}

// ConsumeLinkToken deletes the token row and returns it in one statement.
// DELETE .. RETURNING makes the first consumer the sole winner; everyone
// else gets repo.ErrNotFound.
func (r *Repository) ConsumeLinkToken(ctx context.Context, token string) (*md.LinkToken, error) {
	const op = "tokens.ConsumeLinkToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.LinkToken{}
	err := r.conn.GetContext(ctx, res, linkTokenConsumeQ, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		return nil, err
	}

	return res, nil
}

func (r *Repository) DeleteLinkTokensByUser(ctx context.Context, uid uuid.UUID, purpose md.TokenPurpose) error {
	const op = "tokens.DeleteLinkTokensByUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, linkTokenDeleteByUserQ, uid, purpose)
	return err
}

func (r *Repository) DeleteExpiredLinkTokens(ctx context.Context) (int64, error) {
	const op = "tokens.DeleteExpiredLinkTokens.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, linkTokenDeleteExpiredQ)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

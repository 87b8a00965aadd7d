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

func (r *Repository) GetUserByOAuth(ctx context.Context, provider, externalID string) (*md.User, error) {
	const op = "oauth.GetUserByOAuth.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, oauthGetUserQ, provider, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		return nil, err
	}

	return res, nil
}

func (r *Repository) LinkOAuthAccount(ctx context.Context, provider, externalID string, uid uuid.UUID) error {
	const op = "oauth.LinkOAuthAccount.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, oauthLinkQ, provider, externalID, uid)
	return translateErr(err)
}

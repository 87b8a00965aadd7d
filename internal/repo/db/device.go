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

func (r *Repository) GetDevice(ctx context.Context, platform md.DevicePlatform, deviceID string) (*md.Device, error) {
	const op = "devices.GetDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetQ, platform, deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		return nil, err
	}

	return res, nil
}

// UpsertDevice inserts or refreshes the row keyed by (platform, device_id).
// Revocation is not undone here: status is left untouched on conflict.
func (r *Repository) UpsertDevice(ctx context.Context, d *md.Device) (uuid.UUID, error) {
	const op = "devices.UpsertDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowxContext(
		ctx,
		deviceUpsertQ,
		uuid.New(),
		d.DeviceID,
		d.UserID,
		d.Platform,
		d.PublicKey,
		d.KeyAlgorithm,
		d.Status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, translateErr(err)
	}

	return id, nil
}

func (r *Repository) TouchDevice(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	const op = "devices.TouchDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, deviceTouchQ, usedAt, id)
	return err
}

func (r *Repository) ListUserDevices(ctx context.Context, uid uuid.UUID) ([]*md.Device, error) {
	const op = "devices.ListUserDevices.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Device, 0, 8)
	if err := r.conn.SelectContext(ctx, &res, deviceListByUserQ, uid); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) RevokeDevice(ctx context.Context, uid, id uuid.UUID) error {
	const op = "devices.RevokeDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceRevokeQ, id, uid)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}

	return nil
}

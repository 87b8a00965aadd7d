package db

const deviceGetQ = `
SELECT
	d.id,
	d.device_id,
	d.user_id,
	d.platform,
	d.public_key,
	d.key_algorithm,
	d.status,
	d.registered_at,
	d.last_used_at
FROM devices d
WHERE d.platform = $1 AND d.device_id = $2
`

const deviceUpsertQ = `
INSERT INTO devices (id, device_id, user_id, platform, public_key, key_algorithm, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (platform, device_id) DO UPDATE
SET user_id = EXCLUDED.user_id,
	public_key = EXCLUDED.public_key,
	key_algorithm = EXCLUDED.key_algorithm
RETURNING id
`

const deviceTouchQ = `
UPDATE devices
SET last_used_at = $1
WHERE id = $2
`

const deviceListByUserQ = `
SELECT
	d.id,
	d.device_id,
	d.user_id,
	d.platform,
	d.public_key,
	d.key_algorithm,
	d.status,
	d.registered_at,
	d.last_used_at
FROM devices d
WHERE d.user_id = $1
ORDER BY d.last_used_at DESC NULLS LAST, d.registered_at DESC
`

const deviceRevokeQ = `
UPDATE devices
SET status = 'revoked'
WHERE id = $1 AND user_id = $2 AND status = 'active'
`

package db

const refreshCreateQ = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at)
VALUES ($1, $2, $3, $4)
`

const refreshGetByHashQ = `
SELECT
	t.id,
	t.user_id,
	t.token_hash,
	t.expires_at,
	t.last_used_at,
	t.revoked,
	t.created_at
FROM refresh_tokens t
WHERE t.token_hash = $1
`

const refreshRevokeQ = `
UPDATE refresh_tokens
SET revoked = true
WHERE id = $1 AND revoked = false
`

const refreshTouchQ = `
UPDATE refresh_tokens
SET last_used_at = $1
WHERE id = $2
`

const refreshListByUserQ = `
SELECT
	t.id,
	t.user_id,
	t.token_hash,
	t.expires_at,
	t.last_used_at,
	t.revoked,
	t.created_at
FROM refresh_tokens t
WHERE t.user_id = $1
ORDER BY t.created_at DESC
`

const refreshRevokeAllQ = `
UPDATE refresh_tokens
SET revoked = true
WHERE user_id = $1 AND revoked = false
`

const refreshDeleteExpiredQ = `
DELETE FROM refresh_tokens
WHERE expires_at <= now()
`

const linkTokenCreateQ = `
INSERT INTO link_tokens (token, purpose, user_id, email, return_to, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

const linkTokenConsumeQ = `
DELETE FROM link_tokens
WHERE token = $1
RETURNING token, purpose, user_id, email, return_to, expires_at, created_at
`

const linkTokenDeleteByUserQ = `
DELETE FROM link_tokens
WHERE user_id = $1 AND purpose = $2
`

const linkTokenDeleteExpiredQ = `
DELETE FROM link_tokens
WHERE expires_at <= now()
`

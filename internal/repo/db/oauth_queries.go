package db

const oauthGetUserQ = `
SELECT
	u.id,
	u.name,
	u.email,
	u.password,
	u.avatar,
	u.is_email_verified,
	u.created_at,
	u.updated_at
FROM users u
JOIN oauth_accounts a ON a.user_id = u.id
WHERE a.provider = $1 AND a.external_id = $2
`

const oauthLinkQ = `
INSERT INTO oauth_accounts (provider, external_id, user_id)
VALUES ($1, $2, $3)
ON CONFLICT (provider, external_id) DO NOTHING
`

package db

const sessionCreateQ = `
INSERT INTO sessions (id, user_id, ip_address, user_agent, expires_at)
VALUES ($1, $2, $3, $4, $5)
`

const sessionGetQ = `
SELECT
	s.id,
	s.user_id,
	s.ip_address,
	s.user_agent,
	s.expires_at,
	s.created_at
FROM sessions s
WHERE s.id = $1
`

const sessionDeleteQ = `
DELETE FROM sessions
WHERE id = $1
`

const sessionDeleteByUserQ = `
DELETE FROM sessions
WHERE user_id = $1
`

const sessionDeleteExpiredQ = `
DELETE FROM sessions
WHERE expires_at <= now()
`

package db

const userGetByIDQ = `
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
WHERE u.id = $1
`

const userGetByEmailQ = `
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
WHERE u.email = $1
`

const userCreateQ = `
INSERT INTO users (id, name, password, email, avatar, is_email_verified)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

const userUpdateProfileQ = `
UPDATE users
SET name = $1,
    avatar = $2,
	updated_at = now()
WHERE id = $3
`

const userSetPasswordQ = `
UPDATE users
SET password = $1,
	updated_at = now()
WHERE id = $2
`

const userSetVerifiedQ = `
UPDATE users
SET is_email_verified = true,
	updated_at = now()
WHERE id = $1
`

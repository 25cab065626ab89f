package store

const (
	createUser = `
		INSERT INTO users (login, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING user_id, login, password_hash, name, created_at;`

	findUserByLogin = `
		SELECT user_id, login, password_hash, name, created_at
		FROM users
		WHERE login = $1;`

	upsertTrialSession = `
		INSERT INTO trial_sessions (
			session_id,
			generations_used,
			asset_ref,
			created_at,
			expires_at
		) VALUES ($1, $2, $3, NOW(), $4)
		ON CONFLICT (session_id) DO UPDATE SET
			generations_used = GREATEST(trial_sessions.generations_used, excluded.generations_used),
			asset_ref        = COALESCE(excluded.asset_ref, trial_sessions.asset_ref)
		WHERE trial_sessions.converted_to IS NULL
		RETURNING
			session_id,
			generations_used,
			asset_ref,
			converted_to,
			converted_project_id,
			created_at,
			expires_at;`

	findTrialSession = `
		SELECT
			session_id,
			generations_used,
			asset_ref,
			converted_to,
			converted_project_id,
			created_at,
			expires_at
		FROM trial_sessions
		WHERE session_id = $1;`

	markTrialSessionConverted = `
		UPDATE trial_sessions
		SET converted_to         = $2,
		    converted_project_id = $3
		WHERE session_id = $1
		  AND converted_to IS NULL;`

	createProject = `
		INSERT INTO projects (id, owner_id, name, document, source_trial_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, name, document, source_trial_id, created_at, updated_at;`

	getProject = `
		SELECT id, owner_id, name, document, source_trial_id, created_at, updated_at
		FROM projects
		WHERE owner_id = $1 AND id = $2;`

	listProjects = `
		SELECT id, owner_id, name, created_at, updated_at
		FROM projects
		WHERE owner_id = $1
		ORDER BY updated_at DESC;`

	deleteProject = `
		DELETE FROM projects
		WHERE owner_id = $1 AND id = $2;`
)

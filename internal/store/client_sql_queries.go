package store

const (
	createLocalStateTable = `
		CREATE TABLE IF NOT EXISTS local_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`

	getLocalStateValue = `
		SELECT value
		FROM local_state
		WHERE key = $1;`

	setLocalStateValue = `
		INSERT INTO local_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value;`

	deleteLocalStateValue = `
		DELETE FROM local_state
		WHERE key = $1;`
)

package sqlite

import (
	"context"
	"database/sql"
)

func setConfig(ctx context.Context, ex executor, key, value string) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO config (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return err
}

func getConfig(ctx context.Context, ex executor, key string) (string, error) {
	var value string
	err := ex.QueryRowContext(ctx, "SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func getAllConfig(ctx context.Context, ex executor) (map[string]string, error) {
	rows, err := ex.QueryContext(ctx, "SELECT key, value FROM config")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

func setMetadata(ctx context.Context, ex executor, key, value string) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO metadata (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return err
}

func getMetadata(ctx context.Context, ex executor, key string) (string, error) {
	var value string
	err := ex.QueryRowContext(ctx, "SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const blobTable = "blobs"

// sqliteBlobs implements BlobStore on the blobs table.
type sqliteBlobs struct {
	drv *entsql.Driver
}

func (b *sqliteBlobs) Read(ctx context.Context, key string) (string, bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("payload").
		From(entsql.Table(blobTable)).
		Where(entsql.EQ("name", key)).
		Query()

	rows := &entsql.Rows{}
	if err := b.drv.Query(ctx, query, args, rows); err != nil {
		return "", false, fmt.Errorf("query blob %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return "", false, fmt.Errorf("read blob %q: %w", key, err)
		}
		return "", false, nil
	}

	var payload string
	if err := rows.Scan(&payload); err != nil {
		return "", false, fmt.Errorf("scan blob %q: %w", key, err)
	}
	return payload, true, nil
}

func (b *sqliteBlobs) Write(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(blobTable).
		Columns("name", "payload", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := b.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("write blob %q: %w", key, err)
	}
	return nil
}

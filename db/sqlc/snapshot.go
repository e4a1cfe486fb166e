package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TJurijs/5esrd-api/rules"
)

// SaveDataset replaces the stored snapshot with ds in a single transaction
// and returns the number of rows written.
func (store *SQLStore) SaveDataset(ctx context.Context, ds *rules.Dataset) (int64, error) {
	rows, err := entityRows(ds)
	if err != nil {
		return 0, err
	}

	var written int64

	err = store.execTx(ctx, func(q *Queries) error {
		if err := q.DeleteEntities(ctx); err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}

		n, err := q.InsertEntities(ctx, rows)
		if err != nil {
			return fmt.Errorf("failed to insert snapshot: %w", err)
		}

		written = n
		return nil
	})

	return written, err
}

// LoadDataset rebuilds the dataset from the stored snapshot.
func (store *SQLStore) LoadDataset(ctx context.Context) (*rules.Dataset, error) {
	rows, err := store.ListEntities(ctx)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrEmptySnapshot
	}

	return datasetFromRows(rows)
}

// entityRows flattens ds into one row per entity. Within a kind the first entry of a key wins.
func entityRows(ds *rules.Dataset) ([]InsertEntitiesParams, error) {
	rows := make([]InsertEntitiesParams, 0, ds.Total())

	for _, kind := range rules.Kinds {
		seen := make(map[string]bool)

		for _, e := range ds.Entities(kind) {
			key := rules.NormalizeKey(e.EntityName())
			if seen[key] {
				continue
			}
			seen[key] = true

			body, err := json.Marshal(e)
			if err != nil {
				return nil, fmt.Errorf("failed to encode %s %q: %w", kind, e.EntityName(), err)
			}

			rows = append(rows, InsertEntitiesParams{
				Kind:   string(kind),
				Key:    key,
				Name:   e.EntityName(),
				Source: e.EntitySource(),
				Body:   body,
			})
		}
	}

	return rows, nil
}

func datasetFromRows(rows []ListEntitiesRow) (*rules.Dataset, error) {
	ds := &rules.Dataset{}

	for _, row := range rows {
		kind, err := rules.ParseKind(row.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataCorrupted, err)
		}

		if err := ds.AppendJSON(kind, row.Body); err != nil {
			return nil, fmt.Errorf("%w: %s %q: %w", ErrDataCorrupted, row.Kind, row.Key, err)
		}
	}

	return ds, nil
}

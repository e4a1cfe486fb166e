// Package loader reads a 5etools data directory and turns the SRD 5.2 subset of it
// into a normalized rules.Dataset. Every category is a pure function of its files,
// so the categories are loaded concurrently.
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TJurijs/5esrd-api/rules"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrDataPath = errors.New("data path is not a readable directory")

// Load reads every category under dataPath. Missing or malformed files are logged and skipped;
// only an unusable data directory or a cancelled context is an error.
func Load(ctx context.Context, dataPath string) (*rules.Dataset, error) {
	root, err := filepath.Abs(dataPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataPath, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDataPath, root)
	}

	log.Info().Str("path", root).Msg("loading SRD5.2 data")

	ds := &rules.Dataset{}
	l := &dirLoader{root: root}

	// each goroutine owns exactly one field of ds
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() (err error) { ds.Spells, err = l.spells(ctx); return })
	group.Go(func() (err error) { ds.Monsters, err = l.monsters(ctx); return })
	group.Go(func() (err error) { ds.Items, err = l.items(ctx); return })
	group.Go(func() (err error) { ds.Classes, err = l.classes(ctx); return })
	group.Go(func() (err error) { ds.Feats, err = l.feats(ctx); return })
	group.Go(func() (err error) { ds.Backgrounds, err = l.backgrounds(ctx); return })
	group.Go(func() (err error) { ds.Races, err = l.races(ctx); return })
	group.Go(func() (err error) { ds.Conditions, err = l.conditions(ctx); return })
	group.Go(func() (err error) { ds.Skills, err = l.skills(ctx); return })
	group.Go(func() (err error) { ds.Languages, err = l.languages(ctx); return })

	if err := group.Wait(); err != nil {
		return nil, err
	}

	log.Info().Int("total", ds.Total()).Msg("SRD5.2 data loaded")

	return ds, nil
}

func logLoaded(category string, n int) {
	log.Info().Str("category", category).Int("count", n).Msgf("Loaded %d SRD5.2 %s", n, category)
}

// Dir is a data directory that can be loaded again on demand.
type Dir string

func (d Dir) LoadDataset(ctx context.Context) (*rules.Dataset, error) {
	return Load(ctx, string(d))
}

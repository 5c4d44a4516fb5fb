package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ougirez/fishstats/internal/config"
	"github.com/ougirez/fishstats/internal/domain"
	"github.com/ougirez/fishstats/internal/pkg/logger"
	"github.com/ougirez/fishstats/internal/pkg/normalize"
	"github.com/ougirez/fishstats/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type FileReport struct {
	Name      string
	Path      string
	Total     int
	Kept      int
	Filtered  int
	Malformed int
}

type Report struct {
	Files    []FileReport
	Duration time.Duration
}

func (r Report) Kept() int {
	var n int
	for _, f := range r.Files {
		n += f.Kept
	}
	return n
}

func fileReport[T any](name, path string, res Result[T]) FileReport {
	return FileReport{
		Name:      name,
		Path:      path,
		Total:     res.Total,
		Kept:      res.Kept,
		Filtered:  res.Filtered,
		Malformed: res.Malformed,
	}
}

// LoadAll loads the three datasets concurrently and returns them as one snapshot.
func LoadAll(ctx context.Context, cfg config.DataConfig) (*store.Snapshot, Report, error) {
	start := time.Now()
	opts := Options{
		Encoding:       cfg.Encoding,
		Delimiter:      cfg.DelimiterRune(),
		RegionalFilter: true,
	}

	var (
		snapshot   store.Snapshot
		landings   Result[domain.Landing]
		production Result[domain.Production]
		plants     Result[domain.Plant]
	)

	landingsPath := cfg.Path(cfg.LandingsFile)
	productionPath := cfg.Path(cfg.ProductionFile)
	plantsPath := cfg.Path(cfg.PlantsFile)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		landings, err = Load(egCtx, landingsPath, normalize.Landing, func(l domain.Landing) string { return l.Region }, opts)
		if err != nil {
			return fmt.Errorf("load landings: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		production, err = Load(egCtx, productionPath, normalize.Production, func(p domain.Production) string { return p.Region }, opts)
		if err != nil {
			return fmt.Errorf("load production: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		plants, err = Load(egCtx, plantsPath, normalize.Plant, func(p domain.Plant) string { return p.Region }, opts)
		if err != nil {
			return fmt.Errorf("load plants: %w", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, Report{}, err
	}

	snapshot.Landings = landings.Records
	snapshot.Production = production.Records
	snapshot.Plants = plants.Records

	report := Report{
		Files: []FileReport{
			fileReport("desembarques", landingsPath, landings),
			fileReport("materiaPrimaProduccion", productionPath, production),
			fileReport("plantas", plantsPath, plants),
		},
		Duration: time.Since(start),
	}

	for _, f := range report.Files {
		logger.Infof(ctx, "%s: %s of %s rows kept (%s outside macro-regions, %s malformed)",
			f.Name,
			humanize.Comma(int64(f.Kept)),
			humanize.Comma(int64(f.Total)),
			humanize.Comma(int64(f.Filtered)),
			humanize.Comma(int64(f.Malformed)),
		)
	}
	logger.Infof(ctx, "datasets loaded in %s", report.Duration.Round(time.Millisecond))

	return &snapshot, report, nil
}

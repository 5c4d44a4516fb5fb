package panorama

import (
	"cmp"
	"context"
	"slices"

	"github.com/ougirez/fishstats/internal/domain"
	"github.com/ougirez/fishstats/internal/pkg/aggregate"
	"github.com/ougirez/fishstats/internal/pkg/logger"
	"github.com/ougirez/fishstats/internal/pkg/query"
)

func elaboratedTons(p domain.Production) float64 { return p.ElaboratedTons }

type yearRegion struct {
	year   int
	region string
}

// PlantCapacity sets the number of active plants against elaborated output per year
// and region.
func (s *Service) PlantCapacity(ctx context.Context, region string) *domain.Analysis[[]domain.PlantCapacityRow, domain.PlantCapacitySummary] {
	f := domain.Filters{Region: query.Region(region)}
	res := &domain.Analysis[[]domain.PlantCapacityRow, domain.PlantCapacitySummary]{
		Success:      true,
		AnalysisType: AnalysisPlantCapacity,
		Metadata:     s.metadata(f.Region),
		Data:         []domain.PlantCapacityRow{},
	}

	allProduction, allPlants := s.store.Production(), s.store.Plants()
	if len(allProduction) == 0 && len(allPlants) == 0 {
		res.Success, res.Message = false, "no plant or production data available"
		return res
	}

	production := aggregate.Filter(allProduction, query.MatchProduction(f))
	plants := aggregate.Filter(allPlants, query.MatchPlant(f))

	type plantKey struct {
		yearRegion
		plant int
	}
	active := make(map[yearRegion]int)
	for _, pk := range aggregate.Distinct(plants, func(p domain.Plant) (plantKey, bool) {
		return plantKey{yearRegion{p.Year, p.Region}, p.PlantID}, p.Year != 0 && p.Region != "" && p.PlantID != 0
	}) {
		active[pk.yearRegion]++
	}

	output := aggregate.GroupSum(production, func(p domain.Production) (yearRegion, bool) {
		return yearRegion{p.Year, p.Region}, p.Year != 0 && p.Region != ""
	}, elaboratedTons)

	rows := make([]domain.PlantCapacityRow, 0, len(output)+len(active))
	seen := make(map[yearRegion]struct{}, len(output))
	for _, g := range output {
		seen[g.Key] = struct{}{}
		rows = append(rows, domain.PlantCapacityRow{Year: g.Key.year, Region: g.Key.region, Plants: active[g.Key], Production: g.Value})
	}
	for k, n := range active {
		if _, ok := seen[k]; !ok {
			rows = append(rows, domain.PlantCapacityRow{Year: k.year, Region: k.region, Plants: n})
		}
	}

	for i := range rows {
		r := &rows[i]
		if r.Plants > 0 {
			r.PerPlant = aggregate.Round2(r.Production / float64(r.Plants))
		}
		r.Production = aggregate.Round2(r.Production)
	}
	slices.SortStableFunc(rows, func(a, b domain.PlantCapacityRow) int {
		if c := cmp.Compare(a.Year, b.Year); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Production, a.Production); c != 0 {
			return c
		}
		return cmp.Compare(a.Region, b.Region)
	})
	res.Data = rows

	sum := &res.Summary
	sum.YearCount = aggregate.CountDistinct(rows, func(r domain.PlantCapacityRow) (int, bool) { return r.Year, true })
	sum.RegionCount = aggregate.CountDistinct(rows, func(r domain.PlantCapacityRow) (string, bool) { return r.Region, true })
	sum.TotalProduction = aggregate.Round2(aggregate.Sum(rows, func(r domain.PlantCapacityRow) float64 { return r.Production }))
	var best *domain.PlantCapacityRow
	for i := range rows {
		sum.MaxPlants = max(sum.MaxPlants, rows[i].Plants)
		if best == nil || rows[i].PerPlant > best.PerPlant {
			best = &rows[i]
		}
	}
	if best != nil {
		sum.MostProductive = &best.Region
		sum.AveragePerPlant = aggregate.Round2(aggregate.Sum(rows, func(r domain.PlantCapacityRow) float64 { return r.PerPlant }) / float64(len(rows)))
	}

	logger.Debugf(ctx, "plant capacity: %d year/region rows", len(rows))
	return res
}

// RegionalDynamics compares extraction (landed tons) with industrial output
// (elaborated tons) per region.
func (s *Service) RegionalDynamics(ctx context.Context) *domain.Analysis[[]domain.RegionalDynamicsRow, domain.RegionalDynamicsSummary] {
	res := &domain.Analysis[[]domain.RegionalDynamicsRow, domain.RegionalDynamicsSummary]{
		Success:      true,
		AnalysisType: AnalysisRegionalDynamics,
		Metadata:     s.metadata(""),
		Data:         []domain.RegionalDynamicsRow{},
	}

	landings, production := s.store.Landings(), s.store.Production()
	if len(landings) == 0 && len(production) == 0 {
		res.Success, res.Message = false, "no data available"
		return res
	}

	landed := aggregate.GroupSum(landings, aggregate.NonEmpty(func(l domain.Landing) string { return l.Region }), landedTons)
	output := aggregate.GroupSum(production, aggregate.NonEmpty(func(p domain.Production) string { return p.Region }), elaboratedTons)

	rows := make([]domain.RegionalDynamicsRow, 0, len(landed)+len(output))
	index := make(map[string]int, len(landed))
	for _, g := range landed {
		index[g.Key] = len(rows)
		rows = append(rows, domain.RegionalDynamicsRow{Region: g.Key, Landed: g.Value})
	}
	for _, g := range output {
		if i, ok := index[g.Key]; ok {
			rows[i].Production = g.Value
			continue
		}
		rows = append(rows, domain.RegionalDynamicsRow{Region: g.Key, Production: g.Value})
	}

	for i := range rows {
		r := &rows[i]
		if r.Landed > 0 {
			r.Ratio = aggregate.Round(r.Production/r.Landed, 4)
		}
		r.Landed = aggregate.Round2(r.Landed)
		r.Production = aggregate.Round2(r.Production)
	}
	slices.SortStableFunc(rows, func(a, b domain.RegionalDynamicsRow) int { return cmp.Compare(b.Landed, a.Landed) })
	res.Data = rows

	res.Summary = domain.RegionalDynamicsSummary{
		TotalLanded:     aggregate.Round2(aggregate.Sum(rows, func(r domain.RegionalDynamicsRow) float64 { return r.Landed })),
		TotalProduction: aggregate.Round2(aggregate.Sum(rows, func(r domain.RegionalDynamicsRow) float64 { return r.Production })),
		RegionCount:     len(rows),
	}
	if len(rows) > 0 {
		res.Summary.TopLanding = &rows[0].Region
		top := 0
		for i := range rows {
			if rows[i].Production > rows[top].Production {
				top = i
			}
		}
		res.Summary.TopProduction = &rows[top].Region
	}

	logger.Debugf(ctx, "regional dynamics: %d regions", len(rows))
	return res
}

// LongitudinalEvolution is the year series of landed tons and active plants with
// year-over-year percentage changes.
func (s *Service) LongitudinalEvolution(ctx context.Context, region string) *domain.Analysis[[]domain.EvolutionPoint, domain.EvolutionSummary] {
	f := domain.Filters{Region: query.Region(region)}
	res := &domain.Analysis[[]domain.EvolutionPoint, domain.EvolutionSummary]{
		Success:      true,
		AnalysisType: AnalysisEvolution,
		Metadata:     s.metadata(f.Region),
		Data:         []domain.EvolutionPoint{},
	}

	allLandings, allPlants := s.store.Landings(), s.store.Plants()
	if len(allLandings) == 0 && len(allPlants) == 0 {
		res.Success, res.Message = false, "no data available"
		return res
	}

	landings := aggregate.Filter(allLandings, query.MatchLanding(f))
	plants := aggregate.Filter(allPlants, query.MatchPlant(f))

	landedByYear := make(map[int]float64)
	for _, g := range aggregate.GroupSum(landings, aggregate.NonZero(func(l domain.Landing) int { return l.Year }), landedTons) {
		landedByYear[g.Key] = g.Value
	}
	type yearPlant struct{ year, plant int }
	plantsByYear := make(map[int]int)
	for _, yp := range aggregate.Distinct(plants, func(p domain.Plant) (yearPlant, bool) {
		return yearPlant{p.Year, p.PlantID}, p.Year != 0 && p.PlantID != 0
	}) {
		plantsByYear[yp.year]++
	}

	years := make([]int, 0, len(landedByYear)+len(plantsByYear))
	for y := range landedByYear {
		years = append(years, y)
	}
	for y := range plantsByYear {
		if _, ok := landedByYear[y]; !ok {
			years = append(years, y)
		}
	}
	slices.Sort(years)

	var changeSum float64
	var changes int
	for i, y := range years {
		p := domain.EvolutionPoint{Year: y, Landed: aggregate.Round2(landedByYear[y]), Plants: plantsByYear[y]}
		if i > 0 {
			prev := res.Data[i-1]
			p.LandedChange = change(prev.Landed, p.Landed)
			p.PlantsChange = change(float64(prev.Plants), float64(p.Plants))
		}
		if p.LandedChange != nil {
			changeSum += *p.LandedChange
			changes++
		}
		res.Data = append(res.Data, p)
	}

	if len(res.Data) == 0 {
		res.Message = "no records match the given filters"
		return res
	}

	sum := &res.Summary
	sum.YearCount = len(res.Data)
	sum.FirstYear = res.Data[0].Year
	sum.LastYear = res.Data[len(res.Data)-1].Year
	peakLanded, peakPlants := res.Data[0], res.Data[0]
	for _, p := range res.Data[1:] {
		if p.Landed > peakLanded.Landed {
			peakLanded = p
		}
		if p.Plants > peakPlants.Plants {
			peakPlants = p
		}
	}
	sum.PeakLanded = peakLanded.Landed
	sum.PeakLandingYear = &peakLanded.Year
	sum.PeakPlants = peakPlants.Plants
	if peakPlants.Plants > 0 {
		sum.PeakPlantsYear = &peakPlants.Year
	}
	if changes > 0 {
		sum.AverageLandedChange = aggregate.Round2(changeSum / float64(changes))
	}

	logger.Debugf(ctx, "longitudinal evolution: %d years", len(res.Data))
	return res
}

// change is the percentage change from prev to cur, nil when prev is zero.
func change(prev, cur float64) *float64 {
	if prev == 0 {
		return nil
	}
	v := aggregate.Round2((cur - prev) / prev * 100)
	return &v
}

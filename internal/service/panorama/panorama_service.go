package panorama

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/ougirez/fishstats/internal/domain"
	"github.com/ougirez/fishstats/internal/pkg/aggregate"
	"github.com/ougirez/fishstats/internal/pkg/constants"
	"github.com/ougirez/fishstats/internal/pkg/logger"
	"github.com/ougirez/fishstats/internal/pkg/query"
	"github.com/ougirez/fishstats/internal/pkg/store"
)

const (
	AnalysisSupplyDemand     = "supply_vs_demand"
	AnalysisConversion       = "conversion_efficiency"
	AnalysisPlantCapacity    = "plant_capacity_analysis"
	AnalysisRegionalDynamics = "regional_dynamics"
	AnalysisEvolution        = "longitudinal_evolution"

	topSpecies = 5

	DefaultStartYear      = 2010
	DefaultConversionTopN = 20
	DefaultMinRawTons     = 100.0
)

type Service struct {
	store store.Store
	now   func() time.Time
}

func NewPanoramaService(store store.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func landedTons(l domain.Landing) float64 { return l.Tons }

// processedTons counts elaborated output, falling back to raw input when a record
// has no elaborated figure.
func processedTons(p domain.Production) float64 {
	if p.ElaboratedTons != 0 {
		return p.ElaboratedTons
	}
	return p.RawTons
}

func plantCode(p domain.Plant) (int, bool) { return p.PlantID, p.PlantID != 0 }

func kpis(landings []domain.Landing, production []domain.Production, plants []domain.Plant) domain.PanoramaKPIs {
	return domain.PanoramaKPIs{
		TotalLanded:    aggregate.Round2(aggregate.Sum(landings, landedTons)),
		TotalProcessed: aggregate.Round2(aggregate.Sum(production, processedTons)),
		PlantCount:     aggregate.CountDistinct(plants, plantCode),
	}
}

// Panorama is the landing page overview: totals, top species, a yearly series of
// landed tons against active plants, and one block per macro-region.
func (s *Service) Panorama(ctx context.Context, region string) *domain.Panorama {
	f := domain.Filters{Region: query.Region(region)}
	label := f.Region
	if label == "" {
		label = constants.RegionAll
	}

	res := &domain.Panorama{
		Success:    true,
		Region:     label,
		YearSeries: []domain.YearPoint{},
		TopSpecies: []domain.SpeciesTotal{},
		Regions:    []domain.RegionPanorama{},
	}

	allLandings, allProduction, allPlants := s.store.Landings(), s.store.Production(), s.store.Plants()
	if len(allLandings) == 0 && len(allProduction) == 0 && len(allPlants) == 0 {
		res.Success, res.Message = false, "no data available"
		return res
	}

	landings := aggregate.Filter(allLandings, query.MatchLanding(f))
	production := aggregate.Filter(allProduction, query.MatchProduction(f))
	plants := aggregate.Filter(allPlants, query.MatchPlant(f))

	res.KPIs = kpis(landings, production, plants)

	bySpecies := aggregate.GroupSum(landings, aggregate.NonEmpty(func(l domain.Landing) string { return l.Species }), landedTons)
	aggregate.SortDesc(bySpecies)
	for _, g := range aggregate.Top(bySpecies, topSpecies) {
		res.TopSpecies = append(res.TopSpecies, domain.SpeciesTotal{Species: g.Key, Tons: aggregate.Round2(g.Value)})
	}

	res.YearSeries = yearSeries(landings, plants)

	for _, r := range constants.MacroRegions {
		if f.Region != "" && f.Region != r {
			continue
		}
		rf := query.MatchLanding(domain.Filters{Region: r})
		pf := query.MatchProduction(domain.Filters{Region: r})
		plf := query.MatchPlant(domain.Filters{Region: r})
		res.Regions = append(res.Regions, domain.RegionPanorama{
			Region:       r,
			PanoramaKPIs: kpis(aggregate.Filter(landings, rf), aggregate.Filter(production, pf), aggregate.Filter(plants, plf)),
		})
	}

	logger.Debugf(ctx, "panorama %s: %d landings, %d production, %d plant records", label, len(landings), len(production), len(plants))
	return res
}

// yearSeries lists every year with landings, ascending, with the number of distinct
// plants that reported that year.
func yearSeries(landings []domain.Landing, plants []domain.Plant) []domain.YearPoint {
	byYear := aggregate.GroupSum(landings, aggregate.NonZero(func(l domain.Landing) int { return l.Year }), landedTons)
	aggregate.SortAsc(byYear)

	type yearPlant struct{ year, plant int }
	plantYears := aggregate.Distinct(plants, func(p domain.Plant) (yearPlant, bool) {
		return yearPlant{p.Year, p.PlantID}, p.Year != 0 && p.PlantID != 0
	})
	plantsPerYear := make(map[int]int)
	for _, yp := range plantYears {
		plantsPerYear[yp.year]++
	}

	points := make([]domain.YearPoint, 0, len(byYear))
	for _, g := range byYear {
		points = append(points, domain.YearPoint{
			Year:       g.Key,
			LandedTons: aggregate.Round2(g.Value),
			Plants:     plantsPerYear[g.Key],
		})
	}
	return points
}

func (s *Service) metadata(region string) domain.AnalysisMetadata {
	md := domain.AnalysisMetadata{GeneratedAt: s.now().UTC()}
	if region != "" {
		md.Region = &region
	}
	return md
}

func maxYear[T any](items []T, year func(T) int) int {
	var y int
	for _, it := range items {
		y = max(y, year(it))
	}
	return y
}

// SupplyVsDemand sets landed tons (supply) against raw material entering plants
// (demand) per year and species.
func (s *Service) SupplyVsDemand(ctx context.Context, startYear, endYear int, region string) *domain.Analysis[[]domain.SupplyDemandRow, domain.SupplyDemandSummary] {
	allLandings, allProduction := s.store.Landings(), s.store.Production()

	if startYear <= 0 {
		startYear = DefaultStartYear
	}
	if endYear <= 0 {
		endYear = maxYear(allLandings, func(l domain.Landing) int { return l.Year })
		if endYear == 0 {
			endYear = maxYear(allProduction, func(p domain.Production) int { return p.Year })
		}
	}

	f := domain.Filters{Region: query.Region(region)}
	md := s.metadata(f.Region)
	md.StartYear, md.EndYear = startYear, endYear

	res := &domain.Analysis[[]domain.SupplyDemandRow, domain.SupplyDemandSummary]{
		Success:      true,
		AnalysisType: AnalysisSupplyDemand,
		Metadata:     md,
		Data:         []domain.SupplyDemandRow{},
	}

	if len(allLandings) == 0 && len(allProduction) == 0 {
		res.Success, res.Message = false, "no data available"
		return res
	}

	inRange := func(y int) bool { return y >= startYear && y <= endYear }
	matchLanding := query.MatchLanding(f)
	matchProduction := query.MatchProduction(f)
	landings := aggregate.Filter(allLandings, func(l domain.Landing) bool { return inRange(l.Year) && matchLanding(l) })
	production := aggregate.Filter(allProduction, func(p domain.Production) bool { return inRange(p.Year) && matchProduction(p) })

	type key struct {
		year    int
		species string
	}
	supply := aggregate.GroupSum(landings, func(l domain.Landing) (key, bool) {
		return key{l.Year, l.Species}, l.Species != ""
	}, landedTons)
	demand := aggregate.GroupSum(production, func(p domain.Production) (key, bool) {
		return key{p.Year, p.Species}, p.Species != ""
	}, func(p domain.Production) float64 { return p.RawTons })

	rows := make([]domain.SupplyDemandRow, 0, len(supply)+len(demand))
	index := make(map[key]int, len(supply))
	for _, g := range supply {
		index[g.Key] = len(rows)
		rows = append(rows, domain.SupplyDemandRow{Year: g.Key.year, Species: g.Key.species, Landed: g.Value})
	}
	for _, g := range demand {
		if i, ok := index[g.Key]; ok {
			rows[i].RawMaterial = g.Value
			continue
		}
		rows = append(rows, domain.SupplyDemandRow{Year: g.Key.year, Species: g.Key.species, RawMaterial: g.Value})
	}

	slices.SortStableFunc(rows, func(a, b domain.SupplyDemandRow) int {
		if c := cmp.Compare(a.Year, b.Year); c != 0 {
			return c
		}
		return cmp.Compare(b.Landed, a.Landed)
	})

	var sumUsed float64
	for i := range rows {
		r := &rows[i]
		r.Delta = aggregate.Round2(r.Landed - r.RawMaterial)
		r.UsedPercent = aggregate.Percent(r.RawMaterial, r.Landed)
		if r.Landed < 0 {
			r.UsedPercent = 0
		}
		r.Landed = aggregate.Round2(r.Landed)
		r.RawMaterial = aggregate.Round2(r.RawMaterial)
		sumUsed += r.UsedPercent
	}
	res.Data = rows

	res.Summary = domain.SupplyDemandSummary{
		TotalLanded:      aggregate.Round2(aggregate.Sum(rows, func(r domain.SupplyDemandRow) float64 { return r.Landed })),
		TotalRawMaterial: aggregate.Round2(aggregate.Sum(rows, func(r domain.SupplyDemandRow) float64 { return r.RawMaterial })),
		TotalDelta:       aggregate.Round2(aggregate.Sum(rows, func(r domain.SupplyDemandRow) float64 { return r.Delta })),
		SpeciesCount:     aggregate.CountDistinct(rows, func(r domain.SupplyDemandRow) (string, bool) { return r.Species, true }),
		YearCount:        aggregate.CountDistinct(rows, func(r domain.SupplyDemandRow) (int, bool) { return r.Year, true }),
	}
	if len(rows) > 0 {
		res.Summary.AverageUsedPercent = aggregate.Round2(sumUsed / float64(len(rows)))
	}

	logger.Debugf(ctx, "supply vs demand %d-%d: %d rows", startYear, endYear, len(rows))
	return res
}

// ConversionEfficiency reports the yield (elaborated / raw * 100) of every species and
// elaboration line that processed at least minRawTons.
func (s *Service) ConversionEfficiency(ctx context.Context, topN int, minRawTons float64) *domain.Analysis[[]domain.ConversionRow, domain.ConversionSummary] {
	if topN <= 0 {
		topN = DefaultConversionTopN
	}
	if minRawTons <= 0 {
		minRawTons = DefaultMinRawTons
	}

	md := s.metadata("")
	md.TopN, md.MinRawTons = topN, minRawTons

	res := &domain.Analysis[[]domain.ConversionRow, domain.ConversionSummary]{
		Success:      true,
		AnalysisType: AnalysisConversion,
		Metadata:     md,
		Data:         []domain.ConversionRow{},
	}

	production := s.store.Production()
	if len(production) == 0 {
		res.Success, res.Message = false, "no production data available"
		return res
	}

	type line struct{ species, elaboration string }
	lineKey := func(p domain.Production) (line, bool) {
		return line{p.Species, p.ElaborationType}, p.Species != "" && p.ElaborationType != ""
	}
	raw := aggregate.GroupSum(production, lineKey, func(p domain.Production) float64 { return p.RawTons })
	elaborated := aggregate.GroupSum(production, lineKey, func(p domain.Production) float64 { return p.ElaboratedTons })

	rows := make([]domain.ConversionRow, 0, len(raw))
	for i, g := range raw {
		if g.Value < minRawTons {
			continue
		}
		out := elaborated[i].Value
		rows = append(rows, domain.ConversionRow{
			Species:         g.Key.species,
			ElaborationType: g.Key.elaboration,
			RawTons:         aggregate.Round2(g.Value),
			ElaboratedTons:  aggregate.Round2(out),
			Yield:           aggregate.Percent(out, g.Value),
		})
	}

	slices.SortStableFunc(rows, func(a, b domain.ConversionRow) int { return cmp.Compare(b.Yield, a.Yield) })
	rows = aggregate.Top(rows, topN)
	res.Data = rows

	res.Summary.Combinations = len(rows)
	res.Summary.SpeciesCount = aggregate.CountDistinct(rows, func(r domain.ConversionRow) (string, bool) { return r.Species, true })
	if len(rows) > 0 {
		sum := aggregate.Sum(rows, func(r domain.ConversionRow) float64 { return r.Yield })
		res.Summary.AverageYield = aggregate.Round2(sum / float64(len(rows)))
		res.Summary.MaxYield = rows[0].Yield
		res.Summary.MinYield = rows[len(rows)-1].Yield
	}

	logger.Debugf(ctx, "conversion efficiency: %d of %d lines above %.0f t", len(rows), len(raw), minRawTons)
	return res
}

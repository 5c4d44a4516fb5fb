package landings

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/ougirez/fishstats/internal/config"
	"github.com/ougirez/fishstats/internal/domain"
	"github.com/ougirez/fishstats/internal/pkg/aggregate"
	"github.com/ougirez/fishstats/internal/pkg/logger"
	"github.com/ougirez/fishstats/internal/pkg/query"
	"github.com/ougirez/fishstats/internal/pkg/store"
)

const (
	AnalysisAgentDistribution = "agent_distribution"
	AnalysisTopPorts          = "top_ports"
	AnalysisSpeciesBreakdown  = "species_by_agent_breakdown"
	AnalysisSeasonalContext   = "seasonal_context"
	AnalysisAgentShare        = "agent_share"

	DefaultCurrentYear = 2023

	msgNoLandings = "no landing data available"
	msgNoMatch    = "no records match the given filters"
)

var monthNames = [13]string{"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"}

type Service struct {
	store    store.Store
	settings config.AnalyticsConfig
	now      func() time.Time
}

func NewLandingsService(store store.Store, settings config.AnalyticsConfig) *Service {
	return &Service{store: store, settings: settings, now: time.Now}
}

// Scope is the year/region pair every landing analysis narrows by.
type Scope struct {
	Year   string
	Region string
}

func (sc Scope) filters() domain.Filters {
	return query.NewFilters(query.Raw{Year: sc.Year, Region: sc.Region})
}

func (s *Service) metadata(f domain.Filters) domain.AnalysisMetadata {
	md := domain.AnalysisMetadata{GeneratedAt: s.now().UTC()}
	if f.Year != 0 {
		year := f.Year
		md.Year = &year
	}
	if f.Region != "" {
		region := f.Region
		md.Region = &region
	}
	return md
}

func (s *Service) topN(n int) int {
	if n <= 0 {
		return s.settings.DefaultTopN
	}
	return min(n, 100)
}

// scoped returns the landings inside f and whether the store had any landings at all.
func (s *Service) scoped(f domain.Filters) ([]domain.Landing, bool) {
	all := s.store.Landings()
	return aggregate.Filter(all, query.MatchLanding(f)), len(all) > 0
}

func tons(l domain.Landing) float64 { return l.Tons }

func agentType(l domain.Landing) string { return l.AgentType }

func port(l domain.Landing) string { return l.Port }

func species(l domain.Landing) string { return l.Species }

func month(l domain.Landing) int { return l.Month }

func sumRounded[T any](items []T, value func(T) float64) float64 {
	var total float64
	for _, it := range items {
		total += value(it)
	}
	return aggregate.Round2(total)
}

// AgentDistribution splits landed tons by agent type (artisanal, industrial, ...).
func (s *Service) AgentDistribution(ctx context.Context, sc Scope) *domain.Analysis[[]domain.AgentShare, domain.AgentSummary] {
	f := sc.filters()
	res := &domain.Analysis[[]domain.AgentShare, domain.AgentSummary]{
		Success:      true,
		AnalysisType: AnalysisAgentDistribution,
		Metadata:     s.metadata(f),
		Data:         []domain.AgentShare{},
	}

	items, ok := s.scoped(f)
	if !ok {
		res.Success, res.Message = false, msgNoLandings
		return res
	}
	if len(items) == 0 {
		res.Message = msgNoMatch
	}

	groups := aggregate.GroupSum(items, aggregate.NonEmpty(agentType), tons)
	aggregate.SortDesc(groups)

	var total float64
	for _, g := range groups {
		total += g.Value
	}

	for _, g := range groups {
		res.Data = append(res.Data, domain.AgentShare{
			AgentType: g.Key,
			Tons:      aggregate.Round2(g.Value),
			Percent:   aggregate.Percent(g.Value, total),
		})
	}

	res.Summary = domain.AgentSummary{
		TotalTons:  aggregate.Round2(total),
		AgentTypes: len(res.Data),
	}
	if len(res.Data) > 0 {
		res.Summary.Dominant = &res.Data[0].AgentType
		res.Summary.DominantPercent = res.Data[0].Percent
	}

	logger.Debugf(ctx, "agent distribution: %d records, %d agent types", len(items), len(res.Data))
	return res
}

// TopPorts ranks landing ports by tons and reports how concentrated the top N are.
func (s *Service) TopPorts(ctx context.Context, sc Scope, topN int) *domain.Analysis[[]domain.PortRank, domain.PortSummary] {
	f := sc.filters()
	n := s.topN(topN)

	md := s.metadata(f)
	md.TopN = n
	res := &domain.Analysis[[]domain.PortRank, domain.PortSummary]{
		Success:      true,
		AnalysisType: AnalysisTopPorts,
		Metadata:     md,
		Data:         []domain.PortRank{},
	}

	items, ok := s.scoped(f)
	if !ok {
		res.Success, res.Message = false, msgNoLandings
		return res
	}
	if len(items) == 0 {
		res.Message = msgNoMatch
	}

	groups := aggregate.GroupSum(items, aggregate.NonEmpty(port), tons)
	aggregate.SortDesc(groups)

	ports := make([]domain.PortRank, 0, len(groups))
	for _, g := range groups {
		ports = append(ports, domain.PortRank{Port: g.Key, Tons: aggregate.Round2(g.Value)})
	}
	for i := range ports {
		ports[i].Rank = i + 1
	}

	res.Data = aggregate.Top(ports, n)

	portTons := func(p domain.PortRank) float64 { return p.Tons }
	totalTop := sumRounded(res.Data, portTons)
	totalAll := sumRounded(ports, portTons)

	res.Summary = domain.PortSummary{
		TopNTons:           totalTop,
		TotalTons:          totalAll,
		ConcentrationShare: aggregate.Percent(totalTop, totalAll),
		PortCount:          len(ports),
	}
	if len(res.Data) > 0 {
		res.Summary.Leader = &res.Data[0].Port
	}

	logger.Debugf(ctx, "top ports: %d of %d ports", len(res.Data), len(ports))
	return res
}

// SpeciesBreakdown pivots the top N species by tons into one column per agent type.
func (s *Service) SpeciesBreakdown(ctx context.Context, sc Scope, topN int) *domain.Analysis[[]domain.SpeciesAgentRow, domain.SpeciesAgentSummary] {
	f := sc.filters()
	n := s.topN(topN)

	md := s.metadata(f)
	md.TopN = n
	res := &domain.Analysis[[]domain.SpeciesAgentRow, domain.SpeciesAgentSummary]{
		Success:      true,
		AnalysisType: AnalysisSpeciesBreakdown,
		Metadata:     md,
		Data:         []domain.SpeciesAgentRow{},
		Summary: domain.SpeciesAgentSummary{
			AgentTypes:   []string{},
			ShareByAgent: map[string]float64{},
		},
	}

	items, ok := s.scoped(f)
	if !ok {
		res.Success, res.Message = false, msgNoLandings
		return res
	}
	if len(items) == 0 {
		res.Message = msgNoMatch
	}

	bySpecies := aggregate.GroupSum(items, aggregate.NonEmpty(species), tons)
	aggregate.SortDesc(bySpecies)

	top := make(map[string]struct{}, n)
	for _, g := range aggregate.Top(bySpecies, n) {
		top[g.Key] = struct{}{}
	}

	pivotItems := aggregate.Filter(items, func(l domain.Landing) bool {
		_, ok := top[l.Species]
		return ok && l.AgentType != ""
	})

	type cell struct{ species, agent string }
	cells := aggregate.GroupSum(pivotItems, func(l domain.Landing) (cell, bool) {
		return cell{l.Species, l.AgentType}, true
	}, tons)
	cellTons := make(map[cell]float64, len(cells))
	for _, c := range cells {
		cellTons[c.Key] = c.Value
	}

	agents := aggregate.Distinct(pivotItems, aggregate.NonEmpty(agentType))
	rowsOrder := aggregate.Distinct(pivotItems, aggregate.NonEmpty(species))

	for _, a := range agents {
		res.Summary.ShareByAgent[a] = 0
	}

	var grand float64
	for _, sp := range rowsOrder {
		row := domain.SpeciesAgentRow{Species: sp, ByAgent: make(map[string]float64, len(agents))}
		var rowTotal float64
		for _, a := range agents {
			v := aggregate.Round2(cellTons[cell{sp, a}])
			row.ByAgent[a] = v
			rowTotal += v
			res.Summary.ShareByAgent[a] += v
		}
		row.Total = aggregate.Round2(rowTotal)
		grand += row.Total
		res.Data = append(res.Data, row)
	}

	sortRowsDesc(res.Data)

	for a, v := range res.Summary.ShareByAgent {
		res.Summary.ShareByAgent[a] = aggregate.Round2(v)
	}

	res.Summary.SpeciesCount = len(res.Data)
	res.Summary.AgentTypes = agents
	res.Summary.TotalTons = aggregate.Round2(grand)
	if len(res.Data) > 0 {
		res.Summary.Leader = &res.Data[0].Species
	}

	logger.Debugf(ctx, "species breakdown: %d species x %d agent types", len(res.Data), len(agents))
	return res
}

// AgentShare pivots landed tons into one row per region and one column per agent
// type, with each agent's share of the region total.
func (s *Service) AgentShare(ctx context.Context, sc Scope) *domain.Analysis[[]domain.AgentShareRow, domain.AgentShareSummary] {
	f := sc.filters()
	res := &domain.Analysis[[]domain.AgentShareRow, domain.AgentShareSummary]{
		Success:      true,
		AnalysisType: AnalysisAgentShare,
		Metadata:     s.metadata(f),
		Data:         []domain.AgentShareRow{},
		Summary: domain.AgentShareSummary{
			AgentTypes:   []string{},
			ShareByAgent: map[string]float64{},
		},
	}

	items, ok := s.scoped(f)
	if !ok {
		res.Success, res.Message = false, msgNoLandings
		return res
	}
	items = aggregate.Filter(items, func(l domain.Landing) bool { return l.Region != "" && l.AgentType != "" })
	if len(items) == 0 {
		res.Message = msgNoMatch
		return res
	}

	agents := aggregate.Distinct(items, aggregate.NonEmpty(agentType))
	slices.Sort(agents)

	type cell struct{ region, agent string }
	cellTons := make(map[cell]float64)
	for _, g := range aggregate.GroupSum(items, func(l domain.Landing) (cell, bool) {
		return cell{l.Region, l.AgentType}, true
	}, tons) {
		cellTons[g.Key] = g.Value
	}

	for _, region := range aggregate.Distinct(items, aggregate.NonEmpty(func(l domain.Landing) string { return l.Region })) {
		row := domain.AgentShareRow{
			Region:  region,
			ByAgent: make(map[string]float64, len(agents)),
			Percent: make(map[string]float64, len(agents)),
		}
		var total float64
		for _, a := range agents {
			total += cellTons[cell{region, a}]
		}
		for _, a := range agents {
			v := cellTons[cell{region, a}]
			row.ByAgent[a] = aggregate.Round2(v)
			row.Percent[a] = aggregate.Percent(v, total)
			res.Summary.ShareByAgent[a] += row.ByAgent[a]
		}
		row.Total = aggregate.Round2(total)
		res.Data = append(res.Data, row)
	}

	slices.SortStableFunc(res.Data, func(a, b domain.AgentShareRow) int { return cmp.Compare(b.Total, a.Total) })

	for a, v := range res.Summary.ShareByAgent {
		res.Summary.ShareByAgent[a] = aggregate.Round2(v)
	}
	res.Summary.RegionCount = len(res.Data)
	res.Summary.AgentTypes = agents
	res.Summary.TotalTons = sumRounded(res.Data, func(r domain.AgentShareRow) float64 { return r.Total })

	logger.Debugf(ctx, "agent share: %d regions x %d agent types", len(res.Data), len(agents))
	return res
}

func sortRowsDesc(rows []domain.SpeciesAgentRow) {
	slices.SortStableFunc(rows, func(a, b domain.SpeciesAgentRow) int {
		return cmp.Compare(b.Total, a.Total)
	})
}

// SeasonalContext compares each month of currentYear with the average of earlier years.
func (s *Service) SeasonalContext(ctx context.Context, currentYear int, region string) *domain.Analysis[[]domain.SeasonalMonth, domain.SeasonalSummary] {
	if currentYear <= 0 {
		currentYear = DefaultCurrentYear
	}
	f := query.NewFilters(query.Raw{Region: region})

	md := s.metadata(f)
	md.CurrentYear = currentYear
	md.SeasonalAverage = s.settings.SeasonalAverage
	res := &domain.Analysis[[]domain.SeasonalMonth, domain.SeasonalSummary]{
		Success:      true,
		AnalysisType: AnalysisSeasonalContext,
		Metadata:     md,
		Data:         make([]domain.SeasonalMonth, 0, 12),
		Summary:      domain.SeasonalSummary{CurrentYear: currentYear},
	}

	items, ok := s.scoped(f)
	if !ok {
		res.Success, res.Message = false, msgNoLandings
		return res
	}
	if len(items) == 0 {
		res.Message = msgNoMatch
	}

	current := aggregate.Filter(items, func(l domain.Landing) bool { return l.Year == currentYear })
	historical := aggregate.Filter(items, func(l domain.Landing) bool { return l.Year > 0 && l.Year < currentYear })

	var currentByMonth, historicalByMonth, divisor [13]float64
	for _, g := range aggregate.GroupSum(current, aggregate.NonZero(month), tons) {
		currentByMonth[g.Key] = g.Value
	}
	for _, g := range aggregate.GroupSum(historical, aggregate.NonZero(month), tons) {
		historicalByMonth[g.Key] = g.Value
		divisor[g.Key] = float64(g.Count)
	}

	if s.settings.SeasonalAverage != config.SeasonalAveragePerRecord {
		type monthYear struct{ month, year int }
		years := aggregate.Distinct(historical, func(l domain.Landing) (monthYear, bool) {
			return monthYear{l.Month, l.Year}, l.Month != 0
		})
		divisor = [13]float64{}
		for _, my := range years {
			divisor[my.month]++
		}
	}

	var peakCurrent, peakHistorical domain.SeasonalMonth
	for m := 1; m <= 12; m++ {
		actual := currentByMonth[m]
		var avg float64
		if divisor[m] > 0 {
			avg = historicalByMonth[m] / divisor[m]
		}
		diff := actual - avg

		sm := domain.SeasonalMonth{
			Month:         m,
			MonthName:     monthNames[m],
			Current:       aggregate.Round2(actual),
			Historical:    aggregate.Round2(avg),
			Difference:    aggregate.Round2(diff),
			PercentChange: aggregate.Percent(diff, avg),
		}
		if avg < 0 {
			sm.PercentChange = 0
		}
		res.Data = append(res.Data, sm)

		if m == 1 || sm.Current > peakCurrent.Current {
			peakCurrent = sm
		}
		if m == 1 || sm.Historical > peakHistorical.Historical {
			peakHistorical = sm
		}
	}

	totalCurrent := sumRounded(res.Data, func(m domain.SeasonalMonth) float64 { return m.Current })
	totalHistorical := sumRounded(res.Data, func(m domain.SeasonalMonth) float64 { return m.Historical })
	totalDiff := totalCurrent - totalHistorical

	res.Summary = domain.SeasonalSummary{
		CurrentYear:         currentYear,
		HistoricalYears:     aggregate.CountDistinct(historical, aggregate.NonZero(func(l domain.Landing) int { return l.Year })),
		TotalCurrent:        totalCurrent,
		TotalHistorical:     totalHistorical,
		TotalDifference:     aggregate.Round2(totalDiff),
		YearlyChange:        aggregate.Percent(totalDiff, totalHistorical),
		PeakCurrentMonth:    peakCurrent.MonthName,
		PeakHistoricalMonth: peakHistorical.MonthName,
	}
	if totalHistorical < 0 {
		res.Summary.YearlyChange = 0
	}

	logger.Debugf(ctx, "seasonal context %d: %d current, %d historical records", currentYear, len(current), len(historical))
	return res
}

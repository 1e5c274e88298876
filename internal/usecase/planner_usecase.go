package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/config"
	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/pkg/errors"
	"github.com/trip-planner-service/internal/pkg/utils"
	"github.com/trip-planner-service/internal/usecase/dto"
)

const catalogCacheKey = "catalog:all"

// PlannerUseCase - генерация многодневных пеших планов по каталогу мест
type PlannerUseCase struct {
	placeRepo repository.PlaceRepository
	cacheRepo repository.CacheRepository
	tables    *config.Tables
	cfg       config.PlannerConfig
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewPlannerUseCase - создание нового PlannerUseCase
func NewPlannerUseCase(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	tables *config.Tables,
	cfg config.PlannerConfig,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *PlannerUseCase {
	return &PlannerUseCase{
		placeRepo: placeRepo,
		cacheRepo: cacheRepo,
		tables:    tables,
		cfg:       cfg,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// GeneratePlan - загрузка каталога и построение плана
func (uc *PlannerUseCase) GeneratePlan(
	ctx context.Context,
	req dto.GeneratePlanRequest,
) (*domain.TravelPlan, error) {
	catalog, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := uc.BuildPlan(req, catalog)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Travel plan generated",
		zap.String("tour_type", plan.TourType),
		zap.Int("days", len(plan.Days)),
		zap.Int("places", plan.TotalPlaces),
	)

	return plan, nil
}

// loadCatalog - каталог мест из кеша либо из базы
func (uc *PlannerUseCase) loadCatalog(ctx context.Context) ([]domain.Place, error) {
	cached, err := uc.cacheRepo.GetPlaces(ctx, catalogCacheKey)
	if err != nil {
		uc.logger.Warn("Catalog cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	catalog, err := uc.placeRepo.GetAll(ctx, 0)
	if err != nil {
		uc.logger.Error("Failed to load place catalog", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := uc.cacheRepo.SetPlaces(ctx, catalogCacheKey, catalog, uc.cacheTTL); err != nil {
		uc.logger.Warn("Catalog cache write failed", zap.Error(err))
	}

	return catalog, nil
}

// BuildPlan - чистая функция планирования: детерминирована для
// фиксированной пары (запрос, каталог)
func (uc *PlannerUseCase) BuildPlan(
	req dto.GeneratePlanRequest,
	catalog []domain.Place,
) (*domain.TravelPlan, error) {
	if req.Days <= 0 || req.Days > uc.cfg.MaxDays {
		return nil, errors.ErrInvalidDayCount
	}

	tags, err := uc.resolveTags(req)
	if err != nil {
		return nil, err
	}

	if len(catalog) == 0 {
		return nil, errors.ErrEmptyCatalog
	}

	candidates := eligiblePlaces(catalog, tags)
	sortCandidates(candidates)

	buckets := uc.distribute(candidates, req.Days)

	plan := &domain.TravelPlan{
		TourType: strings.ToLower(strings.TrimSpace(req.TourType)),
		Tags:     tagSetToSlice(tags),
		Days:     make([]domain.DayPlan, 0, req.Days),
	}

	for i, bucket := range buckets {
		day := uc.buildDay(i+1, bucket)
		plan.TotalPlaces += len(day.Places)
		plan.TotalMinutes += day.TotalMinutes
		plan.TotalDistanceMeters += day.TotalDistanceMeters
		plan.Days = append(plan.Days, day)
	}

	return plan, nil
}

// resolveTags - теги фильтрации: явные для custom, из справочника для тем
func (uc *PlannerUseCase) resolveTags(req dto.GeneratePlanRequest) (map[string]struct{}, error) {
	tourType := strings.ToLower(strings.TrimSpace(req.TourType))

	if tourType == "custom" {
		tags := make(map[string]struct{})
		for _, raw := range req.CustomTags {
			if tag := strings.ToLower(strings.TrimSpace(raw)); tag != "" {
				tags[tag] = struct{}{}
			}
		}
		if len(tags) == 0 {
			return nil, errors.ErrEmptyCustomTags
		}
		return tags, nil
	}

	themeTags, ok := uc.tables.ResolveTheme(tourType)
	if !ok {
		return nil, errors.ErrUnknownTourType
	}

	tags := make(map[string]struct{}, len(themeTags))
	for _, tag := range themeTags {
		tags[strings.ToLower(tag)] = struct{}{}
	}
	return tags, nil
}

// eligiblePlaces - места с пересечением тегов; места питания
// проходят фильтр всегда
func eligiblePlaces(catalog []domain.Place, tags map[string]struct{}) []domain.Place {
	eligible := make([]domain.Place, 0, len(catalog))
	for _, place := range catalog {
		if place.IsMealStop() || place.HasAnyTag(tags) {
			eligible = append(eligible, place)
		}
	}
	return eligible
}

// sortCandidates - по убыванию популярности, при равенстве по возрастанию id
func sortCandidates(places []domain.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		if places[i].Popularity != places[j].Popularity {
			return places[i].Popularity > places[j].Popularity
		}
		return places[i].ID < places[j].ID
	})
}

type dayBucket struct {
	places      []domain.Place
	usedMinutes int
}

// distribute раскладывает кандидатов по дням. Кандидат попадает в первый
// день, в бюджет которого укладываются его посещение и переход от
// последнего принятого места. Если ни один день не подходит, а пустые дни
// ещё есть, кандидат принудительно кладётся в наименее заполненный день.
func (uc *PlannerUseCase) distribute(candidates []domain.Place, days int) []dayBucket {
	buckets := make([]dayBucket, days)

	for _, candidate := range candidates {
		placed := false

		for d := range buckets {
			walk := 0
			if n := len(buckets[d].places); n > 0 {
				last := buckets[d].places[n-1]
				dist := utils.HaversineDistance(last.Lat, last.Lon, candidate.Lat, candidate.Lon)
				walk = utils.WalkingMinutes(dist, uc.cfg.WalkingSpeed)
			}

			cost := candidate.VisitDuration + walk
			if buckets[d].usedMinutes+cost <= uc.cfg.DayBudgetMinutes {
				buckets[d].places = append(buckets[d].places, candidate)
				buckets[d].usedMinutes += cost
				placed = true
				break
			}
		}

		if !placed && hasEmptyBucket(buckets) {
			d := leastFullBucket(buckets)
			buckets[d].places = append(buckets[d].places, candidate)
			buckets[d].usedMinutes += candidate.VisitDuration
		}
	}

	return buckets
}

func hasEmptyBucket(buckets []dayBucket) bool {
	for _, b := range buckets {
		if len(b.places) == 0 {
			return true
		}
	}
	return false
}

func leastFullBucket(buckets []dayBucket) int {
	best := 0
	for d := 1; d < len(buckets); d++ {
		if buckets[d].usedMinutes < buckets[best].usedMinutes {
			best = d
		}
	}
	return best
}

// buildDay упорядочивает места дня жадным ближайшим соседом от первого
// назначенного места и строит пешие переходы между соседними парами
func (uc *PlannerUseCase) buildDay(dayNumber int, bucket dayBucket) domain.DayPlan {
	day := domain.DayPlan{
		Day:      dayNumber,
		Places:   orderByNearestNeighbor(bucket.places),
		Segments: []domain.Segment{},
	}

	for _, place := range day.Places {
		day.TotalMinutes += place.VisitDuration
	}

	for i := 1; i < len(day.Places); i++ {
		from := day.Places[i-1]
		to := day.Places[i]
		dist := utils.HaversineDistance(from.Lat, from.Lon, to.Lat, to.Lon)
		walk := utils.WalkingMinutes(dist, uc.cfg.WalkingSpeed)

		day.Segments = append(day.Segments, domain.Segment{
			Order:          i - 1,
			FromPlaceID:    from.ID,
			ToPlaceID:      to.ID,
			DistanceMeters: dist,
			WalkingMinutes: walk,
			Mode:           domain.ModeWalk,
		})

		day.TotalMinutes += walk
		day.TotalDistanceMeters += dist
	}

	return day
}

// orderByNearestNeighbor - порядок посещения: от первого места дня каждый
// раз к ближайшему ещё не посещённому, при равных расстояниях - меньший id
func orderByNearestNeighbor(places []domain.Place) []domain.Place {
	if len(places) <= 1 {
		ordered := make([]domain.Place, len(places))
		copy(ordered, places)
		return ordered
	}

	remaining := make([]domain.Place, len(places))
	copy(remaining, places)

	ordered := make([]domain.Place, 0, len(places))
	ordered = append(ordered, remaining[0])
	remaining = remaining[1:]

	for len(remaining) > 0 {
		last := ordered[len(ordered)-1]
		best := 0
		bestDist := utils.HaversineDistance(last.Lat, last.Lon, remaining[0].Lat, remaining[0].Lon)

		for i := 1; i < len(remaining); i++ {
			dist := utils.HaversineDistance(last.Lat, last.Lon, remaining[i].Lat, remaining[i].Lon)
			if dist < bestDist || (dist == bestDist && remaining[i].ID < remaining[best].ID) {
				best = i
				bestDist = dist
			}
		}

		ordered = append(ordered, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return ordered
}

func tagSetToSlice(tags map[string]struct{}) []string {
	out := make([]string, 0, len(tags))
	for tag := range tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

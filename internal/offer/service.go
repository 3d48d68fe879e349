package offer

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"farescout/pkg/cache"
	"farescout/pkg/idgen"
	"farescout/pkg/logger"
)

// OfferClient is the flight-offer fetch collaborator. It returns the raw
// batch for a search, ErrNoResults when the search matched nothing, or a
// *FetchError.
type OfferClient interface {
	SearchOffers(ctx context.Context, q SearchQuery) ([]Offer, error)
}

type Service struct {
	client OfferClient
	cache  cache.Cache
	ttl    time.Duration
	ids    idgen.Generator
	logger logger.Client
}

func NewService(client OfferClient, cache cache.Cache, ttlMinutes int, ids idgen.Generator, logger logger.Client) *Service {
	return &Service{
		client: client,
		cache:  cache,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		ids:    ids,
		logger: logger,
	}
}

// batchEnvelope is the cached form of one search's batch. A batch is
// immutable for the life of its search; a new search writes a new envelope
// under a new key.
type batchEnvelope struct {
	BatchID      string  `json:"batch_id"`
	SearchTimeMs int64   `json:"search_time_ms"`
	Offers       []Offer `json:"offers"`
}

const defaultMaxResults = 50

func normalizeQuery(q SearchQuery) SearchQuery {
	if q.Adults <= 0 {
		q.Adults = 1
	}
	if q.MaxResults <= 0 || q.MaxResults > 250 {
		q.MaxResults = defaultMaxResults
	}
	return q
}

// generateCacheKey creates a deterministic key from search parameters
func (s *Service) generateCacheKey(q SearchQuery) string {
	key := fmt.Sprintf("offers:%s:%s:%s:%s:%d:%s:%t:%s:%d",
		q.Origin,
		q.Destination,
		q.DepartureDate,
		q.ReturnDate,
		q.Adults,
		q.CabinClass,
		q.DirectOnly,
		q.Currency,
		q.MaxResults,
	)

	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("offers:search:%x", hash[:16])
}

// SearchOffers resolves the batch for a search (cache first, then the fetch
// collaborator) and derives the full facet payload from it.
func (s *Service) SearchOffers(ctx context.Context, q SearchQuery) (*SearchResponse, error) {
	q = normalizeQuery(q)
	cacheKey := s.generateCacheKey(q)

	if env, ok := s.cachedEnvelope(ctx, cacheKey); ok {
		return s.buildResponse(env, cacheKey, true), nil
	}

	env, err := s.fetchAndCache(ctx, q, cacheKey, false)
	if err != nil {
		return nil, err
	}

	return s.buildResponse(env, cacheKey, false), nil
}

// FilterOffers re-derives the visible list for the current constraints. The
// batch itself is fixed: filtering is a pure in-memory projection, no
// upstream round-trip happens on a constraint change while the batch is
// cached.
func (s *Service) FilterOffers(ctx context.Context, req FilterRequest) (*SearchResponse, error) {
	q := normalizeQuery(req.SearchQuery)
	cacheKey := s.generateCacheKey(q)

	env, ok := s.cachedEnvelope(ctx, cacheKey)
	cacheHit := ok
	if !ok {
		// Batch expired mid-session: refetch once, then filter the fresh
		// batch. Constraint defaults are re-derived from it by the caller.
		fresh, err := s.fetchAndCache(ctx, q, cacheKey, true)
		if err != nil {
			return nil, err
		}
		env = fresh
	}

	constraints := req.Constraints
	if constraints == nil {
		defaults := DeriveDefaultRanges(env.Offers).DefaultConstraints()
		constraints = &defaults
	}

	filtered := Filter(env.Offers, *constraints)
	if req.SortBy != "" {
		if ValidSortKey(req.SortBy) {
			filtered = SortOffers(filtered, req.SortBy)
		} else {
			s.logger.Warn("invalid sort key", logger.Field{Key: "sort_by", Value: string(req.SortBy)})
		}
	}

	resp := s.buildResponse(env, cacheKey, cacheHit)
	resp.Offers = filtered
	resp.Metadata.TotalResults = len(filtered)
	return resp, nil
}

func (s *Service) cachedEnvelope(ctx context.Context, cacheKey string) (*batchEnvelope, bool) {
	cached, err := s.cache.Get(ctx, cacheKey)
	if err != nil || cached == "" {
		return nil, false
	}

	var env batchEnvelope
	if err := json.Unmarshal([]byte(cached), &env); err != nil {
		s.logger.Error("failed to unmarshal cached batch",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "cache_key", Value: cacheKey},
		)
		return nil, false
	}
	return &env, true
}

// fetchAndCache calls the fetch collaborator and stores the resulting batch.
// A no-results outcome becomes an empty batch, cached like any other so the
// UI's "no results" state survives constraint changes without re-querying.
func (s *Service) fetchAndCache(ctx context.Context, q SearchQuery, cacheKey string, cacheInBackground bool) (*batchEnvelope, error) {
	startTime := time.Now()

	offers, err := s.client.SearchOffers(ctx, q)
	if err != nil {
		if !errors.Is(err, ErrNoResults) {
			return nil, err
		}
		offers = nil
	}

	env := &batchEnvelope{
		BatchID:      strconv.FormatInt(s.ids.GenerateID(), 10),
		SearchTimeMs: time.Since(startTime).Milliseconds(),
		Offers:       offers,
	}

	envBytes, err := json.Marshal(env)
	if err != nil {
		s.logger.Error("failed to marshal batch for caching", logger.Field{Key: "err", Value: err})
		return env, nil
	}

	store := func(ctx context.Context) {
		if err := s.cache.Set(ctx, cacheKey, string(envBytes), s.ttl); err != nil {
			s.logger.Error("failed to cache batch",
				logger.Field{Key: "err", Value: err},
				logger.Field{Key: "cache_key", Value: cacheKey},
			)
		}
	}

	if cacheInBackground {
		go store(context.Background())
	} else {
		store(ctx)
	}

	return env, nil
}

func (s *Service) buildResponse(env *batchEnvelope, cacheKey string, cacheHit bool) *SearchResponse {
	facets := DeriveDefaultRanges(env.Offers)

	var headline *Headline
	if hl, ok := HeadlinePrices(env.Offers); ok {
		headline = &hl
	}

	return &SearchResponse{
		Metadata: Metadata{
			BatchID:      env.BatchID,
			TotalResults: len(env.Offers),
			SearchTimeMs: env.SearchTimeMs,
			CacheHit:     cacheHit,
			CacheKey:     cacheKey,
		},
		Facets:             facets,
		DefaultConstraints: facets.DefaultConstraints(),
		BucketMinimums:     StopBucketMinimums(env.Offers),
		Headline:           headline,
		Offers:             env.Offers,
	}
}

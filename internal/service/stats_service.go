package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/repository"
)

const statsCacheKey = "stats:overview"

// StatsService 서비스 전체 통계. 집계 쿼리 비용이 있어 Redis 에 캐시한다.
type StatsService struct {
	userRepo     *repository.UserRepository
	toolRepo     *repository.ToolRepository
	templateRepo *repository.TemplateRepository
	chatRepo     *repository.ChatRepository
	postRepo     *repository.PostRepository
	rdb          *redis.Client
	cfg          *config.Config
}

func NewStatsService(
	userRepo *repository.UserRepository,
	toolRepo *repository.ToolRepository,
	templateRepo *repository.TemplateRepository,
	chatRepo *repository.ChatRepository,
	postRepo *repository.PostRepository,
	rdb *redis.Client,
	cfg *config.Config,
) *StatsService {
	return &StatsService{
		userRepo:     userRepo,
		toolRepo:     toolRepo,
		templateRepo: templateRepo,
		chatRepo:     chatRepo,
		postRepo:     postRepo,
		rdb:          rdb,
		cfg:          cfg,
	}
}

// Get 전체 통계 조회
func (s *StatsService) Get(ctx context.Context) (*dto.Stats, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	stats, err := s.collect()
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, stats)

	return stats, nil
}

func (s *StatsService) collect() (*dto.Stats, error) {
	stats := &dto.Stats{}

	var err error
	if stats.TotalUsers, err = s.userRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalTools, err = s.toolRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalTemplates, err = s.templateRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalChats, err = s.chatRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalPosts, err = s.postRepo.Count(); err != nil {
		return nil, err
	}

	toolUsage, err := s.toolRepo.TotalUsage()
	if err != nil {
		return nil, err
	}
	templateUsage, err := s.templateRepo.TotalUsage()
	if err != nil {
		return nil, err
	}
	stats.TotalUsage = toolUsage + templateUsage

	return stats, nil
}

func (s *StatsService) fromCache(ctx context.Context) *dto.Stats {
	if s.rdb == nil {
		return nil
	}

	data, err := s.rdb.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil
	}

	var stats dto.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *StatsService) toCache(ctx context.Context, stats *dto.Stats) {
	if s.rdb == nil {
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return
	}

	ttl := time.Duration(s.cfg.Stats.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := s.rdb.Set(ctx, statsCacheKey, data, ttl).Err(); err != nil {
		log.Printf("Failed to cache stats: %v", err)
	}
}

package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"agora/internal/model/system"
	"agora/internal/pkg/cache"
	systemRepo "agora/internal/repository/system"
)

// SettingsService 站点设置服务
// 设置读取频繁（每次注册都要查审核开关），用 Redis 缓存 60s
type SettingsService struct {
	settingsRepo *systemRepo.SettingsRepo
	cache        *cache.RedisCache
}

// NewSettingsService 创建设置服务
func NewSettingsService(settingsRepo *systemRepo.SettingsRepo, c *cache.RedisCache) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		cache:        c,
	}
}

// Get 获取站点设置（优先读缓存）
func (s *SettingsService) Get(ctx context.Context) (*system.Settings, error) {
	if s.cache != nil {
		var cached system.Settings
		if err := s.cache.Get(ctx, cache.SettingsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.SettingsCacheKey, settings, cache.SettingsCacheTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache settings")
		}
	}

	return settings, nil
}

// Update 更新站点设置并刷新缓存
func (s *SettingsService) Update(ctx context.Context, settings *system.Settings, updatedBy string) (*system.Settings, error) {
	settings.UpdatedBy = updatedBy

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cache.SettingsCacheKey); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate settings cache")
		}
	}

	return settings, nil
}

package app

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/unicostudio/b-ai-localization/internal/config"
	"github.com/unicostudio/b-ai-localization/internal/domain"
	"github.com/unicostudio/b-ai-localization/internal/output"
	"github.com/unicostudio/b-ai-localization/internal/service"
	"github.com/unicostudio/b-ai-localization/internal/service/characters"
	"github.com/unicostudio/b-ai-localization/pkg/errors"
)

// Container holds the assembled pipeline services for one process.
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Status     *service.StatusLog
	Provider   service.CompletionProvider
	Cache      service.LocalizationCache
	Normalizer *characters.Normalizer
	Describer  *service.VisionDescriber
	Localizer  *service.Localizer
	Scheduler  *service.Scheduler
	Projector  *output.Projector
}

// Build assembles the service graph from configuration. Optional pieces
// degrade instead of failing: a broken Gemini key just drops the fallback
// provider, an unreachable Redis falls back to the in-memory cache, and a
// bad character file falls back to the embedded table.
func Build(ctx context.Context, cfg *config.Config, characterPath string, logger *zap.Logger) (*Container, error) {
	status := service.NewStatusLog(logger)

	var provider service.CompletionProvider = service.NewOpenRouterProvider(cfg.OpenRouter.APIKey, logger)
	if cfg.Gemini.APIKey != "" {
		gemini, err := service.NewGeminiProvider(ctx, cfg.Gemini.APIKey, logger)
		if err != nil {
			logger.Warn("Gemini fallback unavailable, continuing with OpenRouter only", zap.Error(err))
		} else {
			provider = service.NewFallbackProvider(provider, gemini, logger)
		}
	}

	var cache service.LocalizationCache
	if cfg.RedisEnabled() {
		redisCache, err := service.NewRedisCache(service.RedisCacheConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			logger.Warn("Redis cache unavailable, using in-memory cache", zap.Error(err))
			cache = service.NewMemoryCache()
		} else {
			cache = redisCache
		}
	} else {
		cache = service.NewMemoryCache()
	}

	table, err := loadCharacterTable(characterPath, logger)
	if err != nil {
		return nil, err
	}

	normalizer := characters.NewNormalizer(table, logger)
	describer := service.NewVisionDescriber(provider, status, logger)
	localizer := service.NewLocalizer(provider, cache, status, logger)
	scheduler := service.NewScheduler(describer, localizer, normalizer, status, logger)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		Status:     status,
		Provider:   provider,
		Cache:      cache,
		Normalizer: normalizer,
		Describer:  describer,
		Localizer:  localizer,
		Scheduler:  scheduler,
		Projector:  output.NewProjector(normalizer),
	}, nil
}

func loadCharacterTable(path string, logger *zap.Logger) (domain.CharacterTable, error) {
	if path == "" {
		return domain.DefaultCharacterTable()
	}

	table, err := domain.LoadCharacterTable(path)
	if err == nil {
		logger.Info("loaded character table", zap.String("path", path))
		return table, nil
	}

	var charErr *errors.CharacterDataError
	if stderrors.As(err, &charErr) {
		logger.Warn("character table unusable, falling back to embedded data",
			zap.String("path", path), zap.Error(err))
		return domain.DefaultCharacterTable()
	}
	return nil, err
}

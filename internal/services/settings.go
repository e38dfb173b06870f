package services

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/repos"
)

const adminConfigKey = "admin_configs"

// GeneralSettings is the admin-wide configuration blob. It lives in Redis
// under a single key rather than a relational row.
type GeneralSettings struct {
	SlotIntervalMinutes  int `json:"slot_interval_minutes"`
	BookingWindowDays    int `json:"booking_window_days"`
	MinBookingNoticeHrs  int `json:"min_booking_notice_hours"`
	PreBufferMinutes     int `json:"pre_buffer_minutes"`
	PostBufferMinutes    int `json:"post_buffer_minutes"`
	CancellationNoticeHr int `json:"cancellation_notice_hours"`
}

type SettingsService interface {
	GetSettings(ctx context.Context) (*GeneralSettings, error)
	SaveSettings(ctx context.Context, settings GeneralSettings) error
}

type settingsService struct {
	db          *gorm.DB
	log         *logger.Logger
	rdb         *goredis.Client
	serviceRepo repos.ServiceRepo
}

func NewSettingsService(db *gorm.DB, baseLog *logger.Logger, rdb *goredis.Client, serviceRepo repos.ServiceRepo) SettingsService {
	serviceLog := baseLog.With("service", "SettingsService")
	return &settingsService{db: db, log: serviceLog, rdb: rdb, serviceRepo: serviceRepo}
}

// GetSettings returns nil when no settings have been saved yet.
func (s *settingsService) GetSettings(ctx context.Context) (*GeneralSettings, error) {
	raw, err := s.rdb.Get(ctx, adminConfigKey).Result()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get admin settings: %w", err)
	}

	var settings GeneralSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return nil, fmt.Errorf("decode admin settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings stores the blob and, when a default buffer changed, pushes the
// new value onto every service that has not overridden that buffer.
func (s *settingsService) SaveSettings(ctx context.Context, settings GeneralSettings) error {
	prev, err := s.GetSettings(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode admin settings: %w", err)
	}
	if err := s.rdb.Set(ctx, adminConfigKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save admin settings: %w", err)
	}

	if prev == nil {
		return nil
	}
	if prev.PreBufferMinutes != settings.PreBufferMinutes {
		if err := s.serviceRepo.UpdatePreBufferWhereNotOverridden(ctx, nil, settings.PreBufferMinutes); err != nil {
			s.log.Error("Failed to propagate pre buffer to services", "error", err)
			return fmt.Errorf("propagate pre buffer: %w", err)
		}
	}
	if prev.PostBufferMinutes != settings.PostBufferMinutes {
		if err := s.serviceRepo.UpdatePostBufferWhereNotOverridden(ctx, nil, settings.PostBufferMinutes); err != nil {
			s.log.Error("Failed to propagate post buffer to services", "error", err)
			return fmt.Errorf("propagate post buffer: %w", err)
		}
	}
	return nil
}

package services

import (
	"context"
	"fmt"

	"github.com/scout-research/scout/ent"
	"github.com/scout-research/scout/ent/globalsetting"
)

// SettingsService manages runtime settings stored in global_settings.
// Settings are free-form JSON documents keyed by name; consumers interpret
// the shape themselves.
type SettingsService struct {
	client *ent.Client
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(client *ent.Client) *SettingsService {
	return &SettingsService{client: client}
}

// GetSetting returns one setting by key.
func (s *SettingsService) GetSetting(httpCtx context.Context, key string) (*ent.GlobalSetting, error) {
	if key == "" {
		return nil, NewValidationError("key", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	setting, err := s.client.GlobalSetting.Query().
		Where(globalsetting.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return setting, nil
}

// PutSetting creates or replaces a setting value.
func (s *SettingsService) PutSetting(httpCtx context.Context, key string, value map[string]interface{}) (*ent.GlobalSetting, error) {
	if key == "" {
		return nil, NewValidationError("key", "required")
	}
	if value == nil {
		return nil, NewValidationError("value", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	err := s.client.GlobalSetting.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(globalsetting.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store setting: %w", err)
	}
	return s.GetSetting(httpCtx, key)
}

// ListSettings returns all settings ordered by key.
func (s *SettingsService) ListSettings(httpCtx context.Context) ([]*ent.GlobalSetting, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	settings, err := s.client.GlobalSetting.Query().
		Order(ent.Asc(globalsetting.FieldKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/scout-research/scout/test/database"
)

func TestSettingsService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSettingsService(client.Client)
	ctx := context.Background()

	t.Run("put and get", func(t *testing.T) {
		setting, err := svc.PutSetting(ctx, "scoring", map[string]interface{}{
			"allow_domains": []interface{}{"nature.com", "arxiv.org"},
		})
		require.NoError(t, err)
		assert.Equal(t, "scoring", setting.Key)
		assert.Contains(t, setting.Value["allow_domains"], "nature.com")

		got, err := svc.GetSetting(ctx, "scoring")
		require.NoError(t, err)
		assert.Equal(t, setting.Value, got.Value)
	})

	t.Run("put replaces existing value", func(t *testing.T) {
		_, err := svc.PutSetting(ctx, "qc", map[string]interface{}{"llm_enabled": false})
		require.NoError(t, err)
		updated, err := svc.PutSetting(ctx, "qc", map[string]interface{}{"llm_enabled": true})
		require.NoError(t, err)
		assert.Equal(t, true, updated.Value["llm_enabled"])

		settings, err := svc.ListSettings(ctx)
		require.NoError(t, err)
		keys := make([]string, len(settings))
		for i, s := range settings {
			keys[i] = s.Key
		}
		assert.Equal(t, []string{"qc", "scoring"}, keys)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := svc.GetSetting(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates key and value", func(t *testing.T) {
		_, err := svc.GetSetting(ctx, "")
		assert.True(t, IsValidationError(err))
		_, err = svc.PutSetting(ctx, "", map[string]interface{}{"a": 1})
		assert.True(t, IsValidationError(err))
		_, err = svc.PutSetting(ctx, "k", nil)
		assert.True(t, IsValidationError(err))
	})
}

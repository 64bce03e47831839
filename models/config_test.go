package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSiteConfigPassword(t *testing.T) {
	assert.Equal(t, DefaultAdminPassword, SiteConfig{}.Password())
	assert.Equal(t, DefaultAdminPassword, SiteConfig{ConfigPasswordField: ""}.Password())
	assert.Equal(t, DefaultAdminPassword, SiteConfig{ConfigPasswordField: 42}.Password())
	assert.Equal(t, "hunter2", SiteConfig{ConfigPasswordField: "hunter2"}.Password())
}

func TestSiteConfigSanitized(t *testing.T) {
	cfg := SiteConfig{"siteName": "ORBYA", ConfigPasswordField: "hunter2"}

	sanitized := cfg.Sanitized()
	assert.NotContains(t, sanitized, ConfigPasswordField)
	assert.Equal(t, "ORBYA", sanitized["siteName"])
	// The original is untouched.
	assert.Contains(t, cfg, ConfigPasswordField)
}

func TestSiteConfigMerge(t *testing.T) {
	stored := SiteConfig{"siteName": "ORBYA", "tagline": "old", ConfigPasswordField: "hunter2"}

	t.Run("update keys win", func(t *testing.T) {
		merged := stored.Merge(SiteConfig{"tagline": "new"})
		assert.Equal(t, "new", merged["tagline"])
		assert.Equal(t, "ORBYA", merged["siteName"])
	})

	t.Run("omitted password survives", func(t *testing.T) {
		merged := stored.Merge(SiteConfig{"tagline": "new"})
		assert.Equal(t, "hunter2", merged[ConfigPasswordField])
	})

	t.Run("explicit password replaces", func(t *testing.T) {
		merged := stored.Merge(SiteConfig{ConfigPasswordField: "rotated"})
		assert.Equal(t, "rotated", merged[ConfigPasswordField])
	})
}

func TestValidAspectRatio(t *testing.T) {
	for _, ratio := range AspectRatios {
		assert.True(t, ValidAspectRatio(ratio), ratio)
	}
	assert.False(t, ValidAspectRatio("2:1"))
	assert.False(t, ValidAspectRatio(""))
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoryExpired(t *testing.T) {
	now := time.Now()

	fresh := Story{CreatedAt: now.Add(-1 * time.Hour)}
	assert.False(t, fresh.Expired(now))

	edge := Story{CreatedAt: now.Add(-StoryLifetime)}
	assert.False(t, edge.Expired(now))

	stale := Story{CreatedAt: now.Add(-StoryLifetime - time.Minute)}
	assert.True(t, stale.Expired(now))
}

func TestIsValidHealthCondition(t *testing.T) {
	assert.True(t, IsValidHealthCondition("Diabetes Mellitus"))
	assert.True(t, IsValidHealthCondition("Hypertension (High Blood Pressure)"))
	assert.False(t, IsValidHealthCondition("diabetes mellitus"))
	assert.False(t, IsValidHealthCondition("Common Cold"))
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, IsValidOrderStatus(OrderStatusPending))
	assert.True(t, IsValidOrderStatus(OrderStatusCancelled))
	assert.False(t, IsValidOrderStatus("SHIPPED_TO_MARS"))
}

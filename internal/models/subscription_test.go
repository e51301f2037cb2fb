package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalSubscription_Unmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantNil  bool
		wantErr  bool
	}{
		{name: "empty object means absent", payload: `{}`, wantNil: true},
		{name: "null means absent", payload: `null`, wantNil: true},
		{name: "non-empty object is present", payload: `{"status":"ACTIVE"}`, wantNil: false},
		{name: "malformed payload", payload: `"oops"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opt OptionalSubscription
			err := json.Unmarshal([]byte(tt.payload), &opt)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, opt.Subscription)
			} else {
				assert.NotNil(t, opt.Subscription)
			}
		})
	}
}

func TestOptionalSubscription_FullPayloadRoundTrip(t *testing.T) {
	payload := `{
		"status": "ACTIVE",
		"plan_name": "Pro",
		"plan_id": 7,
		"expire_at": "2026-01-01T00:00:00Z",
		"traffic_limit": 1073741824,
		"device_limit": null,
		"is_trial": false,
		"url": "vless://example",
		"active_devices_count": 2
	}`

	var opt OptionalSubscription
	require.NoError(t, json.Unmarshal([]byte(payload), &opt))
	require.NotNil(t, opt.Subscription)

	sub := opt.Subscription
	assert.Equal(t, SubscriptionActive, sub.Status)
	assert.Equal(t, "Pro", sub.PlanName)
	require.NotNil(t, sub.PlanID)
	assert.Equal(t, int64(7), *sub.PlanID)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), sub.ExpireAt)
	require.NotNil(t, sub.TrafficLimit)
	assert.Equal(t, int64(1073741824), *sub.TrafficLimit)
	assert.Nil(t, sub.DeviceLimit)
	assert.False(t, sub.IsTrial)
	assert.Equal(t, "vless://example", sub.URL)
	assert.Equal(t, 2, sub.ActiveDevicesCount)
	assert.True(t, sub.IsActive())
}

func TestOptionalSubscription_MarshalAbsentAsNull(t *testing.T) {
	data, err := json.Marshal(OptionalSubscription{})
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(data))
}

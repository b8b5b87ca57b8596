package models

import (
	"testing"

	apperrors "mailroom-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

// TestTransition covers every status/action combination of the lifecycle.
func TestTransition(t *testing.T) {
	tests := []struct {
		name        string
		current     MailItemStatus
		action      LifecycleAction
		wantNext    MailItemStatus
		wantChanged bool
		wantErr     bool
	}{
		{
			name:        "notify from pending",
			current:     MailItemStatusPending,
			action:      ActionNotify,
			wantNext:    MailItemStatusNotified,
			wantChanged: true,
		},
		{
			name:        "notify from notified is a no-op",
			current:     MailItemStatusNotified,
			action:      ActionNotify,
			wantNext:    MailItemStatusNotified,
			wantChanged: false,
		},
		{
			name:    "notify from delivered is rejected",
			current: MailItemStatusDelivered,
			action:  ActionNotify,
			wantErr: true,
		},
		{
			name:        "deliver from pending skips notified",
			current:     MailItemStatusPending,
			action:      ActionDeliver,
			wantNext:    MailItemStatusDelivered,
			wantChanged: true,
		},
		{
			name:        "deliver from notified",
			current:     MailItemStatusNotified,
			action:      ActionDeliver,
			wantNext:    MailItemStatusDelivered,
			wantChanged: true,
		},
		{
			name:        "deliver from delivered is a no-op",
			current:     MailItemStatusDelivered,
			action:      ActionDeliver,
			wantNext:    MailItemStatusDelivered,
			wantChanged: false,
		},
		{
			name:    "unknown action is rejected",
			current: MailItemStatusPending,
			action:  LifecycleAction("return"),
			wantErr: true,
		},
		{
			name:    "unknown status is rejected",
			current: MailItemStatus("lost"),
			action:  ActionNotify,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, changed, err := Transition(tt.current, tt.action)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperrors.IsInvalidTransition(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantNext, next)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

package viewmode_test

import (
	"testing"

	"realty-crm-backend/internal/viewmode"

	"github.com/stretchr/testify/assert"
)

func TestResolveFromPath(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want viewmode.Mode
	}{
		{"post-sales path is read-only", "/post-sales/bookings/42/timeline", viewmode.ModeReadOnly},
		{"marker match is case-insensitive", "/Post-Sales/registrations", viewmode.ModeReadOnly},
		{"marker anywhere in the path", "/crm/post-sales", viewmode.ModeReadOnly},
		{"operations path is editable", "/operations/bookings/42/timeline", viewmode.ModeEditable},
		{"empty path is editable", "", viewmode.ModeEditable},
		{"partial marker does not match", "/postsales/bookings", viewmode.ModeEditable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, viewmode.ResolveFromPath(tc.path))
		})
	}
}

func TestModeReadOnly(t *testing.T) {
	assert.True(t, viewmode.ModeReadOnly.ReadOnly())
	assert.False(t, viewmode.ModeEditable.ReadOnly())
}

func TestModeIsValid(t *testing.T) {
	assert.True(t, viewmode.ModeEditable.IsValid())
	assert.True(t, viewmode.ModeReadOnly.IsValid())
	assert.False(t, viewmode.Mode("draft").IsValid())
}

package domain_test

import (
	"strings"
	"testing"
	"time"

	"rakshak-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAppendRemark(t *testing.T) {
	at := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)

	t.Run("FirstRemark", func(t *testing.T) {
		got := domain.AppendRemark("", "roads cleared", at)
		assert.Equal(t, "2026-08-15 14:30: roads cleared", got)
	})

	t.Run("AppendsWithNewline", func(t *testing.T) {
		existing := "2026-08-14 09:00: supplies dropped"
		got := domain.AppendRemark(existing, "roads cleared", at)
		assert.Equal(t, "2026-08-14 09:00: supplies dropped\n2026-08-15 14:30: roads cleared", got)
	})

	t.Run("NeverTruncates", func(t *testing.T) {
		log := ""
		for i := 0; i < 5; i++ {
			log = domain.AppendRemark(log, "entry", at)
		}
		assert.Len(t, strings.Split(log, "\n"), 5)
	})
}

func TestUserIsVolunteer(t *testing.T) {
	cases := []struct {
		role domain.UserRole
		want bool
	}{
		{domain.UserRoleVolunteer, true},
		{"volunteer", true},
		{"VOLUNTEER", true},
		{"  Volunteer ", true},
		{domain.UserRoleUser, false},
		{domain.UserRoleAdmin, false},
		{"", false},
	}
	for _, c := range cases {
		u := domain.User{Role: c.role}
		assert.Equal(t, c.want, u.IsVolunteer(), "role %q", c.role)
	}
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationStates(t *testing.T) {
	t.Run("unregistered carries no citizen", func(t *testing.T) {
		r := Unregistered()
		assert.False(t, r.IsRegistered())
		assert.Nil(t, r.Citizen)
		assert.True(t, r.RegisteredAt.IsZero())
	})

	t.Run("registered carries a copy of the citizen", func(t *testing.T) {
		at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		c := Citizen{ID: "1101101101101", Name: "Tester"}

		r := Registered(c, at)
		c.Name = "changed"

		require.True(t, r.IsRegistered())
		assert.Equal(t, "Tester", r.Citizen.Name)
		assert.Equal(t, at, r.RegisteredAt)
	})
}

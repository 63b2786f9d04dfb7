package entity_test

import (
	"testing"
	"time"

	"github.com/bnema/dumbshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ShortID(t *testing.T) {
	s := &entity.Session{ID: entity.SessionID("6f1c2d9e-3b4a-4c5d-8e7f-0a1b2c3da7b3")}
	assert.Equal(t, "a7b3", s.ShortID())

	s2 := &entity.Session{ID: entity.SessionID("abc")}
	assert.Equal(t, "abc", s2.ShortID())
}

func TestSession_Validate(t *testing.T) {
	now := time.Now()

	valid := entity.NewSession("6f1c2d9e-3b4a-4c5d-8e7f-0a1b2c3da7b3", "https://www.google.com", now)
	require.NoError(t, valid.Validate())

	missingID := entity.NewSession("", "https://www.google.com", now)
	require.ErrorIs(t, missingID.Validate(), entity.ErrInvalidSession)

	missingStarted := &entity.Session{ID: "6f1c2d9e-3b4a-4c5d-8e7f-0a1b2c3da7b3"}
	require.ErrorIs(t, missingStarted.Validate(), entity.ErrInvalidSession)

	var nilSession *entity.Session
	require.ErrorIs(t, nilSession.Validate(), entity.ErrInvalidSession)
}

func TestSession_End(t *testing.T) {
	s := entity.NewSession("x", "about:blank", time.Now())
	assert.True(t, s.IsActive())

	endedAt := time.Date(2025, 12, 22, 0, 0, 0, 0, time.FixedZone("X", 3600))
	s.End(endedAt)
	assert.False(t, s.IsActive())
	if assert.NotNil(t, s.EndedAt) {
		assert.True(t, s.EndedAt.Equal(endedAt.UTC()))
	}
}

func TestSession_CurrentURLFollowsEngineOnly(t *testing.T) {
	s := entity.NewSession("x", "https://www.google.com", time.Now())
	assert.Empty(t, s.CurrentURL(), "nothing reported by the engine yet")

	s.SetCurrentURL("https://www.google.com/")
	assert.Equal(t, "https://www.google.com/", s.CurrentURL())
	assert.Equal(t, "https://www.google.com", s.StartURL)
}

func TestNewSessionID_IsUnique(t *testing.T) {
	a := entity.NewSessionID()
	b := entity.NewSessionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.Len(t, string(a), 36)
}

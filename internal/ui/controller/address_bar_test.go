package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/dumbshell/internal/application/port/mocks"
	"github.com/bnema/dumbshell/internal/application/usecase"
	"github.com/bnema/dumbshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressBar_NavigatesOnlyOnSubmit(t *testing.T) {
	engine := mocks.NewMockEngine(t)
	ab := NewAddressBar(context.Background(), engine, usecase.NewNavigateUseCase(nil), nil)

	// Typing alone must not reach the engine; the mock fails on any call.
	ab.SetText("e")
	ab.SetText("example")
	ab.SetText("example.com")
	assert.Equal(t, "example.com", ab.Text())

	engine.EXPECT().Navigate(mock.Anything, "example.com").Return(nil).Once()
	require.NoError(t, ab.Submit())
}

func TestAddressBar_PassesArbitraryInputThrough(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not a url at all",
		"javascript:alert(1)",
		"http://[::1",
		"\x00\xff",
		"https://例え.テスト/パス",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			engine := mocks.NewMockEngine(t)
			engine.EXPECT().Navigate(mock.Anything, input).Return(nil).Once()

			ab := NewAddressBar(context.Background(), engine, usecase.NewNavigateUseCase(nil), nil)
			ab.SetText(input)
			assert.NotPanics(t, func() {
				assert.NoError(t, ab.Submit())
			})
		})
	}
}

func TestAddressBar_ReturnsEngineError(t *testing.T) {
	engine := mocks.NewMockEngine(t)
	engine.EXPECT().Navigate(mock.Anything, "example.com").Return(errors.New("web view destroyed")).Once()

	ab := NewAddressBar(context.Background(), engine, usecase.NewNavigateUseCase(nil), nil)
	ab.SetText("example.com")

	err := ab.Submit()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "web view destroyed")
	assert.Equal(t, "example.com", ab.Text())
}

func TestAddressBar_SubmitDoesNotTouchSession(t *testing.T) {
	engine := mocks.NewMockEngine(t)
	engine.EXPECT().Navigate(mock.Anything, "example.com").Return(nil).Once()

	session := entity.NewSession("s1", "https://start.test", time.Now())
	ab := NewAddressBar(context.Background(), engine, usecase.NewNavigateUseCase(nil), session)

	ab.SetText("example.com")
	require.NoError(t, ab.Submit())
	assert.Empty(t, session.CurrentURL())

	ab.OnURIChanged("https://example.com/")
	assert.Equal(t, "https://example.com/", session.CurrentURL())
	assert.Equal(t, "example.com", ab.Text())
}

func TestAddressBar_SubmitTwiceNavigatesTwice(t *testing.T) {
	engine := mocks.NewMockEngine(t)
	engine.EXPECT().Navigate(mock.Anything, "example.com").Return(nil).Times(2)

	ab := NewAddressBar(context.Background(), engine, usecase.NewNavigateUseCase(nil), nil)
	ab.SetText("example.com")
	require.NoError(t, ab.Submit())
	require.NoError(t, ab.Submit())
}

func TestAddressBar_NilNavigateUseCaseStillNavigates(t *testing.T) {
	engine := mocks.NewMockEngine(t)
	ab := NewAddressBar(context.Background(), engine, nil, nil)
	ab.SetText("example.com")

	engine.EXPECT().Navigate(mock.Anything, "example.com").Return(nil).Once()
	assert.NotPanics(t, func() {
		require.NoError(t, ab.Submit())
	})
}

// Package controller provides controllers that bridge domain state and UI widgets.
package controller

import (
	"context"
	"sync"

	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/bnema/dumbshell/internal/application/usecase"
	"github.com/bnema/dumbshell/internal/domain/entity"
	"github.com/bnema/dumbshell/internal/logging"
	"github.com/rs/zerolog"
)

// AddressBar owns the text typed into the address entry. The text and the
// session's current URL are independent until the user submits.
type AddressBar struct {
	engine     port.Engine
	navigateUC *usecase.NavigateUseCase
	session    *entity.Session

	ctx    context.Context
	logger *zerolog.Logger

	mu   sync.RWMutex
	text string
}

// NewAddressBar creates the controller. session may be nil; a nil navigateUC
// gets a use case without metrics.
func NewAddressBar(
	ctx context.Context,
	engine port.Engine,
	navigateUC *usecase.NavigateUseCase,
	session *entity.Session,
) *AddressBar {
	if navigateUC == nil {
		navigateUC = usecase.NewNavigateUseCase(nil)
	}
	ctx = logging.WithComponent(ctx, "address-bar")
	return &AddressBar{
		engine:     engine,
		navigateUC: navigateUC,
		session:    session,
		ctx:        ctx,
		logger:     logging.FromContext(ctx),
	}
}

// SetText replaces the address text. It never talks to the engine.
func (ab *AddressBar) SetText(s string) {
	ab.mu.Lock()
	ab.text = s
	ab.mu.Unlock()
}

// Text returns the current address text.
func (ab *AddressBar) Text() string {
	ab.mu.RLock()
	defer ab.mu.RUnlock()
	return ab.text
}

// Submit asks the engine to load the address text exactly as typed.
// Load failures show up in the page; only a missing engine is an error here.
func (ab *AddressBar) Submit() error {
	text := ab.Text()

	if err := ab.navigateUC.Execute(ab.ctx, usecase.NavigateInput{
		URL:    text,
		Engine: ab.engine,
	}); err != nil {
		ab.logger.Warn().Err(err).Str("text", logging.TruncateURL(text, 60)).Msg("navigation request failed")
		return err
	}
	return nil
}

// OnURIChanged records the URI the engine committed. The address text is
// left alone so an edit in progress is not overwritten.
func (ab *AddressBar) OnURIChanged(uri string) {
	if ab.session != nil {
		ab.session.SetCurrentURL(uri)
	}
}

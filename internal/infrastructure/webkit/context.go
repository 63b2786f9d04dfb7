package webkit

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/bnema/dumbshell/internal/logging"
	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/rs/zerolog"
)

// cookieDBName is the cookie store inside the data directory.
const cookieDBName = "cookies.db"

// WebKitContext manages the shared WebContext and the shell's NetworkSession.
// It must be initialized before any WebView is created: the first
// NetworkSession becomes WebKit's default.
type WebKitContext struct {
	webContext     *webkit.WebContext
	networkSession *webkit.NetworkSession

	dataDir  string
	cacheDir string

	logger      zerolog.Logger
	mu          sync.RWMutex
	initialized bool
}

// NewWebKitContext creates the persistent network session and WebContext.
func NewWebKitContext(ctx context.Context, opts port.WebKitContextOptions) (*WebKitContext, error) {
	log := logging.FromContext(ctx).With().Str("component", "webkit-context").Logger()

	if opts.Ephemeral() {
		return nil, fmt.Errorf("data and cache directories are required")
	}

	wkCtx := &WebKitContext{
		dataDir:  opts.DataDir,
		cacheDir: opts.CacheDir,
		logger:   log,
	}

	if err := wkCtx.initNetworkSession(opts); err != nil {
		return nil, fmt.Errorf("failed to init network session: %w", err)
	}

	wkCtx.webContext = webkit.WebContextGetDefault()
	if wkCtx.webContext == nil {
		return nil, fmt.Errorf("failed to get WebContext")
	}
	wkCtx.webContext.SetCacheModel(webkit.CacheModelWebBrowserValue)

	wkCtx.initialized = true
	log.Info().
		Str("data_dir", opts.DataDir).
		Str("cache_dir", opts.CacheDir).
		Msg("webkit context initialized")

	return wkCtx, nil
}

func (c *WebKitContext) initNetworkSession(opts port.WebKitContextOptions) error {
	session := webkit.NewNetworkSession(&c.dataDir, &c.cacheDir)
	if session == nil {
		return fmt.Errorf("failed to create network session")
	}
	if session.IsEphemeral() {
		return fmt.Errorf("network session is ephemeral despite providing data directories")
	}

	cookieManager := session.GetCookieManager()
	if cookieManager == nil {
		return fmt.Errorf("failed to get cookie manager")
	}

	cookiePath := filepath.Join(c.dataDir, cookieDBName)
	cookieManager.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqliteValue)

	cookiePolicy, label := mapCookiePolicy(opts.CookiePolicy)
	cookieManager.SetAcceptPolicy(cookiePolicy)

	// Emit load-failed-with-tls-errors instead of silently ignoring.
	session.SetTlsErrorsPolicy(webkit.TlsErrorsPolicyFailValue)

	c.networkSession = session
	c.logger.Info().
		Str("cookie_path", cookiePath).
		Str("cookie_policy", label).
		Msg("network session initialized")

	return nil
}

func mapCookiePolicy(policy port.WebKitCookiePolicy) (webkit.CookieAcceptPolicy, string) {
	switch policy {
	case port.WebKitCookiePolicyAlways:
		return webkit.CookiePolicyAcceptAlwaysValue, string(port.WebKitCookiePolicyAlways)
	case port.WebKitCookiePolicyNever:
		return webkit.CookiePolicyAcceptNeverValue, string(port.WebKitCookiePolicyNever)
	default:
		return webkit.CookiePolicyAcceptNoThirdPartyValue, string(port.WebKitCookiePolicyNoThirdParty)
	}
}

// Context returns the shared WebContext.
func (c *WebKitContext) Context() *webkit.WebContext {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.webContext
}

// NetworkSession returns the shell's NetworkSession.
func (c *WebKitContext) NetworkSession() *webkit.NetworkSession {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkSession
}

// DataDir returns the data directory path.
func (c *WebKitContext) DataDir() string {
	return c.dataDir
}

// CacheDir returns the cache directory path.
func (c *WebKitContext) CacheDir() string {
	return c.cacheDir
}

// IsInitialized returns true if the context has been successfully initialized.
func (c *WebKitContext) IsInitialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// Close marks the context unusable. WebKit releases its processes itself.
func (c *WebKitContext) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.initialized = false
	c.logger.Debug().Msg("webkit context closed")
	return nil
}

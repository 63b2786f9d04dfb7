package port

// WebKitCookiePolicy controls cookie acceptance for the shell's network session.
type WebKitCookiePolicy string

const (
	WebKitCookiePolicyAlways       WebKitCookiePolicy = "always"
	WebKitCookiePolicyNoThirdParty WebKitCookiePolicy = "no_third_party"
	WebKitCookiePolicyNever        WebKitCookiePolicy = "never"
)

// WebKitContextOptions configures WebKitContext creation.
type WebKitContextOptions struct {
	// DataDir holds persistent engine data (cookies, local storage).
	DataDir string

	// CacheDir holds the engine's disk cache.
	CacheDir string

	// CookiePolicy defaults to no_third_party when empty.
	CookiePolicy WebKitCookiePolicy
}

// Ephemeral reports whether the options request a session without on-disk state.
func (o WebKitContextOptions) Ephemeral() bool {
	return o.DataDir == "" || o.CacheDir == ""
}

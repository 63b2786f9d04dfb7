package port

// MetricsRecorder receives counters for the dialog bridge and navigation.
// Implementations must be safe for concurrent use.
type MetricsRecorder interface {
	InteractionReceived(kind string)
	InteractionResolved(kind, resolution string)
	InteractionSuperseded(kind string)
	NavigationRequested(outcome string)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) InteractionReceived(string)         {}
func (NopMetrics) InteractionResolved(string, string) {}
func (NopMetrics) InteractionSuperseded(string)       {}
func (NopMetrics) NavigationRequested(string)         {}

package screens

// Alert is one notification raised by a screen.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Events is what a screen asked its collaborators to do.
type Events struct {
	Navigate Route   `json:"navigate,omitempty"`
	Alerts   []Alert `json:"alerts,omitempty"`
}

// Recorder is a Navigator and Notifier that keeps what it was told, for
// callers that relay screen side effects elsewhere (an HTTP response, a
// terminal). The last navigation wins.
type Recorder struct {
	events Events
}

func (r *Recorder) Replace(route Route) { r.events.Navigate = route }

func (r *Recorder) Alert(title, message string) {
	r.events.Alerts = append(r.events.Alerts, Alert{Title: title, Message: message})
}

// Drain returns the recorded events and starts over.
func (r *Recorder) Drain() Events {
	ev := r.events
	r.events = Events{}
	return ev
}

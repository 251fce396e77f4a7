package editor

// Typesetter re-runs math typesetting over a rendered region after it changed.
type Typesetter interface {
	Retypeset(scope string)
}

// NopTypesetter ignores retypeset requests.
type NopTypesetter struct{}

// Retypeset does nothing.
func (NopTypesetter) Retypeset(string) {}

// Retypeset asks subscribed browsers to typeset math inside scope.
func (h *Hub) Retypeset(scope string) {
	h.Publish(Update{Event: EventRetypeset, Scope: scope})
}

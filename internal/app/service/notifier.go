package service

// Notifier is the outbound channel for transient presentation events.
// Implemented by the events hub; tests use a recording stub.
type Notifier interface {
	Toast(message string)
	CartChanged(lineCount int)
	CatalogChanged()
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) Toast(string)    {}
func (NopNotifier) CartChanged(int) {}
func (NopNotifier) CatalogChanged() {}

package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested EventType = "SearchRequested"
	EventSearchSucceeded EventType = "SearchSucceeded"
	EventSearchFailed    EventType = "SearchFailed"
	EventQueryChanged    EventType = "QueryChanged"
	EventDetailOpened    EventType = "DetailOpened"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted when a new search invocation starts
type SearchRequestedEvent struct {
	Query   string
	Page    int
	PerPage int
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchSucceededEvent is emitted when the latest search returns results
type SearchSucceededEvent struct {
	Query string
	Count int
}

func (e SearchSucceededEvent) Type() EventType { return EventSearchSucceeded }

// SearchFailedEvent is emitted when the latest search fails
type SearchFailedEvent struct {
	Query string
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// QueryChangedEvent is emitted whenever the search text changes
type QueryChangedEvent struct {
	Text string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// DetailOpenedEvent is emitted when a repository detail is opened
type DetailOpenedEvent struct {
	URL string
}

func (e DetailOpenedEvent) Type() EventType { return EventDetailOpened }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

package models

// Event types published to the event stream.
const (
	EventCurrencyUpdated = "currency.updated"
	EventStablecoinSwap  = "swap.stablecoin"
	EventDefiSwap        = "swap.defi"
	EventSwap            = "swap.combined"
	EventPaused          = "paused"
	EventUnpaused        = "unpaused"
	EventRescue          = "rescue"
)

// Event is an audit record for off-chain observers.
type Event struct {
	EventID    string            `json:"event_id"`   // EventID is a unique identifier of the event.
	Timestamp  int64             `json:"timestamp"`  // Timestamp is the Unix time in seconds.
	Type       string            `json:"type"`       // Type is one of the Event* constants.
	Actor      string            `json:"actor"`      // Actor is the address that triggered the event.
	Attributes map[string]string `json:"attributes"` // Attributes carry the addresses and amounts involved.
}

package courier

// Status is the presence state of a courier as shown to shops.
//
// Offline and Available derive directly from the active flag. Busy is a
// read-side refinement: an active courier currently holding an order in
// flight. The aggregate itself only knows Offline and Available; the query
// layer upgrades Available to Busy when a live order references the courier.
type Status string

const (
	// StatusOffline means the courier is not accepting orders.
	StatusOffline Status = "offline"

	// StatusAvailable means the courier is active with no order in flight.
	StatusAvailable Status = "available"

	// StatusBusy means the courier is active and carrying an order.
	StatusBusy Status = "busy"
)

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

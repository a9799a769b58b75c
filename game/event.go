package game

type EventType int8

const (
	// EventRelayer asks the presentation to move a card to Layer.
	EventRelayer EventType = iota
	// EventPickUp fires once per drag start, for the primary card.
	EventPickUp
	// EventLanded fires when a card finishes moving into a cell and wants its drop sound.
	EventLanded
	// EventMoved fires once per successful drop.
	EventMoved
	EventWon
	// EventDealt fires once when a fresh deal starts, before any card moves.
	EventDealt
)

func (t EventType) String() string {
	switch t {
	case EventRelayer:
		return "relayer"
	case EventPickUp:
		return "pickup"
	case EventLanded:
		return "landed"
	case EventMoved:
		return "moved"
	case EventWon:
		return "won"
	case EventDealt:
		return "dealt"
	default:
		return "?"
	}
}

type Event struct {
	Type  EventType
	Card  *Card
	Cell  Cell
	Layer int
}

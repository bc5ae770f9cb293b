package game

// Action is the closed set of messages entities exchange
type Action int

const (
	ActionAddLife Action = iota
	ActionRemoveLife
	ActionAddScore
	ActionImmortalityOn
	ActionImmortalityOff
	ActionShieldOn
	ActionShieldOff
	ActionIncreaseLaserLevel

	// Pointer input delivered as messages
	ActionPointerDown
	ActionPointerUp
	ActionPointerMove

	// ActionGameOver is emitted once when the session ends
	ActionGameOver
	actionCount
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionAddLife:
		return "ADD_LIFE"
	case ActionRemoveLife:
		return "REMOVE_LIFE"
	case ActionAddScore:
		return "ADD_SCORE"
	case ActionImmortalityOn:
		return "IMMORTALITY_ON"
	case ActionImmortalityOff:
		return "IMMORTALITY_OFF"
	case ActionShieldOn:
		return "SHIELD_ON"
	case ActionShieldOff:
		return "SHIELD_OFF"
	case ActionIncreaseLaserLevel:
		return "INCREASE_LASER_LEVEL"
	case ActionPointerDown:
		return "POINTER_DOWN"
	case ActionPointerUp:
		return "POINTER_UP"
	case ActionPointerMove:
		return "POINTER_MOVE"
	case ActionGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Message is a broadcast payload. Amount is used by ADD_SCORE and GAME_OVER,
// X and Y by pointer messages.
type Message struct {
	Action Action
	Amount int
	X, Y   float64
}

// Handler receives messages for one action
type Handler func(msg Message)

// Subscription identifies a registered handler
type Subscription struct {
	action Action
	entry  *subscriber
}

type subscriber struct {
	handler Handler
	removed bool
}

// Bus delivers messages synchronously in subscription order
type Bus struct {
	handlers [actionCount][]*subscriber
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers handler for action
func (b *Bus) Subscribe(action Action, handler Handler) Subscription {
	if action < 0 || action >= actionCount {
		return Subscription{}
	}
	entry := &subscriber{handler: handler}
	b.handlers[action] = append(b.handlers[action], entry)
	return Subscription{action: action, entry: entry}
}

// SubscribeAll registers one handler for several actions
func (b *Bus) SubscribeAll(handler Handler, actions ...Action) []Subscription {
	subs := make([]Subscription, 0, len(actions))
	for _, action := range actions {
		subs = append(subs, b.Subscribe(action, handler))
	}
	return subs
}

// Unsubscribe removes a handler, it takes effect for dispatches already in flight
func (b *Bus) Unsubscribe(sub Subscription) {
	if sub.entry == nil || sub.entry.removed {
		return
	}
	sub.entry.removed = true
	list := b.handlers[sub.action]
	for i, entry := range list {
		if entry == sub.entry {
			b.handlers[sub.action] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Broadcast delivers msg to every current subscriber before returning
func (b *Bus) Broadcast(msg Message) {
	if msg.Action < 0 || msg.Action >= actionCount {
		return
	}
	list := b.handlers[msg.Action]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*subscriber, len(list))
	copy(snapshot, list)
	for _, entry := range snapshot {
		if entry.removed {
			continue
		}
		entry.handler(msg)
	}
}

// Send broadcasts a message carrying only an action
func (b *Bus) Send(action Action) {
	b.Broadcast(Message{Action: action})
}

// HandlerCount returns the number of handlers for action
func (b *Bus) HandlerCount(action Action) int {
	if action < 0 || action >= actionCount {
		return 0
	}
	return len(b.handlers[action])
}

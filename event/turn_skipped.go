package event

var TurnSkipped = &turnSkippedEmitter{}

type TurnSkippedPayload struct {
	PlayerName string
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

type turnSkippedEmitter struct {
	listeners []TurnSkippedListener
}

func (e *turnSkippedEmitter) AddListener(listener TurnSkippedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnSkippedEmitter) Emit(payload TurnSkippedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnSkipped(payload)
	}
}

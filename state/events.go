package state

import "github.com/tailored-agentic-units/statechain/observability"

const (
	EventStateCreate  observability.EventType = "state.create"
	EventStateSucceed observability.EventType = "state.succeed"
	EventStateFail    observability.EventType = "state.fail"
	EventStateFinish  observability.EventType = "state.finish"
)

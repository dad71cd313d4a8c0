package pipeline

import "github.com/tailored-agentic-units/statechain/observability"

const (
	EventPipelineStart    observability.EventType = "pipeline.start"
	EventPipelineComplete observability.EventType = "pipeline.complete"
	EventStepStart        observability.EventType = "step.start"
	EventStepComplete     observability.EventType = "step.complete"
	EventStepSkip         observability.EventType = "step.skip"
)

package attributes

// Langfuse trace-level attributes.
const (
	// TraceName sets the display name of the trace.
	TraceName = "langfuse.trace.name"

	// TraceUserID identifies the end user a trace belongs to.
	TraceUserID = "user.id"

	// TraceSessionID groups traces into a user session.
	TraceSessionID = "session.id"

	// TraceTags carries the ordered tag list of the trace.
	TraceTags = "langfuse.trace.tags"

	// TracePublic marks a trace as publicly shareable.
	TracePublic = "langfuse.trace.public"

	// TraceMetadata is the prefix for trace metadata entries; individual
	// keys are appended as "langfuse.trace.metadata.<key>".
	TraceMetadata = "langfuse.trace.metadata"

	// TraceInput and TraceOutput carry the trace-level payloads.
	TraceInput  = "langfuse.trace.input"
	TraceOutput = "langfuse.trace.output"
)

// Langfuse observation-level attributes.
const (
	// ObservationType distinguishes generations, spans and events.
	ObservationType = "langfuse.observation.type"

	// ObservationModel names the generative model used.
	ObservationModel = "langfuse.observation.model.name"

	// ObservationModelParameters carries model parameters as JSON.
	ObservationModelParameters = "langfuse.observation.model.parameters"

	// ObservationMetadata is the metadata prefix for observations.
	ObservationMetadata = "langfuse.observation.metadata"

	ObservationInput  = "langfuse.observation.input"
	ObservationOutput = "langfuse.observation.output"

	// ObservationCompletionStartTime marks when the first completion
	// token was produced.
	ObservationCompletionStartTime = "langfuse.observation.completion_start_time"

	ObservationUsageInput  = "langfuse.observation.usage.input"
	ObservationUsageOutput = "langfuse.observation.usage.output"
	ObservationUsageTotal  = "langfuse.observation.usage.total"
)

// OpenTelemetry GenAI semantic convention attributes.
// See https://opentelemetry.io/docs/specs/semconv/gen-ai/
const (
	GenAISystem = "gen_ai.system"

	GenAIRequestModel            = "gen_ai.request.model"
	GenAIRequestTemperature      = "gen_ai.request.temperature"
	GenAIRequestMaxTokens        = "gen_ai.request.max_tokens"
	GenAIRequestTopP             = "gen_ai.request.top_p"
	GenAIRequestTopK             = "gen_ai.request.top_k"
	GenAIRequestStopSequences    = "gen_ai.request.stop_sequences"
	GenAIRequestFrequencyPenalty = "gen_ai.request.frequency_penalty"
	GenAIRequestPresencePenalty  = "gen_ai.request.presence_penalty"

	GenAIResponseID            = "gen_ai.response.id"
	GenAIResponseModel         = "gen_ai.response.model"
	GenAIResponseFinishReasons = "gen_ai.response.finish_reasons"

	GenAIUsagePromptTokens     = "gen_ai.usage.prompt_tokens"
	GenAIUsageCompletionTokens = "gen_ai.usage.completion_tokens"
	GenAIUsageTotalTokens      = "gen_ai.usage.total_tokens"
)

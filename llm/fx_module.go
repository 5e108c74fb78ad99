package llm

import "go.uber.org/fx"

// FXModule wires the LLM client into Fx.
//
// Dependencies required by this module:
// - An llm.Config instance must be available in the dependency injection container
var FXModule = fx.Module("llm",
	fx.Provide(
		NewClient,
	),
)

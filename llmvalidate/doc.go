// Package llmvalidate repairs structured model output before the rest of
// the system trusts it.
//
// Model responses are treated as partially trustworthy rather than
// atomically valid: fields that fail validation are dropped, clamped, or
// defaulted individually, and the caller always receives a schema-complete,
// range-safe structure. No validator in this package returns an error.
//
// Three use cases are covered:
//
//   - ValidateHealthLogParse: mood enum defaulting, sleep and confidence
//     clamps, gibberish-filtered notes.
//   - ValidateNutritionCalculation: identity reconciliation against the
//     household's user and partner, guaranteeing exactly one entry per
//     known person by synthesizing zero-valued entries when the model
//     omits someone.
//   - ValidateMoodAnnotations: batch extraction with per-item skipping.
package llmvalidate

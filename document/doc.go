// Package document defines the embeddable domain record variants and their
// canonical text formatting.
//
// Each variant (HealthLog, Recipe, PantryItem, Goal) implements the Document
// interface, which couples identity (type, source id, household, owner) with
// deterministic rendering. Rendering determinism matters: the embedding
// pipeline derives vector point identities from chunk positions, so the same
// record state must always produce the same texts.
package document

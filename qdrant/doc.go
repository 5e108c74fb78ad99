// Package qdrant implements the vectorindex.Service interface on top of the
// Qdrant vector database.
//
// The package provides a managed client with automatic health checks, batched
// point upserts, filter-based deletion, and similarity search. It integrates
// with the fx dependency injection framework and maps the application-level
// vectorindex types onto Qdrant's gRPC client.
//
// # Core Features
//
//   - Managed Qdrant client lifecycle with Fx integration
//   - Config struct supporting environment loading and builder-style overrides
//   - Automatic health check on client initialization
//   - Collection initialization with dimensionality verification
//   - Batched upserts with configurable batch size and Wait=true semantics
//   - Filter-based deletion used for full point replacement per document
//   - Similarity search constrained by exact-match payload filters
//
// # Basic Usage
//
//	import (
//	    "github.com/hearthware/wellness-core/logger"
//	    "github.com/hearthware/wellness-core/qdrant"
//	    "github.com/hearthware/wellness-core/vectorindex"
//	)
//
//	log, _ := logger.NewLoggerClient(logger.NewConfig())
//	client, err := qdrant.NewQdrantClient(qdrant.DefaultConfig(), log)
//	if err != nil {
//	    panic(err)
//	}
//
//	var index vectorindex.Service = client
//	if err := index.InitializeCollection(ctx, "wellness_documents", 1536); err != nil {
//	    panic(err)
//	}
//
// # Fx Usage
//
//	app := fx.New(
//	    fx.Provide(qdrant.NewConfig),
//	    logger.FXModule,
//	    qdrant.FXModule,
//	)
//
// All write operations use Wait=true so that a completed upsert or delete is
// immediately visible to subsequent searches.
package qdrant

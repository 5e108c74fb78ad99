package qdrant

import (
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"
)

func validateSearchInput(collection string, vector []float32, topK int) error {
	if collection == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if len(vector) == 0 {
		return fmt.Errorf("search vector cannot be empty")
	}
	if topK <= 0 {
		return fmt.Errorf("topK must be positive, got %d", topK)
	}
	return nil
}

// extractVectorDetails pulls vector size and distance metric out of the
// collection info, handling both the single-vector and named-vector layouts.
func extractVectorDetails(info *qdrant.CollectionInfo) (uint64, string) {
	if info == nil || info.Config == nil || info.Config.Params == nil {
		return 0, ""
	}

	vc := info.Config.Params.VectorsConfig
	if vc == nil {
		return 0, ""
	}

	switch cfg := vc.Config.(type) {
	case *qdrant.VectorsConfig_Params:
		return cfg.Params.Size, cfg.Params.Distance.String()
	case *qdrant.VectorsConfig_ParamsMap:
		for _, params := range cfg.ParamsMap.Map {
			return params.Size, params.Distance.String()
		}
	}
	return 0, ""
}

func derefUint64(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

package loaders

import (
	"context"
	"fmt"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/repositories"
)

// Loaders contains the dataloaders for the application
type Loaders struct {
	AilmentLoader *dataloader.Loader[string, *entities.Ailment]
}

// NewLoaders creates a new instance of Loaders. The ailment batch function
// coalesces any number of keyed reads into a single store scan, since the
// keyed document store offers no batch-get primitive.
func NewLoaders(ailmentRepo repositories.AilmentRepository) *Loaders {
	return &Loaders{
		AilmentLoader: dataloader.NewBatchedLoader(func(ctx context.Context, keys []string) []*dataloader.Result[*entities.Ailment] {
			results := make([]*dataloader.Result[*entities.Ailment], len(keys))
			ailments, err := ailmentRepo.Scan(ctx)

			ailmentMap := make(map[string]*entities.Ailment)
			if err == nil {
				for i := range ailments {
					ailmentMap[ailments[i].ID] = &ailments[i]
				}
			}

			for i, key := range keys {
				if err != nil {
					results[i] = &dataloader.Result[*entities.Ailment]{Error: err}
				} else if a, ok := ailmentMap[key]; ok {
					results[i] = &dataloader.Result[*entities.Ailment]{Data: a}
				} else {
					results[i] = &dataloader.Result[*entities.Ailment]{Error: fmt.Errorf("ailment %s not found", key)}
				}
			}
			return results
		}),
	}
}

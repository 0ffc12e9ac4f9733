package inventory

import (
	"context"

	"inventory-api-server/internal/api/common/query"
	"inventory-api-server/internal/api/common/resource"
)

// InventoryRepository lists the compute inventory of one workspace. The
// fetches are read-only against the workspace; records come back already
// normalized.
type InventoryRepository interface {
	ListClusters(ctx context.Context) ([]resource.ComputeRecord, error)
	ListWarehouses(ctx context.Context) ([]resource.ComputeRecord, error)
}

// RepositoryFactory builds a repository from per-request credentials.
// Credentials arrive with each viewer request, so the upstream client
// cannot be wired at boot the way a database connection would be.
type RepositoryFactory interface {
	Repository(host, token string) (InventoryRepository, error)
}

type InventoryService interface {
	// Aggregate returns (nil, nil) when the workspace holds no compute
	// resources at all; callers render that as a single message.
	Aggregate(ctx context.Context, q query.Query) (*AggregateResult, error)
}

type Summary struct {
	TotalClusters    int                    `json:"total_clusters"`
	TotalWarehouses  int                    `json:"total_warehouses"`
	ClusterStates    resource.StateTally    `json:"cluster_states"`
	WarehouseStates  resource.StateTally    `json:"warehouse_states"`
	AutoStopBreaches []resource.BreachEntry `json:"auto_stop_breaches,omitempty"`
}

type AggregateResult struct {
	Clusters      []resource.ComputeRecord `json:"clusters"`
	SQLWarehouses []resource.ComputeRecord `json:"sql_warehouses"`
	Summary       Summary                  `json:"summary"`
}

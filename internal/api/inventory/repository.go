package inventory

import (
	"context"

	"github.com/databricks/databricks-sdk-go"
	"github.com/databricks/databricks-sdk-go/service/compute"
	"github.com/databricks/databricks-sdk-go/service/sql"

	"inventory-api-server/internal/api/common/resource"
)

type workspaceRepository struct {
	client *databricks.WorkspaceClient
}

var _ InventoryRepository = (*workspaceRepository)(nil)

func NewWorkspaceRepository(client *databricks.WorkspaceClient) InventoryRepository {
	return &workspaceRepository{
		client: client,
	}
}

func (r *workspaceRepository) ListClusters(ctx context.Context) ([]resource.ComputeRecord, error) {
	details, err := r.client.Clusters.ListAll(ctx, compute.ListClustersRequest{})
	if err != nil {
		return nil, err
	}

	records := make([]resource.ComputeRecord, len(details))
	for i, cluster := range details {
		records[i] = clusterRecord(cluster)
	}
	return records, nil
}

func (r *workspaceRepository) ListWarehouses(ctx context.Context) ([]resource.ComputeRecord, error) {
	endpoints, err := r.client.Warehouses.ListAll(ctx, sql.ListWarehousesRequest{})
	if err != nil {
		return nil, err
	}

	records := make([]resource.ComputeRecord, len(endpoints))
	for i, warehouse := range endpoints {
		records[i] = warehouseRecord(warehouse)
	}
	return records, nil
}

func clusterRecord(cluster compute.ClusterDetails) resource.ComputeRecord {
	return resource.NewClusterRecord(
		cluster.ClusterName,
		cluster.ClusterId,
		string(cluster.State),
		cluster.SparkVersion,
	)
}

func warehouseRecord(warehouse sql.EndpointInfo) resource.ComputeRecord {
	// The API encodes "auto-stop disabled" as 0; neither an unset nor a
	// disabled interval takes part in breach checks.
	var autoStop *int
	if warehouse.AutoStopMins > 0 {
		minutes := warehouse.AutoStopMins
		autoStop = &minutes
	}

	return resource.NewWarehouseRecord(
		warehouse.Name,
		warehouse.Id,
		string(warehouse.State),
		warehouse.ClusterSize,
		string(warehouse.WarehouseType),
		autoStop,
	)
}

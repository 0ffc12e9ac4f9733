package inventory

import (
	"testing"

	"github.com/databricks/databricks-sdk-go/service/compute"
	"github.com/databricks/databricks-sdk-go/service/sql"
	"github.com/stretchr/testify/require"

	"inventory-api-server/internal/api/common/resource"
)

func TestClusterRecord(t *testing.T) {
	t.Run("maps SDK fields", func(t *testing.T) {
		record := clusterRecord(compute.ClusterDetails{
			ClusterName:  "etl-nightly",
			ClusterId:    "0123-456789-abc",
			State:        compute.StateRunning,
			SparkVersion: "13.3.x-scala2.12",
		})

		require.Equal(t, resource.KindCluster, record.Kind)
		require.Equal(t, "etl-nightly", record.Name)
		require.Equal(t, "0123-456789-abc", record.ID)
		require.Equal(t, "RUNNING", record.State)
		require.Equal(t, "13.3.x-scala2.12", record.SparkVersion)
	})

	t.Run("zero-value details normalize to defaults", func(t *testing.T) {
		record := clusterRecord(compute.ClusterDetails{})

		require.Equal(t, resource.NotAvailable, record.Name)
		require.Equal(t, resource.NotAvailable, record.ID)
		require.Equal(t, resource.UnknownState, record.State)
	})
}

func TestWarehouseRecord(t *testing.T) {
	t.Run("maps SDK fields", func(t *testing.T) {
		record := warehouseRecord(sql.EndpointInfo{
			Name:          "bi-main",
			Id:            "abc123",
			State:         sql.StateRunning,
			ClusterSize:   "Medium",
			WarehouseType: sql.EndpointInfoWarehouseTypePro,
			AutoStopMins:  30,
		})

		require.Equal(t, resource.KindWarehouse, record.Kind)
		require.Equal(t, "bi-main", record.Name)
		require.Equal(t, "RUNNING", record.State)
		require.Equal(t, "Medium", record.ClusterSize)
		require.Equal(t, "PRO", record.WarehouseType)
		require.NotNil(t, record.AutoStopMinutes)
		require.Equal(t, 30, *record.AutoStopMinutes)
	})

	t.Run("zero auto-stop means no interval", func(t *testing.T) {
		record := warehouseRecord(sql.EndpointInfo{Name: "w"})

		require.Nil(t, record.AutoStopMinutes)
		require.Equal(t, resource.NotAvailable, record.AutoStopDisplay())
	})
}

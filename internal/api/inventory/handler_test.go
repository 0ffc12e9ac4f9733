package inventory_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	commonerrors "inventory-api-server/internal/api/common/errors"
	"inventory-api-server/internal/api/common/query"
	"inventory-api-server/internal/api/common/resource"
	"inventory-api-server/internal/api/inventory"
	"inventory-api-server/internal/config"
)

type stubService struct {
	result *inventory.AggregateResult
	err    error
}

func (s *stubService) Aggregate(ctx context.Context, q query.Query) (*inventory.AggregateResult, error) {
	return s.result, s.err
}

func newApp(service inventory.InventoryService) *fiber.App {
	app := fiber.New()
	inventory.InventoryRouter(app.Group("/api/v1/"), service, config.Workspace{}, zap.NewNop())
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

func TestGetInventory(t *testing.T) {
	t.Run("missing credentials renders a 400 error object", func(t *testing.T) {
		app := newApp(&stubService{err: commonerrors.MissingCredentialsErr("token")})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/inventory", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		require.Equal(t, "missing workspace credentials: token is required", body["error"])
	})

	t.Run("upstream failure renders a 502 error object verbatim", func(t *testing.T) {
		cause := commonerrors.UpstreamErr("connect", errUnauthorized{})
		app := newApp(&stubService{err: cause})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/inventory?host=h&token=t", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		require.Equal(t, "401 Unauthorized", body["error"])
	})

	t.Run("empty workspace renders a single message", func(t *testing.T) {
		app := newApp(&stubService{})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/inventory?host=h&token=t", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		require.Equal(t, "No compute resources found", body["message"])
		require.NotContains(t, body, "clusters")
	})

	t.Run("aggregate result is rendered as-is", func(t *testing.T) {
		result := &inventory.AggregateResult{
			Clusters: []resource.ComputeRecord{
				resource.NewClusterRecord("c1", "id-1", "RUNNING", "13.3.x"),
			},
			SQLWarehouses: []resource.ComputeRecord{},
			Summary: inventory.Summary{
				TotalClusters:   1,
				ClusterStates:   resource.StateTally{"RUNNING": 1},
				WarehouseStates: resource.StateTally{},
			},
		}
		app := newApp(&stubService{result: result})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/inventory?host=h&token=t", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		require.Contains(t, body, "clusters")
		require.Contains(t, body, "sql_warehouses")
		summary, ok := body["summary"].(map[string]interface{})
		require.True(t, ok)
		require.EqualValues(t, 1, summary["total_clusters"])
	})

	t.Run("bad threshold is a 400", func(t *testing.T) {
		app := newApp(&stubService{})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/inventory?host=h&token=t&threshold=soon", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		require.Contains(t, body["error"], "threshold")
	})
}

func TestGetReport(t *testing.T) {
	t.Run("tables render for a populated result", func(t *testing.T) {
		result := &inventory.AggregateResult{
			Clusters: []resource.ComputeRecord{
				resource.NewClusterRecord("c1", "id-1", "RUNNING", "13.3.x"),
			},
			Summary: inventory.Summary{
				TotalClusters:   1,
				ClusterStates:   resource.StateTally{"RUNNING": 1},
				WarehouseStates: resource.StateTally{},
			},
		}
		app := newApp(&stubService{result: result})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/inventory/report?host=h&token=t", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		text := string(raw)
		require.Contains(t, text, "Clusters")
		require.Contains(t, text, "RUNNING")
		require.Contains(t, text, "TOTAL")
		// breach table only renders when a threshold was requested
		require.NotContains(t, text, "Breaches")
	})

	t.Run("breach table renders when a threshold is requested", func(t *testing.T) {
		result := &inventory.AggregateResult{
			Summary: inventory.Summary{
				ClusterStates:   resource.StateTally{},
				WarehouseStates: resource.StateTally{"RUNNING": 1},
				AutoStopBreaches: []resource.BreachEntry{
					{Name: "w1", Kind: resource.KindWarehouse, AutoStopMinutes: 30, ThresholdMinutes: 5, ExcessMinutes: 25},
				},
			},
		}
		app := newApp(&stubService{result: result})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/inventory/report?host=h&token=t&threshold=5", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Contains(t, string(raw), "Auto-Stop Threshold Breaches")
		require.Contains(t, string(raw), "w1")
	})

	t.Run("empty workspace renders the message as plain text", func(t *testing.T) {
		app := newApp(&stubService{})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/inventory/report?host=h&token=t", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "No compute resources found", string(raw))
	})
}

type errUnauthorized struct{}

func (errUnauthorized) Error() string { return "401 Unauthorized" }

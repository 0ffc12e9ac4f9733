package inventory

import (
	"context"

	"go.uber.org/zap"

	commonerrors "inventory-api-server/internal/api/common/errors"
	"inventory-api-server/internal/api/common/query"
	"inventory-api-server/internal/api/common/resource"
)

type inventoryService struct {
	factory RepositoryFactory
	logger  *zap.Logger
}

var _ InventoryService = (*inventoryService)(nil)

func NewInventoryService(factory RepositoryFactory, logger *zap.Logger) InventoryService {
	return &inventoryService{
		factory: factory,
		logger:  logger,
	}
}

func (s *inventoryService) Aggregate(ctx context.Context, q query.Query) (*AggregateResult, error) {
	// Credentials are checked before the factory is touched; an empty
	// field must never cause an upstream call.
	if q.Host == "" {
		return nil, commonerrors.MissingCredentialsErr("host")
	}
	if q.Token == "" {
		return nil, commonerrors.MissingCredentialsErr("token")
	}

	// Never log the token itself.
	s.logger.Debug("aggregating workspace inventory",
		zap.String("id", q.ID),
		zap.String("host", q.Host),
		zap.Int("token_length", len(q.Token)),
		zap.Intp("threshold_minutes", q.ThresholdMinutes))

	repository, err := s.factory.Repository(q.Host, q.Token)
	if err != nil {
		s.logger.Error("failed to construct workspace client", zap.String("id", q.ID), zap.Error(err))
		return nil, commonerrors.UpstreamErr("connect", err)
	}

	clusters, err := repository.ListClusters(ctx)
	if err != nil {
		s.logger.Error("failed to list clusters", zap.String("id", q.ID), zap.Error(err))
		return nil, commonerrors.UpstreamErr("list clusters", err)
	}

	warehouses, err := repository.ListWarehouses(ctx)
	if err != nil {
		s.logger.Error("failed to list warehouses", zap.String("id", q.ID), zap.Error(err))
		return nil, commonerrors.UpstreamErr("list warehouses", err)
	}

	if len(clusters) == 0 && len(warehouses) == 0 {
		return nil, nil
	}

	result := &AggregateResult{
		Clusters:      clusters,
		SQLWarehouses: warehouses,
		Summary: Summary{
			TotalClusters:   len(clusters),
			TotalWarehouses: len(warehouses),
			ClusterStates:   resource.TallyStates(clusters),
			WarehouseStates: resource.TallyStates(warehouses),
		},
	}
	if q.ThresholdMinutes != nil {
		result.Summary.AutoStopBreaches = resource.FindBreaches(warehouses, *q.ThresholdMinutes)
	}
	return result, nil
}

// Package workspace builds managed workspace API clients from per-request
// credentials and hands them to the inventory layer as repositories.
package workspace

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/databricks/databricks-sdk-go"
	"go.uber.org/zap"

	"inventory-api-server/internal/api/inventory"
	"inventory-api-server/internal/cache"
)

// Factory memoizes constructed workspace clients by a credential digest so
// that a page refresh does not pay client setup again. Only the client
// capability is cached; inventory data is fetched fresh on every call.
type Factory struct {
	cache  *cache.Cache
	logger *zap.Logger
}

var _ inventory.RepositoryFactory = (*Factory)(nil)

func NewFactory(cache *cache.Cache, logger *zap.Logger) *Factory {
	return &Factory{
		cache:  cache,
		logger: logger,
	}
}

func (f *Factory) Repository(host, token string) (inventory.InventoryRepository, error) {
	key := credentialDigest(host, token)
	if cached, ok := f.cache.Get(key); ok {
		if client, ok := cached.(*databricks.WorkspaceClient); ok {
			return inventory.NewWorkspaceRepository(client), nil
		}
	}

	client, err := databricks.NewWorkspaceClient(&databricks.Config{
		Host:  host,
		Token: token,
	})
	if err != nil {
		return nil, err
	}
	f.cache.Set(key, client)

	f.logger.Debug("workspace client constructed",
		zap.String("host", host),
		zap.String("credential_digest", key[:12]))
	return inventory.NewWorkspaceRepository(client), nil
}

func credentialDigest(host, token string) string {
	sum := sha256.Sum256([]byte(host + "\x00" + token))
	return hex.EncodeToString(sum[:])
}

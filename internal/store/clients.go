package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jekabolt/grbpwr-insights/internal/dependency"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
)

type clientsStore struct {
	*MYSQLStore
}

// Clients returns an object implementing dependency.Clients interface
func (ms *MYSQLStore) Clients() dependency.Clients {
	return &clientsStore{
		MYSQLStore: ms,
	}
}

func (cs *clientsStore) ClientIdentity(ctx context.Context, tenantId int, clientId int) (*entity.ClientIdentity, error) {
	query := `
	SELECT id, tenant_id, name, phone, email
	FROM client
	WHERE tenant_id = :tenantId AND id = :clientId`

	c, err := QueryNamedOne[entity.ClientIdentity](ctx, cs.DB(), query, map[string]any{
		"tenantId": tenantId,
		"clientId": clientId,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %d: %w", clientId, gerr.ErrClientNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("can't get client identity: %w", err)
	}
	return &c, nil
}

func (cs *clientsStore) ClientIdentities(ctx context.Context, tenantId int, clientIds []int) (map[int]entity.ClientIdentity, error) {
	out := make(map[int]entity.ClientIdentity, len(clientIds))
	if len(clientIds) == 0 {
		return out, nil
	}

	query := `
	SELECT id, tenant_id, name, phone, email
	FROM client
	WHERE tenant_id = :tenantId AND id IN (:clientIds)`

	clients, err := QueryListNamed[entity.ClientIdentity](ctx, cs.DB(), query, map[string]any{
		"tenantId":  tenantId,
		"clientIds": clientIds,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get client identities: %w", err)
	}
	for _, c := range clients {
		out[c.Id] = c
	}
	return out, nil
}

func (cs *clientsStore) AddClient(ctx context.Context, c *entity.ClientInsert) (int, error) {
	query := `
	INSERT INTO client (tenant_id, name, phone, email)
	VALUES (:tenantId, :name, :phone, :email)`

	id, err := ExecNamedLastId(ctx, cs.DB(), query, map[string]any{
		"tenantId": c.TenantId,
		"name":     c.Name,
		"phone":    c.Phone,
		"email":    c.Email,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add client: %w", err)
	}
	return id, nil
}

func (cs *clientsStore) EnsureTenant(ctx context.Context, tenantId int, name string) error {
	err := ExecNamed(ctx, cs.DB(), `
	INSERT IGNORE INTO tenant (id, name)
	VALUES (:tenantId, :name)`, map[string]any{
		"tenantId": tenantId,
		"name":     name,
	})
	if err != nil {
		return fmt.Errorf("can't ensure tenant: %w", err)
	}
	return nil
}

package subscriptions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/grantsy/mercuryhook/internal/infra/db"
	"github.com/grantsy/mercuryhook/internal/triggers"
)

// Subscription is the Mercury webhook owned by one trigger node.
type Subscription struct {
	NodeID      string
	TriggerType triggers.Type
	WebhookID   string
	Secret      string
	CreatedAt   int64
}

// Repo is the SQL Store.
type Repo struct {
	db *db.DB
}

func NewRepo(database *db.DB) *Repo {
	return &Repo{db: database}
}

func (r *Repo) Set(ctx context.Context, sub *Subscription) error {
	table := r.db.TableName("trigger_subscriptions")
	query := r.db.Rebind(fmt.Sprintf(`
		INSERT INTO %s (node_id, trigger_type, webhook_id, secret, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT(node_id) DO UPDATE SET
			trigger_type = excluded.trigger_type,
			webhook_id = excluded.webhook_id,
			secret = excluded.secret,
			created_at = excluded.created_at
	`, table))

	_, err := r.db.ExecContext(
		ctx,
		query,
		sub.NodeID,
		string(sub.TriggerType),
		sub.WebhookID,
		sub.Secret,
		sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("subscriptions: failed to upsert subscription: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, nodeID string) (*Subscription, error) {
	table := r.db.TableName("trigger_subscriptions")
	query := r.db.Rebind(fmt.Sprintf(`
		SELECT node_id, trigger_type, webhook_id, secret, created_at
		FROM %s
		WHERE node_id = $1
	`, table))

	var sub Subscription
	var triggerType string
	err := r.db.QueryRowContext(ctx, query, nodeID).Scan(
		&sub.NodeID, &triggerType, &sub.WebhookID, &sub.Secret, &sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("subscriptions: failed to get subscription: %w", err)
	}
	sub.TriggerType = triggers.Type(triggerType)
	return &sub, nil
}

func (r *Repo) Clear(ctx context.Context, nodeID string) error {
	table := r.db.TableName("trigger_subscriptions")
	query := r.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE node_id = $1`, table))

	if _, err := r.db.ExecContext(ctx, query, nodeID); err != nil {
		return fmt.Errorf("subscriptions: failed to clear subscription: %w", err)
	}
	return nil
}

// CountByTriggerType returns the number of stored subscriptions per type.
func (r *Repo) CountByTriggerType(ctx context.Context) (map[triggers.Type]int, error) {
	table := r.db.TableName("trigger_subscriptions")
	query := fmt.Sprintf(`
		SELECT trigger_type, COUNT(*)
		FROM %s
		GROUP BY trigger_type
	`, table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("subscriptions: failed to count subscriptions: %w", err)
	}
	defer rows.Close()

	result := make(map[triggers.Type]int)
	for rows.Next() {
		var triggerType string
		var n int
		if err := rows.Scan(&triggerType, &n); err != nil {
			return nil, fmt.Errorf("subscriptions: failed to scan row: %w", err)
		}
		result[triggers.Type(triggerType)] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("subscriptions: rows error: %w", err)
	}

	return result, nil
}

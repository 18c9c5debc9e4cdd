package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recruitly/talentflow/pkg/apperr"
)

// ClientRepository is the client directory collaborator.
type ClientRepository struct {
	db *pgxpool.Pool
}

// Resolve maps a client name to its identifier. Unknown names come back
// as InvalidClient so scheduling can reject them outright.
func (r *ClientRepository) Resolve(ctx context.Context, clientName string) (string, error) {
	const q = `SELECT client_id FROM clients WHERE client_name = $1`
	var id string
	if err := r.db.QueryRow(ctx, q, clientName).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperr.Wrap(apperr.InvalidClient, err, "unknown client %q", clientName)
		}
		return "", fmt.Errorf("resolve client: %w", err)
	}
	return id, nil
}

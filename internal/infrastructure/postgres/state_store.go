package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/payment-terminal-api/internal/application/store"
)

// StateStore implementa store.StatePort sobre PostgreSQL: el estado completo
// vive como un blob JSONB en una fila identificada por el namespace. Es el
// mismo modelo que el backend de archivo, con durabilidad de base de datos.
type StateStore struct {
	pool *pgxpool.Pool
}

// NewStateStore crea el backend y asegura la tabla.
func NewStateStore(ctx context.Context, pool *pgxpool.Pool) (*StateStore, error) {
	const ddl = `
		CREATE TABLE IF NOT EXISTS app_state (
			namespace  TEXT PRIMARY KEY,
			blob       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return nil, fmt.Errorf("postgres: crear tabla app_state: %w", err)
	}
	return &StateStore{pool: pool}, nil
}

// Load lee el blob del namespace. found=false si nunca se ha guardado nada.
func (s *StateStore) Load() (*store.AppState, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT blob FROM app_state WHERE namespace = $1`, store.Namespace,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("postgres: leer estado: %w", err)
	}
	var state store.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, false, fmt.Errorf("postgres: decodificar estado: %w", err)
	}
	return &state, true, nil
}

// Save persiste el estado completo (upsert por namespace).
func (s *StateStore) Save(state *store.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("postgres: codificar estado: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = s.pool.Exec(ctx, `
		INSERT INTO app_state (namespace, blob, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (namespace)
		DO UPDATE SET blob = EXCLUDED.blob, updated_at = now()`,
		store.Namespace, raw,
	)
	if err != nil {
		return fmt.Errorf("postgres: guardar estado: %w", err)
	}
	return nil
}

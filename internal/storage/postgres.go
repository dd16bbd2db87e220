package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/pkg/errors"
)

// PostgresStore persists owner command maps and interaction records.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

const schema = `
CREATE TABLE IF NOT EXISTS custom_commands (
	owner_id   TEXT NOT NULL,
	name       TEXT NOT NULL,
	services   JSONB NOT NULL DEFAULT '[]',
	triggers   JSONB NOT NULL DEFAULT '[]',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (owner_id, name)
);
CREATE TABLE IF NOT EXISTS interactions (
	id          BIGSERIAL PRIMARY KEY,
	session_id  TEXT NOT NULL,
	command     TEXT NOT NULL,
	status      TEXT NOT NULL,
	language    TEXT NOT NULL,
	certainty   DOUBLE PRECISION NOT NULL DEFAULT 0,
	duration_ms BIGINT NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func NewPostgresStore(cfg PostgresConfig, logger *zap.Logger) (*PostgresStore, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)

	return &PostgresStore{db: db, logger: logger}, nil
}

// CommandMappingsFor loads all custom commands of one owner.
func (s *PostgresStore) CommandMappingsFor(ctx context.Context, ownerID string) ([]domain.CommandMapping, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, services, triggers FROM custom_commands WHERE owner_id = $1 ORDER BY name`,
		ownerID)
	if err != nil {
		return nil, errors.NewStoreError("command map query failed", "custom_commands", err)
	}
	defer rows.Close()

	var mappings []domain.CommandMapping
	for rows.Next() {
		var name string
		var servicesRaw, triggersRaw []byte
		if err := rows.Scan(&name, &servicesRaw, &triggersRaw); err != nil {
			return nil, errors.NewStoreError("command map scan failed", "custom_commands", err)
		}
		m := domain.CommandMapping{
			Command: domain.Command(ownerID + domain.OwnerSeparator + name),
		}
		if err := json.Unmarshal(servicesRaw, &m.Services); err != nil {
			s.logger.Warn("skipping command with bad services column",
				zap.String("owner", ownerID), zap.String("name", name))
			continue
		}
		if err := json.Unmarshal(triggersRaw, &m.Triggers); err != nil {
			s.logger.Warn("skipping command with bad triggers column",
				zap.String("owner", ownerID), zap.String("name", name))
			continue
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

// SaveCommandMapping upserts one custom command for an owner.
func (s *PostgresStore) SaveCommandMapping(ctx context.Context, ownerID string, m domain.CommandMapping) error {
	servicesRaw, err := json.Marshal(m.Services)
	if err != nil {
		return errors.NewStoreError("services encode failed", "custom_commands", err)
	}
	triggersRaw, err := json.Marshal(m.Triggers)
	if err != nil {
		return errors.NewStoreError("triggers encode failed", "custom_commands", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO custom_commands (owner_id, name, services, triggers, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (owner_id, name)
		DO UPDATE SET services = $3, triggers = $4, updated_at = now()`,
		ownerID, m.Command.ShortName(), servicesRaw, triggersRaw)
	if err != nil {
		return errors.NewStoreError("command map upsert failed", "custom_commands", err)
	}
	return nil
}

// DeleteCommandMapping removes one custom command.
func (s *PostgresStore) DeleteCommandMapping(ctx context.Context, ownerID, name string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM custom_commands WHERE owner_id = $1 AND name = $2`, ownerID, name)
	if err != nil {
		return errors.NewStoreError("command map delete failed", "custom_commands", err)
	}
	return nil
}

// InteractionRecord is one answered request, kept for usage statistics.
type InteractionRecord struct {
	SessionID string
	Command   string
	Status    string
	Language  string
	Certainty float64
	Duration  time.Duration
}

// RecordInteraction appends an interaction row.
func (s *PostgresStore) RecordInteraction(ctx context.Context, rec InteractionRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO interactions (session_id, command, status, language, certainty, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.SessionID, rec.Command, rec.Status, rec.Language, rec.Certainty, rec.Duration.Milliseconds())
	if err != nil {
		return errors.NewStoreError("interaction insert failed", "interactions", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

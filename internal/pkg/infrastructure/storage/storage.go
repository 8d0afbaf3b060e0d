package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows       = errors.New("no rows in result set")
	ErrQueryRow     = errors.New("could not execute query")
	ErrStoreFailed  = errors.New("could not store data")
	ErrNoID         = errors.New("data contains no id")
	ErrAlreadyExist = errors.New("already exists")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.CreateTables(ctx)
}

func (s *Storage) Close() {
	s.pool.Close()
}

func isDuplicateKeyErr(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func (s *Storage) CreateTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS patients (
			patient_id    TEXT NOT NULL,
			first_name    TEXT NOT NULL,
			last_name     TEXT NOT NULL,
			date_of_birth timestamp with time zone NULL,
			gender        TEXT NULL,
			email         TEXT NULL,
			phone         TEXT NULL,
			address       TEXT NULL,
			active        BOOLEAN NOT NULL DEFAULT TRUE,
			created_on    timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on   timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_patients PRIMARY KEY (patient_id)
		);

		CREATE TABLE IF NOT EXISTS devices (
			id               TEXT NOT NULL,
			device_id        TEXT NOT NULL UNIQUE,
			patient_id       TEXT NOT NULL REFERENCES patients (patient_id),
			device_type      TEXT NOT NULL,
			manufacturer     TEXT NULL,
			model            TEXT NULL,
			serial_number    TEXT NULL,
			firmware_version TEXT NULL,
			last_sync_time   timestamp with time zone NULL,
			battery_level    INTEGER NULL,
			status           TEXT NOT NULL DEFAULT 'active',
			created_on       timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on      timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_devices PRIMARY KEY (id)
		);

		CREATE TABLE IF NOT EXISTS measurements (
			measurement_id   TEXT NOT NULL,
			patient_id       TEXT NOT NULL REFERENCES patients (patient_id),
			device_id        TEXT NOT NULL,
			heart_rate       DOUBLE PRECISION NULL,
			systolic_bp      DOUBLE PRECISION NULL,
			diastolic_bp     DOUBLE PRECISION NULL,
			blood_oxygen     DOUBLE PRECISION NULL,
			temperature      DOUBLE PRECISION NULL,
			respiratory_rate DOUBLE PRECISION NULL,
			blood_glucose    DOUBLE PRECISION NULL,
			weight           DOUBLE PRECISION NULL,
			height           DOUBLE PRECISION NULL,
			bmi              DOUBLE PRECISION NULL,
			activity         JSONB NULL,
			measurement_time timestamp with time zone NOT NULL,
			latitude         DOUBLE PRECISION NULL,
			longitude        DOUBLE PRECISION NULL,
			accuracy         DOUBLE PRECISION NULL,
			data_source      TEXT NULL,
			notes            TEXT NULL,
			created_on       timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_measurements PRIMARY KEY (measurement_id)
		);

		CREATE INDEX IF NOT EXISTS idx_measurements_patient_time
			ON measurements (patient_id, measurement_time);

		CREATE TABLE IF NOT EXISTS alerts (
			alert_id          TEXT NOT NULL,
			patient_id        TEXT NOT NULL REFERENCES patients (patient_id),
			alert_type        TEXT NOT NULL,
			severity          TEXT NOT NULL,
			title             TEXT NOT NULL,
			description       TEXT NULL,
			data              JSONB NULL,
			measurement_id    TEXT NULL,
			status            TEXT NOT NULL DEFAULT 'active',
			acknowledged_by   TEXT NULL,
			acknowledged_on   timestamp with time zone NULL,
			acknowledge_notes TEXT NULL,
			resolved_by       TEXT NULL,
			resolved_on       timestamp with time zone NULL,
			resolution_notes  TEXT NULL,
			created_on        timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on       timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_alerts PRIMARY KEY (alert_id)
		);

		CREATE INDEX IF NOT EXISTS idx_alerts_patient_status
			ON alerts (patient_id, status);
	`)

	return err
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/loyaltyworks/rewards/internal/domain/errors"
	"github.com/loyaltyworks/rewards/internal/domain/model"
	"github.com/loyaltyworks/rewards/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool the repositories rely on. Keeping it
// small lets tests substitute a pgxmock pool.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
}

type customerRepository struct {
	storage *Storage
}

type transactionRepository struct {
	storage *Storage
}

type rewardRepository struct {
	storage *Storage
}

// newPgxPool is a construction seam so tests can substitute a mock pool.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (DBPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Transactions() repository.TransactionRepository {
	return &transactionRepository{storage: s}
}

func (s *Storage) Rewards() repository.RewardRepository {
	return &rewardRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
            customer_id TEXT PRIMARY KEY,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            email_address TEXT NOT NULL,
            phone_number TEXT NOT NULL DEFAULT '',
            registration_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            loyalty_tier TEXT NOT NULL DEFAULT 'Bronze',
            total_lifetime_points BIGINT NOT NULL DEFAULT 0,
            current_available_points BIGINT NOT NULL DEFAULT 0,
            account_status TEXT NOT NULL DEFAULT 'Active'
        )`,
		`CREATE TABLE IF NOT EXISTS points_transactions (
            transaction_id TEXT PRIMARY KEY,
            customer_id TEXT NOT NULL,
            transaction_type TEXT NOT NULL,
            points_amount BIGINT NOT NULL,
            transaction_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            expiration_date TIMESTAMPTZ,
            related_order_id TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            created_by TEXT NOT NULL DEFAULT 'SYSTEM',
            status TEXT NOT NULL DEFAULT 'COMPLETED'
        )`,
		`CREATE TABLE IF NOT EXISTS rewards (
            reward_id TEXT PRIMARY KEY,
            reward_name TEXT NOT NULL DEFAULT '',
            points_required BIGINT NOT NULL DEFAULT 0,
            reward_type TEXT NOT NULL DEFAULT '',
            reward_value TEXT NOT NULL DEFAULT '',
            availability_count BIGINT NOT NULL DEFAULT 100,
            expiration_date TIMESTAMPTZ,
            category TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            is_active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE INDEX IF NOT EXISTS idx_points_transactions_customer ON points_transactions(customer_id, transaction_date DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// persistenceError logs the underlying failure and returns the persistence
// sentinel; driver errors never cross the repository edge.
func (s *Storage) persistenceError(op string, err error) error {
	s.logger.Error("storage operation failed", slog.String("op", op), slog.String("error", err.Error()))
	return fmt.Errorf("%s: %w", op, domainErrors.ErrPersistence)
}

// --- CustomerRepository implementation ---

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	const query = `INSERT INTO customers
                   (customer_id, first_name, last_name, email_address, phone_number, registration_date, loyalty_tier, account_status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	tag, err := r.storage.pool.Exec(ctx, query,
		customer.CustomerID,
		customer.FirstName,
		customer.LastName,
		customer.EmailAddress,
		customer.PhoneNumber,
		customer.RegistrationDate,
		customer.LoyaltyTier,
		customer.AccountStatus,
	)
	if err != nil {
		return r.storage.persistenceError("insert customer", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("insert customer affected no rows: %w", domainErrors.ErrPersistence)
	}
	return nil
}

func (r *customerRepository) Get(ctx context.Context, customerID string) (*model.Customer, error) {
	const query = `SELECT customer_id, first_name, last_name, email_address, phone_number,
                          registration_date, loyalty_tier, total_lifetime_points, current_available_points, account_status
                   FROM customers WHERE customer_id=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, customerID).Scan(
		&c.CustomerID, &c.FirstName, &c.LastName, &c.EmailAddress, &c.PhoneNumber,
		&c.RegistrationDate, &c.LoyaltyTier, &c.TotalLifetimePoints, &c.CurrentAvailablePoints, &c.AccountStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, r.storage.persistenceError("get customer", err)
	}
	return &c, nil
}

func (r *customerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	const query = `SELECT customer_id, first_name, last_name, email_address, phone_number,
                          registration_date, loyalty_tier, total_lifetime_points, current_available_points, account_status
                   FROM customers ORDER BY customer_id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, r.storage.persistenceError("list customers", err)
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(
			&c.CustomerID, &c.FirstName, &c.LastName, &c.EmailAddress, &c.PhoneNumber,
			&c.RegistrationDate, &c.LoyaltyTier, &c.TotalLifetimePoints, &c.CurrentAvailablePoints, &c.AccountStatus,
		); err != nil {
			return nil, r.storage.persistenceError("scan customer", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storage.persistenceError("list customers", err)
	}
	return result, nil
}

// --- TransactionRepository implementation ---

func (r *transactionRepository) Append(ctx context.Context, transaction *model.PointsTransaction) error {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO points_transactions
                       (transaction_id, customer_id, transaction_type, points_amount, transaction_date,
                        expiration_date, related_order_id, description, created_by, status)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		tag, err := tx.Exec(ctx, query,
			transaction.TransactionID,
			transaction.CustomerID,
			transaction.TransactionType,
			transaction.PointsAmount,
			transaction.TransactionDate,
			transaction.ExpirationDate,
			transaction.RelatedOrderID,
			transaction.Description,
			transaction.CreatedBy,
			transaction.Status,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errors.New("no rows affected")
		}
		return nil
	})
	if err != nil {
		return r.storage.persistenceError("append transaction", err)
	}
	return nil
}

func (r *transactionRepository) Get(ctx context.Context, transactionID string) (*model.PointsTransaction, error) {
	const query = `SELECT transaction_id, customer_id, transaction_type, points_amount, transaction_date,
                          expiration_date, related_order_id, description, created_by, status
                   FROM points_transactions WHERE transaction_id=$1`
	var t model.PointsTransaction
	err := r.storage.pool.QueryRow(ctx, query, transactionID).Scan(
		&t.TransactionID, &t.CustomerID, &t.TransactionType, &t.PointsAmount, &t.TransactionDate,
		&t.ExpirationDate, &t.RelatedOrderID, &t.Description, &t.CreatedBy, &t.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, r.storage.persistenceError("get transaction", err)
	}
	return &t, nil
}

func (r *transactionRepository) ListAll(ctx context.Context) ([]model.PointsTransaction, error) {
	const query = `SELECT transaction_id, customer_id, transaction_type, points_amount, transaction_date,
                          expiration_date, related_order_id, description, created_by, status
                   FROM points_transactions ORDER BY transaction_id`
	return r.queryTransactions(ctx, query)
}

func (r *transactionRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.PointsTransaction, error) {
	const query = `SELECT transaction_id, customer_id, transaction_type, points_amount, transaction_date,
                          expiration_date, related_order_id, description, created_by, status
                   FROM points_transactions WHERE customer_id=$1 ORDER BY transaction_date DESC`
	return r.queryTransactions(ctx, query, customerID)
}

func (r *transactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]model.PointsTransaction, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, r.storage.persistenceError("list transactions", err)
	}
	defer rows.Close()

	var result []model.PointsTransaction
	for rows.Next() {
		var t model.PointsTransaction
		if err := rows.Scan(
			&t.TransactionID, &t.CustomerID, &t.TransactionType, &t.PointsAmount, &t.TransactionDate,
			&t.ExpirationDate, &t.RelatedOrderID, &t.Description, &t.CreatedBy, &t.Status,
		); err != nil {
			return nil, r.storage.persistenceError("scan transaction", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storage.persistenceError("list transactions", err)
	}
	return result, nil
}

// --- RewardRepository implementation ---

func (r *rewardRepository) Get(ctx context.Context, rewardID string) (*model.Reward, error) {
	const query = `SELECT reward_id, reward_name, points_required, reward_type, reward_value,
                          availability_count, expiration_date, category, description, is_active
                   FROM rewards WHERE reward_id=$1`
	var rw model.Reward
	err := r.storage.pool.QueryRow(ctx, query, rewardID).Scan(
		&rw.RewardID, &rw.RewardName, &rw.PointsRequired, &rw.RewardType, &rw.RewardValue,
		&rw.AvailabilityCount, &rw.ExpirationDate, &rw.Category, &rw.Description, &rw.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, r.storage.persistenceError("get reward", err)
	}
	return &rw, nil
}

func (r *rewardRepository) ListAll(ctx context.Context) ([]model.Reward, error) {
	const query = `SELECT reward_id, reward_name, points_required, reward_type, reward_value,
                          availability_count, expiration_date, category, description, is_active
                   FROM rewards ORDER BY reward_id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, r.storage.persistenceError("list rewards", err)
	}
	defer rows.Close()

	var result []model.Reward
	for rows.Next() {
		var rw model.Reward
		if err := rows.Scan(
			&rw.RewardID, &rw.RewardName, &rw.PointsRequired, &rw.RewardType, &rw.RewardValue,
			&rw.AvailabilityCount, &rw.ExpirationDate, &rw.Category, &rw.Description, &rw.IsActive,
		); err != nil {
			return nil, r.storage.persistenceError("scan reward", err)
		}
		result = append(result, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storage.persistenceError("list rewards", err)
	}
	return result, nil
}

func (r *rewardRepository) Upsert(ctx context.Context, reward *model.Reward) error {
	const query = `INSERT INTO rewards
                   (reward_id, reward_name, points_required, reward_type, reward_value,
                    availability_count, expiration_date, category, description, is_active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   ON CONFLICT (reward_id) DO UPDATE SET
                       reward_name = EXCLUDED.reward_name,
                       points_required = EXCLUDED.points_required,
                       reward_type = EXCLUDED.reward_type,
                       reward_value = EXCLUDED.reward_value,
                       availability_count = EXCLUDED.availability_count,
                       expiration_date = EXCLUDED.expiration_date,
                       category = EXCLUDED.category,
                       description = EXCLUDED.description,
                       is_active = EXCLUDED.is_active`
	tag, err := r.storage.pool.Exec(ctx, query,
		reward.RewardID,
		reward.RewardName,
		reward.PointsRequired,
		reward.RewardType,
		reward.RewardValue,
		reward.AvailabilityCount,
		reward.ExpirationDate,
		reward.Category,
		reward.Description,
		reward.IsActive,
	)
	if err != nil {
		return r.storage.persistenceError("upsert reward", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("upsert reward affected no rows: %w", domainErrors.ErrPersistence)
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

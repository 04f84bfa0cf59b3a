package pass

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// StatusIssued marks a record whose payment was captured and whose
	// credential minted successfully.
	StatusIssued = "issued"
	// StatusCapturedUnissued marks the support case: payment captured but
	// the credential was never minted. Requires manual recovery.
	StatusCapturedUnissued = "captured_unissued"
)

// ErrNotFound indicates no issuance record exists for the query.
var ErrNotFound = errors.New("issuance record not found")

// Record is the server-side trace of one credential issuance attempt that
// reached payment capture. The session slot is only a cached claim; records
// are the authoritative history.
type Record struct {
	ID              string
	OwnerEmail      string
	PaymentIntentID string
	Status          string
	Credential      Credential
	CreatedAt       time.Time
}

// NewRecord builds a record with a fresh identifier and creation time.
func NewRecord(ownerEmail, paymentIntentID, status string, cred Credential) Record {
	return Record{
		ID:              uuid.NewString(),
		OwnerEmail:      ownerEmail,
		PaymentIntentID: paymentIntentID,
		Status:          status,
		Credential:      cred,
		CreatedAt:       time.Now().UTC(),
	}
}

// Repository persists issuance records.
type Repository interface {
	Create(ctx context.Context, rec Record) error
	// FindByEmail returns the most recent record for the given owner.
	FindByEmail(ctx context.Context, email string) (Record, error)
	ListByStatus(ctx context.Context, status string) ([]Record, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed issuance record repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new issuance record.
func (r *PostgresRepository) Create(ctx context.Context, rec Record) error {
	recID, err := uuid.Parse(rec.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO pass_issuances
        (id, owner_email, payment_intent_id, status, token_id, contract_address, network, minted_at, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		recID, rec.OwnerEmail, rec.PaymentIntentID, rec.Status,
		rec.Credential.TokenID, rec.Credential.ContractAddress, rec.Credential.Network,
		rec.Credential.MintedAt.UTC(), rec.Credential.ExpiresAt.UTC(), rec.CreatedAt.UTC())
	return err
}

// FindByEmail fetches the latest record for an owner.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (Record, error) {
	row := r.db.QueryRow(ctx, `SELECT id, owner_email, payment_intent_id, status, token_id, contract_address, network, minted_at, expires_at, created_at
        FROM pass_issuances WHERE owner_email = $1 ORDER BY created_at DESC LIMIT 1`, email)
	rec, err := scanRecord(row)
	if err != nil {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// ListByStatus returns all records in the given status, newest first.
func (r *PostgresRepository) ListByStatus(ctx context.Context, status string) ([]Record, error) {
	rows, err := r.db.Query(ctx, `SELECT id, owner_email, payment_intent_id, status, token_id, contract_address, network, minted_at, expires_at, created_at
        FROM pass_issuances WHERE status = $1 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		id        uuid.UUID
		rec       Record
		mintedAt  time.Time
		expiresAt time.Time
		createdAt time.Time
	)
	if err := row.Scan(&id, &rec.OwnerEmail, &rec.PaymentIntentID, &rec.Status,
		&rec.Credential.TokenID, &rec.Credential.ContractAddress, &rec.Credential.Network,
		&mintedAt, &expiresAt, &createdAt); err != nil {
		return Record{}, err
	}
	rec.ID = id.String()
	rec.Credential.MintedAt = mintedAt.UTC()
	rec.Credential.ExpiresAt = expiresAt.UTC()
	rec.Credential.OwnerEmail = rec.OwnerEmail
	rec.CreatedAt = createdAt.UTC()
	return rec, nil
}

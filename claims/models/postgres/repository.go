package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/huandu/go-sqlbuilder"

	"github.com/nisavid/32health-assmt-claim-process/claims/models"
)

type queryable interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type executable interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

const (
	sqlFlavor = sqlbuilder.PostgreSQL
)

// Ensure Repository satisfies the interface
var _ models.Repository = &Repository{}

type Repository struct {
	queryable
	executable
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db, db}
}

func NewRepositoryTx(tx *sql.Tx) *Repository {
	return &Repository{tx, tx}
}

var claimColumns = []string{"id", "service_date", "submitted_procedure", "quadrant",
	"plan_group_number", "subscriber_number", "provider_npi", "provider_fees",
	"member_coinsurance", "member_copay", "allowed_fees", "net_fee"}

func (r *Repository) CreateClaim(ctx context.Context, claim models.Claim) (uint, error) {
	// Use the raw builder since we need to retrieve the assigned ID
	query, args := sqlbuilder.Buildf(`INSERT INTO claims (service_date, submitted_procedure, quadrant, plan_group_number, subscriber_number, provider_npi, provider_fees, member_coinsurance, member_copay, allowed_fees, net_fee) VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s) RETURNING id`,
		claim.ServiceDate, claim.SubmittedProcedure, nullableQuadrant(claim.Quadrant),
		claim.PlanGroupNumber, claim.SubscriberNumber, claim.ProviderNPI,
		claim.ProviderFees, claim.MemberCoinsurance, claim.MemberCopay,
		claim.AllowedFees, claim.NetFee).
		BuildWithFlavor(sqlFlavor)

	var id uint
	if err := r.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) GetClaimByID(ctx context.Context, id uint) (*models.Claim, error) {
	sb := sqlFlavor.NewSelectBuilder()
	sb.Select(claimColumns...)
	sb.From("claims").Where(sb.Equal("id", id))

	query, args := sb.Build()
	row := r.QueryRowContext(ctx, query, args...)

	claim, err := scanClaim(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return claim, nil
}

func (r *Repository) GetClaims(ctx context.Context) ([]*models.Claim, error) {
	sb := sqlFlavor.NewSelectBuilder()
	sb.Select(claimColumns...)
	sb.From("claims").OrderBy("id").Asc()

	query, args := sb.Build()
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []*models.Claim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		claims = append(claims, claim)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return claims, nil
}

// scannable lets scanClaim work for both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...interface{}) error
}

func scanClaim(row scannable) (*models.Claim, error) {
	var (
		claim    models.Claim
		quadrant sql.NullString
	)
	if err := row.Scan(&claim.ID, &claim.ServiceDate, &claim.SubmittedProcedure,
		&quadrant, &claim.PlanGroupNumber, &claim.SubscriberNumber,
		&claim.ProviderNPI, &claim.ProviderFees, &claim.MemberCoinsurance,
		&claim.MemberCopay, &claim.AllowedFees, &claim.NetFee); err != nil {
		return nil, err
	}
	claim.Quadrant = quadrant.String

	return &claim, nil
}

// nullableQuadrant stores an absent quadrant as NULL rather than an empty
// string.
func nullableQuadrant(quadrant string) interface{} {
	if quadrant == "" {
		return nil
	}
	return quadrant
}

package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	"github.com/finware/glcore/internal/models"
	"github.com/finware/glcore/internal/utils/mapping"
)

type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new repository for daily conversion rates.
func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

// FindDailyRate retrieves the rate for (from, to, type, date).
func (r *PgxRateRepository) FindDailyRate(ctx context.Context, fromCurrency, toCurrency string, conversionType domain.ConversionType, rateDate time.Time) (*domain.DailyRate, error) {
	query := `
		SELECT from_currency_code, to_currency_code, conversion_type, rate_date, rate,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM daily_rates
		WHERE from_currency_code = $1
		  AND to_currency_code = $2
		  AND conversion_type = $3
		  AND rate_date = $4::date;
	`
	var m models.DailyRate
	err := r.Pool.QueryRow(ctx, query, fromCurrency, toCurrency, string(conversionType), rateDate).Scan(
		&m.FromCurrencyCode,
		&m.ToCurrencyCode,
		&m.ConversionType,
		&m.RateDate,
		&m.Rate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRateNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find daily rate "+fromCurrency+"/"+toCurrency, err)
	}
	rate := mapping.ToDomainDailyRate(m)
	return &rate, nil
}

// SaveDailyRate inserts or updates the rate for its (pair, type, date) key.
func (r *PgxRateRepository) SaveDailyRate(ctx context.Context, rate domain.DailyRate) error {
	m := mapping.ToModelDailyRate(rate)
	query := `
		INSERT INTO daily_rates (
			from_currency_code, to_currency_code, conversion_type, rate_date, rate,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (from_currency_code, to_currency_code, conversion_type, rate_date) DO UPDATE
		SET rate = EXCLUDED.rate,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FromCurrencyCode,
		m.ToCurrencyCode,
		m.ConversionType,
		m.RateDate,
		m.Rate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save daily rate "+m.FromCurrencyCode+"/"+m.ToCurrencyCode, err)
	}
	return nil
}

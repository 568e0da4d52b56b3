package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	gigNotFoundMessage     = "gig not found"
	slugTakenMessage       = "a listing with this slug already exists"
	unknownCategoryMessage = "unknown category"
	unknownOwnerMessage    = "freelancer profile not found"
	tierExistsMessage      = "this listing already has a package for that tier"

	// categoryForeignKey is the Postgres default name of gigs.category_id's reference.
	categoryForeignKey = "gigs_category_id_fkey"

	gigColumns = `g.id, g.freelancer_id, g.user_id, g.slug, g.locale, g.title, g.description,
		g.category_id, %s, g.tags, g.work_type, g.location_city, g.location_country,
		g.service_radius_km, g.status, g.created_at, g.updated_at`
	packageColumns = `id, gig_id, tier, title, description, price_cents, currency, delivery_days, revision_count, created_at`
	imageColumns   = `id, gig_id, file_key, content_type, size_bytes, sort_order, created_at`
)

// categoryNameExpr picks the category name for the locale bound at $2, falling back to English.
const categoryNameExpr = `COALESCE(CASE WHEN $2 = 'nl' THEN NULLIF(c.name_nl, '') END, c.name_en)`

// Repo implements the gigs repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new gigs repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

func scanGig(row pgx.Row) (Gig, error) {
	var g Gig
	err := row.Scan(
		&g.ID, &g.FreelancerID, &g.UserID, &g.Slug, &g.Locale, &g.Title, &g.Description,
		&g.CategoryID, &g.CategoryName, &g.Tags, &g.WorkType, &g.LocationCity, &g.LocationCountry,
		&g.ServiceRadiusKm, &g.Status, &g.CreatedAt, &g.UpdatedAt,
	)
	if g.Tags == nil {
		g.Tags = []string{}
	}
	return g, err
}

func scanPackage(row pgx.Row) (Package, error) {
	var p Package
	err := row.Scan(&p.ID, &p.GigID, &p.Tier, &p.Title, &p.Description, &p.PriceCents,
		&p.Currency, &p.DeliveryDays, &p.RevisionCount, &p.CreatedAt)
	return p, err
}

func scanImage(row pgx.Row) (Image, error) {
	var img Image
	err := row.Scan(&img.ID, &img.GigID, &img.FileKey, &img.ContentType, &img.SizeBytes, &img.SortOrder, &img.CreatedAt)
	return img, err
}

func mapWriteError(op string, err error) error {
	switch {
	case db.IsUniqueViolation(err):
		return apperr.Conflict(slugTakenMessage).WithOp(op)
	case db.IsForeignKeyViolation(err) && db.ConstraintName(err) == categoryForeignKey:
		return apperr.Validation(unknownCategoryMessage).WithOp(op)
	case db.IsForeignKeyViolation(err):
		return apperr.NotFound(unknownOwnerMessage).WithOp(op)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// CreateGig inserts a gig.
func (r *Repo) CreateGig(ctx context.Context, params CreateGigParams) (Gig, error) {
	query := `
		WITH g AS (
			INSERT INTO gigs (freelancer_id, user_id, slug, locale, title, description, category_id,
				tags, work_type, location_city, location_country, service_radius_km)
			VALUES ($1, $3, $4, $2, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING *
		)
		SELECT ` + fmt.Sprintf(gigColumns, categoryNameExpr) + `
		FROM g
		LEFT JOIN categories c ON c.id = g.category_id`

	g, err := scanGig(r.pool.QueryRow(ctx, query,
		params.FreelancerID, params.Locale, params.UserID, params.Slug, params.Title, params.Description,
		params.CategoryID, params.Tags, params.WorkType, params.LocationCity, params.LocationCountry,
		params.ServiceRadiusKm,
	))
	if err != nil {
		return Gig{}, mapWriteError("create gig", err)
	}
	return g, nil
}

// GetGigByID retrieves a gig by ID with its English category name.
func (r *Repo) GetGigByID(ctx context.Context, id uuid.UUID) (Gig, error) {
	query := `SELECT ` + fmt.Sprintf(gigColumns, categoryNameExpr) + `
		FROM gigs g
		LEFT JOIN categories c ON c.id = g.category_id
		WHERE g.id = $1`

	g, err := scanGig(r.pool.QueryRow(ctx, query, id, "en"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Gig{}, apperr.NotFound(gigNotFoundMessage)
		}
		return Gig{}, fmt.Errorf("get gig by id: %w", err)
	}
	return g, nil
}

// GetGigBySlug retrieves a gig by slug.
func (r *Repo) GetGigBySlug(ctx context.Context, slug, locale string) (Gig, error) {
	query := `SELECT ` + fmt.Sprintf(gigColumns, categoryNameExpr) + `
		FROM gigs g
		LEFT JOIN categories c ON c.id = g.category_id
		WHERE g.slug = $1`

	g, err := scanGig(r.pool.QueryRow(ctx, query, slug, locale))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Gig{}, apperr.NotFound(gigNotFoundMessage)
		}
		return Gig{}, fmt.Errorf("get gig by slug: %w", err)
	}
	return g, nil
}

// UpdateGig overwrites the editable fields of a gig.
func (r *Repo) UpdateGig(ctx context.Context, params UpdateGigParams) (Gig, error) {
	query := `
		WITH g AS (
			UPDATE gigs
			SET title = $3,
				description = $4,
				category_id = $5,
				tags = $6,
				work_type = $7,
				location_city = $8,
				location_country = $9,
				service_radius_km = $10,
				updated_at = now()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + fmt.Sprintf(gigColumns, categoryNameExpr) + `
		FROM g
		LEFT JOIN categories c ON c.id = g.category_id`

	g, err := scanGig(r.pool.QueryRow(ctx, query,
		params.ID, "en", params.Title, params.Description, params.CategoryID, params.Tags,
		params.WorkType, params.LocationCity, params.LocationCountry, params.ServiceRadiusKm,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Gig{}, apperr.NotFound(gigNotFoundMessage)
		}
		return Gig{}, mapWriteError("update gig", err)
	}
	return g, nil
}

// SetStatus changes the listing status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := r.pool.Exec(ctx, `UPDATE gigs SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set gig status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(gigNotFoundMessage)
	}
	return nil
}

// ListGigsByFreelancer lists a freelancer's gigs, newest change first, with
// package counts and the cheapest package price.
func (r *Repo) ListGigsByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]GigSummary, error) {
	query := `
		SELECT g.id, g.slug, g.title, g.status,
			COUNT(p.id) AS package_count,
			MIN(p.price_cents) AS starting_cents,
			MIN(p.currency) AS currency,
			g.updated_at
		FROM gigs g
		LEFT JOIN gig_packages p ON p.gig_id = g.id
		WHERE g.freelancer_id = $1
		GROUP BY g.id
		ORDER BY g.updated_at DESC`

	rows, err := r.pool.Query(ctx, query, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("list gigs by freelancer: %w", err)
	}
	defer rows.Close()

	items := make([]GigSummary, 0)
	for rows.Next() {
		var s GigSummary
		if err := rows.Scan(&s.ID, &s.Slug, &s.Title, &s.Status, &s.PackageCount,
			&s.StartingCents, &s.Currency, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan gig summary: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gig summaries: %w", err)
	}
	return items, nil
}

// ListUnpricedGigIDs returns gigs created before cutoff that have no package
// and are not yet marked incomplete, oldest first.
func (r *Repo) ListUnpricedGigIDs(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT g.id
		FROM gigs g
		WHERE g.status <> 'incomplete'
			AND g.created_at < $1
			AND NOT EXISTS (SELECT 1 FROM gig_packages p WHERE p.gig_id = g.id)
		ORDER BY g.created_at
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("list unpriced gigs: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan unpriced gig: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unpriced gigs: %w", err)
	}
	return ids, nil
}

// CreatePackage inserts a package. Each tier may exist once per gig.
func (r *Repo) CreatePackage(ctx context.Context, params CreatePackageParams) (Package, error) {
	query := `
		INSERT INTO gig_packages (gig_id, tier, title, description, price_cents, currency, delivery_days, revision_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + packageColumns

	p, err := scanPackage(r.pool.QueryRow(ctx, query,
		params.GigID, params.Tier, params.Title, params.Description, params.PriceCents,
		params.Currency, params.DeliveryDays, params.RevisionCount,
	))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return Package{}, apperr.Conflict(tierExistsMessage)
		}
		if db.IsForeignKeyViolation(err) {
			return Package{}, apperr.NotFound(gigNotFoundMessage)
		}
		return Package{}, fmt.Errorf("create package: %w", err)
	}
	return p, nil
}

// ListPackages lists the packages of a gig in tier order.
func (r *Repo) ListPackages(ctx context.Context, gigID uuid.UUID) ([]Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM gig_packages
		WHERE gig_id = $1
		ORDER BY CASE tier WHEN 'basic' THEN 0 WHEN 'standard' THEN 1 ELSE 2 END`

	rows, err := r.pool.Query(ctx, query, gigID)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	items := make([]Package, 0)
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate packages: %w", err)
	}
	return items, nil
}

// CreateImage registers an uploaded image after the existing ones.
func (r *Repo) CreateImage(ctx context.Context, params CreateImageParams) (Image, error) {
	query := `
		INSERT INTO gig_images (gig_id, file_key, content_type, size_bytes, sort_order)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(sort_order) + 1, 0) FROM gig_images WHERE gig_id = $1))
		RETURNING ` + imageColumns

	img, err := scanImage(r.pool.QueryRow(ctx, query, params.GigID, params.FileKey, params.ContentType, params.SizeBytes))
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return Image{}, apperr.NotFound(gigNotFoundMessage)
		}
		return Image{}, fmt.Errorf("create image: %w", err)
	}
	return img, nil
}

// ListImages lists a gig's images in display order.
func (r *Repo) ListImages(ctx context.Context, gigID uuid.UUID) ([]Image, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+imageColumns+` FROM gig_images WHERE gig_id = $1 ORDER BY sort_order`, gigID)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	items := make([]Image, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		items = append(items, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate images: %w", err)
	}
	return items, nil
}

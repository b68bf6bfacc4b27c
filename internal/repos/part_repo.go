package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"ohioautoparts/internal/domain"
)

type PartRepo struct{ db *sqlx.DB }

func NewPartRepo(db *sqlx.DB) *PartRepo { return &PartRepo{db: db} }

// ListParts returns the entire local inventory; the merge pipeline filters
// and pages in memory.
func (r *PartRepo) ListParts(ctx context.Context) ([]domain.Part, error) {
	var out []domain.Part
	err := r.db.SelectContext(ctx, &out, `
  SELECT id, name, make, model, year, category, base_price_cents, stock,
         image_url, weight_lb, dim_l_in, dim_w_in, dim_h_in, oem
  FROM parts
  ORDER BY name`)
	return out, err
}

func (r *PartRepo) Get(ctx context.Context, id string) (domain.Part, error) {
	var p domain.Part
	err := r.db.GetContext(ctx, &p, `
  SELECT id, name, make, model, year, category, base_price_cents, stock,
         image_url, weight_lb, dim_l_in, dim_w_in, dim_h_in, oem
  FROM parts
  WHERE id = ?`, id)
	return p, err
}

func (r *PartRepo) UpdateImage(ctx context.Context, id, url string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE parts SET image_url = ? WHERE id = ?`, url, id)
	return err
}

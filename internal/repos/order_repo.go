package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"ohioautoparts/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Save(ctx context.Context, o domain.Order) error {
	_, err := r.db.ExecContext(ctx, `
  INSERT INTO orders(id, stripe_pi, amount_cents, currency, email, name,
                     address_json, items_json, shipping_json, status)
  VALUES(?,?,?,?,?,?,?,?,?,?)`,
		o.ID, o.StripePI, o.AmountCents, o.Currency, o.Email, o.Name,
		o.AddressJSON, o.ItemsJSON, o.ShippingJSON, o.Status)
	return err
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	var o domain.Order
	err := r.db.GetContext(ctx, &o, `
  SELECT id, stripe_pi, amount_cents, currency, email, name,
         address_json, items_json, shipping_json, status,
         COALESCE(created_at,'') AS created_at
  FROM orders
  WHERE id = ?`, id)
	return o, err
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.SelectContext(ctx, &out, `
  SELECT id, stripe_pi, amount_cents, currency, email, name,
         address_json, items_json, shipping_json, status,
         COALESCE(created_at,'') AS created_at
  FROM orders
  ORDER BY created_at DESC`)
	return out, err
}

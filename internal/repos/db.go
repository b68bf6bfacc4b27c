package repos

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"ohioautoparts/internal/catalog"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: sqlite serializes writers anyway, and a :memory:
	// DSN is per-connection.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed a demo inventory if the DB is empty (idempotent; safe every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS parts(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  make TEXT NOT NULL DEFAULT '',
  model TEXT NOT NULL DEFAULT '',
  year INTEGER NOT NULL DEFAULT 0,
  category TEXT NOT NULL DEFAULT 'mechanical',
  base_price_cents INTEGER NOT NULL CHECK (base_price_cents >= 0),
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  image_url TEXT NOT NULL DEFAULT '',
  weight_lb REAL NOT NULL DEFAULT 2.0,
  dim_l_in REAL NOT NULL DEFAULT 10.0,
  dim_w_in REAL NOT NULL DEFAULT 8.0,
  dim_h_in REAL NOT NULL DEFAULT 4.0,
  oem INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_parts_make_model ON parts(make, model);
CREATE INDEX IF NOT EXISTS idx_parts_year       ON parts(year);
CREATE INDEX IF NOT EXISTS idx_parts_category   ON parts(category);

CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  stripe_pi TEXT NOT NULL DEFAULT '',
  amount_cents INTEGER NOT NULL,
  currency TEXT NOT NULL DEFAULT 'usd',
  email TEXT NOT NULL DEFAULT '',
  name TEXT NOT NULL DEFAULT '',
  address_json TEXT NOT NULL DEFAULT 'null',
  items_json TEXT NOT NULL DEFAULT '[]',
  shipping_json TEXT NOT NULL DEFAULT 'null',
  status TEXT NOT NULL DEFAULT 'paid',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
`
	_, err := db.Exec(schema)
	return err
}

// Part classes seeded into the demo inventory: name, weight lb, dims in.
var seedPartTypes = []struct {
	Name    string
	Weight  float64
	L, W, H float64
}{
	{"Brake Pads", 6, 8, 6, 4}, {"Brake Rotors", 28, 14, 14, 4},
	{"Alternator", 14, 10, 8, 8}, {"Starter", 12, 10, 8, 8},
	{"Battery", 38, 12, 7, 9}, {"Oil Filter", 2, 4, 4, 4},
	{"Air Filter", 3, 12, 8, 2}, {"Cabin Filter", 2, 10, 8, 2},
	{"Spark Plugs", 1, 6, 4, 2}, {"Ignition Coils", 3, 8, 6, 4},
	{"Radiator", 24, 32, 6, 24}, {"Water Pump", 8, 8, 8, 6},
	{"Thermostat", 1, 4, 4, 3}, {"Shock Absorber", 10, 24, 4, 4},
	{"Control Arm", 9, 18, 6, 4}, {"Wheel Bearing", 7, 6, 6, 4},
	{"O2 Sensor", 1, 6, 4, 2}, {"Catalytic Converter", 20, 24, 10, 8},
	{"AC Compressor", 16, 12, 10, 10}, {"Headlight Assembly", 9, 18, 12, 10},
	{"Taillight", 6, 16, 8, 8}, {"Mirror", 5, 14, 10, 6},
	{"Bumper", 30, 65, 12, 12}, {"Grille", 12, 36, 10, 6},
}

var seedImages = []string{
	"https://images.unsplash.com/photo-1517048676732-d65bc937f952?q=80&w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1511919884226-fd3cad34687c?q=80&w=800&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1517747614396-d21a78b850e8?q=80&w=800&auto=format&fit=crop",
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM parts`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo parts inventory")

	makes := catalog.Makes()
	years := catalog.Years()

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	insert := `INSERT INTO parts(id,name,make,model,year,category,base_price_cents,stock,image_url,weight_lb,dim_l_in,dim_w_in,dim_h_in,oem)
	           VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	for i := 0; i < 500; i++ {
		mk := makes[rand.Intn(len(makes))]
		models := catalog.Models(mk)
		model := models[rand.Intn(len(models))]
		pt := seedPartTypes[rand.Intn(len(seedPartTypes))]
		year := years[rand.Intn(len(years))]
		priceCents := int64(rand.Intn(220)+35) * 100
		img := ""
		if rand.Float64() < 0.55 {
			img = seedImages[rand.Intn(len(seedImages))]
		}
		name := fmt.Sprintf("%d %s %s – %s", year, mk, model, pt.Name)
		if _, err := tx.Exec(insert,
			uuid.NewString(), name, mk, model, year, catalog.InferCategory(pt.Name),
			priceCents, rand.Intn(24), img,
			pt.Weight, pt.L, pt.W, pt.H, rand.Float64() < 0.55,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

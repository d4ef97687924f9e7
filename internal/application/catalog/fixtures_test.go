package catalog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/infrastructure/sqlite"
)

// memdb base SQLite en memoria con el esquema del catálogo aplicado.
func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func exec(t *testing.T, db *sqlx.DB, query string, args ...any) {
	t.Helper()
	_, err := db.Exec(query, args...)
	require.NoError(t, err, query)
}

func ts(minute int) string {
	return time.Date(2024, 3, 1, 10, minute, 0, 0, time.UTC).Format("2006-01-02 15:04:05")
}

// seedCatalog datos de referencia:
//
//	p1 Red Shirt    c1 USD 10  Color=Red            loc es "Camisa Roja", 1 imagen viva + 1 borrada
//	p2 Blue Shirt   c1 USD 20  Color=Blue           loc es borrada
//	p3 Red Shirt M  c2 USD 30  Color=Red, Size=M    loc es inactiva
//	p4 Ghost Shirt  c1 USD 15  Color=Red            producto BORRADO
//	p5 Old Hat      c3 EUR  5  -                    producto INACTIVO
//	p6 Green Shoe   c2 EUR 50  Color=Red inactiva, Size=M borrada, loc fr "Chaussure Verte"
//	p7 Blue Shoe    c2 USD 40  Color=Blue dos veces (anomalía)
func seedCatalog(t *testing.T, db *sqlx.DB) {
	t.Helper()

	exec(t, db, `INSERT INTO languages(id, code, name, is_active, is_deleted) VALUES
		('lang-en', 'en', 'English', 1, 0),
		('lang-es', 'es', 'Español', 1, 0),
		('lang-fr', 'fr', 'Français', 0, 0),
		('lang-de', 'de', 'Deutsch', 1, 1)`)
	exec(t, db, `INSERT INTO currencies(id, code, symbol, name) VALUES
		('usd', 'USD', '$', 'US Dollar'),
		('eur', 'EUR', '€', 'Euro')`)
	exec(t, db, `INSERT INTO categories(id, name, is_deleted) VALUES
		('c1', 'Shirts', 0), ('c2', 'Shoes', 0), ('c3', 'Hats', 0), ('c-del', 'Deleted', 1)`)
	exec(t, db, `INSERT INTO providers(id, name) VALUES ('pv1', 'Acme')`)

	products := []struct {
		id, name, cat, cur, price string
		active, deleted           int
		minute                    int
	}{
		{"p1", "Red Shirt", "c1", "usd", "10.00", 1, 0, 1},
		{"p2", "Blue Shirt", "c1", "usd", "20.00", 1, 0, 2},
		{"p3", "Red Shirt M", "c2", "usd", "30.00", 1, 0, 3},
		{"p4", "Ghost Shirt", "c1", "usd", "15.00", 1, 1, 4},
		{"p5", "Old Hat", "c3", "eur", "5.00", 0, 0, 5},
		{"p6", "Green Shoe", "c2", "eur", "50.00", 1, 0, 6},
		{"p7", "Blue Shoe", "c2", "usd", "40.00", 1, 0, 7},
	}
	for _, p := range products {
		exec(t, db, `INSERT INTO products(id, name, description, category_id, provider_id, currency_id,
			price, quantity, is_active, is_deleted, created_at, updated_at)
			VALUES (?, ?, ?, ?, 'pv1', ?, ?, 3, ?, ?, ?, ?)`,
			p.id, p.name, "Base "+p.name, p.cat, p.cur, p.price, p.active, p.deleted, ts(p.minute), ts(p.minute))
	}

	exec(t, db, `INSERT INTO product_localizations(id, product_id, language_id, name, description, is_active, is_deleted) VALUES
		('l1', 'p1', 'lang-es', 'Camisa Roja', 'Algodón', 1, 0),
		('l2', 'p2', 'lang-es', 'Borrada', NULL, 1, 1),
		('l3', 'p3', 'lang-es', 'Inactiva', NULL, 0, 0),
		('l4', 'p6', 'lang-fr', 'Chaussure Verte', NULL, 1, 0)`)

	exec(t, db, `INSERT INTO product_media(id, product_id, url, is_deleted) VALUES
		('m1', 'p1', 'https://cdn.test/p1/front.jpg', 0),
		('m2', 'p1', 'https://cdn.test/p1/old.jpg', 1)`)

	exec(t, db, `INSERT INTO product_attributes(id, name) VALUES ('color', 'Color'), ('size', 'Size')`)
	exec(t, db, `INSERT INTO product_attribute_localizations(id, attribute_id, language_id, name) VALUES
		('al1', 'color', 'lang-es', 'Tono')`)
	exec(t, db, `INSERT INTO product_attribute_values(id, attribute_id, value) VALUES
		('red', 'color', 'Red'), ('blue', 'color', 'Blue'), ('m', 'size', 'M')`)
	exec(t, db, `INSERT INTO product_attribute_value_localizations(id, value_id, language_id, value, is_active) VALUES
		('vl1', 'red', 'lang-es', 'Rojo', 1),
		('vl2', 'blue', 'lang-es', 'Azul', 0)`)
	exec(t, db, `INSERT INTO product_attribute_assignments(id, product_id, value_id, is_active, is_deleted) VALUES
		('a1', 'p1', 'red', 1, 0),
		('a2', 'p2', 'blue', 1, 0),
		('a3', 'p3', 'red', 1, 0),
		('a4', 'p3', 'm', 1, 0),
		('a5', 'p4', 'red', 1, 0),
		('a6', 'p6', 'red', 0, 0),
		('a7', 'p6', 'm', 1, 1),
		('a8', 'p7', 'blue', 1, 0),
		('a9', 'p7', 'blue', 1, 0)`)
}

// bulkProduct fila del escenario de 25 productos; la comprobación por fuerza bruta recorre este slice.
type bulkProduct struct {
	ID       string
	Category string
	Price    decimal.Decimal
}

// seedBulk 25 productos activos en USD: 10 en C1 con precios 5, 10, ..., 50 y 15 en C2.
func seedBulk(t *testing.T, db *sqlx.DB) []bulkProduct {
	t.Helper()
	exec(t, db, `INSERT INTO currencies(id, code, symbol, name) VALUES ('usd', 'USD', '$', 'US Dollar')`)
	exec(t, db, `INSERT INTO categories(id, name) VALUES ('C1', 'Lamps'), ('C2', 'Chairs')`)
	exec(t, db, `INSERT INTO providers(id, name) VALUES ('pv1', 'Acme')`)

	out := make([]bulkProduct, 0, 25)
	for i := 0; i < 25; i++ {
		cat := "C2"
		price := decimal.NewFromInt(int64(10 + (i%3)*5))
		if i < 10 {
			cat = "C1"
			price = decimal.NewFromInt(int64(5 * (i + 1)))
		}
		p := bulkProduct{ID: uuid.NewString(), Category: cat, Price: price}
		// Precios repetidos en C2 y la misma fecha cada 5 filas fuerzan el desempate por id.
		exec(t, db, `INSERT INTO products(id, name, category_id, provider_id, currency_id, price, quantity,
			is_active, created_at, updated_at) VALUES (?, ?, ?, 'pv1', 'usd', ?, 1, 1, ?, ?)`,
			p.ID, fmt.Sprintf("Item %02d", i), p.Category, p.Price.String(), ts(i/5), ts(i/5))
		out = append(out, p)
	}
	return out
}

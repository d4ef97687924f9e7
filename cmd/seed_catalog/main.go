// seed_catalog genera un script SQL con un catálogo de demostración (idiomas, monedas,
// categorías, atributos y productos con traducciones) válido para PostgreSQL y SQLite.
//
// Uso: go run ./cmd/seed_catalog [-products 60] [-seed 1] [-out seed.sql] [-admin-token]
// Sin -out escribe a stdout. Con -admin-token imprime en stderr un JWT de rol admin
// firmado con JWT_SECRET para probar /api/admin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/jwt"
)

// namespace de los ids generados: mismo nombre -> mismo UUID en cada ejecución.
var namespace = uuid.MustParse("6f1c7a52-3d7e-4b8e-9a51-0c3f8e2d4b10")

func id(kind, name string) string {
	return uuid.NewSHA1(namespace, []byte(kind+":"+name)).String()
}

type attribute struct {
	name, es string
	values   [][2]string // valor base, valor es
}

var (
	categories = []string{"Shirts", "Shoes", "Hats", "Bags"}
	providers  = []string{"Acme", "Globex"}
	attributes = []attribute{
		{"Color", "Color", [][2]string{{"Red", "Rojo"}, {"Blue", "Azul"}, {"Green", "Verde"}, {"Black", "Negro"}}},
		{"Size", "Talla", [][2]string{{"S", "S"}, {"M", "M"}, {"L", "L"}}},
		{"Material", "Material", [][2]string{{"Cotton", "Algodón"}, {"Leather", "Cuero"}, {"Wool", "Lana"}}},
	}
	nouns = map[string][2]string{
		"Shirts": {"Shirt", "Camisa"},
		"Shoes":  {"Shoe", "Zapato"},
		"Hats":   {"Hat", "Sombrero"},
		"Bags":   {"Bag", "Bolso"},
	}
)

func main() {
	products := flag.Int("products", 60, "número de productos")
	seed := flag.Uint64("seed", 1, "semilla de precios y asignaciones")
	out := flag.String("out", "", "archivo de salida (vacío = stdout)")
	adminToken := flag.Bool("admin-token", false, "imprimir un JWT de administrador en stderr")
	flag.Parse()

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	if err := writeSeed(bw, *products, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Generar seed: %v\n", err)
		os.Exit(1)
	}
	if err := bw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir seed: %v\n", err)
		os.Exit(1)
	}

	if *adminToken {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
			os.Exit(1)
		}
		tok, err := jwt.Generate(cfg.JWT.Secret, "seed-admin", "admin", cfg.JWT.Issuer, 24*time.Hour)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Authorization: Bearer %s\n", tok)
	}
}

// writeSeed escribe los INSERT del catálogo de demostración. Cada quinto producto queda
// inactivo y cada séptimo borrado, para que los filtros de estado tengan algo que excluir.
func writeSeed(w io.Writer, n int, seed uint64) error {
	if n < 1 {
		return fmt.Errorf("products debe ser >= 1, recibido %d", n)
	}
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	p := &printer{w: w}

	p.line("-- Catálogo de demostración (%d productos, semilla %d)", n, seed)
	p.line("INSERT INTO languages (id, code, name, is_active, is_deleted) VALUES")
	p.values([]string{
		tuple(id("lang", "en"), "en", "English", true, false),
		tuple(id("lang", "es"), "es", "Español", true, false),
		tuple(id("lang", "fr"), "fr", "Français", false, false),
	})
	p.line("INSERT INTO currencies (id, code, symbol, name) VALUES")
	p.values([]string{
		tuple(id("currency", "USD"), "USD", "$", "US Dollar"),
		tuple(id("currency", "EUR"), "EUR", "€", "Euro"),
	})

	rows := make([]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, tuple(id("category", c), c))
	}
	p.line("INSERT INTO categories (id, name) VALUES")
	p.values(rows)

	rows = rows[:0]
	for _, pv := range providers {
		rows = append(rows, tuple(id("provider", pv), pv))
	}
	p.line("INSERT INTO providers (id, name) VALUES")
	p.values(rows)

	var attrRows, attrLocRows, valueRows, valueLocRows []string
	for _, a := range attributes {
		aid := id("attribute", a.name)
		attrRows = append(attrRows, tuple(aid, a.name))
		attrLocRows = append(attrLocRows, tuple(id("attribute-es", a.name), aid, id("lang", "es"), a.es))
		for _, v := range a.values {
			vid := id("value", a.name+"/"+v[0])
			valueRows = append(valueRows, tuple(vid, aid, v[0]))
			valueLocRows = append(valueLocRows, tuple(id("value-es", a.name+"/"+v[0]), vid, id("lang", "es"), v[1]))
		}
	}
	p.line("INSERT INTO product_attributes (id, name) VALUES")
	p.values(attrRows)
	p.line("INSERT INTO product_attribute_localizations (id, attribute_id, language_id, name) VALUES")
	p.values(attrLocRows)
	p.line("INSERT INTO product_attribute_values (id, attribute_id, value) VALUES")
	p.values(valueRows)
	p.line("INSERT INTO product_attribute_value_localizations (id, value_id, language_id, value) VALUES")
	p.values(valueLocRows)

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	var productRows, locRows, mediaRows, assignRows []string
	for i := 1; i <= n; i++ {
		key := fmt.Sprintf("%04d", i)
		pid := id("product", key)
		cat := categories[i%len(categories)]
		color := attributes[0].values[rnd.IntN(len(attributes[0].values))]
		size := attributes[1].values[rnd.IntN(len(attributes[1].values))]
		material := attributes[2].values[rnd.IntN(len(attributes[2].values))]
		currency := "USD"
		if i%4 == 0 {
			currency = "EUR"
		}
		price := decimal.NewFromInt(int64(500 + rnd.IntN(19500))).Shift(-2)
		created := base.Add(time.Duration(i) * time.Hour).Format("2006-01-02 15:04:05")

		name := fmt.Sprintf("%s %s %s", color[0], material[0], nouns[cat][0])
		productRows = append(productRows, tuple(
			pid, name, "Demo "+strings.ToLower(name), id("category", cat), id("provider", providers[i%len(providers)]),
			id("currency", currency), price, rnd.IntN(200), i%5 != 0, i%7 == 0, created, created,
		))
		if i%3 != 0 {
			esName := fmt.Sprintf("%s %s de %s", nouns[cat][1], color[1], strings.ToLower(material[1]))
			locRows = append(locRows, tuple(id("product-es", key), pid, id("lang", "es"), esName, "Demo "+strings.ToLower(esName)))
		}
		mediaRows = append(mediaRows, tuple(id("media", key), pid, fmt.Sprintf("https://cdn.example.com/catalog/%s.jpg", pid)))
		for _, v := range []struct{ attr, value string }{
			{"Color", color[0]}, {"Size", size[0]}, {"Material", material[0]},
		} {
			assignRows = append(assignRows, tuple(id("assignment", key+"/"+v.attr), pid, id("value", v.attr+"/"+v.value)))
		}
	}
	p.line("INSERT INTO products (id, name, description, category_id, provider_id, currency_id, price, quantity, is_active, is_deleted, created_at, updated_at) VALUES")
	p.values(productRows)
	if len(locRows) > 0 {
		p.line("INSERT INTO product_localizations (id, product_id, language_id, name, description) VALUES")
		p.values(locRows)
	}
	p.line("INSERT INTO product_media (id, product_id, url) VALUES")
	p.values(mediaRows)
	p.line("INSERT INTO product_attribute_assignments (id, product_id, value_id) VALUES")
	p.values(assignRows)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) values(rows []string) {
	p.line("  %s;\n", strings.Join(rows, ",\n  "))
}

func tuple(cols ...any) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = literal(c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func literal(v any) string {
	switch x := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return fmt.Sprint(x)
	case decimal.Decimal:
		return x.StringFixed(2)
	default:
		panic(fmt.Sprintf("literal: tipo no soportado %T", v))
	}
}

// Package sqlquery construye sentencias SELECT parametrizadas para PostgreSQL y SQLite.
package sqlquery

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholder formato de parámetros del driver.
type Placeholder int

const (
	// Dollar $1, $2... (PostgreSQL / pgx).
	Dollar Placeholder = iota
	// Question ? posicional (SQLite).
	Question
)

// Direction dirección de ORDER BY.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Statement SQL final con sus argumentos en orden de aparición.
type Statement struct {
	SQL  string
	Args []any
}

// Binder acumula argumentos y entrega el placeholder correspondiente a cada uno.
type Binder struct {
	format Placeholder
	args   []any
}

// Bind registra v y devuelve su placeholder.
func (b *Binder) Bind(v any) string {
	b.args = append(b.args, v)
	if b.format == Question {
		return "?"
	}
	return "$" + strconv.Itoa(len(b.args))
}

type orderTerm struct {
	expr string
	dir  Direction
}

// Builder arma un SELECT de forma inmutable: cada método devuelve una copia,
// así una base común sirve para la consulta de conteo y la de página.
type Builder struct {
	table      string
	selectCols []Condition
	joins      []string
	where      []Condition
	groupBy    []string
	orderBy    []orderTerm
	limitVal   int64
	offsetVal  int64
}

// From crea un Builder sobre una tabla o tabla derivada ("(SELECT ...) AS p").
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select agrega columnas a la lista de selección.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	for _, c := range columns {
		nb.selectCols = append(nb.selectCols, Raw(c))
	}
	return nb
}

// SelectSub agrega una subconsulta escalar "(SELECT ...) AS alias" a la selección.
func (b *Builder) SelectSub(sub *Builder, alias string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, &scalarSubquery{sub: sub, alias: alias})
	return nb
}

// Join agrega una cláusula JOIN completa, ej. "LEFT JOIN categories c ON c.id = p.category_id".
func (b *Builder) Join(clause string) *Builder {
	nb := b.clone()
	nb.joins = append(nb.joins, clause)
	return nb
}

// Where agrega una condición; varias llamadas se combinan con AND.
func (b *Builder) Where(conditions ...Condition) *Builder {
	nb := b.clone()
	nb.where = append(nb.where, conditions...)
	return nb
}

// GroupBy agrega expresiones de agrupación.
func (b *Builder) GroupBy(exprs ...string) *Builder {
	nb := b.clone()
	nb.groupBy = append(nb.groupBy, exprs...)
	return nb
}

// OrderBy agrega un término de orden; el primero es el principal.
func (b *Builder) OrderBy(expr string, dir Direction) *Builder {
	nb := b.clone()
	nb.orderBy = append(nb.orderBy, orderTerm{expr: expr, dir: dir})
	return nb
}

// Limit máximo de filas; 0 = sin límite.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Offset filas a saltar; 0 = sin offset.
func (b *Builder) Offset(offset int64) *Builder {
	nb := b.clone()
	nb.offsetVal = offset
	return nb
}

// Count devuelve un builder COUNT(*) con el mismo FROM, JOIN y WHERE, sin orden ni paginación.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.selectCols = []Condition{Raw("COUNT(*)")}
	nb.groupBy = nil
	nb.orderBy = nil
	nb.limitVal = 0
	nb.offsetVal = 0
	return nb
}

// Build genera la sentencia con el formato de placeholder indicado.
func (b *Builder) Build(format Placeholder) Statement {
	bd := &Binder{format: format}
	sql := b.render(bd)
	return Statement{SQL: sql, Args: bd.args}
}

// render escribe el SQL usando bd, de modo que las subconsultas compartan la numeración.
func (b *Builder) render(bd *Binder) string {
	var sql strings.Builder

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		cols := make([]string, 0, len(b.selectCols))
		for _, c := range b.selectCols {
			cols = append(cols, c.SQL(bd))
		}
		sql.WriteString(strings.Join(cols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	for _, j := range b.joins {
		sql.WriteString(" ")
		sql.WriteString(j)
	}

	if len(b.where) > 0 {
		parts := make([]string, 0, len(b.where))
		for _, c := range b.where {
			parts = append(parts, c.SQL(bd))
		}
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if len(b.groupBy) > 0 {
		sql.WriteString(" GROUP BY ")
		sql.WriteString(strings.Join(b.groupBy, ", "))
	}

	if len(b.orderBy) > 0 {
		terms := make([]string, 0, len(b.orderBy))
		for _, o := range b.orderBy {
			if o.dir == Desc {
				terms = append(terms, o.expr+" DESC")
			} else {
				terms = append(terms, o.expr+" ASC")
			}
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(terms, ", "))
	}

	if b.limitVal > 0 {
		sql.WriteString(" LIMIT ")
		sql.WriteString(bd.Bind(b.limitVal))
	}
	if b.offsetVal > 0 {
		sql.WriteString(" OFFSET ")
		sql.WriteString(bd.Bind(b.offsetVal))
	}

	return sql.String()
}

func (b *Builder) clone() *Builder {
	nb := *b
	nb.selectCols = append([]Condition(nil), b.selectCols...)
	nb.joins = append([]string(nil), b.joins...)
	nb.where = append([]Condition(nil), b.where...)
	nb.groupBy = append([]string(nil), b.groupBy...)
	nb.orderBy = append([]orderTerm(nil), b.orderBy...)
	return &nb
}

// String representación legible para depuración.
func (b *Builder) String() string {
	stmt := b.Build(Dollar)
	return fmt.Sprintf("SQL: %s\nArgs: %v", stmt.SQL, stmt.Args)
}

package sqlquery

import "strings"

// Condition fragmento de WHERE. Los argumentos se registran en el Binder al renderizar.
type Condition interface {
	SQL(b *Binder) string
}

type compareCondition struct {
	field string
	op    string
	value any
}

func (c *compareCondition) SQL(b *Binder) string {
	return c.field + " " + c.op + " " + b.Bind(c.value)
}

// Eq field = value.
func Eq(field string, value any) Condition {
	return &compareCondition{field: field, op: "=", value: value}
}

// Gte field >= value.
func Gte(field string, value any) Condition {
	return &compareCondition{field: field, op: ">=", value: value}
}

// Lte field <= value.
func Lte(field string, value any) Condition {
	return &compareCondition{field: field, op: "<=", value: value}
}

// Like expr LIKE pattern con '\' como carácter de escape.
func Like(expr string, pattern string) Condition {
	return &likeCondition{expr: expr, pattern: pattern}
}

type likeCondition struct {
	expr    string
	pattern string
}

func (c *likeCondition) SQL(b *Binder) string {
	return c.expr + " LIKE " + b.Bind(c.pattern) + ` ESCAPE '\'`
}

// In field IN (v1, v2, ...). Una lista vacía no coincide con ninguna fila.
func In(field string, values ...any) Condition {
	return &inCondition{field: field, values: values}
}

type inCondition struct {
	field  string
	values []any
}

func (c *inCondition) SQL(b *Binder) string {
	if len(c.values) == 0 {
		return "1 = 0"
	}
	ph := make([]string, 0, len(c.values))
	for _, v := range c.values {
		ph = append(ph, b.Bind(v))
	}
	return c.field + " IN (" + strings.Join(ph, ", ") + ")"
}

// Raw fragmento literal sin parámetros, ej. "a.is_active".
func Raw(sql string) Condition {
	return rawCondition(sql)
}

type rawCondition string

func (c rawCondition) SQL(*Binder) string { return string(c) }

// Or combina condiciones con OR entre paréntesis.
func Or(conditions ...Condition) Condition {
	return &groupCondition{op: " OR ", conditions: conditions}
}

// And combina condiciones con AND entre paréntesis.
func And(conditions ...Condition) Condition {
	return &groupCondition{op: " AND ", conditions: conditions}
}

type groupCondition struct {
	op         string
	conditions []Condition
}

func (c *groupCondition) SQL(b *Binder) string {
	parts := make([]string, 0, len(c.conditions))
	for _, cond := range c.conditions {
		parts = append(parts, cond.SQL(b))
	}
	return "(" + strings.Join(parts, c.op) + ")"
}

// Exists EXISTS (subconsulta); la subconsulta comparte la numeración de parámetros.
func Exists(sub *Builder) Condition {
	return &existsCondition{sub: sub}
}

type existsCondition struct {
	sub *Builder
}

func (c *existsCondition) SQL(b *Binder) string {
	return "EXISTS (" + c.sub.render(b) + ")"
}

type scalarSubquery struct {
	sub   *Builder
	alias string
}

func (c *scalarSubquery) SQL(b *Binder) string {
	return "(" + c.sub.render(b) + ") AS " + c.alias
}

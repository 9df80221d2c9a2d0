package dns

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/jhoicas/dns-sync/internal/domain"
)

var (
	errRequired   = errors.New("valor obligatorio")
	errNotInteger = errors.New("no es un entero")
)

// record una fila del origen con acceso por nombre de columna (sin distinguir mayúsculas).
type record struct {
	view   string
	line   int
	index  map[string]int
	values []any
	err    error // primer error de conversión; los siguientes accesos no hacen nada
}

// scanView ejecuta SELECT * sobre la vista, verifica que estén las columnas esperadas y
// llama a fn por cada fila en el orden en que las devuelve la base.
func scanView(ctx context.Context, db *sql.DB, view string, columns []string, fn func(*record) error) error {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+view)
	if err != nil {
		return fmt.Errorf("consultar %s: %w", view, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("columnas de %s: %w", view, err)
	}
	index, err := columnIndex(view, cols, columns)
	if err != nil {
		return err
	}

	values := make([]any, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	line := 0
	for rows.Next() {
		line++
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("leer %s fila %d: %w", view, line, err)
		}
		if err := fn(&record{view: view, line: line, index: index, values: values}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("recorrer %s: %w", view, err)
	}
	return nil
}

func columnIndex(view string, got, want []string) (map[string]int, error) {
	index := make(map[string]int, len(got))
	for i, c := range got {
		index[strings.ToLower(c)] = i
	}
	var missing []string
	for _, c := range want {
		if _, ok := index[strings.ToLower(c)]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s sin columnas %s", domain.ErrSchemaMismatch, view, strings.Join(missing, ", "))
	}
	return index, nil
}

func (r *record) raw(col string) any {
	return r.values[r.index[strings.ToLower(col)]]
}

func (r *record) fail(col string, v any, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s fila %d columna %s valor %v (%T): %v", domain.ErrSchemaMismatch, r.view, r.line, col, v, v, err)
	}
}

// requiredText falla si la columna viene NULL.
func (r *record) requiredText(col string) string {
	s := r.optText(col)
	if s == nil {
		r.fail(col, nil, errRequired)
		return ""
	}
	return *s
}

// text devuelve "" para NULL.
func (r *record) text(col string) string {
	if s := r.optText(col); s != nil {
		return *s
	}
	return ""
}

func (r *record) optText(col string) *string {
	v := r.raw(col)
	if v == nil || r.err != nil {
		return nil
	}
	if b, ok := v.([]byte); ok {
		s := string(b)
		return &s
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		r.fail(col, v, err)
		return nil
	}
	return &s
}

func (r *record) requiredInteger(col string) int64 {
	n := r.optInteger(col)
	if n == nil {
		r.fail(col, nil, errRequired)
		return 0
	}
	return *n
}

// integer devuelve 0 para NULL.
func (r *record) integer(col string) int64 {
	if n := r.optInteger(col); n != nil {
		return *n
	}
	return 0
}

func (r *record) optInteger(col string) *int64 {
	d := r.number(col)
	if !d.Valid {
		return nil
	}
	if !d.Decimal.IsInteger() {
		r.fail(col, d.Decimal.String(), errNotInteger)
		return nil
	}
	n := d.Decimal.IntPart()
	return &n
}

func (r *record) number(col string) decimal.NullDecimal {
	v := r.raw(col)
	if v == nil || r.err != nil {
		return decimal.NullDecimal{}
	}
	d, err := toDecimal(v)
	if err != nil {
		r.fail(col, v, err)
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// toDecimal acepta los tipos que entregan los drivers para columnas numéricas.
// go-mssqldb devuelve DECIMAL/NUMERIC/MONEY como []byte.
func toDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case int64:
		return decimal.NewFromInt(t), nil
	case int32:
		return decimal.NewFromInt32(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case float64:
		return decimal.NewFromFloat(t), nil
	case float32:
		return decimal.NewFromFloat32(t), nil
	case []byte:
		return decimal.NewFromString(strings.TrimSpace(string(t)))
	case string:
		return decimal.NewFromString(strings.TrimSpace(t))
	case decimal.Decimal:
		return t, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(s)
}

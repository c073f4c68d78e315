// Package normalize maps decoded model output onto fully populated domain
// records. Every declared field ends up present: values that are missing
// take a documented default, and values of the wrong type take the default
// and leave a field_coercion_failure issue on the report.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sells-group/insight-cli/internal/extract"
	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/reconcile"
)

// Defaults shared across schemas.
const (
	Unknown      = "Unknown"
	NotAvailable = "N/A"
	NotSpecified = "Not specified"
)

// fields reads typed values out of one decoded object. path is the dotted
// location of the object, used to name the field in issues.
type fields struct {
	obj  extract.Value
	path string
	rep  *model.Report
}

func newFields(v extract.Value, path string, rep *model.Report) fields {
	if !v.IsObject() && !v.IsNull() {
		rep.Add(model.IssueFieldCoercion, pathOr(path), "expected object, got "+v.Kind().String())
		v = extract.EmptyObject()
	}
	return fields{obj: v, path: path, rep: rep}
}

func pathOr(path string) string {
	if path == "" {
		return "$"
	}
	return path
}

func (f fields) at(key string) string {
	if f.path == "" {
		return key
	}
	return f.path + "." + key
}

func (f fields) fail(key string, got extract.Kind, want string) {
	f.rep.Add(model.IssueFieldCoercion, f.at(key), fmt.Sprintf("expected %s, got %s", want, got))
}

// lookup returns the value at key. Absent keys and explicit nulls are
// treated alike.
func (f fields) lookup(key string) (extract.Value, bool) {
	v, ok := f.obj.Get(key)
	if !ok || v.IsNull() {
		return extract.Value{}, false
	}
	return v, true
}

func (f fields) has(key string) bool {
	_, ok := f.lookup(key)
	return ok
}

// str reads a label or free-text field. Numbers and booleans are rendered
// as text.
func (f fields) str(key, def string) string {
	v, ok := f.lookup(key)
	if !ok {
		return def
	}
	switch v.Kind() {
	case extract.KindString:
		s, _ := v.AsString()
		return s
	case extract.KindNumber:
		n, _ := v.AsNumber()
		return n.String()
	case extract.KindBool:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	default:
		f.fail(key, v.Kind(), "string")
		return def
	}
}

// literal returns the decimal text of a numeric or string field.
func (f fields) literal(key string) (string, bool) {
	v, ok := f.lookup(key)
	if !ok {
		return "", false
	}
	switch v.Kind() {
	case extract.KindNumber:
		n, _ := v.AsNumber()
		return n.String(), true
	case extract.KindString:
		s, _ := v.AsString()
		return strings.TrimSpace(s), true
	default:
		f.fail(key, v.Kind(), "number")
		return "", false
	}
}

// amount reads a money field rounded to two places, half up. The decimal
// literal is rounded as written, before any float conversion.
func (f fields) amount(key string) float64 {
	lit, ok := f.literal(key)
	if !ok {
		return 0
	}
	x, ok := reconcile.QuantizeLiteral(lit)
	if !ok {
		f.rep.Add(model.IssueFieldCoercion, f.at(key), fmt.Sprintf("%q is not an amount", lit))
		return 0
	}
	return x
}

// num reads a numeric field, accepting numeric strings.
func (f fields) num(key string, def float64) float64 {
	lit, ok := f.literal(key)
	if !ok {
		return def
	}
	x, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		f.rep.Add(model.IssueFieldCoercion, f.at(key), fmt.Sprintf("%q is not a number", lit))
		return def
	}
	return x
}

// integer reads a numeric field and truncates it toward zero.
func (f fields) integer(key string, def int) int {
	if !f.has(key) {
		return def
	}
	x := f.num(key, math.NaN())
	if math.IsNaN(x) || x > math.MaxInt32 || x < math.MinInt32 {
		return def
	}
	return int(x)
}

// list reads an array of strings. A lone string becomes a one-element
// list; non-string elements other than numbers are skipped.
func (f fields) list(key string) []string {
	out := []string{}
	v, ok := f.lookup(key)
	if !ok {
		return out
	}
	switch v.Kind() {
	case extract.KindString:
		s, _ := v.AsString()
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
		return out
	case extract.KindArray:
	default:
		f.fail(key, v.Kind(), "array")
		return out
	}
	for i, item := range v.Items() {
		switch item.Kind() {
		case extract.KindString:
			s, _ := item.AsString()
			out = append(out, s)
		case extract.KindNumber:
			n, _ := item.AsNumber()
			out = append(out, n.String())
		default:
			f.fail(fmt.Sprintf("%s[%d]", key, i), item.Kind(), "string")
		}
	}
	return out
}

// sub reads a nested object. Missing or mistyped objects yield an empty
// reader so every nested field still gets its default.
func (f fields) sub(key string) fields {
	v, _ := f.lookup(key)
	return newFields(v, f.at(key), f.rep)
}

// items reads an array of objects. Elements that are not objects are
// skipped.
func (f fields) items(key string) []fields {
	v, ok := f.lookup(key)
	if !ok {
		return nil
	}
	if v.Kind() != extract.KindArray {
		f.fail(key, v.Kind(), "array")
		return nil
	}
	var out []fields
	for i, item := range v.Items() {
		p := fmt.Sprintf("%s[%d]", f.at(key), i)
		if !item.IsObject() {
			f.rep.Add(model.IssueFieldCoercion, p, "expected object, got "+item.Kind().String())
			continue
		}
		out = append(out, fields{obj: item, path: p, rep: f.rep})
	}
	return out
}

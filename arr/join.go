package arr

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-arr-utils/collections"
)

// JoinGlue holds the separators used by [Join].
type JoinGlue struct {
	// Elements separates one key/value group from the next.
	Elements string
	// KeyValue separates a key from its value.
	KeyValue string
	// ValueWrapper is written before and after every value.
	ValueWrapper string
	// ValueGlue joins the items of a slice value.
	ValueGlue string
	// ValueEscape replaces occurrences of ValueWrapper inside a value.
	// Empty means "leave them as they are".
	ValueEscape string
}

var (
	// JoinCSS renders declarations: `transform: scale(1.5) rotate(90deg);\n...`.
	JoinCSS = JoinGlue{
		Elements:  ";\n",
		KeyValue:  ": ",
		ValueGlue: " ",
	}

	// JoinHTML renders attributes: `class="a b" id="uniq"`.
	JoinHTML = JoinGlue{
		Elements:     " ",
		KeyValue:     "=",
		ValueWrapper: `"`,
		ValueGlue:    " ",
		ValueEscape:  "&quot;",
	}
)

// Join renders every entry of m as key, glue, wrapped value, in insertion
// order, and concatenates the groups with g.Elements.
//
//	attrs := collections.NewOrderedMap[string, any]()
//	attrs.Set("class", []string{"btn", `say"hi`})
//	attrs.Set("id", "uniq")
//	arr.Join(attrs, arr.JoinHTML) // → class="btn say&quot;hi" id="uniq"
//
// Slice values are joined with g.ValueGlue. nil and false render as "",
// true as "1", everything else through fmt.
func Join(m *collections.OrderedMap[string, any], g JoinGlue) string {
	escape := g.ValueEscape
	if escape == "" {
		escape = g.ValueWrapper
	}
	parts := make([]string, 0, m.Len())
	m.Each(func(key string, value any) {
		s := joinValue(value, g.ValueGlue)
		if g.ValueWrapper != "" {
			s = strings.ReplaceAll(s, g.ValueWrapper, escape)
		}
		parts = append(parts, key+g.KeyValue+g.ValueWrapper+s+g.ValueWrapper)
	})
	return strings.Join(parts, g.Elements)
}

func joinValue(v any, glue string) string {
	switch x := v.(type) {
	case []string:
		return strings.Join(x, glue)
	case []any:
		return strings.Join(Map(x, func(e any, _ int) string { return scalarString(e) }), glue)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = scalarString(rv.Index(i).Interface())
		}
		return strings.Join(items, glue)
	}
	return scalarString(v)
}

func scalarString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return ""
	}
	return fmt.Sprint(v)
}

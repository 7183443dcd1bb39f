package counter

import (
	"path"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

type Named interface {
	TypeName() string
}

// NameOf resolves a "namespace:type-name" identifier for value, preferring an
// explicit TypeName. The namespace is the declaring package, so
// counter.Increment{} and &counter.Increment{} both resolve to
// "counter:increment". Nil resolves to the empty name.
func NameOf(value any) string {
	if value == nil {
		return ""
	}

	if typed, ok := value.(Named); ok {
		return typed.TypeName()
	}

	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	namespace := "builtin"
	if pkg := t.PkgPath(); pkg != "" {
		namespace = path.Base(pkg)
	}

	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		name = t.Kind().String()
	}

	return strcase.ToKebab(namespace) + ":" + strcase.ToKebab(name)
}

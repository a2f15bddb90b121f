package docusaurus

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const generatedHeader = "Code generated by siteconfig render; DO NOT EDIT."

// tsPreamble imports the names the generated module refers to.
const tsPreamble = `import { themes as prismThemes } from "prism-react-renderer";
import type { Config } from "@docusaurus/types";
import type * as Preset from "@docusaurus/preset-classic";
`

var identifierRE = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// encodeTS writes doc as a Docusaurus TypeScript config module.
func encodeTS(doc Object) ([]byte, error) {
	w := &tsWriter{}
	w.raw("// " + generatedHeader + "\n\n")
	w.raw(tsPreamble)
	w.raw("\nconst config: Config = ")
	w.value(doc, 0)
	w.raw(";\n\nexport default config;\n")
	if w.err != nil {
		return nil, w.err
	}
	return []byte(w.b.String()), nil
}

type tsWriter struct {
	b   strings.Builder
	err error
}

func (w *tsWriter) raw(s string) { w.b.WriteString(s) }

func (w *tsWriter) indent(depth int) { w.b.WriteString(strings.Repeat("  ", depth)) }

func (w *tsWriter) value(v any, depth int) {
	if w.err != nil {
		return
	}
	switch val := v.(type) {
	case nil:
		w.raw("undefined")
	case string:
		w.str(val)
	case bool:
		w.raw(strconv.FormatBool(val))
	case int:
		w.raw(strconv.Itoa(val))
	case ThemeRef:
		if identifierRE.MatchString(string(val)) {
			w.raw("prismThemes." + string(val))
		} else {
			w.raw("prismThemes[")
			w.str(string(val))
			w.raw("]")
		}
	case Satisfies:
		w.object(val.Value, depth)
		w.raw(" satisfies " + val.Type)
	case Object:
		w.object(val, depth)
	case []any:
		w.array(val, depth)
	default:
		w.err = fmt.Errorf("typescript encoder: unsupported value of type %T", v)
	}
}

func (w *tsWriter) object(o Object, depth int) {
	if len(o) == 0 {
		w.raw("{}")
		return
	}
	w.raw("{\n")
	for _, f := range o {
		w.indent(depth + 1)
		w.key(f.Key)
		w.raw(": ")
		w.value(f.Value, depth+1)
		w.raw(",\n")
	}
	w.indent(depth)
	w.raw("}")
}

// array keeps short scalar lists on one line and breaks everything else.
func (w *tsWriter) array(items []any, depth int) {
	if len(items) == 0 {
		w.raw("[]")
		return
	}
	if allScalar(items) {
		w.raw("[")
		for i, it := range items {
			if i > 0 {
				w.raw(", ")
			}
			w.value(it, depth)
		}
		w.raw("]")
		return
	}
	w.raw("[\n")
	for _, it := range items {
		w.indent(depth + 1)
		w.value(it, depth+1)
		w.raw(",\n")
	}
	w.indent(depth)
	w.raw("]")
}

func (w *tsWriter) key(k string) {
	if identifierRE.MatchString(k) {
		w.raw(k)
		return
	}
	w.str(k)
}

func (w *tsWriter) str(s string) {
	b, err := marshalJSON(s)
	if err != nil {
		w.err = err
		return
	}
	w.b.Write(b)
}

func allScalar(items []any) bool {
	for _, it := range items {
		switch it.(type) {
		case string, bool, int, ThemeRef:
		default:
			return false
		}
	}
	return true
}

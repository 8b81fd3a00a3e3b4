// Package markup provides the small HTML writing helpers shared by
// hand-written templ components.
package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Writer writes HTML fragments and keeps the first write error.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w for component rendering.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as-is.
func (w *Writer) Raw(html string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, html)
}

// Text writes escaped text content.
func (w *Writer) Text(text string) {
	w.Raw(templ.EscapeString(text))
}

// Attr writes ` name="value"` with the value escaped.
func (w *Writer) Attr(name string, value string) {
	w.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// AttrIf writes the attribute only when value is non-empty. Whitespace is
// a value.
func (w *Writer) AttrIf(name string, value string) {
	if value == "" {
		return
	}
	w.Attr(name, value)
}

// Open writes an opening tag with the given attribute pairs.
func (w *Writer) Open(tag string, attrs ...string) {
	w.Raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		w.AttrIf(attrs[i], attrs[i+1])
	}
	w.Raw(">")
}

// Close writes a closing tag.
func (w *Writer) Close(tag string) {
	w.Raw("</" + tag + ">")
}

// Element writes a complete element with escaped text content.
func (w *Writer) Element(tag string, text string, attrs ...string) {
	w.Open(tag, attrs...)
	w.Text(text)
	w.Close(tag)
}

// Component renders a nested component. Nil components render nothing.
func (w *Writer) Component(ctx context.Context, component templ.Component) {
	if w.err != nil || component == nil {
		return
	}
	w.err = component.Render(ctx, w.w)
}

// Err returns the first error encountered.
func (w *Writer) Err() error {
	return w.err
}

// Func adapts a writer callback into a templ component.
func Func(render func(ctx context.Context, w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := NewWriter(out)
		render(ctx, w)
		return w.Err()
	})
}

// Text renders escaped text as a component.
func Text(text string) templ.Component {
	return Func(func(_ context.Context, w *Writer) {
		w.Text(text)
	})
}

// Join renders components in order.
func Join(components ...templ.Component) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		for _, component := range components {
			w.Component(ctx, component)
		}
	})
}

// Classes joins non-empty class names with single spaces.
func Classes(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " ")
}

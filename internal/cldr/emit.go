package cldr

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Emit renders the dataset as the winzones zones_gen.go source file:
// version constants, the content hash, the build timestamp and the full
// []Zone literal. The output is gofmt-formatted; there is no run-time
// parsing cost.
func (d *Document) Emit(w io.Writer, source string, buildTime time.Time) error {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "// Code generated by genzones. DO NOT EDIT.")
	fmt.Fprintln(&buf, "//")
	fmt.Fprintf(&buf, "// Source: %s\n", source)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "package winzones")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, `import "time"`)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "const (")
	fmt.Fprintf(&buf, "\totherVersion = %q\n", d.OtherVersion)
	fmt.Fprintf(&buf, "\ttypeVersion = %q\n", d.TypeVersion)
	fmt.Fprintf(&buf, "\tdatasetHash = uint64(0x%x)\n", d.Hash())
	fmt.Fprintln(&buf, ")")
	fmt.Fprintln(&buf)

	t := buildTime.UTC()
	fmt.Fprintf(&buf, "var buildDate = time.Date(%d, time.%s, %d, %d, %d, %d, 0, time.UTC)\n",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "var zones = []Zone{")
	for _, z := range d.Zones {
		quoted := make([]string, len(z.IANA))
		for i, name := range z.IANA {
			quoted[i] = fmt.Sprintf("%q", name)
		}
		fmt.Fprintf(&buf, "\t{Name: %q, Territory: %q, IANA: []string{%s}},\n",
			z.Other, z.Territory, strings.Join(quoted, ", "))
	}
	fmt.Fprintln(&buf, "}")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "format generated source")
	}
	if _, err := w.Write(src); err != nil {
		return errors.Wrap(err, "write generated source")
	}
	return nil
}

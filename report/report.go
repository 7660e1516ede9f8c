// Package report serializes a load result into the JSON document consumed by
// the analysis host. The host owns everything downstream: disassembly,
// database bookkeeping, symbol application.
package report

import (
	"io"

	"github.com/go-faster/jx"

	"nesld/layout"
	"nesld/mapper"
	"nesld/symbols"
)

// Options controls what goes into the report.
type Options struct {
	Symbols bool // embed the hardware naming table
}

// Write encodes res as a JSON document to w.
func Write(w io.Writer, res *layout.Result, opts Options) error {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("entry", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("vector", func(e *jx.Encoder) { e.UInt32(uint32(res.Vector)) })
				e.Field("address", func(e *jx.Encoder) { e.UInt32(uint32(res.Entry)) })
			})
		})

		e.Field("regions", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, r := range res.Space.Regions {
					e.Obj(func(e *jx.Encoder) {
						e.Field("name", func(e *jx.Encoder) { e.Str(r.Name) })
						e.Field("start", func(e *jx.Encoder) { e.UInt32(r.Start) })
						e.Field("size", func(e *jx.Encoder) { e.UInt32(r.Size) })
						e.Field("data", func(e *jx.Encoder) { e.Base64(r.Data) })
					})
				}
			})
		})

		e.Field("diagnostics", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, d := range res.Diags {
					e.Obj(func(e *jx.Encoder) {
						e.Field("kind", func(e *jx.Encoder) { e.Str(kindString(d.Kind)) })
						if d.Kind == layout.UnsupportedMapper {
							e.Field("mapper", func(e *jx.Encoder) { e.UInt32(uint32(d.Mapper)) })
							if name := mapper.Name(d.Mapper); name != "" {
								e.Field("name", func(e *jx.Encoder) { e.Str(name) })
							}
						}
						e.Field("message", func(e *jx.Encoder) { e.Str(d.String()) })
					})
				}
			})
		})

		if opts.Symbols {
			e.Field("symbols", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, s := range symbols.HW {
						e.Obj(func(e *jx.Encoder) {
							e.Field("addr", func(e *jx.Encoder) { e.UInt32(uint32(s.Addr)) })
							e.Field("name", func(e *jx.Encoder) { e.Str(s.Name) })
						})
					}
				})
			})
		}
	})

	buf := append(e.Bytes(), '\n')
	_, err := w.Write(buf)
	return err
}

func kindString(k layout.DiagKind) string {
	switch k {
	case layout.UnsupportedMapper:
		return "unsupported-mapper"
	case layout.TruncatedSource:
		return "truncated-source"
	}
	return "unknown"
}

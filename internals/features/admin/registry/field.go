// file: internals/features/admin/registry/field.go
package registry

import (
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

/* ===================== FIELD (form) ===================== */

type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldNumber   FieldKind = "number"
	FieldEmail    FieldKind = "email"
	FieldDate     FieldKind = "date" // format YYYY-MM-DD
	FieldCheckbox FieldKind = "checkbox"
	FieldList     FieldKind = "list" // input "A, B, C" → disimpan sebagai array
)

type FieldSpec struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Min      *int      `json:"min,omitempty"`
	Max      *int      `json:"max,omitempty"`
}

/* ===================== COLUMN (tabel) ===================== */

type ColumnKind string

const (
	ColDefault   ColumnKind = "default"
	ColImage     ColumnKind = "image"
	ColDate      ColumnKind = "date"
	ColBoolean   ColumnKind = "boolean"
	ColTruncated ColumnKind = "truncated"
	ColList      ColumnKind = "list"
)

type ColumnSpec struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Kind  ColumnKind `json:"kind"`
}

/* ===================== FORM VALUES ===================== */

// FormValues adalah hasil parse body form modal admin:
// nilai teks per field + satu file upload opsional.
type FormValues struct {
	Values map[string]string
	File   *multipart.FileHeader
}

func (v FormValues) Get(name string) string {
	return strings.TrimSpace(v.Values[name])
}

/* ===================== VALIDASI ===================== */

// ValidateFields memeriksa semua field form SEBELUM ada efek samping
// (upload/DB). Mengembalikan map field → pesan; kosong berarti lolos.
func (d *Descriptor) ValidateFields(v FormValues) map[string]string {
	errs := map[string]string{}
	for _, f := range d.Fields {
		val := v.Get(f.Name)
		if val == "" {
			if f.Required {
				errs[f.Name] = f.Label + " wajib diisi"
			}
			continue
		}
		switch f.Kind {
		case FieldNumber:
			n, err := strconv.Atoi(val)
			if err != nil {
				errs[f.Name] = f.Label + " harus berupa angka"
				continue
			}
			if f.Min != nil && n < *f.Min {
				errs[f.Name] = fmt.Sprintf("%s minimal %d", f.Label, *f.Min)
			}
			if f.Max != nil && n > *f.Max {
				errs[f.Name] = fmt.Sprintf("%s maksimal %d", f.Label, *f.Max)
			}
		case FieldEmail:
			if validate.Var(val, "email") != nil {
				errs[f.Name] = f.Label + " bukan alamat email yang valid"
			}
		case FieldDate:
			if _, err := time.Parse("2006-01-02", val); err != nil {
				errs[f.Name] = f.Label + " harus berformat YYYY-MM-DD"
			}
		}
	}
	return errs
}

/* ===================== DECODE HELPERS ===================== */

func parseBoolField(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}

func parseIntField(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// optStr: string kosong → nil (kolom nullable).
func optStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intp(n int) *int { return &n }

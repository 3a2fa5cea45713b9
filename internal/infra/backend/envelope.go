package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// listSchema accepts a bare array or an object whose data is an array.
var listSchema = gojsonschema.NewGoLoader(map[string]any{
	"anyOf": []any{
		map[string]any{"type": "array"},
		map[string]any{
			"type":     "object",
			"required": []any{"data"},
			"properties": map[string]any{
				"data": map[string]any{"type": "array"},
			},
		},
	},
})

// itemSchema accepts an object whose optional data is an object or null.
var itemSchema = gojsonschema.NewGoLoader(map[string]any{
	"type": "object",
	"properties": map[string]any{
		"data": map[string]any{"type": []any{"object", "null"}},
	},
})

// requiredItemSchema demands a data object.
var requiredItemSchema = gojsonschema.NewGoLoader(map[string]any{
	"type":     "object",
	"required": []any{"data"},
	"properties": map[string]any{
		"data": map[string]any{"type": "object"},
	},
})

// checkShape validates raw against schema and maps any mismatch to ErrUnexpectedFormat.
func checkShape(schema gojsonschema.JSONLoader, raw []byte, path string) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return domainerrors.ErrUnexpectedFormat.WithDetails(path + ": empty body")
	}

	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return domainerrors.ErrUnexpectedFormat.WithDetails(path + ": " + err.Error())
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}

		return domainerrors.ErrUnexpectedFormat.WithDetails(path + ": " + strings.Join(errs, "; "))
	}

	return nil
}

// count decodes a number that the backend sometimes sends as a string.
type count int

func (c *count) UnmarshalJSON(data []byte) error {
	text := strings.Trim(string(data), `"`)
	if text == "" || text == "null" {
		*c = 0

		return nil
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return errors.Wrapf(err, "decode count %s", text)
	}
	*c = count(n)

	return nil
}

type pagination struct {
	Page       count `json:"page"`
	Limit      count `json:"limit"`
	Total      count `json:"total"`
	TotalPages count `json:"totalPages"`
}

type listEnvelope struct {
	Data json.RawMessage `json:"data"`
	pagination
	Pagination *pagination `json:"pagination"`
}

// decodePage turns a list answer into a Page. Top-level paging fields win
// over a nested pagination object.
func decodePage[T any](raw []byte, path string) (*entity.Page[T], error) {
	if err := checkShape(listSchema, raw, path); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, domainerrors.ErrUnexpectedFormat.WithDetails(path + ": " + err.Error())
		}

		return &entity.Page[T]{Items: items, Total: len(items)}, nil
	}

	var env listEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, domainerrors.ErrUnexpectedFormat.WithDetails(path + ": " + err.Error())
	}

	var items []T
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, domainerrors.ErrUnexpectedFormat.WithDetails(path + ": " + err.Error())
	}

	meta := env.pagination
	if env.Pagination != nil {
		meta = mergePagination(meta, *env.Pagination)
	}

	return &entity.Page[T]{
		Items:      items,
		Page:       int(meta.Page),
		Limit:      int(meta.Limit),
		Total:      int(meta.Total),
		TotalPages: int(meta.TotalPages),
	}, nil
}

func mergePagination(top, nested pagination) pagination {
	if top.Page == 0 {
		top.Page = nested.Page
	}
	if top.Limit == 0 {
		top.Limit = nested.Limit
	}
	if top.Total == 0 {
		top.Total = nested.Total
	}
	if top.TotalPages == 0 {
		top.TotalPages = nested.TotalPages
	}

	return top
}

// decodeItem extracts data from a single-record answer. A missing data field
// yields nil unless required is set.
func decodeItem[T any](raw []byte, path string, required bool) (*T, error) {
	if !required && len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	schema := itemSchema
	if required {
		schema = requiredItemSchema
	}
	if err := checkShape(schema, raw, path); err != nil {
		return nil, err
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, domainerrors.ErrUnexpectedFormat.WithDetails(path + ": " + err.Error())
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}

	item := new(T)
	if err := json.Unmarshal(env.Data, item); err != nil {
		return nil, domainerrors.ErrUnexpectedFormat.WithDetails(path + ": " + err.Error())
	}

	return item, nil
}

package segment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// apiSegment is the public segment API shape.
type apiSegment struct {
	Segment     [2]float64 `json:"segment" validate:"dive,gte=0"`
	Category    Category   `json:"category" validate:"required,segment_category"`
	ActionType  ActionType `json:"actionType" validate:"omitempty,segment_action"`
	UUID        string     `json:"UUID" validate:"max=128"`
	Description string     `json:"description" validate:"max=512"`
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("segment_category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("segment_action", func(fl validator.FieldLevel) bool {
		return ActionType(fl.Field().String()).IsValid()
	})
	return v
}()

// Decode reads a JSON array of segments in the public API shape.
// A missing action type defaults to skip. Segments without a UUID are local.
func Decode(r io.Reader) ([]*Segment, error) {
	var raw []apiSegment
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode segments: %w", err)
	}
	out := make([]*Segment, 0, len(raw))
	for i, a := range raw {
		if err := validate.Struct(a); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, formatError(err))
		}
		seg := &Segment{
			Segment:     a.Segment,
			Category:    a.Category,
			ActionType:  a.ActionType,
			UUID:        a.UUID,
			Description: a.Description,
		}
		if seg.ActionType == "" {
			seg.ActionType = ActionSkip
		}
		if seg.UUID == "" {
			seg.Source = SourceLocal
		}
		if err := seg.Validate(); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		out = append(out, seg)
	}
	return out, nil
}

// formatError joins field errors into one readable message.
func formatError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		msgs = append(msgs, e.Field()+" "+friendlyMessage(e))
	}
	sort.Strings(msgs)
	return errors.New(strings.Join(msgs, "; "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "segment_category":
		return fmt.Sprintf("has unknown category %q", e.Value())
	case "segment_action":
		return fmt.Sprintf("has unknown action type %q", e.Value())
	default:
		return "is invalid"
	}
}

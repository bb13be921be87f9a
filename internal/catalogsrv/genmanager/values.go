package genmanager

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/catalogsrv/normalize"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

// maxValueLen is the storage limit on a normalized attribute value.
const maxValueLen = 30

// ValueBag is the raw values object of a create/update request, keyed by
// characteristic id. Values stay untyped until they are checked against
// each characteristic's declared type.
type ValueBag struct {
	values map[uuid.UUID]gjson.Result
}

// ParseValueBag decodes the raw JSON values object. A nil or empty payload
// yields an empty bag. Keys that are not valid uuids are rejected.
func ParseValueBag(raw []byte) (*ValueBag, apperrors.Error) {
	bag := &ValueBag{values: make(map[uuid.UUID]gjson.Result)}
	if len(raw) == 0 {
		return bag, nil
	}
	parsed := gjson.ParseBytes(raw)
	if parsed.Type == gjson.Null {
		return bag, nil
	}
	if !parsed.IsObject() {
		return nil, ErrInvalidValue.Msg("values must be an object keyed by characteristic id")
	}
	var err apperrors.Error
	parsed.ForEach(func(key, value gjson.Result) bool {
		id, parseErr := uuid.Parse(key.String())
		if parseErr != nil {
			err = ErrInvalidValue.Msg("invalid characteristic id: " + key.String())
			return false
		}
		bag.values[id] = value
		return true
	})
	if err != nil {
		return nil, err
	}
	return bag, nil
}

// Has reports whether the bag explicitly carries a key for the
// characteristic, whatever its value.
func (b *ValueBag) Has(characteristicID uuid.UUID) bool {
	_, ok := b.values[characteristicID]
	return ok
}

// Len returns the number of keys in the bag.
func (b *ValueBag) Len() int {
	return len(b.values)
}

// candidateValue is a resolved attribute value in both canonical forms.
type candidateValue struct {
	// Storage is the persisted form (upper-cased, accent-stripped).
	Storage string
	// Comparison is the form equality is defined over.
	Comparison string
}

// resolveValues checks the bag against the applicable characteristics and
// returns one candidate per characteristic that received a value. Keys
// explicitly present but empty are rejected; keys absent from the bag mean
// "not set". Keys for non-applicable characteristics are ignored.
func resolveValues(applicable []*models.TechnicalCharacteristic, bag *ValueBag) (map[uuid.UUID]*candidateValue, apperrors.Error) {
	out := make(map[uuid.UUID]*candidateValue, bag.Len())
	for _, tc := range applicable {
		raw, ok := bag.values[tc.CharacteristicID]
		if !ok {
			continue
		}
		storage, err := renderValue(tc, raw)
		if err != nil {
			return nil, err
		}
		if utf8.RuneCountInString(storage) > maxValueLen {
			return nil, ErrValueTooLong.Msg("value for " + tc.Name + " exceeds " + strconv.Itoa(maxValueLen) + " characters")
		}
		out[tc.CharacteristicID] = &candidateValue{
			Storage:    storage,
			Comparison: normalize.ForComparison(storage),
		}
	}
	return out, nil
}

// renderValue converts a raw JSON value into the canonical storage string
// for the characteristic's declared type.
func renderValue(tc *models.TechnicalCharacteristic, raw gjson.Result) (string, apperrors.Error) {
	if raw.Type == gjson.Null {
		return "", ErrEmptyValue.Msg("value for " + tc.Name + " must not be null")
	}
	switch tc.ValueType {
	case models.ValueTypeString:
		if raw.Type != gjson.String {
			return "", ErrInvalidValue.Msg(tc.Name + " expects a string")
		}
		trimmed := normalize.Trim(raw.String())
		if normalize.IsBlank(trimmed) {
			return "", ErrEmptyValue.Msg("value for " + tc.Name + " must not be empty")
		}
		return normalize.ForStorage(trimmed), nil

	case models.ValueTypeNumber:
		if raw.Type != gjson.Number {
			return "", ErrInvalidValue.Msg(tc.Name + " expects a number")
		}
		return strconv.FormatFloat(raw.Num, 'f', -1, 64), nil

	case models.ValueTypeBoolean:
		if raw.Type != gjson.True && raw.Type != gjson.False {
			return "", ErrInvalidValue.Msg(tc.Name + " expects a boolean")
		}
		if raw.Bool() {
			return "TRUE", nil
		}
		return "FALSE", nil

	case models.ValueTypeEnum:
		if tc.EnumMultiple {
			return renderMultiEnum(tc, raw)
		}
		return renderEnumOption(tc, raw)
	}
	return "", ErrInvalidValue.Msg(tc.Name + " has an unknown value type")
}

func renderEnumOption(tc *models.TechnicalCharacteristic, raw gjson.Result) (string, apperrors.Error) {
	if raw.Type != gjson.String {
		return "", ErrInvalidValue.Msg(tc.Name + " expects an enum option")
	}
	trimmed := normalize.Trim(raw.String())
	if normalize.IsBlank(trimmed) {
		return "", ErrEmptyValue.Msg("value for " + tc.Name + " must not be empty")
	}
	canonical := normalize.ForStorage(trimmed)
	if !tc.HasEnumOption(canonical) {
		return "", ErrInvalidValue.Msg(trimmed + " is not an option of " + tc.Name)
	}
	return canonical, nil
}

// renderMultiEnum canonicalizes a selection of options, deduplicates it and
// orders it by the characteristic's declared option order so that equal
// selections always render to the same string.
func renderMultiEnum(tc *models.TechnicalCharacteristic, raw gjson.Result) (string, apperrors.Error) {
	var rawOptions []gjson.Result
	switch {
	case raw.IsArray():
		rawOptions = raw.Array()
	case raw.Type == gjson.String:
		rawOptions = []gjson.Result{raw}
	default:
		return "", ErrInvalidValue.Msg(tc.Name + " expects a list of enum options")
	}
	if len(rawOptions) == 0 {
		return "", ErrEmptyValue.Msg("value for " + tc.Name + " must not be empty")
	}

	position := make(map[string]int, len(tc.EnumOptions))
	for i, opt := range tc.EnumOptions {
		position[opt] = i
	}
	seen := make(map[string]bool, len(rawOptions))
	var selected []string
	for _, opt := range rawOptions {
		if opt.Type != gjson.String {
			return "", ErrInvalidValue.Msg(tc.Name + " expects a list of enum options")
		}
		canonical := normalize.ForStorage(normalize.Trim(opt.String()))
		if _, ok := position[canonical]; !ok {
			return "", ErrInvalidValue.Msg(opt.String() + " is not an option of " + tc.Name)
		}
		if !seen[canonical] {
			seen[canonical] = true
			selected = append(selected, canonical)
		}
	}
	sort.Slice(selected, func(i, j int) bool {
		return position[selected[i]] < position[selected[j]]
	})
	return strings.Join(selected, ","), nil
}

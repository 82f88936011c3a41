package schema

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Description is the machine-description record.
type Description struct {
	Initial     int      `json:"initial" yaml:"initial" mapstructure:"initial"`
	Final       []int    `json:"final" yaml:"final" mapstructure:"final"`
	White       string   `json:"white" yaml:"white" mapstructure:"white"`
	Transitions []Record `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// Record is one raw transition entry.
type Record struct {
	From  int    `json:"from" yaml:"from" mapstructure:"from"`
	Read  string `json:"read" yaml:"read" mapstructure:"read"`
	To    int    `json:"to" yaml:"to" mapstructure:"to"`
	Write string `json:"write" yaml:"write" mapstructure:"write"`
	Dir   string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// Decode extracts a Description from a generic document, checking that every
// required field is present and convertible.
func Decode(doc map[string]any) (*Description, error) {
	var errs []error
	desc := &Description{}

	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	collect(decodeField(doc, "initial", "initial", &desc.Initial, "must be an integer"))
	collect(decodeField(doc, "final", "final", &desc.Final, "must be a list of integers"))
	collect(decodeField(doc, "white", "white", &desc.White, "must be a single character"))

	var items []any
	if err := decodeField(doc, "transitions", "transitions", &items, "must be a list"); err != nil {
		collect(err)
	} else {
		desc.Transitions = make([]Record, 0, len(items))
		for i, item := range items {
			prefix := fmt.Sprintf("transitions[%d]", i)
			var entry map[string]any
			if err := weakDecode(item, &entry); err != nil || entry == nil {
				collect(&domain.SpecError{Field: prefix, Reason: "must be an object", Value: item})
				continue
			}

			var rec Record
			collect(decodeField(entry, "from", prefix+".from", &rec.From, "must be an integer"))
			collect(decodeField(entry, "read", prefix+".read", &rec.Read, "must be a single character"))
			collect(decodeField(entry, "to", prefix+".to", &rec.To, "must be an integer"))
			collect(decodeField(entry, "write", prefix+".write", &rec.Write, "must be a single character"))
			collect(decodeField(entry, "dir", prefix+".dir", &rec.Dir, `must be "L" or "R"`))
			desc.Transitions = append(desc.Transitions, rec)
		}
	}

	if err := domain.Collect(errs); err != nil {
		return nil, err
	}
	return desc, nil
}

// Table builds the Transition Table the description declares.
func (d *Description) Table() (*domain.Table, error) {
	rules := make([]domain.Rule, len(d.Transitions))
	for i, r := range d.Transitions {
		rules[i] = domain.Rule{From: r.From, Read: r.Read, To: r.To, Write: r.Write, Dir: r.Dir}
	}
	return domain.NewTable(d.Initial, d.Final, d.White, rules)
}

// Compile decodes doc and builds its table.
func Compile(doc map[string]any) (*domain.Table, error) {
	desc, err := Decode(doc)
	if err != nil {
		return nil, err
	}
	return desc.Table()
}

// FromTable renders a table back into its description. Shadowed rules are kept.
func FromTable(t *domain.Table) Description {
	desc := Description{
		Initial:     int(t.Initial()),
		Final:       make([]int, 0),
		White:       t.Blank().String(),
		Transitions: make([]Record, 0),
	}
	for _, s := range t.Finals() {
		desc.Final = append(desc.Final, int(s))
	}
	for _, tr := range t.Transitions() {
		desc.Transitions = append(desc.Transitions, Record{
			From:  int(tr.From),
			Read:  tr.Read.String(),
			To:    int(tr.To),
			Write: tr.Write.String(),
			Dir:   tr.Move.String(),
		})
	}
	return desc
}

// Fingerprint identifies the behaviour of a table: two tables with the same
// fingerprint decide every word identically.
func Fingerprint(t *domain.Table) string {
	data, err := json.Marshal(FromTable(t))
	if err != nil {
		// Description only holds ints and strings.
		panic(fmt.Sprintf("schema: marshal description: %v", err))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func decodeField(doc map[string]any, key, path string, out any, reason string) error {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return &domain.SpecError{Field: path, Reason: "is required"}
	}
	if err := weakDecode(raw, out); err != nil {
		return &domain.SpecError{Field: path, Reason: reason, Value: raw}
	}
	return nil
}

func weakDecode(input, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.DecodeHookFuncKind(strictIntHook),
			mapstructure.DecodeHookFuncKind(strictStringHook),
		),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// strictIntHook narrows weak typing for integer targets to what a decimal
// integer parser accepts: integers, whole floats and decimal strings.
// Booleans, fractional floats and blank strings are rejected.
func strictIntHook(from, to reflect.Kind, data any) (any, error) {
	if !isIntKind(to) {
		return data, nil
	}
	switch from {
	case reflect.Bool:
		return nil, fmt.Errorf("boolean %v is not an integer", data)
	case reflect.Float32, reflect.Float64:
		f := reflect.ValueOf(data).Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%v is not an integer", data)
		}
	case reflect.String:
		// Also covers json.Number.
		str := reflect.ValueOf(data).String()
		n, err := strconv.Atoi(str)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", str)
		}
		return n, nil
	}
	return data, nil
}

// strictStringHook rejects booleans where a symbol is expected.
func strictStringHook(from, to reflect.Kind, data any) (any, error) {
	if to == reflect.String && from == reflect.Bool {
		return nil, fmt.Errorf("boolean %v is not a symbol", data)
	}
	return data, nil
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

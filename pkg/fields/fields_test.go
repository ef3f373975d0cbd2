package fields_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldkit/pkg/fields"
)

func TestPrimitives_AllowNullAcceptsNull(t *testing.T) {
	epoch := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	descriptors := map[string]fields.Descriptor{
		"text":      fields.NewText(fields.AllowNull(), fields.MinLength(3)),
		"boolean":   fields.NewBoolean(fields.AllowNull()),
		"number":    fields.NewNumber(fields.AllowNull(), fields.Min(5)),
		"timestamp": fields.NewTimestamp(fields.AllowNull(), fields.Earliest(epoch)),
		"enum":      fields.MustEnum([]any{"a"}, fields.AllowNull()),
		"list":      fields.MustList(fields.NewText(), fields.AllowNull()),
		"dict":      fields.MustDict(nil, fields.AllowNull()),
	}

	var nilMap map[string]any
	var nilPtr *string
	ptrToNilPtr := &nilPtr
	for name, descriptor := range descriptors {
		for _, value := range []any{nil, fields.Unset, nilMap, nilPtr, ptrToNilPtr} {
			if err := descriptor.Validate(value, name); err != nil {
				t.Fatalf("%s: expected null %v to be accepted, got %v", name, value, err)
			}
		}
	}
}

func TestPrimitives_NullRejectedByDefault(t *testing.T) {
	descriptors := []fields.Descriptor{
		fields.NewText(),
		fields.NewBoolean(),
		fields.NewNumber(),
		fields.NewTimestamp(),
		fields.MustEnum([]any{"a"}),
		fields.MustList(fields.NewText()),
		fields.MustDict(nil),
	}
	for _, descriptor := range descriptors {
		err := descriptor.Validate(nil, "field")
		if !errors.Is(err, fields.ErrNullValue) {
			t.Fatalf("%s: expected ErrNullValue, got %v", descriptor.Kind(), err)
		}
		fieldErr, ok := fields.AsFieldError(err)
		if !ok || fieldErr.Field != "field" {
			t.Fatalf("%s: expected field error at %q, got %#v", descriptor.Kind(), "field", err)
		}
	}
}

func TestBoundedPrimitives(t *testing.T) {
	epoch := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name       string
		descriptor fields.Descriptor
		value      any
		want       error
	}{
		{name: "text at max", descriptor: fields.NewText(fields.MaxLength(5)), value: "abcde"},
		{name: "text over max", descriptor: fields.NewText(fields.MaxLength(5)), value: "abcdef", want: fields.ErrValueTooLarge},
		{name: "text at min", descriptor: fields.NewText(fields.MinLength(3)), value: "abc"},
		{name: "text under min", descriptor: fields.NewText(fields.MinLength(3)), value: "ab", want: fields.ErrValueTooSmall},
		{name: "text empty skips min", descriptor: fields.NewText(fields.MinLength(3)), value: ""},
		{name: "text counts runes", descriptor: fields.NewText(fields.MaxLength(5)), value: "héllo"},
		{name: "number at max", descriptor: fields.NewNumber(fields.Max(10)), value: 10},
		{name: "number over max", descriptor: fields.NewNumber(fields.Max(10)), value: 11, want: fields.ErrValueTooLarge},
		{name: "number float over max", descriptor: fields.NewNumber(fields.Max(10)), value: 10.5, want: fields.ErrValueTooLarge},
		{name: "number at min", descriptor: fields.NewNumber(fields.Min(2)), value: int64(2)},
		{name: "number under min", descriptor: fields.NewNumber(fields.Min(2)), value: uint8(1), want: fields.ErrValueTooSmall},
		{name: "number zero skips min", descriptor: fields.NewNumber(fields.Min(2)), value: 0},
		{name: "number zero skips max", descriptor: fields.NewNumber(fields.Max(-1)), value: 0},
		{name: "number json", descriptor: fields.NewNumber(fields.Max(10)), value: json.Number("12"), want: fields.ErrValueTooLarge},
		{name: "number int64 at 2^53 max", descriptor: fields.NewNumber(fields.Max(9007199254740992)), value: int64(9007199254740992)},
		{name: "number int64 past 2^53 max", descriptor: fields.NewNumber(fields.Max(9007199254740992)), value: int64(9007199254740993), want: fields.ErrValueTooLarge},
		{name: "number json past 2^53 max", descriptor: fields.NewNumber(fields.Max(9007199254740992)), value: json.Number("9007199254740993"), want: fields.ErrValueTooLarge},
		{name: "number uint64 under 2^63 min", descriptor: fields.NewNumber(fields.Min(1 << 63)), value: uint64(1<<63 - 1), want: fields.ErrValueTooSmall},
		{name: "number uint64 at 2^63 min", descriptor: fields.NewNumber(fields.Min(1 << 63)), value: uint64(1 << 63)},
		{name: "number json beyond float range", descriptor: fields.NewNumber(fields.Max(10)), value: json.Number("1e400"), want: fields.ErrValueTooLarge},
		{name: "number json below float range", descriptor: fields.NewNumber(fields.Min(-10)), value: json.Number("-1e400"), want: fields.ErrValueTooSmall},
		{name: "number json beyond float range unbounded", descriptor: fields.NewNumber(), value: json.Number("1e400")},
		{name: "timestamp at latest", descriptor: fields.NewTimestamp(fields.Latest(epoch)), value: epoch},
		{name: "timestamp after latest", descriptor: fields.NewTimestamp(fields.Latest(epoch)), value: epoch.Add(time.Second), want: fields.ErrValueTooLarge},
		{name: "timestamp at earliest", descriptor: fields.NewTimestamp(fields.Earliest(epoch)), value: epoch},
		{name: "timestamp before earliest", descriptor: fields.NewTimestamp(fields.Earliest(epoch)), value: epoch.Add(-time.Second), want: fields.ErrValueTooSmall},
		{name: "timestamp zero skips earliest", descriptor: fields.NewTimestamp(fields.Earliest(epoch)), value: time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.descriptor.Validate(tc.value, "field")
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTypeMismatch(t *testing.T) {
	cases := []struct {
		name       string
		descriptor fields.Descriptor
		value      any
	}{
		{name: "text given number", descriptor: fields.NewText(), value: 42},
		{name: "text given json number", descriptor: fields.NewText(), value: json.Number("4")},
		{name: "boolean given string", descriptor: fields.NewBoolean(), value: "true"},
		{name: "number given bool", descriptor: fields.NewNumber(), value: true},
		{name: "timestamp given string", descriptor: fields.NewTimestamp(), value: "2020-01-01"},
		{name: "dict given slice", descriptor: fields.MustDict(nil), value: []any{"a"}},
		{name: "dict given int keys", descriptor: fields.MustDict(nil), value: map[int]any{1: "a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.descriptor.Validate(tc.value, "field")
			if !errors.Is(err, fields.ErrTypeMismatch) {
				t.Fatalf("expected ErrTypeMismatch, got %v", err)
			}
			fieldErr, _ := fields.AsFieldError(err)
			if diff := cmp.Diff([]string{tc.descriptor.Kind().String()}, fieldErr.Expected); diff != "" {
				t.Fatalf("expected kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrimitives_AcceptNamedAndPointerValues(t *testing.T) {
	type level string
	name := "gopher"
	count := 3

	if err := fields.NewText().Validate(level("admin"), "level"); err != nil {
		t.Fatalf("expected named string to be accepted: %v", err)
	}
	if err := fields.NewText().Validate(&name, "name"); err != nil {
		t.Fatalf("expected string pointer to be accepted: %v", err)
	}
	if err := fields.NewNumber(fields.Max(3)).Validate(&count, "count"); err != nil {
		t.Fatalf("expected int pointer to be accepted: %v", err)
	}
}

func TestEnum_Membership(t *testing.T) {
	enum := fields.MustEnum([]any{"MEMBER", "ADMIN"}, fields.WithDefault("MEMBER"))

	if err := enum.Validate("MEMBER", "userlevel"); err != nil {
		t.Fatalf("expected MEMBER to validate: %v", err)
	}
	err := enum.Validate("OWNER", "userlevel")
	if !errors.Is(err, fields.ErrNotEnumMember) {
		t.Fatalf("expected ErrNotEnumMember, got %v", err)
	}
	fieldErr, _ := fields.AsFieldError(err)
	if fieldErr.Field != "userlevel" || fieldErr.Value != "OWNER" {
		t.Fatalf("unexpected error details: %#v", fieldErr)
	}
	if diff := cmp.Diff([]string{"MEMBER", "ADMIN"}, fieldErr.Expected); diff != "" {
		t.Fatalf("expected members mismatch (-want +got):\n%s", diff)
	}
	if enum.Default() != "MEMBER" {
		t.Fatalf("expected default MEMBER, got %v", enum.Default())
	}
}

func TestEnum_NumericMembersCompareByValue(t *testing.T) {
	enum := fields.MustEnum([]any{1, 2, 3})
	for _, value := range []any{1, int64(2), float64(3), json.Number("1")} {
		if err := enum.Validate(value, "n"); err != nil {
			t.Fatalf("expected %v (%T) to be a member: %v", value, value, err)
		}
	}
	if err := enum.Validate("1", "n"); !errors.Is(err, fields.ErrNotEnumMember) {
		t.Fatalf("expected string \"1\" to be rejected, got %v", err)
	}

	large := fields.MustEnum([]any{int64(9007199254740993), uint64(1<<63 + 1)})
	for _, value := range []any{int64(9007199254740993), json.Number("9007199254740993"), uint64(1<<63 + 1)} {
		if err := large.Validate(value, "n"); err != nil {
			t.Fatalf("expected %v (%T) to be a member: %v", value, value, err)
		}
	}
	for _, value := range []any{int64(9007199254740992), float64(9007199254740992), uint64(1 << 63)} {
		if err := large.Validate(value, "n"); !errors.Is(err, fields.ErrNotEnumMember) {
			t.Fatalf("expected %v (%T) to be rejected, got %v", value, value, err)
		}
	}
}

func TestEnum_RequiresValues(t *testing.T) {
	if _, err := fields.NewEnum(nil); !errors.Is(err, fields.ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
	}
}

func TestList_Homogeneous(t *testing.T) {
	list := fields.MustList(fields.NewNumber())

	if err := list.Validate([]any{1, 2, 3}, "scores"); err != nil {
		t.Fatalf("expected numbers to validate: %v", err)
	}
	if err := list.Validate([3]int{1, 2, 3}, "scores"); err != nil {
		t.Fatalf("expected arrays to validate: %v", err)
	}

	err := list.Validate([]any{1, "x", 3}, "scores")
	if !errors.Is(err, fields.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	fieldErr, _ := fields.AsFieldError(err)
	if fieldErr.Field != "scores[1]" || fieldErr.Value != "x" {
		t.Fatalf("expected failure at scores[1] for \"x\", got %#v", fieldErr)
	}
}

func TestList_NotASequence(t *testing.T) {
	list := fields.MustList(fields.NewText())
	for _, value := range []any{"abc", 12, map[string]any{}} {
		if err := list.Validate(value, "tags"); !errors.Is(err, fields.ErrNotASequence) {
			t.Fatalf("expected ErrNotASequence for %T, got %v", value, err)
		}
	}
}

func TestList_AnyOf(t *testing.T) {
	list := fields.MustAnyOf([]fields.Descriptor{fields.NewText(), fields.NewNumber()})

	if err := list.Validate([]any{"a", 2, "c"}, "tags"); err != nil {
		t.Fatalf("expected mixed elements to validate: %v", err)
	}

	err := list.Validate([]any{"a", true}, "tags")
	if !errors.Is(err, fields.ErrNoMatchingVariant) {
		t.Fatalf("expected ErrNoMatchingVariant, got %v", err)
	}
	fieldErr, _ := fields.AsFieldError(err)
	if fieldErr.Field != "tags[1]" {
		t.Fatalf("expected failure at tags[1], got %q", fieldErr.Field)
	}
	if diff := cmp.Diff([]string{"text", "number"}, fieldErr.Expected); diff != "" {
		t.Fatalf("expected candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestList_AnyOfDiscardsCandidateFailures(t *testing.T) {
	short := fields.NewText(fields.MaxLength(3))
	entry := fields.MustDict([]fields.Component{{Name: "label", Type: fields.NewText()}})
	list := fields.MustAnyOf([]fields.Descriptor{short, entry})

	value := []any{"tag", map[string]any{"label": "a longer label"}}
	if err := list.Validate(value, "labels"); err != nil {
		t.Fatalf("expected union elements to validate: %v", err)
	}
	if err := list.Validate([]any{"toolong"}, "labels"); !errors.Is(err, fields.ErrNoMatchingVariant) {
		t.Fatalf("expected ErrNoMatchingVariant, got %v", err)
	}
}

func TestList_ConstructorErrors(t *testing.T) {
	if _, err := fields.NewList(nil); !errors.Is(err, fields.ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor for nil item, got %v", err)
	}
	if _, err := fields.NewAnyOf(nil); !errors.Is(err, fields.ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor for empty candidates, got %v", err)
	}
	if _, err := fields.NewAnyOf([]fields.Descriptor{fields.NewText(), nil}); !errors.Is(err, fields.ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor for nil candidate, got %v", err)
	}
}

func TestList_DefaultIsFreshPerCall(t *testing.T) {
	empty := fields.MustList(fields.NewText())
	if got, ok := empty.Default().([]any); !ok || got == nil || len(got) != 0 {
		t.Fatalf("expected non-nil empty default, got %#v", empty.Default())
	}

	seeded := fields.MustList(fields.NewText(), fields.WithDefault([]any{"a", "b"}))
	one := seeded.Default().([]any)
	one[0] = "z"
	two := seeded.Default().([]any)
	if diff := cmp.Diff([]any{"a", "b"}, two); diff != "" {
		t.Fatalf("default was aliased (-want +got):\n%s", diff)
	}
}

func TestDict_DefaultMaterializesComponents(t *testing.T) {
	dict := fields.MustDict([]fields.Component{
		{Name: "username", Type: fields.NewText()},
		{Name: "active", Type: fields.NewBoolean(fields.WithDefault(true))},
	})

	want := map[string]any{"username": nil, "active": true}
	if diff := cmp.Diff(want, dict.Default()); diff != "" {
		t.Fatalf("default mismatch (-want +got):\n%s", diff)
	}
}

func TestDict_DefaultsDoNotShareState(t *testing.T) {
	profile := fields.MustDict([]fields.Component{
		{Name: "tags", Type: fields.MustList(fields.NewText())},
	})
	dict := fields.MustDict([]fields.Component{{Name: "profile", Type: profile}})

	first := dict.Default().(map[string]any)
	nested := first["profile"].(map[string]any)
	nested["tags"] = append(nested["tags"].([]any), "mutated")
	nested["extra"] = 1

	second := dict.Default().(map[string]any)
	want := map[string]any{"profile": map[string]any{"tags": []any{}}}
	if diff := cmp.Diff(want, second); diff != "" {
		t.Fatalf("second default was affected by mutation (-want +got):\n%s", diff)
	}
}

func TestDict_AllowNullDefaultsToNil(t *testing.T) {
	dict := fields.MustDict([]fields.Component{{Name: "street", Type: fields.NewText()}}, fields.AllowNull())
	if got := dict.Default(); got != nil {
		t.Fatalf("expected nil default, got %#v", got)
	}
}

func TestDict_ValidateReportsNestedPath(t *testing.T) {
	address := fields.MustDict([]fields.Component{
		{Name: "street", Type: fields.NewText(fields.MaxLength(10))},
		{Name: "number", Type: fields.NewNumber()},
	})
	dict := fields.MustDict([]fields.Component{{Name: "address", Type: address}})

	valid := map[string]any{"address": map[string]any{"street": "Main", "number": 4}}
	if err := dict.Validate(valid, "user"); err != nil {
		t.Fatalf("expected valid dict: %v", err)
	}

	invalid := map[string]any{"address": map[string]any{"street": "A very long street", "number": 4}}
	err := dict.Validate(invalid, "user")
	if !errors.Is(err, fields.ErrValueTooLarge) {
		t.Fatalf("expected ErrValueTooLarge, got %v", err)
	}
	if fieldErr, _ := fields.AsFieldError(err); fieldErr.Field != "user.address.street" {
		t.Fatalf("expected path user.address.street, got %q", fieldErr.Field)
	}

	missing := map[string]any{"address": map[string]any{"street": "Main"}}
	err = dict.Validate(missing, "")
	if !errors.Is(err, fields.ErrNullValue) {
		t.Fatalf("expected ErrNullValue for absent key, got %v", err)
	}
	if fieldErr, _ := fields.AsFieldError(err); fieldErr.Field != "address.number" {
		t.Fatalf("expected path address.number, got %q", fieldErr.Field)
	}
}

func TestDict_ListElementPath(t *testing.T) {
	dict := fields.MustDict([]fields.Component{
		{Name: "tags", Type: fields.MustList(fields.NewText())},
	})
	err := dict.Validate(map[string]any{"tags": []string{"a"}}, "post")
	if err != nil {
		t.Fatalf("expected []string to validate: %v", err)
	}
	err = dict.Validate(map[string]any{"tags": []any{"a", 1}}, "post")
	if fieldErr, ok := fields.AsFieldError(err); !ok || fieldErr.Field != "post.tags[1]" {
		t.Fatalf("expected failure at post.tags[1], got %v", err)
	}
}

func TestDict_ExtraKeys(t *testing.T) {
	components := []fields.Component{{Name: "street", Type: fields.NewText()}}
	value := map[string]any{"street": "Main", "zip": "1234", "city": "Oslo"}

	if err := fields.MustDict(components).Validate(value, "address"); err != nil {
		t.Fatalf("expected extra keys to be ignored: %v", err)
	}

	err := fields.MustDict(components, fields.Strict()).Validate(value, "address")
	if !errors.Is(err, fields.ErrUnexpectedKey) {
		t.Fatalf("expected ErrUnexpectedKey, got %v", err)
	}
	if fieldErr, _ := fields.AsFieldError(err); fieldErr.Field != "address.city" {
		t.Fatalf("expected first sorted extra key address.city, got %q", fieldErr.Field)
	}
}

func TestDict_ConstructorErrors(t *testing.T) {
	cases := [][]fields.Component{
		{{Name: " ", Type: fields.NewText()}},
		{{Name: "a", Type: nil}},
		{{Name: "a", Type: fields.NewText()}, {Name: "a", Type: fields.NewNumber()}},
	}
	for _, components := range cases {
		if _, err := fields.NewDict(components); !errors.Is(err, fields.ErrInvalidDescriptor) {
			t.Fatalf("expected ErrInvalidDescriptor for %v, got %v", components, err)
		}
	}
}

func TestDeferredDefaults(t *testing.T) {
	calls := 0
	producer := func() any {
		calls++
		return calls
	}

	number := fields.NewNumber(fields.WithDefaultFunc(producer))
	if number.Default() != 1 || number.Default() != 1 || calls != 1 {
		t.Fatalf("expected scalar producer to run once at construction, calls=%d default=%v", calls, number.Default())
	}

	list := fields.MustList(fields.NewNumber(), fields.WithDefaultFunc(func() any {
		calls++
		return []any{calls}
	}))
	first := list.Default()
	second := list.Default()
	if cmp.Equal(first, second) {
		t.Fatalf("expected composite producer to run per call, got %v and %v", first, second)
	}
}

func TestPlainText(t *testing.T) {
	text := fields.NewText(fields.PlainText())
	for _, value := range []string{"Tom & Jerry", "a < b", "plain words"} {
		if err := text.Validate(value, "bio"); err != nil {
			t.Fatalf("expected %q to be plain text: %v", value, err)
		}
	}
	for _, value := range []string{"<b>bold</b>", "hi<script>alert(1)</script>"} {
		if err := text.Validate(value, "bio"); !errors.Is(err, fields.ErrUnsafeMarkup) {
			t.Fatalf("expected ErrUnsafeMarkup for %q, got %v", value, err)
		}
	}
}

func TestFieldError_Message(t *testing.T) {
	err := fields.NewNumber(fields.Max(3)).Validate(4, "count")
	msg := err.Error()
	for _, fragment := range []string{"'4'", "'count'", "value too large", "limit 3"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in message %q", fragment, msg)
		}
	}
}

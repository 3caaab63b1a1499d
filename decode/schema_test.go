package decode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewStruct(t *testing.T) {
	tests := []struct {
		name   string
		schema *Struct
		size   uint32
		offs   map[string]uint32
	}{
		{"point", testPoint, 8, map[string]uint32{"x": 0, "y": 4}},
		{"node", testNode, 24, map[string]uint32{"id": 0, "flags": 4, "next": 8, "cookie": 16}},
		{"link", testLink, 16, map[string]uint32{"tag": 0, "node": 8}},
		{"chars", MustStruct("chars", Chars("name", 5), U32("n")), 12, map[string]uint32{"name": 0, "n": 8}},
		{"embedded", MustStruct("outer", U8("a"), Embed("p", testPoint)), 12, map[string]uint32{"a": 0, "p": 4}},
		{"elements", MustStruct("list", U16("n"), Elems("items", testPoint, 3)), 28, map[string]uint32{"n": 0, "items": 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.schema.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", tt.schema.Size(), tt.size)
			}
			for name, want := range tt.offs {
				got, ok := tt.schema.Offset(name)
				if !ok || got != want {
					t.Errorf("Offset(%q) = %d, %v, want %d", name, got, ok, want)
				}
			}
		})
	}
}

func TestNewStructErrors(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   string
	}{
		{"embed without schema", []Field{{Name: "x", Kind: KindStruct}}, "without schema"},
		{"pointer without schema", []Field{{Name: "p", Kind: KindPtr}}, "without target"},
		{"empty chars", []Field{{Name: "s", Kind: KindChars}}, "without length"},
		{"flags without table", []Field{U32("f").Flags(nil, "X_???")}, "needs a table"},
		{"hex on struct", []Field{Embed("p", testPoint).Hex()}, "hex format"},
		{"duplicate", []Field{U32("a"), U32("a")}, "declared twice"},
		{"unknown kind", []Field{{Name: "k", Kind: Kind(99)}}, "unknown kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStruct("bad", tt.fields...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestMustStructPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustStruct should panic on an invalid schema")
		}
	}()
	MustStruct("bad", Ptr("p", nil))
}

func TestVisible(t *testing.T) {
	s := MustStruct("caps", S32("a"), S32("b"), Reserved("rsv", KindU32, 3), S32("c").Hide())
	if diff := cmp.Diff([]string{"a", "b"}, s.Visible()); diff != "" {
		t.Errorf("Visible() mismatch (-want +got):\n%s", diff)
	}
	if s.Size() != 24 {
		t.Errorf("Size() = %d, want 24", s.Size())
	}
}

func TestWithCommentCopies(t *testing.T) {
	annotated := testPoint.WithComment(func(*Context, Record) string { return "x" })
	if testPoint.comment != nil {
		t.Error("WithComment modified the original schema")
	}
	if annotated.comment == nil || annotated.Size() != testPoint.Size() {
		t.Error("WithComment lost the comment or the layout")
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		width  uint32
		signed bool
		scalar bool
	}{
		{KindU8, "u8", 1, false, true},
		{KindS16, "s16", 2, true, true},
		{KindS32, "s32", 4, true, true},
		{KindU64, "u64", 8, false, true},
		{KindPtr, "ptr", 8, false, false},
		{KindStruct, "struct", 0, false, false},
		{Kind(99), "unknown", 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kind.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.kind.String(), tt.name)
			}
			if tt.kind.Width() != tt.width {
				t.Errorf("Width() = %d, want %d", tt.kind.Width(), tt.width)
			}
			if tt.kind.Signed() != tt.signed {
				t.Errorf("Signed() = %v, want %v", tt.kind.Signed(), tt.signed)
			}
			if tt.kind.IsScalar() != tt.scalar {
				t.Errorf("IsScalar() = %v, want %v", tt.kind.IsScalar(), tt.scalar)
			}
		})
	}
}

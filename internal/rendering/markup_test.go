package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint_Scalars(t *testing.T) {
	assert.Equal(t, `"hi"`, Print(Str("hi"), 0))
	assert.Equal(t, `""`, Print(Str(""), 0))
	assert.Equal(t, "none", Print(None{}, 0))
	assert.Equal(t, `"\#1"`, Print(Str("#1"), 0))
}

func TestPrint_EmptyCollections(t *testing.T) {
	assert.Equal(t, "()", Print(Seq{}, 0))
	assert.Equal(t, "(:)", Print(Record{}, 0))
	assert.Equal(t, "(:)", Print(Dict{}, 0))
}

func TestPrint_InlineSeq(t *testing.T) {
	assert.Equal(t, `("a", "b")`, Print(StrSeq([]string{"a", "b"}), 0))
	assert.Equal(t, `("a",)`, Print(StrSeq([]string{"a"}), 0))
	assert.Equal(t, `()`, Print(StrSeq(nil), 0))
}

func TestPrint_Record(t *testing.T) {
	rec := Record{
		{Key: "name", Value: Str("Jane")},
		{Key: "url", Value: None{}},
	}
	expected := "(\n  name: \"Jane\",\n  url: none,\n)"
	assert.Equal(t, expected, Print(rec, 0))
}

func TestPrint_DictQuotesAndEscapesKeys(t *testing.T) {
	dict := Dict{{Key: "C#", Value: StrSeq([]string{".NET"})}}
	expected := "(\n  \"C\\#\": (\".NET\",),\n)"
	assert.Equal(t, expected, Print(dict, 0))
}

func TestPrint_NestedSeqOfRecords(t *testing.T) {
	seq := Seq{
		Record{{Key: "a", Value: Str("1")}},
		Record{{Key: "a", Value: Str("2")}},
	}
	expected := "(\n  (\n    a: \"1\",\n  ),\n  (\n    a: \"2\",\n  ),\n)"
	assert.Equal(t, expected, Print(seq, 0))
}

func TestPrint_DeepNestingEscapesLeavesOnce(t *testing.T) {
	v := Record{{Key: "outer", Value: Seq{Dict{{Key: "k", Value: Seq{Record{{Key: "leaf", Value: Str(`$\`)}}}}}}}}
	out := Print(v, 0)
	assert.Contains(t, out, `leaf: "\$\\",`)
}

func TestOptionalStr(t *testing.T) {
	assert.Equal(t, None{}, OptionalStr(nil))
	empty := ""
	assert.Equal(t, Str(""), OptionalStr(&empty))
}

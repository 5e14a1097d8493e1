package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeTypst_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeTypst(""))
}

func TestEscapeTypst_NoSpecialCharacters(t *testing.T) {
	text := "Led a team of 5 engineers (100% remote) & shipped v2"
	assert.Equal(t, text, EscapeTypst(text))
}

func TestEscapeTypst_Backslash(t *testing.T) {
	assert.Equal(t, `C:\\Users`, EscapeTypst(`C:\Users`))
}

func TestEscapeTypst_Hash(t *testing.T) {
	assert.Equal(t, `issue \#123`, EscapeTypst("issue #123"))
}

func TestEscapeTypst_Dollar(t *testing.T) {
	assert.Equal(t, `saved \$1M`, EscapeTypst("saved $1M"))
}

func TestEscapeTypst_At(t *testing.T) {
	assert.Equal(t, `jane\@example.com`, EscapeTypst("jane@example.com"))
}

func TestEscapeTypst_AngleBrackets(t *testing.T) {
	assert.Equal(t, `\<b\>bold\</b\>`, EscapeTypst("<b>bold</b>"))
}

func TestEscapeTypst_Quote(t *testing.T) {
	assert.Equal(t, `the \"best\" team`, EscapeTypst(`the "best" team`))
}

func TestEscapeTypst_BackslashBeforeSpecial(t *testing.T) {
	// An existing backslash next to a special character is escaped on its own,
	// never merged with the escape inserted for the special character.
	assert.Equal(t, `\\\#`, EscapeTypst(`\#`))
}

func TestEscapeTypst_MatchesOrderedReplacement(t *testing.T) {
	ordered := func(s string) string {
		for _, pair := range [][2]string{
			{`\`, `\\`}, {"#", `\#`}, {"$", `\$`}, {"@", `\@`}, {"<", `\<`}, {">", `\>`},
		} {
			s = strings.ReplaceAll(s, pair[0], pair[1])
		}
		return s
	}

	inputs := []string{
		`plain`,
		`\\#$@<>`,
		`a\b#c$d@e<f>g`,
		`#1 @ $5 <3 >2 \n`,
	}
	for _, in := range inputs {
		assert.Equal(t, ordered(in), EscapeTypst(in), in)
	}
}

func TestEscapeTypst_EachSpecialEscapedOnce(t *testing.T) {
	in := `x#y$z@w<v>u\t`
	out := EscapeTypst(in)
	for _, ch := range []string{"#", "$", "@", "<", ">"} {
		assert.Equal(t, 1, strings.Count(out, `\`+ch), ch)
	}
	assert.Equal(t, 1, strings.Count(out, `\\`))
}

func TestEscapeTypst_UnicodeCharacters(t *testing.T) {
	text := "résumé – 2019 • α β γ"
	assert.Equal(t, text, EscapeTypst(text))
}

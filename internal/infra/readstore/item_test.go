//go:build unit

package readstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "plain text", text: "drill", expected: "%drill%"},
		{name: "percent matches literally", text: "100%", expected: `%100\%%`},
		{name: "underscore matches literally", text: "a_b", expected: `%a\_b%`},
		{name: "backslash matches literally", text: `a\b`, expected: `%a\\b%`},
		{name: "mixed metacharacters", text: `50%_off\`, expected: `%50\%\_off\\%`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, likePattern(c.text))
		})
	}
}

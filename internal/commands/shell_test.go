package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"projects", []string{"projects"}},
		{"projects  --search   web", []string{"projects", "--search", "web"}},
		{`stakeholder add --name "Ali Khan" --share 25`, []string{"stakeholder", "add", "--name", "Ali Khan", "--share", "25"}},
		{`txn import st.csv --income-category "" --project ""`, []string{"txn", "import", "st.csv", "--income-category", "", "--project", ""}},
		{"projects\t-s web", []string{"projects", "-s", "web"}},
		{`project add --name=Data" "Lake`, []string{"project", "add", "--name=Data Lake"}},
	}
	for _, tt := range tests {
		got, err := splitLine(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}

	_, err := splitLine(`project add --name "unterminated`)
	assert.ErrorIs(t, err, errUnterminatedQuote)
}

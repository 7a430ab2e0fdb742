package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAliasAndText(t *testing.T) {
	tests := []struct {
		name      string
		args      string
		wantAlias string
		wantText  string
		wantOK    bool
	}{
		{"alias and text", "grandma good morning", "grandma", "good morning", true},
		{"extra spaces around text", "grandma   hello there ", "grandma", "hello there", true},
		{"alias only", "grandma", "", "", false},
		{"alias with trailing space", "grandma   ", "grandma", "", false},
		{"empty", "", "", "", false},
		{"leading whitespace", "  grandma hi", "grandma", "hi", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alias, text, ok := splitAliasAndText(tt.args)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantAlias, alias)
				assert.Equal(t, tt.wantText, text)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		username  string
		want      string
	}{
		{"full name", "Maria", "Lopez", "mlopez", "Maria Lopez"},
		{"first name only", "Maria", "", "mlopez", "Maria"},
		{"username fallback", "", "", "mlopez", "mlopez"},
		{"nothing set", "", "", "", "A family member"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayName(tt.firstName, tt.lastName, tt.username))
		})
	}
}

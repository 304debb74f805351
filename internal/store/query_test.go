package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Compile(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		wantSQL  []string
		wantArgs []any
	}{
		{
			name:     "zero value",
			filter:   Filter{},
			wantSQL:  []string{"ORDER BY created_at DESC, id DESC"},
			wantArgs: nil,
		},
		{
			name:     "domain",
			filter:   Filter{Domain: "wave"},
			wantSQL:  []string{"WHERE domain = ?"},
			wantArgs: []any{"wave"},
		},
		{
			name:     "errors only",
			filter:   Filter{ErrorsOnly: true},
			wantSQL:  []string{"WHERE error_kind IS NOT NULL"},
			wantArgs: nil,
		},
		{
			name:     "combined",
			filter:   Filter{Domain: "circuits", ErrorsOnly: true, Limit: 5},
			wantSQL:  []string{"WHERE domain = ? AND error_kind IS NOT NULL", "LIMIT ?"},
			wantArgs: []any{"circuits", 5},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args := tc.filter.compile()
			for _, fragment := range tc.wantSQL {
				assert.Contains(t, query, fragment)
			}
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

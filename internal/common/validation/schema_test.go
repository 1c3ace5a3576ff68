// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAskRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "minimal valid request",
			body: `{"question": "Should college education be free?"}`,
		},
		{
			name: "fully specified request",
			body: `{"question": "q", "age_min": 25, "age_max": 60, "sample_size": 40, "sex": "female", "states": ["KERALA"], "occupations": ["teacher"], "model": "gpt-4o-mini"}`,
		},
		{
			name:    "question is required",
			body:    `{"sample_size": 30}`,
			wantErr: "question",
		},
		{
			name:    "question must be non-empty",
			body:    `{"question": ""}`,
			wantErr: "question",
		},
		{
			name:    "age below lower bound",
			body:    `{"question": "q", "age_min": 12}`,
			wantErr: "age_min",
		},
		{
			name:    "age above upper bound",
			body:    `{"question": "q", "age_max": 150}`,
			wantErr: "age_max",
		},
		{
			name:    "sample size below minimum",
			body:    `{"question": "q", "sample_size": 2}`,
			wantErr: "sample_size",
		},
		{
			name:    "sample size above maximum",
			body:    `{"question": "q", "sample_size": 500}`,
			wantErr: "sample_size",
		},
		{
			name:    "sample size must be an integer",
			body:    `{"question": "q", "sample_size": 12.5}`,
			wantErr: "sample_size",
		},
		{
			name:    "states must hold strings",
			body:    `{"question": "q", "states": [42]}`,
			wantErr: "states",
		},
		{
			name:    "unknown fields are rejected",
			body:    `{"question": "q", "sampleSize": 30}`,
			wantErr: "sampleSize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAskRequest([]byte(tt.body))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

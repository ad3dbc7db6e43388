package http_test

import (
	"encoding/json"
	"testing"

	httpadapter "orderbot/internal/adapters/in/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSessionID(t *testing.T) {
	tests := []struct {
		name        string
		contextName string
		want        string
	}{
		{
			name:        "full context name",
			contextName: "projects/food-bot/agent/sessions/abc-123/contexts/ongoing-order",
			want:        "abc-123",
		},
		{
			name:        "no session segment",
			contextName: "projects/food-bot/agent/contexts/ongoing-order",
			want:        "",
		},
		{
			name:        "empty string",
			contextName: "",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpadapter.ExtractSessionID(tt.contextName))
		})
	}
}

func TestNumberList_UnmarshalJSON_SingleNumber(t *testing.T) {
	var params httpadapter.Parameters
	require.NoError(t, json.Unmarshal([]byte(`{"number": 3.0}`), &params))
	assert.Equal(t, httpadapter.NumberList{3.0}, params.Number)
}

func TestNumberList_UnmarshalJSON_NumberArray(t *testing.T) {
	var params httpadapter.Parameters
	require.NoError(t, json.Unmarshal([]byte(`{"number": [2.0, 1.5]}`), &params))
	assert.Equal(t, httpadapter.NumberList{2.0, 1.5}, params.Number)
}

func TestNumberList_UnmarshalJSON_Invalid(t *testing.T) {
	var params httpadapter.Parameters
	require.Error(t, json.Unmarshal([]byte(`{"number": "two"}`), &params))
}

func TestNumberList_Ints_TruncatesFloats(t *testing.T) {
	n := httpadapter.NumberList{2.0, 1.9, 3.2}
	assert.Equal(t, []int{2, 1, 3}, n.Ints())
}

package helpers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWith(method, target, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	return c
}

func TestStringTrim(t *testing.T) {
	assert.Equal(t, "abc", StringTrim(`  "abc" `))
	assert.Equal(t, "abc", StringTrim("'abc'"))
	assert.Equal(t, "", StringTrim("   "))
}

func TestDecodeStrict(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"unknown field", `{"name": "a", "extra": 1}`, "extra"},
		{"wrong type", `{"count": "three"}`, "count"},
		{"malformed", `{"name": `, "body"},
		{"empty", `   `, "body"},
		{"trailing data", `{"name": "a"} {"name": "b"}`, "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := DecodeStrict(contextWith(http.MethodPut, "/", tt.body), &p)

			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Fields[0].Field)
		})
	}

	var p payload
	require.NoError(t, DecodeStrict(contextWith(http.MethodPut, "/", `{"name": "ok", "count": 2}`), &p))
	assert.Equal(t, payload{Name: "ok", Count: 2}, p)
}

func TestQueryIntAndFloat(t *testing.T) {
	c := contextWith(http.MethodGet, "/?limit=5&bad=-1&rating=4.5&word=x", "")

	n, err := QueryInt(c, "limit", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = QueryInt(c, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = QueryInt(c, "bad", 0)
	assert.Error(t, err)

	f, err := QueryFloat(c, "rating", 0)
	require.NoError(t, err)
	assert.Equal(t, 4.5, f)

	_, err = QueryFloat(c, "word", 0)
	assert.Error(t, err)
}

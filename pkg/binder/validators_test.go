package binder

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foliobooks/folio/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type isbnPayload struct {
	ISBN string `json:"isbn" validate:"required,isbn"`
}

func bindJSON(t *testing.T, payload string, i interface{}) error {
	t.Helper()

	e := echo.New()
	b, err := New()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	return b.Bind(i, c)
}

func TestBindISBN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"isbn 10", `{"isbn":"0764576593"}`, false},
		{"isbn 10 with check X", `{"isbn":"155860832X"}`, false},
		{"isbn 13", `{"isbn":"9780764576591"}`, false},
		{"too long", `{"isbn":"97807645765913"}`, true},
		{"not numeric", `{"isbn":"not-an-isbn"}`, true},
		{"empty", `{"isbn":""}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := isbnPayload{}
			err := bindJSON(t, tt.payload, &p)
			if tt.wantErr {
				require.Error(t, err)
				var codeErr *errcodes.Error
				require.ErrorAs(t, err, &codeErr)
				assert.Equal(t, "validation_error", codeErr.Code)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBindUnknownField(t *testing.T) {
	t.Parallel()

	p := isbnPayload{}
	err := bindJSON(t, `{"isbn":"0764576593","bogus":true}`, &p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcodes.UnknownParameter("bogus")))
}

package param

import (
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-chi/chi"
	"github.com/gorilla/schema"
	"github.com/shopspring/decimal"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
	decoder.SetAliasTag("json")
	decoder.RegisterConverter(decimal.Decimal{}, func(s string) reflect.Value {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(d)
	})
}

// Binding decodes route params, query values and an optional json body
// into v. Route params win over query values.
func Binding(r *http.Request, v interface{}) error {
	if body := r.Body; body != nil &&
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(body).Decode(v); err != nil {
			return err
		}
	}

	values := url.Values{}
	for k, vs := range r.URL.Query() {
		values[k] = vs
	}

	if c := chi.RouteContext(r.Context()); c != nil {
		for i, key := range c.URLParams.Keys {
			values.Set(key, c.URLParams.Values[i])
		}
	}

	return decoder.Decode(v, values)
}

// String reads one route param.
func String(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

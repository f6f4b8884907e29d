package param

import (
	"encoding/json"
	"net/http"

	"github.com/asaskevich/govalidator"
)

// Binding decodes the request body into v and validates it.
func Binding(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}

	_, err := govalidator.ValidateStruct(v)
	return err
}

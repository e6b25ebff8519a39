package server

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/leebenson/conform"
)

var validate = validator.New()

// decode reads the request body into v with a strict field whitelist:
// unknown JSON fields are rejected. The payload is then sanitized
// (conform tags) and validated (validate tags).
func decode(c *gin.Context, v interface{}) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := conform.Strings(v); err != nil {
		return err
	}
	return validate.Struct(v)
}

// parseIDParam reads a numeric :id route parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

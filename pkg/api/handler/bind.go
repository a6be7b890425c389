package handler

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errTrailingData = errors.New("trailing characters after the JSON value")

// bindJSON 解析请求体为单个JSON值，空请求体或JSON之后还有内容都视为错误
func bindJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil {
		return io.EOF
	}

	dec := json.NewDecoder(c.Request.Body)
	if err := dec.Decode(obj); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return binding.Validator.ValidateStruct(obj)
}

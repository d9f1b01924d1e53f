package logging

import (
	"fmt"

	"github.com/samber/oops"
)

// ErrorAttrs returns key-value pairs describing err for a log call. For oops
// errors the code and attached context are included.
func ErrorAttrs(err error) []any {
	if err == nil {
		return nil
	}
	attrs := []any{"error", err.Error()}

	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return attrs
	}
	if code := fmt.Sprint(oopsErr.Code()); code != "" {
		attrs = append(attrs, "error_code", code)
	}
	for k, v := range oopsErr.Context() {
		attrs = append(attrs, "error_ctx."+k, v)
	}
	return attrs
}

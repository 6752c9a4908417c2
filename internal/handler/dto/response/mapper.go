package response

import (
	"fmt"
	"log/slog"

	"github.com/jinzhu/copier"
)

// mapRM copies a read model into a response struct by field name. The
// two sides are kept in lockstep by hand, so a copy error means a
// response type drifted from its read model; log it instead of shipping
// a silently half-empty body.
func mapRM(dst, src any) {
	if err := copier.Copy(dst, src); err != nil {
		slog.Error("response mapping failed", "dst", fmt.Sprintf("%T", dst), "error", err)
	}
}

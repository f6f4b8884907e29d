package id

import (
	"github.com/fox-one/pkg/uuid"
)

// namespace scopes derived trace ids to this ledger
const namespace = "2c40e925-b2e7-4d0f-92a6-8cf33db1f5a2"

// GenTraceID new random trace id
func GenTraceID() string {
	return uuid.New()
}

// TraceIDFrom deterministic trace id from text, used to derive transfer
// traces from the operation that staged them
func TraceIDFrom(text string) string {
	return uuid.Modify(namespace, text)
}

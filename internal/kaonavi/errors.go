package kaonavi

import (
	"fmt"
	"strings"
)

// AuthError means the client-credentials grant failed: the token
// endpoint answered non-2xx, or the body had no access_token.
type AuthError struct {
	Status int
	Cause  error
}

func (e *AuthError) Error() string {
	msg := "カオナビAPIの認証に失敗しました"
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status: %d)", msg, e.Status)
	}
	return msg
}

func (e *AuthError) Unwrap() error { return e.Cause }

// UpstreamError means an authenticated call failed: non-2xx status or
// a malformed body. Errors carries the upstream error payload when the
// response had one, and is surfaced to the caller verbatim.
type UpstreamError struct {
	Op     string
	Status int
	Errors []string
	Cause  error
}

func (e *UpstreamError) Error() string {
	if len(e.Errors) > 0 {
		return strings.Join(e.Errors, ", ")
	}
	msg := fmt.Sprintf("カオナビAPIへのリクエストに失敗しました (%s)", e.Op)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status: %d)", msg, e.Status)
	}
	return msg
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

// NotFoundError means the local identity and the upstream directory
// disagreed: no member record for a known user, or no user row for a
// fetched member. Identifier names the key that failed to match, e.g.
// "id:42" or "code:A0001".
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%sの社員情報の取得に失敗しました", e.Identifier)
}

// PageOutOfRangeError is the one validation failure of the pipeline:
// the requested page falls outside [1, TotalPages].
type PageOutOfRangeError struct {
	Page       int
	TotalPages int
}

func (e *PageOutOfRangeError) Error() string {
	return "指定されたページは存在しません"
}

package xapi

import (
	"github.com/kbukum/xapi/decode"
	"github.com/kbukum/xapi/errors"
	"github.com/kbukum/xapi/httpclient"
)

// Decode classifies a terminal response and decodes its body.
//
// Non-2xx responses fail with AUTHENTICATION (401), SERVER_ERROR (5xx) or
// UNEXPECTED_RESPONSE. A 2xx body that is not valid JSON fails with DECODE;
// an empty one decodes to nil. Nil shapes mean decode.Map and decode.Slice.
func Decode(resp *httpclient.Response, obj decode.ObjectShape, arr decode.ArrayShape) (any, error) {
	if err := httpclient.Classify(resp); err != nil {
		return nil, err
	}
	v, err := decode.Decode(resp.Body, obj, arr)
	if err != nil {
		return nil, errors.Decode(err).WithDetail("status_code", resp.StatusCode)
	}
	return v, nil
}

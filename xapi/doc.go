// Package xapi is a client for the X API v2.
//
// A Client is built once from a Config and is safe for concurrent use:
//
//	client, err := xapi.New(xapi.Config{BearerToken: os.Getenv("X_BEARER_TOKEN")})
//	if err != nil {
//	    return err
//	}
//	tweet, err := client.Get(ctx, "tweets/20")
//
// Responses are decoded into map[string]any and []any by default. Shapes can
// be changed for the whole client (Config.ObjectShape, Config.ArrayShape) or
// for one call:
//
//	v, err := client.Get(ctx, "users/me", xapi.WithObjectShape(decode.Record))
//
// Failures are *errors.Error values with a code per class (AUTHENTICATION,
// SERVER_ERROR, TOO_MANY_REDIRECTS, ...), except transport failures, which
// are returned as produced by net/http.
package xapi

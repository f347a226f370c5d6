// Package httpclient is the request-dispatch layer of the X API client.
//
// A Client turns a logical Request into one or more HTTP hops. Every hop is
// built from scratch and signed by the configured credentials.Authenticator,
// so OAuth signatures always match the URL and method actually sent.
// Redirects are followed by the dispatcher, not by net/http:
//
//   - 301, 302, 307, 308 keep the method and body
//   - 303 switches to GET and drops the body
//
// A chain longer than Config.MaxRedirects fails with TOO_MANY_REDIRECTS, so
// at most MaxRedirects+1 requests are sent per call.
//
//	c, err := httpclient.New(httpclient.Config{
//	    Auth: credentials.Bearer("token"),
//	})
//	resp, err := c.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: "tweets/20"})
//	if err == nil {
//	    err = httpclient.Classify(resp)
//	}
package httpclient

package geth

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/valyala/fasthttp"
)

// FastHTTP sends requests through a fasthttp client. The request context
// deadline, when set, bounds the exchange.
type FastHTTP struct {
	Client *fasthttp.Client
}

// NewFastHTTP returns a FastHTTP transport over a fresh fasthttp client.
func NewFastHTTP() *FastHTTP {
	return &FastHTTP{Client: &fasthttp.Client{}}
}

func (f *FastHTTP) client() *fasthttp.Client {
	if f.Client == nil {
		f.Client = &fasthttp.Client{}
	}
	return f.Client
}

func (f *FastHTTP) Do(req *http.Request) (*http.Response, error) {
	freq := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(freq)
	fresp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(fresp)

	freq.SetRequestURI(req.URL.String())
	freq.Header.SetMethod(req.Method)
	for k, vs := range req.Header {
		if k == "Content-Length" {
			continue
		}
		for _, v := range vs {
			freq.Header.Add(k, v)
		}
	}
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		freq.SetBodyRaw(body)
	}

	var err error
	if deadline, ok := req.Context().Deadline(); ok {
		err = f.client().DoDeadline(freq, fresp, deadline)
	} else {
		err = f.client().Do(freq, fresp)
	}
	if err != nil {
		return nil, err
	}
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	body := append([]byte(nil), fresp.Body()...)
	resp := &http.Response{
		Status:        fmt.Sprintf("%d %s", fresp.StatusCode(), http.StatusText(fresp.StatusCode())),
		StatusCode:    fresp.StatusCode(),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        make(http.Header),
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
	fresp.Header.VisitAll(func(k, v []byte) {
		resp.Header.Add(string(k), string(v))
	})
	return resp, nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/gebeyahub/gebeya-go/core"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestClient(session core.SessionStore, rt roundTripFunc) *Client {
	return New(
		WithBaseURL("https://api.example.com"),
		WithSession(session),
		WithHTTPClient(&http.Client{Transport: rt}),
	)
}

func TestAuthHeaderAttachedWhenTokenPresent(t *testing.T) {
	session := core.NewMemorySession()
	session.Set("tok-abc")

	var gotAuth string
	client := newTestClient(session, func(r *http.Request) (*http.Response, error) {
		gotAuth = r.Header.Get("Authorization")
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	if _, err := client.ListGroups(context.Background(), core.GroupFilter{}); err != nil {
		t.Fatalf("ListGroups error: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Fatalf("unexpected Authorization header: %q", gotAuth)
	}
}

func TestAuthHeaderAbsentWithoutToken(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	client := newTestClient(core.NewMemorySession(), func(r *http.Request) (*http.Response, error) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	if _, err := client.ListGroups(context.Background(), core.GroupFilter{}); err != nil {
		t.Fatalf("ListGroups error: %v", err)
	}
	if hasAuth {
		t.Fatalf("Authorization header should be absent, got %q", gotAuth)
	}
}

func TestUnauthorizedClearsSessionAndInvokesHook(t *testing.T) {
	session := core.NewMemorySession()
	session.Set("stale-token")

	hookCalled := false
	client := New(
		WithBaseURL("https://api.example.com"),
		WithSession(session),
		WithOnUnauthorized(func() { hookCalled = true }),
		WithHTTPClient(&http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusUnauthorized, `{"detail":"token expired"}`), nil
		})}),
	)

	_, err := client.Profile(context.Background())
	if !core.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if _, ok := session.Token(); ok {
		t.Fatal("session token should be cleared after 401")
	}
	if !hookCalled {
		t.Fatal("OnUnauthorized hook not invoked")
	}
}

func TestStaleUnauthorizedDoesNotClobberNewToken(t *testing.T) {
	session := core.NewMemorySession()
	session.Set("old-token")

	client := newTestClient(session, func(r *http.Request) (*http.Response, error) {
		// A login on another goroutine lands while this request is in
		// flight.
		session.Set("new-token")
		return jsonResponse(http.StatusUnauthorized, `{"detail":"token expired"}`), nil
	})

	_, err := client.Profile(context.Background())
	if !core.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	token, ok := session.Token()
	if !ok || token != "new-token" {
		t.Fatalf("fresh token should survive stale 401, got %q ok=%v", token, ok)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		want    string
		code    core.ErrorCode
	}{
		{"detail string", 400, `{"detail":"quantity must be positive"}`, "quantity must be positive", core.ErrBadRequest},
		{"message field", 409, `{"message":"already joined"}`, "already joined", core.ErrConflict},
		{"fallback", 502, `not json`, "request failed with status 502", core.ErrServerError},
		{"not found", 404, `{"detail":"group 99 not found"}`, "group 99 not found", core.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(core.NewMemorySession(), func(r *http.Request) (*http.Response, error) {
				return jsonResponse(tc.status, tc.body), nil
			})
			_, err := client.GetGroup(context.Background(), 99)
			var apiErr *core.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %T", err)
			}
			if apiErr.Message != tc.want {
				t.Fatalf("message = %q, want %q", apiErr.Message, tc.want)
			}
			if apiErr.Code != tc.code {
				t.Fatalf("code = %q, want %q", apiErr.Code, tc.code)
			}
			if apiErr.Status != tc.status {
				t.Fatalf("status = %d, want %d", apiErr.Status, tc.status)
			}
		})
	}
}

func TestJSONContentTypeSetOnJSONCalls(t *testing.T) {
	var gotContentType string
	client := newTestClient(core.NewMemorySession(), func(r *http.Request) (*http.Response, error) {
		gotContentType = r.Header.Get("Content-Type")
		return jsonResponse(http.StatusOK, `{"id":1,"name":"x","price":1}`), nil
	})

	if _, err := client.CreateProduct(context.Background(), CreateProductRequest{Name: "x", Category: "Grains", Price: 1}); err != nil {
		t.Fatalf("CreateProduct error: %v", err)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}
}

func TestUploadUsesMultipartWithSingleFileField(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	client := newTestClient(core.NewMemorySession(), func(r *http.Request) (*http.Response, error) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		return jsonResponse(http.StatusOK, `{"url":"/uploads/img.png"}`), nil
	})

	payload := bytes.NewReader([]byte{0x89, 0x50, 0x4e, 0x47})
	res, err := client.UploadProductImage(context.Background(), 7, "img.png", payload)
	if err != nil {
		t.Fatalf("UploadProductImage error: %v", err)
	}
	if res.URL != "/uploads/img.png" {
		t.Fatalf("unexpected upload result: %+v", res)
	}
	if strings.HasPrefix(gotContentType, "application/json") {
		t.Fatalf("upload must not use JSON content type, got %q", gotContentType)
	}
	mediaType, params, err := mime.ParseMediaType(gotContentType)
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("Content-Type = %q, want multipart/form-data", gotContentType)
	}

	reader := multipart.NewReader(bytes.NewReader(gotBody), params["boundary"])
	part, err := reader.NextPart()
	if err != nil {
		t.Fatalf("reading multipart body: %v", err)
	}
	if part.FormName() != "file" {
		t.Fatalf("form field = %q, want file", part.FormName())
	}
	data, _ := io.ReadAll(part)
	if !bytes.Equal(data, []byte{0x89, 0x50, 0x4e, 0x47}) {
		t.Fatalf("file payload not preserved: %v", data)
	}
	if _, err := reader.NextPart(); err != io.EOF {
		t.Fatalf("expected exactly one part, got extra part (err=%v)", err)
	}
}

func TestTransportFailureWrapped(t *testing.T) {
	client := newTestClient(core.NewMemorySession(), func(r *http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})

	_, err := client.GetGroup(context.Background(), 1)
	if !core.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestEndpointMustBeServerRelative(t *testing.T) {
	client := newTestClient(core.NewMemorySession(), func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request should be sent")
		return nil, nil
	})

	err := client.do(context.Background(), http.MethodGet, "api/groups", nil, nil)
	if err == nil {
		t.Fatal("expected error for relative endpoint")
	}
}

func TestQueryParametersEncoded(t *testing.T) {
	var gotURL string
	client := newTestClient(core.NewMemorySession(), func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	_, err := client.ListGroups(context.Background(), core.GroupFilter{Query: "teff flour", Category: "Grains", Limit: 10})
	if err != nil {
		t.Fatalf("ListGroups error: %v", err)
	}
	want := "https://api.example.com/api/groups?category=Grains&limit=10&q=teff+flour"
	if gotURL != want {
		t.Fatalf("url = %q, want %q", gotURL, want)
	}
}

func TestResponseDecoding(t *testing.T) {
	body, _ := json.Marshal([]core.Group{{ID: 1, Name: "Teff"}, {ID: 2, Name: "Oil"}})
	client := newTestClient(core.NewMemorySession(), func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, string(body)), nil
	})

	groups, err := client.ListGroups(context.Background(), core.GroupFilter{})
	if err != nil {
		t.Fatalf("ListGroups error: %v", err)
	}
	if len(groups) != 2 || groups[0].Name != "Teff" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeHTTPClient captures the outbound request and returns a canned response.
type fakeHTTPClient struct {
	lastRequest *http.Request
	lastBody    []byte
	response    *http.Response
	err         error
}

func (f *fakeHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	return f.response, f.err
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	f.lastRequest = req
	if req.Body != nil {
		f.lastBody, _ = io.ReadAll(req.Body)
	}
	return f.response, f.err
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func testMessage() *Message {
	return &Message{
		Sender:      Contact{Name: "Website", Email: "noreply@example.com"},
		To:          []Contact{{Name: "Contact Form", Email: "me@example.com"}},
		Subject:     "New Contact Form Submission from Jane Doe",
		HTMLContent: "<p>hello</p>",
	}
}

func TestClient_Send_Success(t *testing.T) {
	fake := &fakeHTTPClient{response: jsonResponse(http.StatusCreated, `{"messageId":"<1@smtp-relay>"}`)}
	client := NewClient("test-api-key", fake)

	err := client.Send(context.Background(), testMessage())
	assert.NoError(t, err)

	assert.Equal(t, http.MethodPost, fake.lastRequest.Method)
	assert.Equal(t, DefaultEndpoint, fake.lastRequest.URL.String())
	assert.Equal(t, "test-api-key", fake.lastRequest.Header.Get("api-key"))
	assert.Equal(t, "application/json", fake.lastRequest.Header.Get("Content-Type"))

	var sent Message
	assert.NoError(t, json.Unmarshal(fake.lastBody, &sent))
	assert.Equal(t, "noreply@example.com", sent.Sender.Email)
	assert.Len(t, sent.To, 1)
	assert.Equal(t, "New Contact Form Submission from Jane Doe", sent.Subject)
}

func TestClient_Send_NonSuccessStatus(t *testing.T) {
	fake := &fakeHTTPClient{response: jsonResponse(http.StatusUnauthorized, `{"code":"unauthorized","message":"Key not found"}`)}
	client := NewClient("bad-key", fake)

	err := client.Send(context.Background(), testMessage())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Key not found")
}

func TestClient_Send_EmptyErrorBody(t *testing.T) {
	fake := &fakeHTTPClient{response: jsonResponse(http.StatusBadGateway, "")}
	client := NewClient("key", fake)

	err := client.Send(context.Background(), testMessage())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Send_TransportError(t *testing.T) {
	fake := &fakeHTTPClient{err: errors.New("connection refused")}
	client := NewClient("key", fake)

	err := client.Send(context.Background(), testMessage())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}

func TestMessage_JSONShape(t *testing.T) {
	msg := testMessage()
	payload, err := json.Marshal(msg)
	assert.NoError(t, err)

	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(payload, &raw))
	assert.Contains(t, raw, "sender")
	assert.Contains(t, raw, "to")
	assert.Contains(t, raw, "subject")
	assert.Contains(t, raw, "htmlContent")
}

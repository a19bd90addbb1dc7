package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	apierrors "github.com/ananth/nexchat/internal/errors"
)

// maxErrorBodyBytes caps how much of an error response we keep for
// diagnostics.
const maxErrorBodyBytes = 4096

// readChunkSize is the stream read buffer size.
const readChunkSize = 4096

// chatRequest is the JSON body for the chat endpoint
type chatRequest struct {
	Message string `json:"message"`
}

// StreamMessage posts the user message to the chat endpoint and invokes
// fn once per decoded UTF-8 fragment, in arrival order. Fragments never
// split a rune: partial sequences at a read boundary are carried into
// the next fragment. It returns once the stream ends; a non-nil error
// means the reply is unusable and the caller shows the error reply.
func (c *Client) StreamMessage(ctx context.Context, message string, fn func(fragment string)) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return apierrors.ErrEmptyMessage
	}
	if c.IsClosed() {
		return apierrors.ErrClientClosed
	}

	payload, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return fmt.Errorf("failed to marshal chat request: %w", err)
	}

	endpoint := c.endpoint(endpointChat)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending chat request", zap.Int("message_len", len(message)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("chat request failed", zap.Error(err))
		return apierrors.NewNetworkError(endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body := readErrorBody(resp.Body)
		c.logger.Warn("chat request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", body))
		return apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint,
			"chat request rejected", body)
	}

	return c.decodeStream(resp.Body, fn)
}

// decodeStream reads raw chunks off the wire and emits complete-rune
// fragments. Bytes of a partially received rune are held back until the
// rest arrives.
func (c *Client) decodeStream(r io.Reader, fn func(fragment string)) error {
	buf := make([]byte, readChunkSize)
	var carry []byte

	for {
		n, err := r.Read(buf)
		if n > 0 {
			carry = append(carry, buf[:n]...)
			if cut := completeBoundary(carry); cut > 0 {
				fn(string(carry[:cut]))
				carry = append(carry[:0], carry[cut:]...)
			}
		}
		if err == io.EOF {
			// Trailing bytes that never completed a rune are flushed
			// as-is rather than dropped.
			if len(carry) > 0 {
				fn(string(carry))
			}
			return nil
		}
		if err != nil {
			c.logger.Warn("chat stream broke", zap.Error(err))
			return apierrors.NewNetworkError(c.endpoint(endpointChat), err)
		}
	}
}

// completeBoundary returns the length of the longest prefix of b that
// ends on a UTF-8 rune boundary.
func completeBoundary(b []byte) int {
	end := len(b)
	for back := 1; back <= utf8.UTFMax && back <= end; back++ {
		i := end - back
		c := b[i]
		if c < utf8.RuneSelf {
			return end
		}
		if utf8.RuneStart(c) {
			if utf8.FullRune(b[i:end]) {
				return end
			}
			return i
		}
		// Continuation byte, keep walking back.
	}
	return end
}

// ClearSession asks the backend to drop its conversation memory.
func (c *Client) ClearSession(ctx context.Context) error {
	if c.IsClosed() {
		return apierrors.ErrClientClosed
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.endpoint(endpointClear)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create clear request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierrors.NewNetworkError(endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body := readErrorBody(resp.Body)
		return apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint,
			"clear request rejected", body)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return apierrors.NewNetworkError(endpoint, err)
	}

	if status := gjson.GetBytes(body, "status"); status.String() != "cleared" {
		return apierrors.NewParseError("unexpected clear response", "status")
	}

	c.logger.Debug("backend session cleared")
	return nil
}

// readErrorBody captures up to maxErrorBodyBytes of a response body for
// error context.
func readErrorBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

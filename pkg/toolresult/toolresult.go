// Package toolresult renders failures from the PressGraph API client into
// MCP tool results. The formatter never fails: whatever error it is handed,
// it returns a well-formed error result for the calling tool to surface.
package toolresult

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pressgraph-hq/pressgraph-mcp/pkg/apiclient"
)

// HelpTextFunc supplies supplementary guidance for a given HTTP status.
// Returning an empty string adds nothing.
type HelpTextFunc func(status int) string

// FormatError converts any failure into an error tool result with a single
// text block. The raw failure is always reported to the logger's error
// channel before anything else. contextMsg describes the attempted action
// ("searching news") and is embedded in the rendered text. helpText may be
// nil.
func FormatError(err error, log Logger, contextMsg string, helpText HelpTextFunc) *mcp.CallToolResult {
	log = ensureLogger(log)
	log.Error(err)

	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) {
		return mcp.NewToolResultError(fmt.Sprintf("Error %s: %v", contextMsg, err))
	}

	status, numeric := resolveStatus(apiErr)
	display := "unknown"
	if numeric {
		display = strconv.Itoa(status)
	}
	message := displayMessage(apiErr)

	log.Log(fmt.Sprintf("API error (%s): %s", display, message))

	text := fmt.Sprintf("Error %s (%s): %s", contextMsg, display, message)
	if apiErr.Data != nil && apiErr.Data.Details != "" {
		text += "\nDetails: " + apiErr.Data.Details
	}
	if helpText != nil && numeric {
		text += helpText(status)
	}

	return mcp.NewToolResultError(text)
}

// resolveStatus picks the status to render: the failure's own status if set,
// else the raw response's status. ok is false when neither is available.
func resolveStatus(e *apiclient.APIError) (int, bool) {
	if e.Status != 0 {
		return e.Status, true
	}
	if e.Response != nil {
		return e.Response.StatusCode(), true
	}
	return 0, false
}

func displayMessage(e *apiclient.APIError) string {
	if e.Data != nil && e.Data.Message != "" {
		return e.Data.Message
	}
	if msg := e.Error(); msg != "" {
		return msg
	}
	return "Unknown error"
}

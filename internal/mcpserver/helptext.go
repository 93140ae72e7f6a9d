package mcpserver

import "net/http"

// apiHelpText maps a PressGraph API status code to remediation text appended
// to the rendered tool error. Unknown statuses add nothing.
func apiHelpText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "\nCheck the tool arguments: one or more parameters were rejected by the API."
	case http.StatusUnauthorized:
		return "\nThe API key was rejected. Verify that PRESSGRAPH_API_KEY is set to a valid key."
	case http.StatusForbidden:
		return "\nThis key does not have access to the requested resource. Check your PressGraph plan."
	case http.StatusNotFound:
		return "\nThe requested resource does not exist. Ids from stale search results may have expired."
	case http.StatusRequestTimeout:
		return "\nThe request timed out. The API may be under load; retry shortly."
	case http.StatusTooManyRequests:
		return "\nRate limit exceeded. Wait before retrying, or reduce request frequency."
	}
	if status >= http.StatusInternalServerError {
		return "\nPressGraph reported a server-side problem. Retry later; if it persists, check status.pressgraph.io."
	}
	return ""
}

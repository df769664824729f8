package handlers

import "net/http"

// NewServerErrorHandler returns a handler that always fails with 500, whatever the body.
// @Summary Forced server error
// @Description Always answers 500 so clients can exercise their error path.
// @Tags forms
// @Failure 500 "Internal Server Error"
// @Router /error [get]
// @Router /error [post]
// @Router /error [put]
func NewServerErrorHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeServerError(w)
	}
}

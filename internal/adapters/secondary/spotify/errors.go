package spotify

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	spotifyapi "github.com/zmb3/spotify/v2"

	"artist-analytics/internal/core/domain"
)

// mapAPIError converts Spotify Web API errors to domain errors. A 404 becomes
// notFound when one is given; everything else is an upstream failure.
func mapAPIError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	status := apiStatus(err)
	if status == http.StatusNotFound && notFound != nil {
		return notFound
	}
	if status != 0 {
		return fmt.Errorf("%w: http status %d: %v", domain.ErrUpstream, status, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
}

// bodylessStatus matches the error the client builds when an error response
// carries no JSON body, e.g. "spotify: HTTP 404: Not Found (body empty)".
var bodylessStatus = regexp.MustCompile(`spotify: HTTP (\d{3})`)

func apiStatus(err error) int {
	var apiErr spotifyapi.Error
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return apiErr.Status
	}
	var apiErrPtr *spotifyapi.Error
	if errors.As(err, &apiErrPtr) && apiErrPtr.Status != 0 {
		return apiErrPtr.Status
	}
	if m := bodylessStatus.FindStringSubmatch(err.Error()); m != nil {
		status, _ := strconv.Atoi(m[1])
		return status
	}
	return 0
}

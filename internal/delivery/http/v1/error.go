package v1

import (
	"errors"
	"net/http"

	"storefront-gateway/internal/infrastructure/api"
	"storefront-gateway/pkg/utils"
)

// writeUpstreamError maps remote API failures onto facade responses. A
// RequestError keeps its status and server-supplied message; anything
// else (network failure, decode failure) surfaces as a bad gateway.
func writeUpstreamError(w http.ResponseWriter, err error) {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		utils.WriteError(w, reqErr.Status, reqErr.Message)
		return
	}
	utils.WriteError(w, http.StatusBadGateway, "Upstream API unavailable")
}

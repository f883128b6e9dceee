package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"unicode/utf8"

	"masqr-license/src/license"
)

const pskHeader = "PSK"

func handleIndex(ctx appContext, w http.ResponseWriter, req *http.Request) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("Hello, World!")); err != nil {
		ctx.logger.Error().Err(err).Msg("failed to write greeting")
	}
	return http.StatusOK, nil
}

func handleNewLicense(ctx appContext, w http.ResponseWriter, req *http.Request) (int, error) {
	psk, err := pskFromRequest(req)
	if err != nil {
		return deny(ctx, err)
	}

	grant, err := ctx.issuer.Issue(psk)
	if err != nil {
		return deny(ctx, err)
	}

	ctx.metrics.IncIssued()
	ctx.logger.Info().Str("license", grant.AssignedLicense).Int64("expires", grant.Expires).Msg("issued license")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(grant); err != nil {
		ctx.logger.Error().Err(err).Str("license", grant.AssignedLicense).Msg("failed to write license response")
	}
	return http.StatusOK, nil
}

func deny(ctx appContext, err error) (int, error) {
	ctx.metrics.IncDenied(license.Reason(err))
	return http.StatusInternalServerError, err
}

// pskFromRequest returns the first PSK header value. A value that is not valid
// UTF-8 counts as missing.
func pskFromRequest(req *http.Request) (string, error) {
	values := req.Header.Values(pskHeader)
	if len(values) == 0 {
		return "", license.ErrMissingPSK
	}

	psk := values[0]
	if !utf8.ValidString(psk) {
		return "", fmt.Errorf("%w: header is not valid UTF-8", license.ErrMissingPSK)
	}

	return psk, nil
}

package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/fivetran-console/pkg/fivetran"
)

// ErrorResponse is the standardized error body the console API returns. Kind
// mirrors the client's failure classification so the UI can pick wording
// ("check connectivity" vs "remote rejected the request") without string
// matching.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// writeAPIError maps a client failure to an HTTP response. RemoteRejected
// passes the remote status through so the caller sees what Fivetran said;
// connectivity problems surface as 502 from this console's point of view.
func writeAPIError(gctx *gin.Context, logger *slog.Logger, err error) {
	apiErr, ok := fivetran.AsAPIError(err)
	if !ok {
		logger.Error("unexpected non-api error", "error", err)
		gctx.PureJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	status := http.StatusBadGateway
	switch apiErr.Kind {
	case fivetran.KindUnauthenticated:
		status = http.StatusUnauthorized
	case fivetran.KindRemoteRejected:
		if apiErr.StatusCode != 0 {
			status = apiErr.StatusCode
		}
	case fivetran.KindNetworkFailure:
		logger.Warn("fivetran api unreachable", "error", err)
	case fivetran.KindMalformedResponse:
		// Contract mismatch with the remote API; always worth a log line.
		logger.Error("unexpected response shape from fivetran api", "error", err)
	}

	msg := apiErr.Message
	if msg == "" {
		msg = apiErr.Error()
	}

	gctx.PureJSON(status, ErrorResponse{Error: msg, Kind: string(apiErr.Kind)})
}

func writeBadRequest(gctx *gin.Context, msg string) {
	gctx.PureJSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func writeUnauthorized(gctx *gin.Context, msg string) {
	gctx.PureJSON(http.StatusUnauthorized, ErrorResponse{Error: msg, Kind: string(fivetran.KindUnauthenticated)})
}

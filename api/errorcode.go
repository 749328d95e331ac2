package api

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "device has already been registered",
		1101: "device not found or device key mismatch",

		1103: "query card error",
		1104: "unknown card type",
		1105: "unknown preset",
		1106: "unknown signal",
		1107: "no data recorded for the requested date",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorDeviceTaken    = errorJSON(1100)
	errorDeviceNotFound = errorJSON(1101)

	errorQueryCard       = errorJSON(1103)
	errorUnknownCardType = errorJSON(1104)
	errorUnknownPreset   = errorJSON(1105)
	errorUnknownSignal   = errorJSON(1106)
	errorNoData          = errorJSON(1107)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

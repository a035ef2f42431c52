package views

// Default is the plain acknowledgement body for action endpoints.
type Default struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DefaultSuccess acknowledges a completed action.
var DefaultSuccess = Default{
	Message: "success",
}

package response

// Envelope is the JSON body used by middleware rejections and other
// responses that bypass the handler-level helpers.
type Envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(code, message string, data interface{}) Envelope {
	return Envelope{Code: code, Message: message, Data: data}
}

func Error(code, message string, data interface{}) Envelope {
	return Envelope{Code: code, Message: message, Data: data}
}

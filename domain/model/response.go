package model

// Response is the uniform success envelope every endpoint returns.
type Response struct {
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

func NewResponse(status int, data interface{}, message string) Response {
	return Response{Status: status, Data: data, Message: message}
}

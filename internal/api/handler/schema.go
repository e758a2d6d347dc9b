package handler

// Canonical response envelope. Every successful response carries
// success=true and a data payload; errors are rendered centrally by the
// HTTP error handler with success=false.

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type listResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func envelope(data any) dataResponse {
	return dataResponse{Success: true, Data: data}
}

func listEnvelope(count int, data any) listResponse {
	return listResponse{Success: true, Count: count, Data: data}
}

func message(msg string) messageResponse {
	return messageResponse{Success: true, Message: msg}
}

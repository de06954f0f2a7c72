package handler

type askRequest struct {
	Question string `json:"question"`
}

// askResponse carries both answers and errors so the chat page reads one field.
type askResponse struct {
	Response string `json:"response"`
}

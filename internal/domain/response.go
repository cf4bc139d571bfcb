package domain

// ResponseError é o corpo de erro do envelope de resposta
type ResponseError struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Platform Platform `json:"platform,omitempty"`
}

// Response é o envelope uniforme de todas as operações públicas do núcleo
type Response[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
}

func Ok[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

func Fail[T any](code, message string, platform Platform) Response[T] {
	return Response[T]{
		Success: false,
		Error: &ResponseError{
			Code:     code,
			Message:  message,
			Platform: platform,
		},
	}
}

package dto

// Envelope wraps the payload of the chart and statistics endpoints in the
// {success, data} shape the business front-end expects.
type Envelope[T any] struct {
	Success bool `json:"success" example:"true"`
	Data    T    `json:"data"`
}

// OK wraps data in a successful envelope.
func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

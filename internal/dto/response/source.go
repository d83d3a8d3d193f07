package response

// Sourced wraps a list result with the gateway's data-source tag so clients
// and operators can tell remote data from fallback-mirror data.
type Sourced[T any] struct {
	Source string `json:"source"`
	Items  []T    `json:"items"`
}

func NewSourced[T any](source string, items []T) *Sourced[T] {
	if items == nil {
		items = []T{}
	}
	return &Sourced[T]{Source: source, Items: items}
}

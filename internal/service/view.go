package service

// View mirrors a page's local state after its mount-time fetch: the data, the
// loading flag and the failure, if any. Loading is always false once a
// service method returns; it exists so renderers can share one shape with
// in-flight placeholders.
type View[T any] struct {
	Data    T
	Loading bool
	Err     error
}

func loaded[T any](data T, err error) View[T] {
	return View[T]{Data: data, Err: err}
}

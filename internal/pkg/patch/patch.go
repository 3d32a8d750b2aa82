package patch

// Coalesce returns *p when set, otherwise fallback.
func Coalesce[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}

// CoalescePtr is Coalesce for optional fields that stay optional.
func CoalescePtr[T any](p, fallback *T) *T {
	if p != nil {
		return p
	}
	return fallback
}

package sqlkind

// Query is a rendered statement of kind K. It is immutable.
type Query[K Kind] struct {
	text string
}

// Get returns the statement text.
func (q Query[K]) Get() string {
	return q.text
}

// String implements fmt.Stringer. It returns the same text as Get.
func (q Query[K]) String() string {
	return q.text
}

// Keyword returns the keyword of the kind that produced the query.
func (q Query[K]) Keyword() string {
	return KeywordOf[K]()
}

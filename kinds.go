package sqlkind

// Kind is the constraint satisfied by the statement-kind markers.
//
// render is unexported, so every kind is one of the markers declared in
// kinds_gen.go or a type embedding one of them. A builder can only be
// instantiated with a kind that has a renderer, which makes Build defined for
// every builder that compiles.
//
// An embedding type inherits the renderer of the marker but keeps its own
// Keyword, and the renderer writes that keyword:
//
//	type Distinct struct{ sqlkind.Select }
//
//	func (Distinct) Keyword() string { return "SELECT DISTINCT" }
//
// The text of a built query therefore always starts with the keyword its
// kind reports.
type Kind interface {
	// Keyword returns the SQL verb of the kind, e.g. "SELECT".
	Keyword() string

	render(keyword string, f fragments) string
}

// KeywordOf returns the keyword of the kind K.
func KeywordOf[K Kind]() string {
	var k K
	return k.Keyword()
}

// Base is the default rendering hook of a kind: the bare keyword. The
// per-kind renderers format the whole statement and do not delegate to it.
func Base[K Kind](QueryBuilder[K]) string {
	return KeywordOf[K]()
}

package sqlkind

//go:generate go run ./compiler/kindgen/cmd/kindgen -config kinds.yaml

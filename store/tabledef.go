package store

// TableDef names a table the engine may touch. Name, Schema and KeyField
// are written into SQL text verbatim, so a TableDef must only ever be
// built from literals in trusted code, never from request data.
type TableDef struct {
	Schema   string
	Name     string
	KeyField string
}

func (t TableDef) FullTableName() string {
	if t.Schema == "" {
		return t.Name
	}

	return t.Schema + "." + t.Name
}

func (t TableDef) keyField() string {
	if t.KeyField == "" {
		return "id"
	}

	return t.KeyField
}

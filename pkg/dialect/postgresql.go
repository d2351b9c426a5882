package dialect

// Postgres models PostgreSQL's grammar: the CONNECT BY / MATCH_RECOGNIZE
// Oracle-isms are absent, but it is otherwise one of the more permissive
// vendors this package tracks.
type Postgres struct{ Base }

func (Postgres) Name() string { return "postgresql" }

func (Postgres) Capabilities() Capabilities {
	caps := genericCapabilities()
	caps.SupportsTopBeforeDistinct = false
	caps.SupportsConnectBy = false
	caps.SupportsMatchRecognize = false
	caps.SupportsAscDescInColumnDefinition = false
	return caps
}

var _ Dialect = Postgres{}

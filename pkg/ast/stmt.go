package ast

// QueryStatement wraps a Query so it satisfies Statement; this is the node
// returned for a top-level SELECT/WITH/VALUES/TABLE production.
type QueryStatement struct {
	Query *Query
}

func (QueryStatement) node() {}
func (QueryStatement) stmt() {}

// TransactionMode is one entry of START TRANSACTION's mode list.
type TransactionMode int

const (
	TxModeIsolationLevel TransactionMode = iota
	TxModeReadOnly
	TxModeReadWrite
)

// IsolationLevel enumerates SET TRANSACTION ISOLATION LEVEL values.
type IsolationLevel int

const (
	IsolationReadUncommitted IsolationLevel = iota
	IsolationReadCommitted
	IsolationRepeatableRead
	IsolationSerializable
)

// StartTransaction is START TRANSACTION / BEGIN [modes...].
type StartTransaction struct {
	Modes    []TransactionMode
	Isolation *IsolationLevel
}

func (StartTransaction) node() {}
func (StartTransaction) stmt() {}

// Commit is COMMIT [AND [NO] CHAIN].
type Commit struct {
	Chain bool
}

func (Commit) node() {}
func (Commit) stmt() {}

// Rollback is ROLLBACK [TO SAVEPOINT name].
type Rollback struct {
	Savepoint *Ident
}

func (Rollback) node() {}
func (Rollback) stmt() {}

// Savepoint is SAVEPOINT name.
type Savepoint struct {
	Name Ident
}

func (Savepoint) node() {}
func (Savepoint) stmt() {}

// ReleaseSavepoint is RELEASE [SAVEPOINT] name.
type ReleaseSavepoint struct {
	Name Ident
}

func (ReleaseSavepoint) node() {}
func (ReleaseSavepoint) stmt() {}

// SetTransaction is SET TRANSACTION ISOLATION LEVEL ...
type SetTransaction struct {
	Isolation *IsolationLevel
	Modes     []TransactionMode
	Session   bool
}

func (SetTransaction) node() {}
func (SetTransaction) stmt() {}

// SetNames is SET NAMES 'charset' [COLLATE 'collation'].
type SetNames struct {
	Charset   string
	Collation *string
	Default   bool
}

func (SetNames) node() {}
func (SetNames) stmt() {}

// SetRole is SET ROLE name.
type SetRole struct {
	Name Ident
}

func (SetRole) node() {}
func (SetRole) stmt() {}

// SetVariableScope distinguishes SESSION/LOCAL/GLOBAL scoping of SET.
type SetVariableScope int

const (
	SetScopeDefault SetVariableScope = iota
	SetScopeSession
	SetScopeLocal
	SetScopeGlobal
)

// SetVariable is the generic `SET [SESSION|LOCAL|GLOBAL] name = value [, ...]`.
type SetVariable struct {
	Scope     SetVariableScope
	Names     []ObjectName
	Values    []Expr
	Parenthesized bool
}

func (SetVariable) node() {}
func (SetVariable) stmt() {}

// SetTimeZone is SET TIME ZONE value.
type SetTimeZone struct {
	Value Expr
	Local bool
}

func (SetTimeZone) node() {}
func (SetTimeZone) stmt() {}

// DeclareKind distinguishes a cursor declaration from a scalar variable
// declaration.
type DeclareKind int

const (
	DeclareCursor DeclareKind = iota
	DeclareVariable
)

// Declare is DECLARE name [CURSOR FOR query | type [:= default]].
type Declare struct {
	Kind     DeclareKind
	Name     Ident
	Scroll   bool
	Insensitive bool
	Query    *Query // DeclareCursor
	Type     DataType // DeclareVariable
	Default  Expr
}

func (Declare) node() {}
func (Declare) stmt() {}

// FetchDirection enumerates the FETCH cursor direction keywords.
type FetchDirection int

const (
	FetchNext FetchDirection = iota
	FetchPrior
	FetchFirst
	FetchLast
	FetchAbsolute
	FetchRelative
	FetchForwardAll
	FetchBackwardAll
)

// Fetch is FETCH [direction] FROM cursor [INTO target].
type Fetch struct {
	Direction FetchDirection
	Count     *int64
	Cursor    Ident
	Into      []Ident
}

func (Fetch) node() {}
func (Fetch) stmt() {}

// Close is CLOSE cursor | CLOSE ALL.
type Close struct {
	Cursor *Ident
	All    bool
}

func (Close) node() {}
func (Close) stmt() {}

// CopyDirection distinguishes COPY ... TO from COPY ... FROM.
type CopyDirection int

const (
	CopyTo CopyDirection = iota
	CopyFrom
)

// CopySource is either a table (with optional column list) or a query.
type CopySource struct {
	Table   *ObjectName
	Columns []Ident
	Query   *Query
}

// CopyTarget is a file path, PROGRAM command, or STDIN/STDOUT.
type CopyTarget struct {
	Path    *string
	Program *string
	Stdin   bool
	Stdout  bool
}

// Copy is the COPY production.
type Copy struct {
	Direction CopyDirection
	Source    CopySource
	Target    CopyTarget
	Options   map[string]Expr
	LegacyOptions []string
}

func (Copy) node() {}
func (Copy) stmt() {}

// GranteeKind distinguishes the grantee shape GRANT/REVOKE target.
type GranteeKind int

const (
	GranteeRole GranteeKind = iota
	GranteePublic
)

// Grant is the GRANT production.
type Grant struct {
	Privileges []string
	OnTable    *ObjectName
	ToRoles    []Ident
	GranteeKind GranteeKind
	WithGrantOption bool
}

func (Grant) node() {}
func (Grant) stmt() {}

// Revoke is the REVOKE production.
type Revoke struct {
	Privileges []string
	OnTable    *ObjectName
	FromRoles  []Ident
	Cascade    bool
}

func (Revoke) node() {}
func (Revoke) stmt() {}

// ExplainFormat distinguishes TEXT/JSON/GRAPHVIZ output formats, where supported.
type ExplainFormat int

const (
	ExplainFormatDefault ExplainFormat = iota
	ExplainFormatText
	ExplainFormatJSON
	ExplainFormatGraphviz
	ExplainFormatTree
)

// Explain is EXPLAIN [ANALYZE] [VERBOSE] [FORMAT fmt] statement.
type Explain struct {
	Analyze bool
	Verbose bool
	Format  ExplainFormat
	Statement Statement
}

func (Explain) node() {}
func (Explain) stmt() {}

// ExplainTable is EXPLAIN [EXTENDED] table_name (MySQL DESCRIBE-equivalent).
type ExplainTable struct {
	Extended bool
	Table    ObjectName
}

func (ExplainTable) node() {}
func (ExplainTable) stmt() {}

// Kill is KILL [CONNECTION|QUERY] id.
type Kill struct {
	Query bool
	ID    uint64
}

func (Kill) node() {}
func (Kill) stmt() {}

// Discard is DISCARD {ALL|PLANS|SEQUENCES|TEMP}.
type Discard struct {
	Target string
}

func (Discard) node() {}
func (Discard) stmt() {}

// Pragma is SQLite's PRAGMA name [= value | (value)].
type Pragma struct {
	Name  ObjectName
	Value Expr
	IsEq  bool
}

func (Pragma) node() {}
func (Pragma) stmt() {}

// Prepare is PREPARE name [(type, ...)] AS statement.
type Prepare struct {
	Name       Ident
	ParamTypes []DataType
	Statement  Statement
}

func (Prepare) node() {}
func (Prepare) stmt() {}

// Execute is EXECUTE name [(args...)].
type Execute struct {
	Name Ident
	Args []Expr
}

func (Execute) node() {}
func (Execute) stmt() {}

// Deallocate is DEALLOCATE [PREPARE] {name | ALL}.
type Deallocate struct {
	Name *Ident
	All  bool
}

func (Deallocate) node() {}
func (Deallocate) stmt() {}

// Install is DuckDB's INSTALL extension production.
type Install struct {
	Name Ident
	From *string
}

func (Install) node() {}
func (Install) stmt() {}

// Load is DuckDB's LOAD extension production.
type Load struct {
	Name Ident
}

func (Load) node() {}
func (Load) stmt() {}

// ShowKind enumerates the SHOW statement's subjects.
type ShowKind int

const (
	ShowTables ShowKind = iota
	ShowColumns
	ShowDatabases
	ShowSchemas
	ShowCreateTable
	ShowVariable
	ShowVariables
	ShowFunctions
	ShowIndex
	ShowCollation
	ShowCharset
	ShowStatus
	ShowWarnings
	ShowGrants
	ShowTblProperties
)

// Show is the generic SHOW production.
type Show struct {
	Kind     ShowKind
	Extended bool
	Full     bool
	Table    *ObjectName
	DbName   *Ident
	Filter   Expr
	LikePattern *string
	Name     *ObjectName
}

func (Show) node() {}
func (Show) stmt() {}

// Use is USE [CATALOG|DATABASE|SCHEMA] name.
type Use struct {
	Kind string
	Name ObjectName
}

func (Use) node() {}
func (Use) stmt() {}

// Flush is MySQL's FLUSH [NO_WRITE_TO_BINLOG|LOCAL] target.
type Flush struct {
	Local  bool
	Target string
	Tables []ObjectName
}

func (Flush) node() {}
func (Flush) stmt() {}

// Assert is DuckDB's ASSERT condition [, message].
type Assert struct {
	Condition Expr
	Message   Expr
}

func (Assert) node() {}
func (Assert) stmt() {}

// Unload is Redshift's UNLOAD (query) TO 's3://...' [options].
type Unload struct {
	Query   *Query
	To      string
	Options map[string]Expr
}

func (Unload) node() {}
func (Unload) stmt() {}

// AttachDatabase is SQLite's ATTACH DATABASE 'file' AS name.
type AttachDatabase struct {
	Path string
	Name Ident
}

func (AttachDatabase) node() {}
func (AttachDatabase) stmt() {}

// AttachDuckDBDatabase is DuckDB's ATTACH 'file' [AS name] [(options)].
type AttachDuckDBDatabase struct {
	IfNotExists bool
	Path        string
	Name        *Ident
	Options     map[string]Expr
}

func (AttachDuckDBDatabase) node() {}
func (AttachDuckDBDatabase) stmt() {}

// DetachDuckDBDatabase is DuckDB's DETACH [DATABASE] [IF EXISTS] name.
type DetachDuckDBDatabase struct {
	IfExists bool
	Name     Ident
}

func (DetachDuckDBDatabase) node() {}
func (DetachDuckDBDatabase) stmt() {}

// Directory is Hive's INSERT OVERWRITE [LOCAL] DIRECTORY 'path' production,
// modeled standalone since it shares little with a table-targeted INSERT.
type Directory struct {
	Local  bool
	Path   string
	RowFormat *HiveRowFormat
	Source *Query
}

func (Directory) node() {}
func (Directory) stmt() {}

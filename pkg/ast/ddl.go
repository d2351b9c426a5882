package ast

// ReferentialAction enumerates ON DELETE / ON UPDATE actions.
type ReferentialAction int

const (
	RefActionNoAction ReferentialAction = iota
	RefActionRestrict
	RefActionCascade
	RefActionSetNull
	RefActionSetDefault
)

// ColumnOptionKind enumerates the option kinds a column definition can carry.
type ColumnOptionKind int

const (
	ColNotNull ColumnOptionKind = iota
	ColNull
	ColDefault
	ColMaterialized // ClickHouse
	ColAlias        // ClickHouse
	ColEphemeral    // ClickHouse
	ColPrimaryKey
	ColUnique
	ColForeignKey
	ColCheck
	ColAutoIncrement
	ColOnUpdate
	ColGeneratedAlwaysAsIdentity
	ColGeneratedByDefaultAsIdentity
	ColGeneratedAlwaysAs // computed column
	ColComment
	ColOptions // DuckDB/BigQuery OPTIONS(...)
	ColCollation
)

// IdentityOptions is the optional `(seed, increment)` or full sequence
// option list of GENERATED ... AS IDENTITY.
type IdentityOptions struct {
	Seed      *int64
	Increment *int64
}

// ForeignKeyOption is the REFERENCES clause of a column or table constraint.
type ForeignKeyOption struct {
	Table    ObjectName
	Columns  []Ident
	OnDelete ReferentialAction
	OnUpdate ReferentialAction
}

// SqliteConflictClause is SQLite's `ON CONFLICT {ROLLBACK|ABORT|FAIL|IGNORE|REPLACE}`.
type SqliteConflictClause int

const (
	SqliteConflictClauseNone SqliteConflictClause = iota
	SqliteConflictClauseRollback
	SqliteConflictClauseAbort
	SqliteConflictClauseFail
	SqliteConflictClauseIgnore
	SqliteConflictClauseReplace
)

// ColumnOption is one inline option of a CREATE TABLE column definition.
type ColumnOption struct {
	Kind        ColumnOptionKind
	Expr        Expr              // ColDefault, ColOnUpdate, ColGeneratedAlwaysAs, ColCheck
	Stored      bool              // ColGeneratedAlwaysAs: STORED vs VIRTUAL
	Identity    *IdentityOptions  // ColGeneratedAlwaysAsIdentity / ColGeneratedByDefaultAsIdentity
	ForeignKey  *ForeignKeyOption // ColForeignKey
	SqliteConflict SqliteConflictClause // ColPrimaryKey / ColUnique
	Autoincrement bool             // ColPrimaryKey: SQLite AUTOINCREMENT
	Text        string            // ColComment / ColOptions raw text fallback
	Collation   *ObjectName       // ColCollation
}

// ColumnDef is one column entry of a CREATE TABLE statement.
type ColumnDef struct {
	Name    Ident
	Type    DataType
	Options []ColumnOption
}

// TableConstraintKind enumerates the standalone constraint forms a CREATE
// TABLE (or ALTER TABLE ADD CONSTRAINT) can carry.
type TableConstraintKind int

const (
	ConstraintPrimaryKey TableConstraintKind = iota
	ConstraintUnique
	ConstraintForeignKey
	ConstraintCheck
	ConstraintIndex
	ConstraintFulltext
	ConstraintSpatial
)

// TableConstraint is one standalone table-level constraint.
type TableConstraint struct {
	Name       *Ident
	Kind       TableConstraintKind
	Columns    []Ident
	ForeignKey *ForeignKeyOption
	CheckExpr  Expr
	IndexName  *Ident
}

// OnCommitAction is the temporary-table `ON COMMIT` behavior.
type OnCommitAction int

const (
	OnCommitNone OnCommitAction = iota
	OnCommitDeleteRows
	OnCommitPreserveRows
	OnCommitDrop
)

// HiveRowFormat is the `ROW FORMAT {DELIMITED ... | SERDE name [WITH SERDEPROPERTIES(...)]}` clause.
type HiveRowFormat struct {
	Delimited       bool
	FieldsTerminatedBy *string
	Serde           *string
	SerdeProperties map[string]string
}

// HiveDistribution bundles Hive's PARTITIONED BY / CLUSTERED BY / SORTED BY /
// INTO n BUCKETS / ROW FORMAT / STORED AS / LOCATION / TBLPROPERTIES suffixes.
type HiveDistribution struct {
	PartitionedBy  []ColumnDef
	ClusteredBy    []Ident
	SortedBy       []OrderByExpr
	IntoBuckets    *uint64
	RowFormat      *HiveRowFormat
	StoredAs       *string
	Location       *string
	TblProperties  map[string]string
}

// ClickHouseTableOptions bundles ENGINE/ORDER BY/PRIMARY KEY and friends.
type ClickHouseTableOptions struct {
	Engine     *string
	EngineArgs []Expr
	OrderBy    []Expr
	PrimaryKey Expr
}

// CreateTable is the full CREATE TABLE production.
type CreateTable struct {
	OrReplace   bool
	Temporary   bool
	Unlogged    bool
	External    bool // Hive EXTERNAL TABLE
	IfNotExists bool
	Name        ObjectName
	Columns     []ColumnDef
	Constraints []TableConstraint
	Like        *ObjectName
	AsQuery     *Query

	WithoutRowid bool // SQLite
	Strict       bool // SQLite

	Hive       *HiveDistribution
	ClickHouse *ClickHouseTableOptions

	PartitionBy []Expr // BigQuery/Postgres
	ClusterBy   []Expr // BigQuery
	Options     map[string]Expr // BigQuery/DuckDB OPTIONS(...)
	With        map[string]Expr // generic WITH (...) storage parameters

	Engine        *string // MySQL ENGINE = name
	AutoIncrement *uint64
	DefaultCharset *string
	Collate       *string
	Comment       *string
	OnCommit      OnCommitAction
}

func (CreateTable) node() {}
func (CreateTable) stmt() {}

// CreateVirtualTable is SQLite's `CREATE VIRTUAL TABLE name USING module(args)`.
type CreateVirtualTable struct {
	IfNotExists bool
	Name        ObjectName
	ModuleName  Ident
	ModuleArgs  []string
}

func (CreateVirtualTable) node() {}
func (CreateVirtualTable) stmt() {}

// CreateView is the CREATE [OR REPLACE] [MATERIALIZED] VIEW production.
type CreateView struct {
	OrReplace    bool
	Materialized bool
	Temporary    bool
	IfNotExists  bool
	Name         ObjectName
	Columns      []Ident
	Query        *Query
	WithOptions  map[string]Expr
	WithNoSchemaBinding bool
}

func (CreateView) node() {}
func (CreateView) stmt() {}

// IndexColumn is one `expr [ASC|DESC]` entry of a CREATE INDEX column list.
type IndexColumn struct {
	Expr Expr
	Asc  OrderByAsc
}

// CreateIndex is the CREATE [UNIQUE] INDEX production.
type CreateIndex struct {
	Unique      bool
	IfNotExists bool
	Name        *ObjectName
	Table       ObjectName
	Columns     []IndexColumn
	Using       *Ident
	Include     []Ident
	Where       Expr
	With        map[string]Expr
}

func (CreateIndex) node() {}
func (CreateIndex) stmt() {}

// CreateSchema is the CREATE SCHEMA production.
type CreateSchema struct {
	IfNotExists bool
	Name        ObjectName
	Authorization *Ident
}

func (CreateSchema) node() {}
func (CreateSchema) stmt() {}

// CreateDatabase is the CREATE DATABASE production.
type CreateDatabase struct {
	IfNotExists bool
	Name        Ident
	Location    *string
	ManagedLocation *string
}

func (CreateDatabase) node() {}
func (CreateDatabase) stmt() {}

// CreateRole is the CREATE ROLE production.
type CreateRole struct {
	IfNotExists bool
	Names       []Ident
}

func (CreateRole) node() {}
func (CreateRole) stmt() {}

// FunctionParam is one typed parameter of a CREATE FUNCTION/PROCEDURE/MACRO.
type FunctionParam struct {
	Name Ident
	Type DataType
}

// FunctionBehavior distinguishes the grammar a dialect's CREATE FUNCTION
// selects (Hive's LANGUAGE/USING, Postgres's LANGUAGE/AS $$...$$, BigQuery's
// REMOTE WITH CONNECTION, DuckDB's macro-as-expression form).
type FunctionBehavior int

const (
	FunctionBehaviorGeneric FunctionBehavior = iota
	FunctionBehaviorHive
	FunctionBehaviorPostgres
	FunctionBehaviorBigQuery
	FunctionBehaviorDuckDBMacro
)

// CreateFunction is the CREATE FUNCTION production; the option set actually
// populated depends on Behavior.
type CreateFunction struct {
	OrReplace   bool
	Temporary   bool
	IfNotExists bool
	Name        ObjectName
	Params      []FunctionParam
	ReturnType  DataType
	Behavior    FunctionBehavior
	Language    *Ident
	Body        Expr   // DuckDB macro body, or a simple RETURN expr
	AsQuery     *Query // table macros
	As          *string // Postgres AS $$ ... $$ body text
	Using       map[string]string
	Deterministic bool
}

func (CreateFunction) node() {}
func (CreateFunction) stmt() {}

// CreateProcedure is the CREATE PROCEDURE production.
type CreateProcedure struct {
	OrReplace bool
	Name      ObjectName
	Params    []FunctionParam
	Body      []Statement
}

func (CreateProcedure) node() {}
func (CreateProcedure) stmt() {}

// CreateTrigger is the CREATE TRIGGER production.
type CreateTrigger struct {
	Name      ObjectName
	Timing    string // BEFORE/AFTER/INSTEAD OF
	Events    []string
	Table     ObjectName
	ForEachRow bool
	Condition Expr
	Body      []Statement
}

func (CreateTrigger) node() {}
func (CreateTrigger) stmt() {}

// CreateTypeKind distinguishes the three CREATE TYPE shapes the core models.
type CreateTypeKind int

const (
	CreateTypeEnum CreateTypeKind = iota
	CreateTypeStruct
	CreateTypeAlias
)

// CreateType is the CREATE TYPE production.
type CreateType struct {
	Name   ObjectName
	Kind   CreateTypeKind
	Labels []string // CreateTypeEnum
	Fields []StructField // CreateTypeStruct
	Target DataType // CreateTypeAlias
}

func (CreateType) node() {}
func (CreateType) stmt() {}

// CreateSequence is the CREATE SEQUENCE production.
type CreateSequence struct {
	IfNotExists bool
	Name        ObjectName
	DataType    DataType
	IncrementBy *int64
	MinValue    *int64
	MaxValue    *int64
	StartWith   *int64
	Cache       *int64
	Cycle       bool
}

func (CreateSequence) node() {}
func (CreateSequence) stmt() {}

// CreateSecret is DuckDB's CREATE SECRET production.
type CreateSecret struct {
	OrReplace bool
	Temporary bool
	Name      *Ident
	Type      Ident
	Options   map[string]Expr
}

func (CreateSecret) node() {}
func (CreateSecret) stmt() {}

// CreateExtension is the CREATE EXTENSION production.
type CreateExtension struct {
	IfNotExists bool
	Name        Ident
	Version     *string
	Schema      *Ident
}

func (CreateExtension) node() {}
func (CreateExtension) stmt() {}

// ObjectKind enumerates the DROP-able object kinds.
type ObjectKind int

const (
	ObjectTable ObjectKind = iota
	ObjectView
	ObjectIndex
	ObjectSchema
	ObjectDatabase
	ObjectRole
	ObjectSequence
	ObjectType
	ObjectExtension
	ObjectSecret
	ObjectFunction
	ObjectProcedure
	ObjectTrigger
	ObjectPolicy
)

// Drop is the generic DROP <object-kind> production.
type Drop struct {
	Kind     ObjectKind
	IfExists bool
	Names    []ObjectName
	Cascade  bool
	Restrict bool
	Purge    bool // Hive
}

func (Drop) node() {}
func (Drop) stmt() {}

// DropFunction is DROP FUNCTION, split out because its name list carries
// argument-type signatures rather than bare object names.
type DropFunction struct {
	IfExists bool
	Names    []ObjectName
}

func (DropFunction) node() {}
func (DropFunction) stmt() {}

// DropProcedure mirrors DropFunction for PROCEDUREs.
type DropProcedure struct {
	IfExists bool
	Names    []ObjectName
}

func (DropProcedure) node() {}
func (DropProcedure) stmt() {}

// DropTrigger is DROP TRIGGER [IF EXISTS] name [ON table] [CASCADE|RESTRICT].
type DropTrigger struct {
	IfExists bool
	Name     ObjectName
	Table    *ObjectName
	Cascade  bool
}

func (DropTrigger) node() {}
func (DropTrigger) stmt() {}

// DropSecret is DuckDB's DROP SECRET production.
type DropSecret struct {
	IfExists bool
	Name     Ident
	Storage  *Ident
}

func (DropSecret) node() {}
func (DropSecret) stmt() {}

// DropPolicy is Postgres's DROP POLICY production.
type DropPolicy struct {
	IfExists bool
	Name     Ident
	Table    ObjectName
	Cascade  bool
}

func (DropPolicy) node() {}
func (DropPolicy) stmt() {}

// AlterTableOperationKind enumerates the comma-separated operations an
// ALTER TABLE statement can carry.
type AlterTableOperationKind int

const (
	AlterAddColumn AlterTableOperationKind = iota
	AlterAddConstraint
	AlterAddPartition
	AlterAddProjection
	AlterRenameColumn
	AlterRenameConstraint
	AlterRenameTable
	AlterDropColumn
	AlterDropConstraint
	AlterDropPartition
	AlterDropPrimaryKey
	AlterDropProjection
	AlterChangeColumn
	AlterModifyColumn
	AlterColumnSetNotNull
	AlterColumnDropNotNull
	AlterColumnSetDefault
	AlterColumnDropDefault
	AlterColumnSetDataType
	AlterColumnAddGenerated
	AlterSwapWith
	AlterEnable
	AlterDisable
	AlterOwnerTo
	AlterAttachPartition
	AlterDetachPartition
	AlterFreezePartition
	AlterUnfreezePartition
)

// AlterTableOperation is one operation of an ALTER TABLE statement's
// comma-separated operation list.
type AlterTableOperation struct {
	Kind          AlterTableOperationKind
	IfExists      bool
	IfNotExists   bool
	Column        *ColumnDef
	ColumnName    *Ident
	NewColumnName *Ident
	NewTableName  *ObjectName
	Constraint    *TableConstraint
	ConstraintName *Ident
	NewDataType   DataType
	Using         Expr
	Default       Expr
	Generated     *IdentityOptions
	Cascade       bool
	SwapTarget    *ObjectName
	EnableTarget  string // rule/trigger/row level security name
	Owner         *Ident
	PartitionExprs []Expr
}

// AlterTable is the ALTER TABLE production.
type AlterTable struct {
	IfExists   bool
	Name       ObjectName
	Operations []AlterTableOperation
}

func (AlterTable) node() {}
func (AlterTable) stmt() {}

// AlterView renames or redefines a view.
type AlterView struct {
	Name    ObjectName
	Columns []Ident
	Query   *Query
}

func (AlterView) node() {}
func (AlterView) stmt() {}

// AlterIndex renames an index.
type AlterIndex struct {
	Name    ObjectName
	NewName Ident
}

func (AlterIndex) node() {}
func (AlterIndex) stmt() {}

// AlterRole alters a role's attributes.
type AlterRole struct {
	Name       Ident
	NewName    *Ident
	WithOptions map[string]Expr
}

func (AlterRole) node() {}
func (AlterRole) stmt() {}

// Truncate is the TRUNCATE [TABLE] production.
type Truncate struct {
	Names   []ObjectName
	Cascade bool
}

func (Truncate) node() {}
func (Truncate) stmt() {}

// Analyze is the ANALYZE [TABLE] production.
type Analyze struct {
	Table   ObjectName
	Columns []Ident
	ComputeStatistics bool
}

func (Analyze) node() {}
func (Analyze) stmt() {}

// Msck is Hive's MSCK REPAIR TABLE production.
type Msck struct {
	Table ObjectName
	Repair bool
	AddPartitions bool
	DropPartitions bool
}

func (Msck) node() {}
func (Msck) stmt() {}

// CacheTable / UncacheTable are Spark's CACHE TABLE / UNCACHE TABLE productions.
type CacheTable struct {
	Name  ObjectName
	Lazy  bool
	Query *Query
	Options map[string]Expr
}

func (CacheTable) node() {}
func (CacheTable) stmt() {}

type UncacheTable struct {
	Name     ObjectName
	IfExists bool
}

func (UncacheTable) node() {}
func (UncacheTable) stmt() {}

// OptimizeTable is ClickHouse's OPTIMIZE TABLE production.
type OptimizeTable struct {
	Name       ObjectName
	Partition  Expr
	Final      bool
	Deduplicate bool
}

func (OptimizeTable) node() {}
func (OptimizeTable) stmt() {}

// Call is the CALL procedure(args) production.
type Call struct {
	Name ObjectName
	Args []FunctionArg
}

func (Call) node() {}
func (Call) stmt() {}

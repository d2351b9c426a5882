package ast

// TableAlias is `name [(col, col, ...)]`. Columns is nil when no column list
// was given; an empty `()` list does not parse, so a missing list and an
// empty one are never distinguished.
type TableAlias struct {
	Name    Ident
	Columns []Ident
}

// CteMaterialized distinguishes MATERIALIZED / NOT MATERIALIZED / unspecified.
type CteMaterialized int

const (
	CteMaterializedUnspecified CteMaterialized = iota
	CteMaterializedYes
	CteMaterializedNo
)

// Cte is one WITH-clause common table expression.
type Cte struct {
	Alias        TableAlias
	Query        *Query
	Materialized CteMaterialized
	From         *Ident
}

// With is the WITH [RECURSIVE] clause preceding a query body.
type With struct {
	Recursive bool
	CTEs      []Cte
}

// SetQuantifier records the ALL/DISTINCT/BY NAME family of qualifiers a set
// operator or SELECT DISTINCT clause can carry.
type SetQuantifier int

const (
	SetQuantifierNone SetQuantifier = iota
	SetQuantifierAll
	SetQuantifierDistinct
	SetQuantifierByName
	SetQuantifierAllByName
	SetQuantifierDistinctByName
)

// SetOperator distinguishes UNION/EXCEPT/INTERSECT.
type SetOperator int

const (
	SetOpUnion SetOperator = iota
	SetOpExcept
	SetOpIntersect
)

// SetExpression is the sum type a Query's body can take.
type SetExpression interface {
	Node
	setExpr()
}

type baseSetExpr struct{}

func (baseSetExpr) node()    {}
func (baseSetExpr) setExpr() {}

// SetOperation is `left OP [quantifier] right`, left-associative at equal precedence.
type SetOperation struct {
	baseSetExpr
	Left       SetExpression
	Op         SetOperator
	Quantifier SetQuantifier
	Right      SetExpression
}

// QueryBody wraps a parenthesized sub-query used as a set-expression operand.
type QueryBody struct {
	baseSetExpr
	Query *Query
}

// ValuesList is `VALUES (expr, ...), (expr, ...), ...`.
type ValuesList struct {
	baseSetExpr
	Rows [][]Expr
}

// TableBody is the bare `TABLE name` set-expression shorthand.
type TableBody struct {
	baseSetExpr
	Name ObjectName
}

// SelectItemKind distinguishes the three projection-item shapes.
type SelectItemKind int

const (
	SelectItemExpr SelectItemKind = iota
	SelectItemWildcard
	SelectItemQualifiedWildcard
)

// SelectItem is one projection-list entry.
type SelectItem struct {
	Kind  SelectItemKind
	Expr  Expr // populated when Kind == SelectItemExpr; also holds Wildcard/QualifiedWildcard exprs
	Alias *Ident
}

// TopClause is SQL Server's `TOP n [PERCENT] [WITH TIES]`.
type TopClause struct {
	Quantity   Expr
	Percent    bool
	WithTies   bool
}

// IntoClause is `INTO [TEMPORARY|UNLOGGED] [TABLE] name`.
type IntoClause struct {
	Name      ObjectName
	Temporary bool
	Unlogged  bool
	Table     bool
}

// JoinOperator enumerates the JOIN shapes the FROM-clause parser recognizes.
type JoinOperator int

const (
	JoinInner JoinOperator = iota
	JoinLeft
	JoinLeftOuter
	JoinRight
	JoinRightOuter
	JoinFull
	JoinFullOuter
	JoinCross
	JoinCrossApply
	JoinOuterApply
	JoinLeftSemi
	JoinRightSemi
	JoinLeftAnti
	JoinRightAnti
	JoinAsOf
)

// JoinConstraintKind distinguishes ON, USING, NATURAL, and unconstrained joins.
type JoinConstraintKind int

const (
	JoinConstraintNone JoinConstraintKind = iota
	JoinConstraintOn
	JoinConstraintUsing
	JoinConstraintNatural
)

// JoinConstraint carries the ON expr / USING columns / NATURAL marker.
type JoinConstraint struct {
	Kind    JoinConstraintKind
	OnExpr  Expr
	Using   []Ident
}

// Join is one FROM-clause join applied to a running table-and-joins chain.
type Join struct {
	Relation      TableFactor
	Operator      JoinOperator
	Constraint    JoinConstraint
	MatchCondition Expr // ASOF JOIN ... MATCH_CONDITION(expr)
}

// TableWithJoins is a base relation plus zero or more applied joins.
type TableWithJoins struct {
	Relation TableFactor
	Joins    []Join
}

// TableFactor is the sum type of FROM-clause elements.
type TableFactor interface {
	Node
	tableFactor()
}

type baseTableFactor struct{}

func (baseTableFactor) node()        {}
func (baseTableFactor) tableFactor() {}

// TableArg is one positional argument to a table-valued function call.
type TableArg struct {
	Expr Expr
}

// ForSystemTime is FOR SYSTEM_TIME AS OF expr (temporal tables).
type ForSystemTime struct {
	AsOf Expr
}

// Table is a named base-table reference with its full set of optional
// suffixes: PARTITION(...), FOR SYSTEM_TIME AS OF, table function args,
// WITH ORDINALITY, alias, WITH (hints), PIVOT/UNPIVOT chain, MATCH_RECOGNIZE.
type Table struct {
	baseTableFactor
	Name           ObjectName
	Alias          *TableAlias
	Args           []TableArg // non-nil when this is a table-valued function call
	WithHints      []Expr
	Version        *ForSystemTime
	Partitions     []Ident
	WithOrdinality bool
	Pivots         []Pivot
	Unpivots       []Unpivot
	MatchRecognize *MatchRecognize
}

// Derived is a parenthesized subquery used as a FROM-clause relation.
type Derived struct {
	baseTableFactor
	Lateral  bool
	Subquery *Query
	Alias    *TableAlias
}

// TableFunction is `name(args) [alias]` used as a table-valued function call
// distinct from Table's overloaded Args slot, kept for LATERAL fn(args) forms.
type TableFunction struct {
	baseTableFactor
	Lateral bool
	Name    ObjectName
	Args    []FunctionArg
	Alias   *TableAlias
}

// NestedJoin is a parenthesized table-and-joins used as a single relation.
type NestedJoin struct {
	baseTableFactor
	TableWithJoins TableWithJoins
	Alias          *TableAlias
}

// UnNest is `UNNEST(expr, ...) [WITH ORDINALITY] [alias] [WITH OFFSET [alias]]`.
type UnNest struct {
	baseTableFactor
	Exprs          []Expr
	WithOrdinality bool
	Alias          *TableAlias
	WithOffset     bool
	OffsetAlias    *Ident
}

// JsonTableColumn is one COLUMNS(...) entry of a JSON_TABLE call.
type JsonTableColumn struct {
	Name     Ident
	Type     DataType
	Path     string
	Nested   []JsonTableColumn
}

// JsonTable is JSON_TABLE(expr, path COLUMNS (...)).
type JsonTable struct {
	baseTableFactor
	Expr    Expr
	Path    string
	Columns []JsonTableColumn
	Alias   *TableAlias
}

// PivotValueSource distinguishes the three PIVOT value-source shapes.
type PivotValueSource interface {
	pivotValueSource()
}

type PivotAny struct {
	OrderBy []OrderByExpr
}

func (PivotAny) pivotValueSource() {}

type PivotSubquery struct {
	Query *Query
}

func (PivotSubquery) pivotValueSource() {}

type PivotExprList struct {
	Exprs []ExprWithAlias
}

func (PivotExprList) pivotValueSource() {}

// ExprWithAlias pairs an expression with an optional alias.
type ExprWithAlias struct {
	Expr  Expr
	Alias *Ident
}

// Pivot is one `PIVOT(agg_list FOR col IN (values) [DEFAULT ON NULL(expr)])` clause.
type Pivot struct {
	Aggregates    []ExprWithAlias
	ForColumn     Ident
	ValueSource   PivotValueSource
	DefaultOnNull Expr
	Alias         *TableAlias
}

// Unpivot is one `UNPIVOT(value_col FOR name_col IN (cols)) ` clause.
type Unpivot struct {
	ValueColumn Ident
	NameColumn  Ident
	Columns     []Ident
	Alias       *TableAlias
}

// RowsPerMatch distinguishes ONE ROW PER MATCH from the ALL ROWS variants.
type RowsPerMatch int

const (
	OneRowPerMatch RowsPerMatch = iota
	AllRowsPerMatch
	AllRowsPerMatchShowEmpty
	AllRowsPerMatchOmitEmpty
	AllRowsPerMatchWithUnmatched
)

// AfterMatchSkip enumerates the AFTER MATCH SKIP ... clause's targets.
type AfterMatchSkip int

const (
	SkipPastLastRow AfterMatchSkip = iota
	SkipToNextRow
	SkipToFirst
	SkipToLast
)

// MeasureDef is one `expr AS ident` entry of MEASURES.
type MeasureDef struct {
	Expr  Expr
	Alias Ident
}

// SymbolDef is one `ident AS expr` entry of DEFINE.
type SymbolDef struct {
	Symbol Ident
	Expr   Expr
}

// RowPattern is the parsed PATTERN(...) regex-like grammar.
type RowPattern interface {
	rowPattern()
}

type PatternSymbol struct{ Symbol Ident }

func (PatternSymbol) rowPattern() {}

type PatternExclude struct{ Pattern RowPattern }

func (PatternExclude) rowPattern() {}

type PatternPermute struct{ Symbols []Ident }

func (PatternPermute) rowPattern() {}

type PatternConcat struct{ Patterns []RowPattern }

func (PatternConcat) rowPattern() {}

type PatternAlternation struct{ Patterns []RowPattern }

func (PatternAlternation) rowPattern() {}

// RepetitionKind distinguishes the quantifier spellings `*`, `+`, `?`, `{n}`,
// `{n,}`, `{,m}`, `{n,m}`.
type RepetitionKind int

const (
	RepeatZeroOrMore RepetitionKind = iota
	RepeatOneOrMore
	RepeatZeroOrOne
	RepeatExact
	RepeatAtLeast
	RepeatAtMost
	RepeatRange
)

type PatternRepetition struct {
	Pattern RowPattern
	Kind    RepetitionKind
	Lo, Hi  *uint64
}

func (PatternRepetition) rowPattern() {}

type PatternGroup struct{ Pattern RowPattern }

func (PatternGroup) rowPattern() {}

// MatchRecognize is the `MATCH_RECOGNIZE(...)` table-factor suffix.
type MatchRecognize struct {
	PartitionBy   []Expr
	OrderBy       []OrderByExpr
	Measures      []MeasureDef
	RowsPerMatch  RowsPerMatch
	After         AfterMatchSkip
	AfterSymbol   *Ident
	Pattern       RowPattern
	Define        []SymbolDef
}

// WindowFrameUnit distinguishes ROWS/RANGE/GROUPS.
type WindowFrameUnit int

const (
	FrameRows WindowFrameUnit = iota
	FrameRange
	FrameGroups
)

// WindowFrameBoundKind enumerates the frame bound shapes.
type WindowFrameBoundKind int

const (
	BoundCurrentRow WindowFrameBoundKind = iota
	BoundUnboundedPreceding
	BoundUnboundedFollowing
	BoundPreceding
	BoundFollowing
)

// WindowFrameBound is one edge of a window frame.
type WindowFrameBound struct {
	Kind  WindowFrameBoundKind
	Value Expr // populated for BoundPreceding / BoundFollowing
}

// WindowFrame is `{ROWS|RANGE|GROUPS} BETWEEN bound AND bound`.
type WindowFrame struct {
	Unit  WindowFrameUnit
	Start WindowFrameBound
	End   *WindowFrameBound
}

// WindowSpec is the body of an OVER(...) clause, or a reference to a named
// window when Name is non-nil and the rest is empty.
type WindowSpec struct {
	Name        *Ident
	PartitionBy []Expr
	OrderBy     []OrderByExpr
	Frame       *WindowFrame
}

// NamedWindow is one `name AS (spec)` entry of a WINDOW clause.
type NamedWindow struct {
	Name Ident
	Spec WindowSpec
}

// NullsOrder distinguishes NULLS FIRST / NULLS LAST / unspecified.
type NullsOrder int

const (
	NullsOrderUnspecified NullsOrder = iota
	NullsFirst
	NullsLast
)

// OrderByAsc distinguishes ASC / DESC / unspecified.
type OrderByAsc int

const (
	OrderByUnspecified OrderByAsc = iota
	OrderByAscending
	OrderByDescending
)

// WithFill is ClickHouse's `WITH FILL [FROM e] [TO e] [STEP e]` ORDER BY suffix.
type WithFill struct {
	From Expr
	To   Expr
	Step Expr
}

// OrderByExpr is one ORDER BY list entry.
type OrderByExpr struct {
	Expr     Expr
	Asc      OrderByAsc
	Nulls    NullsOrder
	WithFill *WithFill
}

// FetchClause is a FETCH clause: its quantity, whether the quantity is a
// PERCENT, and whether WITH TIES was given.
type FetchClause struct {
	Quantity *Expr
	Percent  bool
	WithTies bool
}

// LockKind distinguishes FOR UPDATE from FOR SHARE.
type LockKind int

const (
	LockUpdate LockKind = iota
	LockShare
)

// LockNonBlocking distinguishes NOWAIT from SKIP LOCKED.
type LockNonBlocking int

const (
	LockBlocking LockNonBlocking = iota
	LockNowait
	LockSkipLocked
)

// LockClause is one `FOR {UPDATE|SHARE} [OF name,...] [NOWAIT|SKIP LOCKED]`.
type LockClause struct {
	Kind       LockKind
	Of         []ObjectName
	NonBlocking LockNonBlocking
}

// GroupByKind distinguishes a plain expression list from GROUP BY ALL, plus
// the ROLLUP/CUBE/GROUPING SETS shapes.
type GroupByKind int

const (
	GroupByExprs GroupByKind = iota
	GroupByAll
	GroupByRollup
	GroupByCube
	GroupByGroupingSets
)

// GroupByClause is the parsed GROUP BY clause.
type GroupByClause struct {
	Kind  GroupByKind
	Exprs []Expr       // GroupByExprs
	Sets  [][]Expr     // GroupByRollup / GroupByCube / GroupByGroupingSets
	WithRollup bool
	WithCube   bool
	WithTotals bool // ClickHouse
}

// LateralView is Hive's `LATERAL VIEW [OUTER] expr name AS col, ...`.
type LateralView struct {
	Outer   bool
	Expr    Expr
	Name    Ident
	Columns []Ident
}

// ConnectBy is Oracle's `[START WITH expr] CONNECT BY [NOCYCLE] expr`;
// StartBefore records whether START WITH preceded CONNECT BY in the source.
type ConnectBy struct {
	StartWith Expr
	Condition Expr
	StartBefore bool
}

// WindowQualifyOrder records whether WINDOW preceded QUALIFY in the source,
// since both are optional and either order is legal.
type WindowQualifyOrder int

const (
	WindowThenQualify WindowQualifyOrder = iota
	QualifyThenWindow
)

// Select is the core `SELECT ...` production, before ORDER BY/LIMIT/locks
// which live on the enclosing Query.
type Select struct {
	baseSetExpr
	ValueMode     bool // BigQuery `SELECT AS VALUE`
	StructMode    bool // BigQuery `SELECT AS STRUCT`
	Top           *TopClause
	Distinct      SetQuantifier
	DistinctOn    []Expr
	Projection    []SelectItem
	Into          *IntoClause
	From          []TableWithJoins
	LateralViews  []LateralView
	Prewhere      Expr
	Where         Expr
	GroupBy       *GroupByClause
	ClusterBy     []Expr
	DistributeBy  []Expr
	SortBy        []OrderByExpr
	Having        Expr
	NamedWindows  []NamedWindow
	Qualify       Expr
	WindowQualifyOrder WindowQualifyOrder
	ConnectBy     *ConnectBy
}

// LimitByClause is ClickHouse's `LIMIT n BY expr, ...`.
type LimitByClause struct {
	Limit Expr
	Exprs []Expr
}

// Query is the top-level production returned for SELECT/WITH/VALUES bodies.
type Query struct {
	With    *With
	Body    SetExpression
	OrderBy []OrderByExpr
	Limit   Expr
	Offset  Expr
	LimitBy *LimitByClause
	Fetch   *FetchClause
	Locks   []LockClause
}

func (Query) node() {}

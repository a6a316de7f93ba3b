package token

// keywords maps the lowercase spelling of each of the 147 reserved words to
// its token. Matching is case-insensitive and ASCII-only, per the SQLite
// dialect's own rules — there is no Unicode case folding here.
var keywords = map[string]Token{
	"abort":             ABORT,
	"action":            ACTION,
	"add":               ADD,
	"after":             AFTER,
	"all":               ALL,
	"alter":             ALTER,
	"always":            ALWAYS,
	"analyze":           ANALYZE,
	"and":                AND,
	"as":                AS,
	"asc":               ASC,
	"attach":            ATTACH,
	"autoincrement":     AUTOINCREMENT,
	"before":            BEFORE,
	"begin":             BEGIN,
	"between":           BETWEEN,
	"by":                BY,
	"cascade":           CASCADE,
	"case":              CASE,
	"cast":              CAST,
	"check":             CHECK,
	"collate":           COLLATE,
	"column":            COLUMN,
	"commit":            COMMIT,
	"conflict":          CONFLICT,
	"constraint":        CONSTRAINT,
	"create":            CREATE,
	"cross":             CROSS,
	"current":           CURRENT,
	"current_date":      CURRENT_DATE,
	"current_time":      CURRENT_TIME,
	"current_timestamp": CURRENT_TIMESTAMP,
	"database":          DATABASE,
	"default":           DEFAULT,
	"deferrable":        DEFERRABLE,
	"deferred":          DEFERRED,
	"delete":            DELETE,
	"desc":              DESC,
	"detach":            DETACH,
	"distinct":          DISTINCT,
	"do":                DO,
	"drop":              DROP,
	"each":              EACH,
	"else":              ELSE,
	"end":               END,
	"escape":            ESCAPE,
	"except":            EXCEPT,
	"exclude":           EXCLUDE,
	"exclusive":         EXCLUSIVE,
	"exists":            EXISTS,
	"explain":           EXPLAIN,
	"fail":              FAIL,
	"filter":            FILTER,
	"first":             FIRST,
	"following":         FOLLOWING,
	"for":               FOR,
	"foreign":           FOREIGN,
	"from":              FROM,
	"full":              FULL,
	"generated":         GENERATED,
	"glob":              GLOB,
	"group":             GROUP,
	"groups":            GROUPS,
	"having":            HAVING,
	"if":                IF,
	"ignore":            IGNORE,
	"immediate":         IMMEDIATE,
	"in":                IN,
	"index":             INDEX,
	"indexed":           INDEXED,
	"initially":         INITIALLY,
	"inner":             INNER,
	"insert":            INSERT,
	"instead":           INSTEAD,
	"intersect":         INTERSECT,
	"into":              INTO,
	"is":                IS,
	"isnull":            ISNULL,
	"join":              JOIN,
	"key":               KEY,
	"last":              LAST,
	"left":              LEFT,
	"like":              LIKE,
	"limit":             LIMIT,
	"match":             MATCH,
	"materialized":      MATERIALIZED,
	"natural":           NATURAL,
	"no":                NO,
	"not":               NOT,
	"nothing":           NOTHING,
	"notnull":           NOTNULL,
	"null":              NULL,
	"nulls":             NULLS,
	"of":                OF,
	"offset":            OFFSET,
	"on":                ON,
	"or":                OR,
	"order":             ORDER,
	"others":            OTHERS,
	"outer":             OUTER,
	"over":              OVER,
	"partition":         PARTITION,
	"plan":              PLAN,
	"pragma":            PRAGMA,
	"preceding":         PRECEDING,
	"primary":           PRIMARY,
	"query":             QUERY,
	"raise":             RAISE,
	"range":             RANGE,
	"recursive":         RECURSIVE,
	"references":        REFERENCES,
	"regexp":            REGEXP,
	"reindex":           REINDEX,
	"release":           RELEASE,
	"rename":            RENAME,
	"replace":           REPLACE,
	"restrict":          RESTRICT,
	"returning":         RETURNING,
	"right":             RIGHT,
	"rollback":          ROLLBACK,
	"row":               ROW,
	"rows":              ROWS,
	"savepoint":         SAVEPOINT,
	"select":            SELECT,
	"set":               SET,
	"table":             TABLE,
	"temp":              TEMP,
	"temporary":         TEMPORARY,
	"then":              THEN,
	"ties":              TIES,
	"to":                TO,
	"transaction":       TRANSACTION,
	"trigger":           TRIGGER,
	"unbounded":         UNBOUNDED,
	"union":             UNION,
	"unique":            UNIQUE,
	"update":            UPDATE,
	"using":             USING,
	"vacuum":            VACUUM,
	"values":            VALUES,
	"view":              VIEW,
	"virtual":           VIRTUAL,
	"when":              WHEN,
	"where":             WHERE,
	"window":            WINDOW,
	"with":              WITH,
	"without":           WITHOUT,
}

// maxKeywordLen is the length of the longest reserved word ("current_timestamp"),
// used to size the stack buffer in LookupIdent.
const maxKeywordLen = len("current_timestamp")

// isLowercase reports whether s contains no ASCII uppercase letters, letting
// LookupIdent skip the allocation-free lowercase pass for the common case of
// already-lowercase source text.
func isLowercase(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			return false
		}
	}
	return true
}

// LookupIdent classifies ident as a reserved keyword token, or returns IDENT
// if it is not one of the 147 reserved words. Matching is ASCII
// case-insensitive; ident itself is returned unmodified by the caller.
func LookupIdent(ident string) Token {
	if isLowercase(ident) {
		if tok, ok := keywords[ident]; ok {
			return tok
		}
		return IDENT
	}
	if len(ident) > maxKeywordLen {
		// No reserved word is this long; avoid the lowercase pass entirely.
		return IDENT
	}
	var buf [maxKeywordLen]byte
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf[i] = c
	}
	if tok, ok := keywords[string(buf[:len(ident)])]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether ident (in any case) names a reserved word.
func IsKeyword(ident string) bool {
	return LookupIdent(ident) != IDENT
}

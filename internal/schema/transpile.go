package schema

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"db-shuttle/internal/dialect"
)

var (
	ifNotExistsRe    = regexp.MustCompile(`(?i)IF\s+NOT\s+EXISTS\s+`)
	defaultLiteralRe = regexp.MustCompile(`(?i)\s*DEFAULT\s+'[^']*'`)
)

// Transpile rewrites a source CREATE TABLE statement into a statement the
// target dialect accepts. Foreign keys and table-level constraints are
// dropped, every identifier is double-quoted, and column types go through
// the dialect's type mapping. If no balanced statement body can be located
// the raw statement is returned unchanged and migration proceeds
// best-effort on the malformed DDL.
func Transpile(t SourceTable, d dialect.Dialect) string {
	stmt := ifNotExistsRe.ReplaceAllString(strings.TrimSpace(t.RawSQL), "")

	body, ok := extractBody(stmt)
	if !ok {
		return stmt
	}

	var lines []string
	for _, spec := range ParseColumns(body) {
		lines = append(lines, renderColumn(spec, d))
	}

	return fmt.Sprintf("CREATE TABLE \"%s\" (\n  %s\n)", t.Name, strings.Join(lines, ",\n  "))
}

// ParseColumns splits a CREATE TABLE body into column specs. Table-level
// constraint members (FOREIGN KEY, CONSTRAINT, UNIQUE, CHECK) are dropped;
// the target schema deliberately carries fewer constraints than the source.
func ParseColumns(body string) []ColumnSpec {
	var specs []ColumnSpec
	for _, member := range splitMembers(body) {
		if member == "" {
			continue
		}
		if isConstraintMember(member) {
			continue
		}

		i := strings.IndexFunc(member, unicode.IsSpace)
		if i < 0 {
			// Name with no type text, nothing usable.
			continue
		}
		name := strings.Trim(member[:i], "\"`[]")
		rest := strings.TrimSpace(member[i:])
		upper := strings.ToUpper(rest)

		specs = append(specs, ColumnSpec{
			Name:          name,
			TypeToken:     rest,
			PrimaryKey:    strings.Contains(upper, "PRIMARY KEY"),
			AutoIncrement: strings.Contains(upper, "AUTOINCREMENT"),
			HasDefault:    defaultLiteralRe.MatchString(rest),
		})
	}
	return specs
}

func isConstraintMember(member string) bool {
	upper := strings.ToUpper(member)
	for _, prefix := range []string{"FOREIGN KEY", "CONSTRAINT", "UNIQUE", "CHECK"} {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// extractBody returns the text inside the first balanced parenthesis group,
// or ok=false when the statement has no such group.
func extractBody(stmt string) (string, bool) {
	start := strings.IndexByte(stmt, '(')
	if start < 0 {
		return "", false
	}
	depth := 0
	for i := start; i < len(stmt); i++ {
		switch stmt[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return stmt[start+1 : i], true
			}
		}
	}
	return "", false
}

// splitMembers splits a CREATE TABLE body on top-level commas. A running
// parenthesis balance keeps commas inside type arguments, e.g.
// NUMERIC(10,2), from splitting a member.
func splitMembers(body string) []string {
	var members []string
	depth, start := 0, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				members = append(members, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	members = append(members, strings.TrimSpace(body[start:]))
	return members
}

func renderColumn(c ColumnSpec, d dialect.Dialect) string {
	if c.AutoIncrement {
		return d.AutoIncrementColumn(c.Name)
	}

	def := d.MapType(c.TypeToken)
	if c.PrimaryKey && !strings.Contains(strings.ToUpper(def), "PRIMARY KEY") {
		def += " PRIMARY KEY"
	}
	if c.HasDefault {
		// Source default literals are not carried over; quoting rules
		// diverge across dialects. Only the pass-through case still has one.
		def = strings.TrimSpace(defaultLiteralRe.ReplaceAllString(def, ""))
	}

	return fmt.Sprintf("\"%s\" %s", c.Name, def)
}

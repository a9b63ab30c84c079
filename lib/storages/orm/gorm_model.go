package orm

import (
	"strings"

	"gorm.io/gorm/schema"
)

type sqlTable interface {
	CacheKey() string
}

// NamingStrategy removes the sql prefix of the structs from the table names.
type NamingStrategy struct {
	schema.NamingStrategy
}

func (n *NamingStrategy) TableName(table string) string {
	return strings.TrimPrefix(n.NamingStrategy.TableName(table), "sql_")
}

func (n *NamingStrategy) RelationshipFKName(relationship schema.Relationship) string {
	return strings.ReplaceAll(n.NamingStrategy.RelationshipFKName(relationship), "_sql_", "_")
}

func (n *NamingStrategy) CheckerName(table, column string) string {
	return strings.ReplaceAll(n.NamingStrategy.CheckerName(table, column), "_sql_", "_")
}

func (n *NamingStrategy) IndexName(table, column string) string {
	return strings.ReplaceAll(n.NamingStrategy.IndexName(table, column), "_sql_", "_")
}

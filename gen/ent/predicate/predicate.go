// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ParseJob is the predicate function for parsejob builders.
type ParseJob func(*sql.Selector)

// ResumeFile is the predicate function for resumefile builders.
type ResumeFile func(*sql.Selector)

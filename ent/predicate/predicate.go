// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Channel is the predicate function for channel builders.
type Channel func(*sql.Selector)

// Content is the predicate function for content builders.
type Content func(*sql.Selector)

// CronJob is the predicate function for cronjob builders.
type CronJob func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Prompt is the predicate function for prompt builders.
type Prompt func(*sql.Selector)

// QuotaUsage is the predicate function for quotausage builders.
type QuotaUsage func(*sql.Selector)

// QuotaViolation is the predicate function for quotaviolation builders.
type QuotaViolation func(*sql.Selector)

// Segment is the predicate function for segment builders.
type Segment func(*sql.Selector)

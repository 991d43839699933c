// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChannelsColumns holds the columns for the "channels" table.
	ChannelsColumns = []*schema.Column{
		{Name: "channel_id", Type: field.TypeString, Unique: true},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"youtube", "telegram", "tiktok"}, Default: "youtube"},
		{Name: "external_id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "upload_collection_id", Type: field.TypeString, Nullable: true},
		{Name: "cron_pattern", Type: field.TypeString, Default: "0 */6 * * *"},
		{Name: "fetch_last_n", Type: field.TypeInt, Default: 10},
		{Name: "author_context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChannelsTable holds the schema information for the "channels" table.
	ChannelsTable = &schema.Table{
		Name:       "channels",
		Columns:    ChannelsColumns,
		PrimaryKey: []*schema.Column{ChannelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "channel_source_type_external_id",
				Unique:  true,
				Columns: []*schema.Column{ChannelsColumns[1], ChannelsColumns[2]},
			},
		},
	}
	// ContentsColumns holds the columns for the "contents" table.
	ContentsColumns = []*schema.Column{
		{Name: "content_id", Type: field.TypeString, Unique: true},
		{Name: "external_video_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_sec", Type: field.TypeInt, Nullable: true},
		{Name: "view_count", Type: field.TypeInt64, Nullable: true},
		{Name: "thumbnail", Type: field.TypeString, Nullable: true},
		{Name: "canonical_url", Type: field.TypeString, Nullable: true},
		{Name: "expected_segment_count", Type: field.TypeInt, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"discovered", "metadata_ready", "processing", "analyzed", "failed", "retry_pending"}, Default: "discovered"},
		{Name: "combined_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "models_used", Type: field.TypeJSON, Nullable: true},
		{Name: "prompt_version", Type: field.TypeString, Nullable: true},
		{Name: "combined_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "statistics", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "channel_id", Type: field.TypeString},
	}
	// ContentsTable holds the schema information for the "contents" table.
	ContentsTable = &schema.Table{
		Name:       "contents",
		Columns:    ContentsColumns,
		PrimaryKey: []*schema.Column{ContentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contents_channels_contents",
				Columns:    []*schema.Column{ContentsColumns[19]},
				RefColumns: []*schema.Column{ChannelsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "content_channel_id",
				Unique:  false,
				Columns: []*schema.Column{ContentsColumns[19]},
			},
			{
				Name:    "content_state",
				Unique:  false,
				Columns: []*schema.Column{ContentsColumns[10]},
			},
			{
				Name:    "content_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContentsColumns[10], ContentsColumns[17]},
			},
		},
	}
	// CronJobsColumns holds the columns for the "cron_jobs" table.
	CronJobsColumns = []*schema.Column{
		{Name: "cron_job_id", Type: field.TypeString, Unique: true},
		{Name: "stable_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "cron_pattern", Type: field.TypeString},
		{Name: "next_run_at", Type: field.TypeTime},
		{Name: "last_enqueued_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CronJobsTable holds the schema information for the "cron_jobs" table.
	CronJobsTable = &schema.Table{
		Name:       "cron_jobs",
		Columns:    CronJobsColumns,
		PrimaryKey: []*schema.Column{CronJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cronjob_next_run_at",
				Unique:  false,
				Columns: []*schema.Column{CronJobsColumns[6]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "active", "completed", "failed"}, Default: "pending"},
		{Name: "job_key", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "run_at", Type: field.TypeTime},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 1},
		{Name: "backoff_base_ms", Type: field.TypeInt64, Default: 0},
		{Name: "remove_on_complete", Type: field.TypeBool, Default: false},
		{Name: "stalled_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_queue_state_run_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[4], JobsColumns[7]},
			},
			{
				Name:    "job_state_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[15]},
			},
			{
				Name:    "job_queue_state_priority_run_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[4], JobsColumns[6], JobsColumns[7]},
			},
		},
	}
	// PromptsColumns holds the columns for the "prompts" table.
	PromptsColumns = []*schema.Column{
		{Name: "prompt_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "template", Type: field.TypeString, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "prompt_type", Type: field.TypeEnum, Enums: []string{"segment_analysis", "combination"}},
		{Name: "response_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PromptsTable holds the schema information for the "prompts" table.
	PromptsTable = &schema.Table{
		Name:       "prompts",
		Columns:    PromptsColumns,
		PrimaryKey: []*schema.Column{PromptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prompt_name_version",
				Unique:  true,
				Columns: []*schema.Column{PromptsColumns[1], PromptsColumns[2]},
			},
			{
				Name:    "prompt_prompt_type_is_active",
				Unique:  false,
				Columns: []*schema.Column{PromptsColumns[5], PromptsColumns[4]},
			},
		},
	}
	// QuotaUsagesColumns holds the columns for the "quota_usages" table.
	QuotaUsagesColumns = []*schema.Column{
		{Name: "quota_usage_id", Type: field.TypeString, Unique: true},
		{Name: "model", Type: field.TypeString},
		{Name: "window", Type: field.TypeEnum, Enums: []string{"minute", "day"}},
		{Name: "epoch", Type: field.TypeInt64},
		{Name: "requests", Type: field.TypeInt64, Default: 0},
		{Name: "tokens", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QuotaUsagesTable holds the schema information for the "quota_usages" table.
	QuotaUsagesTable = &schema.Table{
		Name:       "quota_usages",
		Columns:    QuotaUsagesColumns,
		PrimaryKey: []*schema.Column{QuotaUsagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quotausage_model_window_epoch",
				Unique:  true,
				Columns: []*schema.Column{QuotaUsagesColumns[1], QuotaUsagesColumns[2], QuotaUsagesColumns[3]},
			},
			{
				Name:    "quotausage_updated_at",
				Unique:  false,
				Columns: []*schema.Column{QuotaUsagesColumns[6]},
			},
		},
	}
	// QuotaViolationsColumns holds the columns for the "quota_violations" table.
	QuotaViolationsColumns = []*schema.Column{
		{Name: "quota_violation_id", Type: field.TypeString, Unique: true},
		{Name: "model", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"rpm", "tpm", "rpd", "unknown"}},
		{Name: "retry_delay_sec", Type: field.TypeInt, Nullable: true},
		{Name: "raw_payload", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuotaViolationsTable holds the schema information for the "quota_violations" table.
	QuotaViolationsTable = &schema.Table{
		Name:       "quota_violations",
		Columns:    QuotaViolationsColumns,
		PrimaryKey: []*schema.Column{QuotaViolationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quotaviolation_model_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuotaViolationsColumns[1], QuotaViolationsColumns[5]},
			},
			{
				Name:    "quotaviolation_kind_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuotaViolationsColumns[2], QuotaViolationsColumns[5]},
			},
		},
	}
	// SegmentsColumns holds the columns for the "segments" table.
	SegmentsColumns = []*schema.Column{
		{Name: "segment_id", Type: field.TypeString, Unique: true},
		{Name: "index", Type: field.TypeInt},
		{Name: "start_sec", Type: field.TypeInt},
		{Name: "end_sec", Type: field.TypeInt},
		{Name: "duration_sec", Type: field.TypeInt},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "processing", "analyzed", "failed", "overloaded"}, Default: "pending"},
		{Name: "analysis_result", Type: field.TypeJSON, Nullable: true},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "processing_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "prompt_version", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "content_id", Type: field.TypeString},
	}
	// SegmentsTable holds the schema information for the "segments" table.
	SegmentsTable = &schema.Table{
		Name:       "segments",
		Columns:    SegmentsColumns,
		PrimaryKey: []*schema.Column{SegmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "segments_contents_segments",
				Columns:    []*schema.Column{SegmentsColumns[14]},
				RefColumns: []*schema.Column{ContentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "segment_content_id_index",
				Unique:  true,
				Columns: []*schema.Column{SegmentsColumns[14], SegmentsColumns[1]},
			},
			{
				Name:    "segment_content_id_state",
				Unique:  false,
				Columns: []*schema.Column{SegmentsColumns[14], SegmentsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChannelsTable,
		ContentsTable,
		CronJobsTable,
		JobsTable,
		PromptsTable,
		QuotaUsagesTable,
		QuotaViolationsTable,
		SegmentsTable,
	}
)

func init() {
	ContentsTable.ForeignKeys[0].RefTable = ChannelsTable
	SegmentsTable.ForeignKeys[0].RefTable = ContentsTable
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "host_name", Type: field.TypeString},
		{Name: "client_signature", Type: field.TypeString},
		{Name: "operating_system", Type: field.TypeString, Default: ""},
		{Name: "devices", Type: field.TypeJSON, Nullable: true},
		{Name: "token", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "registration_token", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "active", "stopped", "error"}, Default: "pending"},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_ipaddress", Type: field.TypeString, Default: ""},
		{Name: "advanced_config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_host_name_client_signature",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[2], AgentsColumns[3]},
			},
		},
	}
	// AgentErrorsColumns holds the columns for the "agent_errors" table.
	AgentErrorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "minor", "major", "critical", "fatal"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt},
		{Name: "task_id", Type: field.TypeInt, Nullable: true},
	}
	// AgentErrorsTable holds the schema information for the "agent_errors" table.
	AgentErrorsTable = &schema.Table{
		Name:       "agent_errors",
		Columns:    AgentErrorsColumns,
		PrimaryKey: []*schema.Column{AgentErrorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_errors_agents_agent_errors",
				Columns:    []*schema.Column{AgentErrorsColumns[5]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_errors_tasks_errors",
				Columns:    []*schema.Column{AgentErrorsColumns[6]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agenterror_agent_id_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{AgentErrorsColumns[5], AgentErrorsColumns[4]},
			},
			{
				Name:    "agenterror_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{AgentErrorsColumns[4]},
			},
		},
	}
	// AttacksColumns holds the columns for the "attacks" table.
	AttacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "exhausted", "paused", "failed"}, Default: "pending"},
		{Name: "attack_mode", Type: field.TypeEnum, Enums: []string{"dictionary", "mask", "hybrid_dictionary", "hybrid_mask"}},
		{Name: "mask", Type: field.TypeString, Nullable: true},
		{Name: "increment_mode", Type: field.TypeBool, Default: false},
		{Name: "increment_minimum", Type: field.TypeInt, Default: 0},
		{Name: "increment_maximum", Type: field.TypeInt, Default: 0},
		{Name: "optimized", Type: field.TypeBool, Default: false},
		{Name: "slow_candidate_generators", Type: field.TypeBool, Default: false},
		{Name: "workload_profile", Type: field.TypeInt, Default: 3},
		{Name: "disable_markov", Type: field.TypeBool, Default: false},
		{Name: "classic_markov", Type: field.TypeBool, Default: false},
		{Name: "markov_threshold", Type: field.TypeInt, Default: 0},
		{Name: "left_rule", Type: field.TypeString, Nullable: true},
		{Name: "right_rule", Type: field.TypeString, Nullable: true},
		{Name: "custom_charset_1", Type: field.TypeString, Nullable: true},
		{Name: "custom_charset_2", Type: field.TypeString, Nullable: true},
		{Name: "custom_charset_3", Type: field.TypeString, Nullable: true},
		{Name: "custom_charset_4", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "total_keyspace", Type: field.TypeInt64, Nullable: true},
		{Name: "dispatched_keyspace", Type: field.TypeInt64, Default: 0},
		{Name: "start_time", Type: field.TypeTime, Nullable: true},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeInt},
		{Name: "word_list_id", Type: field.TypeInt, Nullable: true},
		{Name: "rule_list_id", Type: field.TypeInt, Nullable: true},
		{Name: "mask_list_id", Type: field.TypeInt, Nullable: true},
	}
	// AttacksTable holds the schema information for the "attacks" table.
	AttacksTable = &schema.Table{
		Name:       "attacks",
		Columns:    AttacksColumns,
		PrimaryKey: []*schema.Column{AttacksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attacks_campaigns_attacks",
				Columns:    []*schema.Column{AttacksColumns[27]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "attacks_resources_word_list_attacks",
				Columns:    []*schema.Column{AttacksColumns[28]},
				RefColumns: []*schema.Column{ResourcesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "attacks_resources_rule_list_attacks",
				Columns:    []*schema.Column{AttacksColumns[29]},
				RefColumns: []*schema.Column{ResourcesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "attacks_resources_mask_list_attacks",
				Columns:    []*schema.Column{AttacksColumns[30]},
				RefColumns: []*schema.Column{ResourcesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attack_campaign_id_position",
				Unique:  false,
				Columns: []*schema.Column{AttacksColumns[27], AttacksColumns[20]},
			},
			{
				Name:    "attack_state",
				Unique:  false,
				Columns: []*schema.Column{AttacksColumns[2]},
			},
		},
	}
	// BenchmarksColumns holds the columns for the "benchmarks" table.
	BenchmarksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "hash_type", Type: field.TypeInt},
		{Name: "device", Type: field.TypeInt},
		{Name: "hash_speed", Type: field.TypeFloat64},
		{Name: "runtime_ms", Type: field.TypeInt64, Default: 0},
		{Name: "measured_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt},
	}
	// BenchmarksTable holds the schema information for the "benchmarks" table.
	BenchmarksTable = &schema.Table{
		Name:       "benchmarks",
		Columns:    BenchmarksColumns,
		PrimaryKey: []*schema.Column{BenchmarksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "benchmarks_agents_benchmarks",
				Columns:    []*schema.Column{BenchmarksColumns[6]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "benchmark_agent_id_hash_type_device",
				Unique:  true,
				Columns: []*schema.Column{BenchmarksColumns[6], BenchmarksColumns[1], BenchmarksColumns[2]},
			},
		},
	}
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 1},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"draft", "active", "completed", "archived"}, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "hash_list_id", Type: field.TypeInt},
		{Name: "project_id", Type: field.TypeInt},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "campaigns_hash_lists_campaigns",
				Columns:    []*schema.Column{CampaignsColumns[7]},
				RefColumns: []*schema.Column{HashListsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "campaigns_projects_campaigns",
				Columns:    []*schema.Column{CampaignsColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_state_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[4], CampaignsColumns[3], CampaignsColumns[5]},
			},
		},
	}
	// CrackResultsColumns holds the columns for the "crack_results" table.
	CrackResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "hash_value", Type: field.TypeString, Size: 2147483647},
		{Name: "plaintext", Type: field.TypeString, Size: 2147483647},
		{Name: "cracked_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeInt},
	}
	// CrackResultsTable holds the schema information for the "crack_results" table.
	CrackResultsTable = &schema.Table{
		Name:       "crack_results",
		Columns:    CrackResultsColumns,
		PrimaryKey: []*schema.Column{CrackResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "crack_results_tasks_crack_results",
				Columns:    []*schema.Column{CrackResultsColumns[4]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "crackresult_task_id_hash_value",
				Unique:  true,
				Columns: []*schema.Column{CrackResultsColumns[4], CrackResultsColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// HashItemsColumns holds the columns for the "hash_items" table.
	HashItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "hash_value", Type: field.TypeString, Size: 2147483647},
		{Name: "salt", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "plaintext", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cracked_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "hash_list_id", Type: field.TypeInt},
	}
	// HashItemsTable holds the schema information for the "hash_items" table.
	HashItemsTable = &schema.Table{
		Name:       "hash_items",
		Columns:    HashItemsColumns,
		PrimaryKey: []*schema.Column{HashItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hash_items_hash_lists_items",
				Columns:    []*schema.Column{HashItemsColumns[7]},
				RefColumns: []*schema.Column{HashListsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "hashitem_hash_list_id_hash_value_salt",
				Unique:  true,
				Columns: []*schema.Column{HashItemsColumns[7], HashItemsColumns[1], HashItemsColumns[2]},
			},
		},
	}
	// HashListsColumns holds the columns for the "hash_lists" table.
	HashListsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "hash_type_id", Type: field.TypeInt},
		{Name: "separator", Type: field.TypeString, Size: 1, Default: ":"},
		{Name: "item_count", Type: field.TypeInt64, Default: 0},
		{Name: "uncracked_count", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeInt},
	}
	// HashListsTable holds the schema information for the "hash_lists" table.
	HashListsTable = &schema.Table{
		Name:       "hash_lists",
		Columns:    HashListsColumns,
		PrimaryKey: []*schema.Column{HashListsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hash_lists_projects_hash_lists",
				Columns:    []*schema.Column{HashListsColumns[9]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// HashcatStatusColumns holds the columns for the "hashcat_status" table.
	HashcatStatusColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "original_line", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session", Type: field.TypeString, Default: ""},
		{Name: "status_code", Type: field.TypeInt},
		{Name: "target", Type: field.TypeString, Default: ""},
		{Name: "progress_done", Type: field.TypeInt64, Default: 0},
		{Name: "progress_total", Type: field.TypeInt64, Default: 0},
		{Name: "restore_point", Type: field.TypeInt64, Default: 0},
		{Name: "recovered_hashes", Type: field.TypeJSON, Nullable: true},
		{Name: "recovered_salts", Type: field.TypeJSON, Nullable: true},
		{Name: "rejected", Type: field.TypeInt64, Default: 0},
		{Name: "devices", Type: field.TypeJSON, Nullable: true},
		{Name: "hashcat_guess", Type: field.TypeJSON, Nullable: true},
		{Name: "time_start", Type: field.TypeTime, Nullable: true},
		{Name: "estimated_stop", Type: field.TypeTime, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeInt},
	}
	// HashcatStatusTable holds the schema information for the "hashcat_status" table.
	HashcatStatusTable = &schema.Table{
		Name:       "hashcat_status",
		Columns:    HashcatStatusColumns,
		PrimaryKey: []*schema.Column{HashcatStatusColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hashcat_status_tasks_statuses",
				Columns:    []*schema.Column{HashcatStatusColumns[16]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "hashcatstatus_task_id_received_at",
				Unique:  false,
				Columns: []*schema.Column{HashcatStatusColumns[16], HashcatStatusColumns[15]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// ResourcesColumns holds the columns for the "resources" table.
	ResourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_handle", Type: field.TypeString, Unique: true},
		{Name: "resource_type", Type: field.TypeEnum, Enums: []string{"word_list", "rule_list", "mask_list", "charset"}},
		{Name: "line_count", Type: field.TypeInt64, Nullable: true},
		{Name: "byte_size", Type: field.TypeInt64, Default: 0},
		{Name: "checksum", Type: field.TypeString, Default: ""},
		{Name: "sensitive", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ResourcesTable holds the schema information for the "resources" table.
	ResourcesTable = &schema.Table{
		Name:       "resources",
		Columns:    ResourcesColumns,
		PrimaryKey: []*schema.Column{ResourcesColumns[0]},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "exhausted", "paused", "failed"}, Default: "pending"},
		{Name: "keyspace_offset", Type: field.TypeInt64, Default: 0},
		{Name: "keyspace_limit", Type: field.TypeInt64, Default: 0},
		{Name: "progress_percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "estimated_finish", Type: field.TypeTime, Nullable: true},
		{Name: "activity_timestamp", Type: field.TypeTime},
		{Name: "stale", Type: field.TypeBool, Default: false},
		{Name: "agent_signal", Type: field.TypeEnum, Enums: []string{"none", "stop", "pause"}, Default: "none"},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt, Nullable: true},
		{Name: "attack_id", Type: field.TypeInt},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_agents_tasks",
				Columns:    []*schema.Column{TasksColumns[12]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "tasks_attacks_tasks",
				Columns:    []*schema.Column{TasksColumns[13]},
				RefColumns: []*schema.Column{AttacksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_state_activity_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[6]},
			},
			{
				Name:    "task_agent_id_state",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[12], TasksColumns[1]},
			},
			{
				Name:    "task_attack_id_state",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[13], TasksColumns[1]},
			},
		},
	}
	// AgentProjectsColumns holds the columns for the "agent_projects" table.
	AgentProjectsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeInt},
		{Name: "project_id", Type: field.TypeInt},
	}
	// AgentProjectsTable holds the schema information for the "agent_projects" table.
	AgentProjectsTable = &schema.Table{
		Name:       "agent_projects",
		Columns:    AgentProjectsColumns,
		PrimaryKey: []*schema.Column{AgentProjectsColumns[0], AgentProjectsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_projects_agent_id",
				Columns:    []*schema.Column{AgentProjectsColumns[0]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_projects_project_id",
				Columns:    []*schema.Column{AgentProjectsColumns[1]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ResourceProjectsColumns holds the columns for the "resource_projects" table.
	ResourceProjectsColumns = []*schema.Column{
		{Name: "resource_id", Type: field.TypeInt},
		{Name: "project_id", Type: field.TypeInt},
	}
	// ResourceProjectsTable holds the schema information for the "resource_projects" table.
	ResourceProjectsTable = &schema.Table{
		Name:       "resource_projects",
		Columns:    ResourceProjectsColumns,
		PrimaryKey: []*schema.Column{ResourceProjectsColumns[0], ResourceProjectsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "resource_projects_resource_id",
				Columns:    []*schema.Column{ResourceProjectsColumns[0]},
				RefColumns: []*schema.Column{ResourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "resource_projects_project_id",
				Columns:    []*schema.Column{ResourceProjectsColumns[1]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentErrorsTable,
		AttacksTable,
		BenchmarksTable,
		CampaignsTable,
		CrackResultsTable,
		EventsTable,
		HashItemsTable,
		HashListsTable,
		HashcatStatusTable,
		ProjectsTable,
		ResourcesTable,
		TasksTable,
		AgentProjectsTable,
		ResourceProjectsTable,
	}
)

func init() {
	AgentErrorsTable.ForeignKeys[0].RefTable = AgentsTable
	AgentErrorsTable.ForeignKeys[1].RefTable = TasksTable
	AttacksTable.ForeignKeys[0].RefTable = CampaignsTable
	AttacksTable.ForeignKeys[1].RefTable = ResourcesTable
	AttacksTable.ForeignKeys[2].RefTable = ResourcesTable
	AttacksTable.ForeignKeys[3].RefTable = ResourcesTable
	BenchmarksTable.ForeignKeys[0].RefTable = AgentsTable
	CampaignsTable.ForeignKeys[0].RefTable = HashListsTable
	CampaignsTable.ForeignKeys[1].RefTable = ProjectsTable
	CrackResultsTable.ForeignKeys[0].RefTable = TasksTable
	HashItemsTable.ForeignKeys[0].RefTable = HashListsTable
	HashListsTable.ForeignKeys[0].RefTable = ProjectsTable
	HashcatStatusTable.ForeignKeys[0].RefTable = TasksTable
	TasksTable.ForeignKeys[0].RefTable = AgentsTable
	TasksTable.ForeignKeys[1].RefTable = AttacksTable
	AgentProjectsTable.ForeignKeys[0].RefTable = AgentsTable
	AgentProjectsTable.ForeignKeys[1].RefTable = ProjectsTable
	ResourceProjectsTable.ForeignKeys[0].RefTable = ResourcesTable
	ResourceProjectsTable.ForeignKeys[1].RefTable = ProjectsTable
}
